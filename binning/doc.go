// Package binning partitions numeric data into discrete bins and validates
// bin-edge sequences.
//
// Bins are half-open intervals [edge[i], edge[i+1]). The top edge is exclusive,
// so a value equal to the last edge belongs to no bin.
//
//   - BinData maps every value to the index of its bin.
//   - ValidateBinRanges checks edges against ordering, width, overlap and
//     coverage constraints given as Options.
//   - DynamicBinSelection builds equal-width edges spanning the data and
//     validates them.
//   - Histogram counts the values falling in each bin.
//
// All functions are pure and safe for concurrent use. CalculateHistogram is
// the ctx-aware entry point that also logs failures.
package binning
