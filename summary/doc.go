// Package summary folds analyze.Outcome values into the statistics of an
// exhaustive busy beaver search.
//
// What:
//
//   - per-Kind counters and the total number of machines;
//   - the high score (most 1s left on the tape by a halting machine), how
//     many machines reached it and the fewest steps any of them needed;
//   - a histogram of how many machines halted after how many steps.
//
// An ImmediateHalt machine counts as halting after one step, and as a high
// score candidate with a single 1 when it wrote one.
//
// Summaries are plain values: Add and Merge are not synchronized. Merge is
// commutative and associative, so per-worker Summaries can be folded in any
// order.
//
// Complexity:
//
//   - Add, Merge (without histogram): O(1)
//   - Merge histogram, Histogram: O(B log B) for B distinct step counts
package summary
