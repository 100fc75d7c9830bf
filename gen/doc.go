// Package gen enumerates N-state Turing machines.
//
// A Generator walks the machine space as a mixed-radix counter: each of the
// 2N action slots is one digit whose value is the 5 bit action encoding
// itself. Consecutive machines are produced by incrementing the least
// significant digit with ripple carry, directly on the packed encoding, so
// ForRange decodes its start index once and then never divides again.
//
// Optimization levels:
//
//   - All:              every syntactically possible machine, (4(N+1))^(2N).
//   - SkipSymmetries:   halt actions only move left (their direction is
//     irrelevant), and the last slot only moves left: flipping every
//     direction bit yields a mirror machine with the same classification, so
//     one of each pair is enough.
//   - AlsoSkipHaltZero: additionally halt actions only write 1. A halt action
//     writing 0 is dominated by the same action writing 1 when maximizing
//     the number of ones. Unlike SkipSymmetries this changes the histogram.
//
// Because of the encoding order (…, Hl1, Hl0, Hr1, Hr0 are the last four
// action values) the reductions only shrink the digit base. The last digit
// of the reduced levels takes the lower half of the left-moving actions of
// a full digit, 2N+1 values ending at Hl1, and is decoded by inserting a 0
// at its direction bit.
//
// Index order is arbitrary but fixed; an index is not a machine identifier.
//
// Errors:
//
//   - ErrStateCount       N outside 1..6
//   - ErrUnknownOpt       unparsable optimization level
//   - ErrIndexOutOfRange  TmAt index ≥ NumTMs
//   - ErrInvalidRange     ForRange start > end or end > NumTMs
package gen
