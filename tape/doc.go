// Package tape implements the infinite binary tape a Turing machine works on.
//
// The tape is a growable bit vector addressed by signed cell ids, where cell 0
// is the cell the head starts on. All cells start out as 0.
//
// Besides the bits, the tape tracks its written range: the smallest half-open
// interval of cells that contains every cell ever written. Cells outside of it
// are 0 by definition, so reads outside of it never touch the buffer. As an
// invariant the written range is always fully backed by the buffer.
//
// Growth doubles the buffer at least, so writes are amortized O(1) no matter in
// which direction the head wanders. Clear resets the tape without releasing
// memory; one tape is meant to be reused for a whole batch of machines.
//
// A Tape is not safe for concurrent use.
package tape
