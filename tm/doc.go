// Package tm defines the compact bit encoding of an N-state, 2-symbol
// Turing machine as used by the Busy Beaver search.
//
// What:
//
//   - Machine: an immutable, comparable value holding N ≤ 6 states packed into
//     the 10·N least significant bits of a uint64.
//   - State:   a 10 bit view over one state (on-read-0 action in the low 5 bits,
//     on-read-1 action in the high 5 bits).
//   - Action:  a 5 bit transition rule.
//
// Action layout (LSB first):
//
//	bit 0     inverted write value: 0 writes a 1, 1 writes a 0
//	bit 1     head movement:        0 moves left, 1 moves right
//	bits 2-4  next state:           0..N-1 are states, N is the halt sentinel
//
// The halt marker is structural (a next-state value equal to N), never a
// sentinel object, so Machine stays copyable and trivially comparable.
//
// The packed integer together with N is the stable identifier of a machine:
// it can be printed, stored or transmitted as is and turned back into a
// Machine with Decode.
//
// Errors:
//
//   - ErrStateCount        N is outside 1..MaxStates
//   - ErrUnusedBits        bits above 10·N are set
//   - ErrStateOutOfRange   an action names a state greater than N
//
// Complexity:
//
//   - Decode:      O(N)
//   - Accessors:   O(1), no allocation
package tm
