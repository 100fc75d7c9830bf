package tm

import "errors"

const (
	// MaxStates is the largest N representable: 2·N actions of 5 bits must fit
	// into 64 bits.
	MaxStates = 6

	// BitsPerAction is the width of one encoded Action.
	BitsPerAction = 5

	// BitsPerState is the width of one encoded State (two actions).
	BitsPerState = 2 * BitsPerAction

	actionMask = 1<<BitsPerAction - 1
	stateMask  = 1<<BitsPerState - 1
)

var (
	// ErrStateCount is returned when N is not in 1..MaxStates.
	ErrStateCount = errors.New("tm: number of states must be between 1 and 6")

	// ErrUnusedBits is returned when an identifier has bits set above 10·N.
	ErrUnusedBits = errors.New("tm: identifier has bits set above the encoded states")

	// ErrStateOutOfRange is returned when an action references a state that
	// is neither a real state nor the halt sentinel.
	ErrStateOutOfRange = errors.New("tm: action references a nonexistent state")
)

// Move is the direction the head moves after a transition.
type Move uint8

const (
	Left  Move = iota // Left moves the head to the next lower cell.
	Right             // Right moves the head to the next higher cell.
)

// String returns "l" or "r".
func (m Move) String() string {
	if m == Left {
		return "l"
	}

	return "r"
}

// NextState is the target of an Action: either Halt or a state index.
type NextState int8

// Halt is the NextState of every action that stops the machine.
const Halt NextState = -1

// IsHalt reports whether s is the halt state.
func (s NextState) IsHalt() bool { return s == Halt }

// Index returns the state index. It must not be called on Halt.
func (s NextState) Index() int { return int(s) }

// String returns the state letter ("A".."F") or "H" for Halt.
func (s NextState) String() string {
	if s == Halt {
		return "H"
	}

	return StateName(int(s))
}

// StateName returns the conventional letter for state index i.
func StateName(i int) string {
	return string(rune('A' + i))
}
