package tm

import (
	"fmt"
	"strings"
)

// Machine is an N-state Turing machine operating on a binary tape.
//
// State i occupies bits [10i, 10i+10) of the encoding; all bits above 10·N
// are zero. A Machine is never mutated after construction.
type Machine struct {
	n       uint8
	encoded uint64
}

// Decode validates id as the encoding of an n-state machine.
// It fails if n is not in 1..MaxStates, if any bit above 10·n is set, or if
// an action names a next state greater than n.
func Decode(n int, id uint64) (Machine, error) {
	// 1. Validate the number of states
	if n < 1 || n > MaxStates {
		return Machine{}, fmt.Errorf("decode %d with n=%d: %w", id, n, ErrStateCount)
	}

	// 2. Everything above the last state must be zero
	if id>>(BitsPerState*n) != 0 {
		return Machine{}, fmt.Errorf("decode %d with n=%d: %w", id, n, ErrUnusedBits)
	}

	// 3. Every action must go to a real state or to halt
	for slot := 0; slot < 2*n; slot++ {
		action := (id >> (BitsPerAction * slot)) & actionMask
		if int(action>>2) > n {
			return Machine{}, fmt.Errorf("decode %d with n=%d: slot %d: %w", id, n, slot, ErrStateOutOfRange)
		}
	}

	return DecodeUnchecked(n, id), nil
}

// DecodeUnchecked wraps bits without validation. The caller guarantees that
// bits is a well-formed n-state encoding.
func DecodeUnchecked(n int, bits uint64) Machine {
	return Machine{n: uint8(n), encoded: bits}
}

// NumStates returns N.
func (m Machine) NumStates() int { return int(m.n) }

// Encoded returns the packed identifier.
func (m Machine) Encoded() uint64 { return m.encoded }

// StartAction is the on-read-0 action of state 0, the first action any
// machine executes on a blank tape.
func (m Machine) StartAction() Action {
	return m.State(0).On0()
}

// State returns state i. i must be in [0, N).
func (m Machine) State(i int) State {
	return State{
		n:    m.n,
		bits: uint16(m.encoded>>(BitsPerState*i)) & stateMask,
	}
}

// Action returns the action stored in slot, where slot 2i is the on-read-0
// action of state i and slot 2i+1 its on-read-1 action.
func (m Machine) Action(slot int) Action {
	return Action{
		n:    m.n,
		bits: uint8(m.encoded>>(BitsPerAction*slot)) & actionMask,
	}
}

// Mirror returns the machine with every head movement flipped. It behaves
// exactly like m on a mirrored tape.
func (m Machine) Mirror() Machine {
	var dirs uint64
	for slot := 0; slot < 2*int(m.n); slot++ {
		dirs |= 1 << (BitsPerAction*slot + 1)
	}

	return Machine{n: m.n, encoded: m.encoded ^ dirs}
}

// String renders the transition table, e.g.
//
//	Tm {A: {0 → Br1, 1 → Bl1}, B: {0 → Al1, 1 → Hr1}}
func (m Machine) String() string {
	var sb strings.Builder
	sb.WriteString("Tm {")
	for i := 0; i < int(m.n); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(StateName(i))
		sb.WriteString(": ")
		sb.WriteString(m.State(i).String())
	}
	sb.WriteString("}")

	return sb.String()
}

// State is a view over the 10 bits of one state.
type State struct {
	n    uint8
	bits uint16
}

// On0 is the action taken when the head reads a 0.
func (s State) On0() Action {
	return Action{n: s.n, bits: uint8(s.bits) & actionMask}
}

// On1 is the action taken when the head reads a 1.
func (s State) On1() Action {
	return Action{n: s.n, bits: uint8(s.bits >> BitsPerAction)}
}

// ActionFor returns the action for the value under the head.
func (s State) ActionFor(value bool) Action {
	if value {
		return s.On1()
	}

	return s.On0()
}

func (s State) String() string {
	return fmt.Sprintf("{0 → %s, 1 → %s}", s.On0(), s.On1())
}

// Action is one transition rule: write value, head movement, next state.
type Action struct {
	n    uint8
	bits uint8
}

// NextState returns Halt or the index of the following state.
func (a Action) NextState() NextState {
	v := a.bits >> 2
	if v == a.n {
		return Halt
	}

	return NextState(v)
}

// WriteValue is the value written to the current cell.
func (a Action) WriteValue() bool {
	return a.bits&1 == 0
}

// Movement is where the head moves after writing.
func (a Action) Movement() Move {
	if a.bits&0b10 == 0 {
		return Left
	}

	return Right
}

// WillHalt reports whether this action transitions to the halt state.
func (a Action) WillHalt() bool {
	return a.bits>>2 == a.n
}

// Bits returns the raw 5 bit encoding.
func (a Action) Bits() uint8 { return a.bits }

// String renders the action as <state><direction><write>, e.g. "Br1".
func (a Action) String() string {
	write := "0"
	if a.WriteValue() {
		write = "1"
	}

	return a.NextState().String() + a.Movement().String() + write
}
