package analyze

import "fmt"

// Kind enumerates the terminal classifications of one Analyzer run.
type Kind uint8

const (
	// Halted: the machine ran and reached the halt state.
	Halted Kind = iota

	// AbortedAfterMaxSteps: the machine was stopped at the step ceiling.
	AbortedAfterMaxSteps

	// ImmediateHalt: the start action transitions to halt, so the machine
	// stops after one step having written at most a single 1.
	ImmediateHalt

	// SimpleElope: the start action returns to state 0, so the machine reads
	// 0 forever and drifts off in one direction.
	SimpleElope

	// NoHaltState: no action of the machine transitions to halt.
	NoHaltState

	// HaltStateNotReachable: halt actions exist but the state graph cannot
	// reach any of them from state 0.
	HaltStateNotReachable

	// RunAwayDetected: while executing, a state repeated while the head
	// stayed outside the written range, so it loops over fresh cells forever.
	RunAwayDetected

	numKinds
)

// NumKinds is the number of Outcome kinds.
const NumKinds = int(numKinds)

var kindNames = [...]string{
	Halted:                "halted",
	AbortedAfterMaxSteps:  "aborted_after_max_steps",
	ImmediateHalt:         "immediate_halt",
	SimpleElope:           "simple_elope",
	NoHaltState:           "no_halt_state",
	HaltStateNotReachable: "halt_state_not_reachable",
	RunAwayDetected:       "run_away_detected",
}

// String returns a snake_case name, usable as a metric label.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// Outcome is the classification of one machine. Only the fields belonging
// to Kind are meaningful: Steps and Ones for Halted, WroteOne for
// ImmediateHalt. Outcomes are plain values and comparable.
type Outcome struct {
	Kind     Kind
	Steps    uint32
	Ones     uint32
	WroteOne bool
}

// IsHalted reports whether the machine halted, immediately or not.
func (o Outcome) IsHalted() bool {
	return o.Kind == Halted || o.Kind == ImmediateHalt
}

func (o Outcome) String() string {
	switch o.Kind {
	case Halted:
		return fmt.Sprintf("halted after %d steps with %d ones", o.Steps, o.Ones)
	case ImmediateHalt:
		return fmt.Sprintf("halted immediately (wrote one: %t)", o.WroteOne)
	default:
		return o.Kind.String()
	}
}

// HaltedOutcome builds a Halted outcome.
func HaltedOutcome(steps, ones uint32) Outcome {
	return Outcome{Kind: Halted, Steps: steps, Ones: ones}
}

// ImmediateHaltOutcome builds an ImmediateHalt outcome.
func ImmediateHaltOutcome(wroteOne bool) Outcome {
	return Outcome{Kind: ImmediateHalt, WroteOne: wroteOne}
}
