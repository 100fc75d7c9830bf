package analyze

import (
	"github.com/katalvlaran/busybeaver/tape"
	"github.com/katalvlaran/busybeaver/tm"
)

// Analyzer classifies machines. It caches the tape and the DFS stack so a
// batch of machines does not allocate per machine.
type Analyzer struct {
	maxSteps uint32
	opts     Options

	// stack holds state ids for CheckHaltReachable.
	stack []uint8

	// tape is the tape RunTM works on; cleared for every machine.
	tape *tape.Tape
}

// New creates an Analyzer that stops machines after maxSteps steps.
// A maxSteps of 0 behaves like 1.
func New(maxSteps uint32, opts ...Option) *Analyzer {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Analyzer{
		maxSteps: maxSteps,
		opts:     o,
		stack:    make([]uint8, 0, 2*tm.MaxStates),
		tape:     tape.New(),
	}
}

// MaxSteps returns the step ceiling.
func (a *Analyzer) MaxSteps() uint32 { return a.maxSteps }

// Analyze returns the Outcome of m. The result depends on m and the step
// ceiling only.
func (a *Analyzer) Analyze(m tm.Machine) Outcome {
	// Static analysis first, cheapest check first.
	if o, ok := CheckImmediateHalt(m); ok {
		return o
	}
	if o, ok := CheckSimpleElope(m); ok {
		return o
	}
	if o, ok := CheckHaltExists(m); ok {
		return o
	}
	if o, ok := a.CheckHaltReachable(m); ok {
		return o
	}

	return a.RunTM(m)
}

// RunTM executes m on a blank tape until it halts, exceeds the step ceiling,
// or is caught running away.
func (a *Analyzer) RunTM(m tm.Machine) Outcome {
	a.tape.Clear()

	var (
		head  tape.CellId
		state int
		steps uint32

		// runningAway is set while the head is outside the written range;
		// seen records the states visited during that excursion.
		runningAway bool
		seen        [tm.MaxStates]bool
	)

	for {
		steps++

		if !a.tape.WrittenRange().Contains(head) {
			runningAway = true
			if seen[state] {
				return Outcome{Kind: RunAwayDetected}
			}
			seen[state] = true
		} else if runningAway {
			runningAway = false
			seen = [tm.MaxStates]bool{}
		}

		read := a.tape.Get(head)
		action := m.State(state).ActionFor(bool(read))
		a.tape.Write(head, tape.CellValue(action.WriteValue()))

		if a.opts.OnStep != nil {
			a.opts.OnStep(Step{
				Number: steps,
				State:  state,
				Head:   head,
				Read:   bool(read),
				Action: action,
			})
		}

		next := action.NextState()
		if next.IsHalt() {
			break
		}
		state = next.Index()
		if action.Movement() == tm.Left {
			head--
		} else {
			head++
		}

		if steps >= a.maxSteps {
			return Outcome{Kind: AbortedAfterMaxSteps}
		}
	}

	return HaltedOutcome(steps, uint32(a.tape.CountOnes()))
}
