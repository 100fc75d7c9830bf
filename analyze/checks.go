package analyze

import (
	"github.com/katalvlaran/busybeaver/tm"
)

// CheckImmediateHalt classifies machines whose very first action halts.
func CheckImmediateHalt(m tm.Machine) (Outcome, bool) {
	start := m.StartAction()
	if start.WillHalt() {
		return ImmediateHaltOutcome(start.WriteValue()), true
	}

	return Outcome{}, false
}

// CheckSimpleElope classifies machines whose first action returns to state
// 0. Such a machine reads a fresh 0 after every step and repeats the start
// action forever.
func CheckSimpleElope(m tm.Machine) (Outcome, bool) {
	if m.StartAction().NextState() == 0 {
		return Outcome{Kind: SimpleElope}, true
	}

	return Outcome{}, false
}

// haltLayout holds the constants of the bit-parallel halt test for one N.
type haltLayout struct {
	// stateMask selects bits 2-4 of every action.
	stateMask uint64
	// bias holds 8-N in every next-state field: only a field equal to N
	// carries into its guard bit.
	bias uint64
	// guard selects bit 5 above every next-state field (the lowest bit of
	// the following action, cleared by stateMask).
	guard uint64
}

var haltLayouts = func() (out [tm.MaxStates + 1]haltLayout) {
	for n := 1; n <= tm.MaxStates; n++ {
		l := &out[n]
		for slot := 0; slot < 2*n; slot++ {
			shift := tm.BitsPerAction * slot
			l.stateMask |= 0b11100 << shift
			l.bias |= uint64(8-n) << (shift + 2)
			l.guard |= 1 << (shift + 5)
		}
	}

	return out
}()

// CheckHaltExists classifies machines without any transition to halt.
//
// The next-state fields are tested all at once: a field holds at most N, so
// adding 8-N to it sets its fourth bit exactly when it equals N. That bit is
// the cleared low bit of the next action, so no field disturbs another. The
// machine must be well-formed (next states at most N).
func CheckHaltExists(m tm.Machine) (Outcome, bool) {
	l := haltLayouts[m.NumStates()]
	if ((m.Encoded()&l.stateMask)+l.bias)&l.guard == 0 {
		return Outcome{Kind: NoHaltState}, true
	}

	return Outcome{}, false
}

// CheckHaltReachable classifies machines whose state graph cannot reach a
// halt action from state 0.
//
// Until an on-read-0 action that writes a 1 is reachable, no 1 can ever be
// on the tape, so on-read-1 edges are ignored. Once such an action is found
// the search restarts with on-read-1 edges included.
func (a *Analyzer) CheckHaltReachable(m tm.Machine) (Outcome, bool) {
	if a.haltReachable(m) {
		return Outcome{}, false
	}

	return Outcome{Kind: HaltStateNotReachable}, true
}

func (a *Analyzer) haltReachable(m tm.Machine) bool {
	var visited [tm.MaxStates]bool
	onlyZeros := true

	a.stack = append(a.stack[:0], 0)
	for len(a.stack) > 0 {
		// 1. Pop the next state
		id := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		// 2. A reachable 1 makes on-read-1 edges live: start over
		st := m.State(int(id))
		if onlyZeros && st.On0().WriteValue() {
			onlyZeros = false
			visited = [tm.MaxStates]bool{}
			a.stack = append(a.stack[:0], 0)

			continue
		}

		// 3. Follow the live edges
		if a.follow(st.On0()) {
			return true
		}
		if !onlyZeros && a.follow(st.On1()) {
			return true
		}
	}

	return false
}

// follow pushes the target of action and reports whether it is halt.
func (a *Analyzer) follow(action tm.Action) bool {
	next := action.NextState()
	if next.IsHalt() {
		return true
	}
	a.stack = append(a.stack, uint8(next))

	return false
}
