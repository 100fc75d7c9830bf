package gen

import (
	"fmt"

	"github.com/katalvlaran/busybeaver/tm"
)

const digitMask = 1<<tm.BitsPerAction - 1

// Generator enumerates the n-state machines selected by an Opt.
// It is immutable and safe for concurrent use.
type Generator struct {
	n   int
	opt Opt

	// actions is the base of every digit but the last.
	actions uint64
	// lastBase is the base of the most significant digit.
	lastBase uint64
	// total is NumTMs.
	total uint64
}

// New creates a Generator for n-state machines.
func New(n int, opt Opt) (*Generator, error) {
	// 1. Validate input
	if n < 1 || n > tm.MaxStates {
		return nil, fmt.Errorf("new generator with n=%d: %w", n, ErrStateCount)
	}
	if opt > AlsoSkipHaltZero {
		return nil, fmt.Errorf("new generator: %w: %s", ErrUnknownOpt, opt)
	}

	// 2. Digit bases: N+1 next states × 2 write values × 2 directions,
	// minus the trailing Hr1, Hr0 (and Hl0) action values.
	actions := uint64(4 * (n + 1))
	switch opt {
	case SkipSymmetries:
		actions -= 2
	case AlsoSkipHaltZero:
		actions -= 3
	}

	// 3. In the reduced levels the last digit only takes left-moving actions:
	// N states × 2 writes, plus the remaining halt actions.
	lastBase := actions
	if opt != All {
		lastBase = uint64(2*n + 1)
	}

	total := lastBase
	for slot := 0; slot < 2*n-1; slot++ {
		total *= actions
	}

	return &Generator{
		n:        n,
		opt:      opt,
		actions:  actions,
		lastBase: lastBase,
		total:    total,
	}, nil
}

// N returns the number of states of generated machines.
func (g *Generator) N() int { return g.n }

// Opt returns the optimization level.
func (g *Generator) Opt() Opt { return g.opt }

// Description describes the optimization level.
func (g *Generator) Description() string { return g.opt.Description() }

// NumPossibleActions is the number of distinct action values per slot (the
// last slot of the reduced levels takes fewer).
func (g *Generator) NumPossibleActions() uint64 { return g.actions }

// NumTMs is the number of machines this Generator yields.
func (g *Generator) NumTMs() uint64 { return g.total }

// TmAt returns the machine at position index of the enumeration order.
func (g *Generator) TmAt(index uint64) (tm.Machine, error) {
	if index >= g.total {
		return tm.Machine{}, fmt.Errorf("tm at %d of %d: %w", index, g.total, ErrIndexOutOfRange)
	}

	return tm.DecodeUnchecked(g.n, g.encodedAt(index)), nil
}

// ForRange calls visit for every machine with position in [start, end), in
// order.
func (g *Generator) ForRange(start, end uint64, visit func(tm.Machine)) error {
	if start > end || end > g.total {
		return fmt.Errorf("range [%d, %d) of %d: %w", start, end, g.total, ErrInvalidRange)
	}
	if start == end {
		return nil
	}

	current := g.encodedAt(start)
	for i := start; ; {
		visit(tm.DecodeUnchecked(g.n, current))
		if i++; i == end {
			return nil
		}
		current = g.next(current)
	}
}

// ForAll calls visit for every machine.
func (g *Generator) ForAll(visit func(tm.Machine)) {
	// cannot fail: [0, total) is always valid
	_ = g.ForRange(0, g.total, visit)
}

// encodedAt decodes index as a mixed-radix number, least significant digit
// in slot 0.
func (g *Generator) encodedAt(index uint64) uint64 {
	var out uint64
	last := 2*g.n - 1
	for slot := 0; slot <= last; slot++ {
		base := g.actions
		if slot == last {
			base = g.lastBase
		}
		out |= (index % base) << (tm.BitsPerAction * slot)
		index /= base
	}

	if g.opt != All {
		// The last digit counts left-moving actions only. Inserting a 0 at its
		// direction bit maps 0,1,2,3,4,… to 0,1,4,5,8,…, i.e. Al1, Al0, Bl1, …
		// For N=2:
		//
		//	digit  action  bits   inserted  action
		//	0      Al1     0000   0000      Al1
		//	1      Al0     0001   0001      Al0
		//	2      Ar1     0010   0100      Bl1
		//	3      Ar0     0011   0101      Bl0
		//	4      Bl1     0100   1000      Hl1
		//	5      Bl0     0101   1001      Hl0
		bit := uint(tm.BitsPerAction*last + 1)
		lower := out & (1<<bit - 1)
		upper := out &^ (1<<bit - 1)
		out = upper<<1 | lower
	}

	return out
}

// next advances the packed encoding by one position.
func (g *Generator) next(current uint64) uint64 {
	last := 2*g.n - 1
	for slot := 0; slot <= last; slot++ {
		offset := tm.BitsPerAction * slot

		if slot == last && g.opt != All {
			// Skip right-moving actions: even values step by 1, odd ones
			// by 3 (e.g. 0b00001 to 0b00100).
			if (current>>offset)&1 == 0 {
				return current + 1<<offset
			}

			return current + 3<<offset
		}

		current += 1 << offset
		if (current>>offset)&digitMask != g.actions {
			return current
		}
		// carry into the next slot
		current &^= digitMask << offset
	}

	return current
}
