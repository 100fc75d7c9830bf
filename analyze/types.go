package analyze

import (
	"github.com/katalvlaran/busybeaver/tape"
	"github.com/katalvlaran/busybeaver/tm"
)

// Step describes one executed transition of RunTM.
type Step struct {
	Number uint32      // 1-based step count
	State  int         // state the machine was in
	Head   tape.CellId // cell under the head before moving
	Read   bool        // value read from the cell
	Action tm.Action   // action taken
}

// Option configures an Analyzer.
type Option func(*Options)

// Options holds optional Analyzer behavior.
type Options struct {
	// OnStep, if non-nil, is called after every executed step of RunTM.
	// It is meant for tracing single machines, not for batch runs.
	OnStep func(Step)
}

// DefaultOptions returns Options without hooks.
func DefaultOptions() Options {
	return Options{OnStep: nil}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
