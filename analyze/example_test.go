package analyze_test

import (
	"fmt"

	"github.com/katalvlaran/busybeaver/analyze"
	"github.com/katalvlaran/busybeaver/tm"
)

// ExampleAnalyzer_Analyze classifies the 2-state busy beaver with two step
// ceilings.
func ExampleAnalyzer_Analyze() {
	m, _ := tm.Decode(2, 327814)

	fmt.Println(analyze.New(100).Analyze(m))
	fmt.Println(analyze.New(3).Analyze(m))
	// Output:
	// halted after 6 steps with 4 ones
	// aborted_after_max_steps
}

// ExampleWithOnStep traces every step of a short run.
func ExampleWithOnStep() {
	m, _ := tm.Decode(2, 327814)
	a := analyze.New(100, analyze.WithOnStep(func(s analyze.Step) {
		read := 0
		if s.Read {
			read = 1
		}
		fmt.Printf("%2d %s@%d read %d → %s\n", s.Number, tm.StateName(s.State), s.Head, read, s.Action)
	}))
	a.Analyze(m)
	// Output:
	//  1 A@0 read 0 → Br1
	//  2 B@1 read 0 → Al1
	//  3 A@0 read 1 → Bl1
	//  4 B@-1 read 0 → Al1
	//  5 A@-2 read 0 → Br1
	//  6 B@-1 read 1 → Hr1
}
