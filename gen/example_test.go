package gen_test

import (
	"fmt"

	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/tm"
)

// ExampleGenerator_ForRange lists the first machines of the smallest
// reduced space.
func ExampleGenerator_ForRange() {
	g, err := gen.New(1, gen.AlsoSkipHaltZero)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(g.NumTMs(), "machines:", g.Description())
	_ = g.ForRange(3, 7, func(m tm.Machine) { fmt.Println(m) })
	// Output:
	// 15 machines: All TMs without symmetry and without TMs with H_0 transitions
	// Tm {A: {0 → Ar0, 1 → Al1}}
	// Tm {A: {0 → Hl1, 1 → Al1}}
	// Tm {A: {0 → Al1, 1 → Al0}}
	// Tm {A: {0 → Al0, 1 → Al0}}
}

// ExampleGenerator_TmAt shows that reduced spaces only hold left-moving
// last actions.
func ExampleGenerator_TmAt() {
	g, _ := gen.New(2, gen.SkipSymmetries)
	last, _ := g.TmAt(g.NumTMs() - 1)
	fmt.Println(last)
	// Output:
	// Tm {A: {0 → Hl0, 1 → Hl0}, B: {0 → Hl0, 1 → Hl1}}
}
