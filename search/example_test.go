package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/search"
)

// ExampleRun plays the busy beaver game for two states.
func ExampleRun() {
	g, err := gen.New(2, gen.AlsoSkipHaltZero)
	if err != nil {
		fmt.Println(err)
		return
	}

	s, err := search.Run(context.Background(), g, search.DefaultConfig(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Σ(2) = %d, reached in %d steps\n", s.HighScore(), s.FewestWinnerSteps())
	// Output:
	// Σ(2) = 4, reached in 6 steps
}
