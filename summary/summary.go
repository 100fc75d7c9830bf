package summary

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/busybeaver/analyze"
)

// Bucket is one histogram entry: Count machines halted after Steps steps.
type Bucket struct {
	Steps uint32
	Count uint64
}

// Summary accumulates Outcomes. The zero value is not usable; call New.
type Summary struct {
	numTMs uint64
	counts [analyze.NumKinds]uint64

	highScore         uint32
	numWinners        uint64
	fewestWinnerSteps uint32

	steps map[uint32]uint64
}

// New returns an empty Summary.
func New() *Summary {
	return &Summary{steps: make(map[uint32]uint64)}
}

// Add records one Outcome.
func (s *Summary) Add(o analyze.Outcome) {
	s.numTMs++
	s.counts[o.Kind]++

	switch o.Kind {
	case analyze.Halted:
		s.score(o.Ones, o.Steps, 1)
		s.steps[o.Steps]++
	case analyze.ImmediateHalt:
		if o.WroteOne {
			s.score(1, 1, 1)
		}
		s.steps[1]++
	}
}

// score merges winners machines that wrote ones in steps into the high score.
func (s *Summary) score(ones, steps uint32, winners uint64) {
	switch {
	case s.numWinners == 0 || ones > s.highScore:
		s.highScore = ones
		s.numWinners = winners
		s.fewestWinnerSteps = steps
	case ones == s.highScore:
		s.numWinners += winners
		s.fewestWinnerSteps = min(s.fewestWinnerSteps, steps)
	}
}

// Merge adds every record of other to s. other is left unchanged.
func (s *Summary) Merge(other *Summary) {
	if other.numWinners > 0 {
		s.score(other.highScore, other.fewestWinnerSteps, other.numWinners)
	}

	s.numTMs += other.numTMs
	for k, c := range other.counts {
		s.counts[k] += c
	}
	for steps, c := range other.steps {
		s.steps[steps] += c
	}
}

// NumTMs is the number of recorded Outcomes.
func (s *Summary) NumTMs() uint64 { return s.numTMs }

// Count is the number of recorded Outcomes of kind k.
func (s *Summary) Count(k analyze.Kind) uint64 {
	if int(k) >= analyze.NumKinds {
		return 0
	}

	return s.counts[k]
}

// HighScore is the most 1s any halting machine left on the tape.
func (s *Summary) HighScore() uint32 { return s.highScore }

// NumWinners is the number of machines that reached HighScore.
func (s *Summary) NumWinners() uint64 { return s.numWinners }

// FewestWinnerSteps is the fewest steps any winner needed.
func (s *Summary) FewestWinnerSteps() uint32 { return s.fewestWinnerSteps }

// Halted counts machines that halted, immediately or not.
func (s *Summary) Halted() uint64 {
	return s.counts[analyze.Halted] + s.counts[analyze.ImmediateHalt]
}

// HaltedWithoutHighScore counts halting machines that are not winners.
func (s *Summary) HaltedWithoutHighScore() uint64 {
	return s.Halted() - s.numWinners
}

// NonTerminated counts machines that were proven or assumed never to halt.
func (s *Summary) NonTerminated() uint64 {
	return s.numTMs - s.Halted()
}

// StepCount is the number of machines that halted after exactly steps steps.
func (s *Summary) StepCount(steps uint32) uint64 { return s.steps[steps] }

// Histogram returns the non-empty step buckets in ascending step order.
func (s *Summary) Histogram() []Bucket {
	out := make([]Bucket, 0, len(s.steps))
	for steps, c := range s.steps {
		out = append(out, Bucket{Steps: steps, Count: c})
	}
	slices.SortFunc(out, func(a, b Bucket) int { return int(int64(a.Steps) - int64(b.Steps)) })

	return out
}

// MaxBucket is the largest histogram count, 0 when nothing halted.
func (s *Summary) MaxBucket() uint64 {
	var out uint64
	for _, c := range s.steps {
		out = max(out, c)
	}

	return out
}

// Percent formats v as a share of NumTMs with two decimals, e.g. "12.50%".
func (s *Summary) Percent(v uint64) string {
	if s.numTMs == 0 {
		return "0.00%"
	}

	return fmt.Sprintf("%.2f%%", 100*float64(v)/float64(s.numTMs))
}

// GCD is the greatest common divisor of the report categories. A value above
// 1 hints that the generator yields groups of equivalent machines.
func (s *Summary) GCD() uint64 {
	return gcd(
		s.numWinners,
		s.HaltedWithoutHighScore(),
		s.counts[analyze.ImmediateHalt],
		s.counts[analyze.SimpleElope],
		s.counts[analyze.NoHaltState],
		s.counts[analyze.HaltStateNotReachable],
		s.counts[analyze.RunAwayDetected],
		s.counts[analyze.AbortedAfterMaxSteps],
	)
}

func gcd(nums ...uint64) uint64 {
	var out uint64
	for _, n := range nums {
		for n > 0 {
			out, n = n, out%n
		}
	}

	return out
}
