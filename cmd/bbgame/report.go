package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/busybeaver/analyze"
	"github.com/katalvlaran/busybeaver/config"
	"github.com/katalvlaran/busybeaver/summary"
)

// eighths are the block characters of a bar, indexed by filled eighths.
var eighths = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// printTiming prints wall time and the per-machine cost.
func printTiming(w io.Writer, elapsed time.Duration, workers int, numTMs uint64) {
	if numTMs == 0 {
		return
	}
	core := time.Duration(uint64(elapsed) * uint64(workers) / numTMs)
	fmt.Fprintf(w, "  (That took %s, %s per TM on %d threads -> %s core time per TM)\n",
		elapsed.Round(time.Millisecond), core/time.Duration(workers), workers, core)
}

// printReport prints the categorized results of a full run.
func printReport(w io.Writer, s *summary.Summary, cfg config.Config) {
	st := newStyles(w)
	pair := func(style func(...string) string, v uint64) string {
		return style(fmt.Sprint(v)) + " (" + style(s.Percent(v)) + ")"
	}

	fmt.Fprintln(w, st.title.Render("▸ Results:"))

	// high scores
	fmt.Fprintf(w, "- The high score (number of 1s after halting) is: %s\n", st.green.Render(fmt.Sprint(s.HighScore())))
	fmt.Fprintf(w, "  - %s TMs reached that high score\n", st.green.Render(fmt.Sprint(s.NumWinners())))
	fmt.Fprintf(w, "  - The quickest of which reached the high score in %s steps\n",
		st.green.Render(fmt.Sprint(s.FewestWinnerSteps())))

	// other halted machines
	fmt.Fprintf(w, "- %s TMs halted but did not get a high score\n", pair(st.yellow.Render, s.HaltedWithoutHighScore()))
	fmt.Fprintf(w, "  - %s TMs halted after 1 step (their first transition was to the halt state)\n",
		pair(st.yellow.Render, s.Count(analyze.ImmediateHalt)))

	// non-terminated
	fmt.Fprintf(w, "- %s did not terminate:\n", pair(st.magenta.Render, s.NonTerminated()))
	fmt.Fprintf(w, "  - %s immediately ran away in one direction and remained in the start state\n",
		pair(st.magenta.Render, s.Count(analyze.SimpleElope)))
	fmt.Fprintf(w, "  - %s did not contain a transition to the halt state\n",
		pair(st.magenta.Render, s.Count(analyze.NoHaltState)))
	fmt.Fprintf(w, "  - %s statically could not reach the halt state\n",
		pair(st.magenta.Render, s.Count(analyze.HaltStateNotReachable)))
	fmt.Fprintf(w, "  - %s were caught in a run-away loop\n",
		pair(st.magenta.Render, s.Count(analyze.RunAwayDetected)))
	fmt.Fprintf(w, "  - %s were aborted after the maximum number of steps (%d)\n",
		pair(st.red.Render, s.Count(analyze.AbortedAfterMaxSteps)), cfg.MaxSteps)

	// duplicates hint
	gcd := s.GCD()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Hint: the greatest common divisor of all these numbers is %d.\n", gcd)
	if gcd == 1 {
		fmt.Fprintln(w, "This means the chosen generator does not generate duplicate/equivalent TMs. That's good!")
	} else {
		fmt.Fprintf(w, "This means the chosen generator generates %d-tuples of TMs that are equivalent to one another.\n", gcd)
		fmt.Fprintln(w, "A better generator could speed this up by eliminating duplicate TMs.")
	}
	fmt.Fprintln(w)

	if !cfg.Histogram.Hide {
		fmt.Fprintln(w)
		printHistogram(w, st, s, cfg.Histogram)
	}
}

// printHistogram prints how many machines halted after 1..cutoff-1 steps on
// a logarithmic y-axis.
func printHistogram(w io.Writer, st styles, s *summary.Summary, h config.Histogram) {
	if s.MaxBucket() == 0 {
		fmt.Fprintln(w, st.muted.Render("   (histogram not shown as no TM halted)"))
		return
	}

	fmt.Fprintln(w, st.title.Render("▸ Histogram (how many TMs halted after x steps):"))
	fmt.Fprintln(w, st.muted.Render("note: the y-axis is logarithmic"))
	fmt.Fprintln(w)
	fmt.Fprint(w, histogram(s, h.Height, h.Cutoff))
}

// histogram renders the bars and axis labels as plain text.
func histogram(s *summary.Summary, height int, cutoff uint32) string {
	peak := s.MaxBucket()
	peakLog := math.Log10(float64(peak))

	// 1. y-axis labels: 0 at the bottom, peak at the top, every other row
	// in between
	lines := make([]strings.Builder, height)
	for row := range lines {
		inv := height - row - 1
		switch {
		case inv == 0:
			lines[row].WriteString("        0 ▕")
		case inv == height-1:
			fmt.Fprintf(&lines[row], "%9d ▕", peak)
		case inv%2 == 0 && inv < height-2:
			v := math.Round(math.Pow(10, peakLog*float64(inv)/float64(height)))
			fmt.Fprintf(&lines[row], "%9d ▕", int64(v))
		default:
			lines[row].WriteString("          ▕")
		}
	}

	// 2. one bar per step count, two characters wide; the bottom line is
	// part of every bar
	for steps := uint32(1); steps < cutoff; steps++ {
		for row := 0; row < height-1; row++ {
			lines[row].WriteByte(' ')
		}
		lines[height-1].WriteRune('▁')

		filled := barEighths(s.StepCount(steps), peakLog, height)
		for row := range lines {
			inv := height - row - 1
			n := min(max(filled-inv*8, 0), 8)
			lines[row].WriteRune(eighths[n])
			lines[row].WriteRune(eighths[n])
		}
	}

	// 3. x-axis
	var out strings.Builder
	for i := range lines {
		out.WriteString(lines[i].String())
		out.WriteByte('\n')
	}
	out.WriteString("    steps: ")
	for steps := uint32(1); steps < cutoff; steps++ {
		fmt.Fprintf(&out, "%3d", steps)
	}
	out.WriteString("\n    count: ")
	for steps := uint32(1); steps < cutoff; steps++ {
		if c := s.StepCount(steps); c < 100 {
			fmt.Fprintf(&out, " %2d", c)
		} else {
			out.WriteString("   ")
		}
	}
	out.WriteByte('\n')

	return out.String()
}

// barEighths is the bar height of count in eighths of a row, at least 1.
func barEighths(count uint64, peakLog float64, height int) int {
	if count == 0 {
		return 1
	}
	ratio := 1.0
	if peakLog > 0 {
		ratio = math.Log10(float64(count)) / peakLog
	}

	return int(math.Round((8*float64(height)-1)*ratio)) + 1
}
