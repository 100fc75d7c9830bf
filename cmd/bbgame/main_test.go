package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busybeaver/analyze"
	"github.com/katalvlaran/busybeaver/config"
	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/summary"
	"github.com/katalvlaran/busybeaver/tm"
)

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSingle_BB2(t *testing.T) {
	out, _, err := execute(t, "single", "-n", "2", "327814")
	require.NoError(t, err)

	assert.Contains(t, out, "Turing machine for ID 327814:")
	assert.Contains(t, out, "A: 0 → Br1  1 → Bl1")
	assert.Contains(t, out, "B: 0 → Al1  1 → Hr1")
	assert.Contains(t, out, "▸ Outcome: halted after 6 steps with 4 ones")
}

func TestSingle_Trace(t *testing.T) {
	out, _, err := execute(t, "single", "-n", "2", "--trace", "0x50086")
	require.NoError(t, err)

	assert.Contains(t, out, "     1 A@0 read 0 → Br1\n")
	assert.Contains(t, out, "     6 B@-1 read 1 → Hr1\n")
}

func TestSingle_MaxSteps(t *testing.T) {
	out, _, err := execute(t, "single", "-n", "2", "--max-steps", "3", "327814")
	require.NoError(t, err)
	assert.Contains(t, out, analyze.AbortedAfterMaxSteps.String())
}

func TestSingle_Errors(t *testing.T) {
	_, _, err := execute(t, "single", "-n", "2", "1048576")
	assert.ErrorIs(t, err, tm.ErrUnusedBits)

	// A0 → state 3 does not exist for N=2
	_, _, err = execute(t, "single", "-n", "2", "12")
	assert.ErrorIs(t, err, tm.ErrStateOutOfRange)

	_, _, err = execute(t, "single", "-n", "2", "beaver")
	assert.Error(t, err)

	_, _, err = execute(t, "single", "327814")
	assert.Error(t, err, "-n is required")
}

func TestFull_N2(t *testing.T) {
	out, _, err := execute(t, "full", "-n", "2", "-j", "3", "--no-progress")
	require.NoError(t, err)

	assert.Contains(t, out, "▸ Analyzing 3645 TMs with 2 states...")
	assert.Contains(t, out, "... using the generator '"+gen.AlsoSkipHaltZero.Description()+"'")
	assert.Contains(t, out, "The high score (number of 1s after halting) is: 4\n")
	assert.Contains(t, out, "reached the high score in 6 steps")
	assert.Contains(t, out, "were aborted after the maximum number of steps (200)")
	assert.Contains(t, out, "▸ Histogram (how many TMs halted after x steps):")
	assert.Contains(t, out, "    steps:   1  2  3")
}

func TestFull_ConfigAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bbgame.yaml")
	require.NoError(t, os.WriteFile(path, []byte("states: 1\ngenerator: all\nmax_steps: 50\nhistogram:\n  hide: true\n"), 0o644))

	out, _, err := execute(t, "full", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzing 64 TMs with 1 states")
	assert.Contains(t, out, "maximum number of steps (50)")
	assert.NotContains(t, out, "Histogram")

	out, _, err = execute(t, "full", "--config", path, "-n", "2", "--max-steps", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzing 20736 TMs with 2 states")
	assert.Contains(t, out, "maximum number of steps (20)")
}

func TestFull_Errors(t *testing.T) {
	_, _, err := execute(t, "full")
	assert.Error(t, err)

	_, _, err = execute(t, "full", "-n", "2", "-g", "fast")
	assert.ErrorIs(t, err, gen.ErrUnknownOpt)

	_, _, err = execute(t, "full", "-n", "9")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "full", "-n", "2", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestFull_DebugLogs(t *testing.T) {
	_, errOut, err := execute(t, "full", "-n", "1", "--log-level", "debug", "--hide-histogram")
	require.NoError(t, err)
	assert.Contains(t, errOut, "search started")
	assert.Contains(t, errOut, "chunk done")
	assert.Contains(t, errOut, "worker=")
}

func TestHistogram_Layout(t *testing.T) {
	s := summary.New()
	for i := 0; i < 1000; i++ {
		s.Add(analyze.HaltedOutcome(2, 1))
	}
	for i := 0; i < 10; i++ {
		s.Add(analyze.HaltedOutcome(3, 1))
	}
	s.Add(analyze.HaltedOutcome(5, 1))

	lines := strings.Split(strings.TrimSuffix(histogram(s, 6, 6), "\n"), "\n")
	require.Len(t, lines, 8)

	want := []string{
		"     1000 ▕    ██         ",
		"          ▕    ██         ",
		"          ▕    ██         ",
		"       10 ▕    ██ ▁▁      ",
		"          ▕    ██ ██      ",
		"        0 ▕▁▁▁▁██▁██▁▁▁▁▁▁",
		"    steps:   1  2  3  4  5",
		"    count:   0    10  0  1",
	}
	assert.Equal(t, want, lines)
}

func TestHistogram_SinglePeak(t *testing.T) {
	s := summary.New()
	s.Add(analyze.ImmediateHaltOutcome(true))

	lines := strings.Split(histogram(s, 4, 3), "\n")
	assert.Equal(t, "        1 ▕ ██   ", lines[0])
}

func TestProgressLine(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, 1000)
	p.set(125)
	p.set(100)

	line := p.line(p.done.Load())
	assert.Contains(t, line, " 12.50%  125 / 1000")
	assert.Equal(t, 5, strings.Count(line, "█"))
	assert.False(t, isTerminal(&buf))
}
