// Package busybeaver plays the busy beaver game: it enumerates every Turing
// machine with N ≤ 6 states on a binary tape, runs each of them, and reports
// the most 1s any halting machine leaves behind.
//
// What is in here?
//
//	A small, allocation-free core plus a parallel search harness:
//		• Machines: a whole N-state transition table packed into one uint64
//		• Tape: a bidirectional, automatically growing bit tape
//		• Analyzer: cheap static checks first, bounded simulation last
//		• Generator: mixed-radix enumeration with symmetry reduction
//		• Search: worker pool, progress, prometheus metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	tm/       — Machine, State, Action and the 5 bit action encoding
//	tape/     — Tape, CellId, written Range
//	analyze/  — Analyzer, Outcome kinds, halt reachability (DFS)
//	gen/      — Generator and its optimization levels
//	summary/  — Outcome statistics and the step histogram
//	search/   — concurrent exhaustive search over a Generator
//	config/   — YAML settings of a search run
//	logging/  — slog fan-out to terminal and file
//	cmd/bbgame — the command line
//
// Quick example, the 2-state champion (Σ(2) = 4 ones after 6 steps):
//
//	A: 0 → Br1  1 → Bl1
//	B: 0 → Al1  1 → Hr1
//
//	bbgame single -n 2 327814
//	bbgame full -n 4 -g optimized
package busybeaver
