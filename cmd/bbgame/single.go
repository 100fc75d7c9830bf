package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/busybeaver/analyze"
	"github.com/katalvlaran/busybeaver/logging"
	"github.com/katalvlaran/busybeaver/tm"
)

type singleOptions struct {
	states   int
	maxSteps uint32
	trace    bool
}

func newSingleCmd(root *rootOptions) *cobra.Command {
	o := &singleOptions{}
	cmd := &cobra.Command{
		Use:   "single -n N ID",
		Short: "Show and run a single Turing machine, specified by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.openLogger(cmd, logging.Config{})
			if err != nil {
				return err
			}
			defer logger.Close()

			id, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("machine ID %q: %w", args[0], err)
			}
			logger.Debug("single run", "states", o.states, "id", id, "max_steps", o.maxSteps)

			return runSingle(cmd, o, id)
		},
	}
	cmd.Flags().IntVarP(&o.states, "states", "n", 0, "number of states of the Turing machine (1-6)")
	cmd.Flags().Uint32Var(&o.maxSteps, "max-steps", 200, "number of steps after which the machine is stopped")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "print every executed step")
	_ = cmd.MarkFlagRequired("states")

	return cmd
}

func runSingle(cmd *cobra.Command, o *singleOptions, id uint64) error {
	w := cmd.OutOrStdout()
	st := newStyles(w)

	m, err := tm.Decode(o.states, id)
	if err != nil {
		return fmt.Errorf("machine ID %d is not valid for N = %d: %w", id, o.states, err)
	}

	fmt.Fprintf(w, "Turing machine for ID %s:\n", st.blue.Render(strconv.FormatUint(id, 10)))
	for i := 0; i < m.NumStates(); i++ {
		s := m.State(i)
		fmt.Fprintf(w, "  %s: 0 → %s  1 → %s\n", st.bold.Render(tm.StateName(i)), s.On0(), s.On1())
	}
	fmt.Fprintln(w)

	var opts []analyze.Option
	if o.trace {
		opts = append(opts, analyze.WithOnStep(func(s analyze.Step) {
			read := 0
			if s.Read {
				read = 1
			}
			fmt.Fprintf(w, "%6d %s@%d read %d → %s\n", s.Number, tm.StateName(s.State), s.Head, read, s.Action)
		}))
	}
	out := analyze.New(o.maxSteps, opts...).Analyze(m)

	fmt.Fprintf(w, "%s %s\n", st.title.Render("▸ Outcome:"), st.outcome(out).Render(out.String()))

	return nil
}
