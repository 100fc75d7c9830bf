// Command bbgame plays the busy beaver game: it simulates Turing machines
// with N states on a binary tape and, for a whole class of machines, reports
// the most 1s any of them leaves behind when halting.
//
//	bbgame single -n 2 327814
//	bbgame full -n 4 -g optimized -j 8
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/busybeaver/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "bbgame",
		Short: "Play the busy beaver game with Turing machines of up to 6 states",
		Long: `Simulates Turing machines with N states on a binary tape (every cell is
0 or 1, all initially 0). Machines up to N=6 are supported.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&o.logFile, "log-file", "", "also append JSON log records to this file")

	root.AddCommand(newSingleCmd(o), newFullCmd(o))

	return root
}

// openLogger builds the logger from base, overridden by explicitly set
// global flags.
func (o *rootOptions) openLogger(cmd *cobra.Command, base logging.Config) (*logging.Logger, error) {
	flags := cmd.Flags()
	if flags.Changed("log-level") || base.Level == "" {
		base.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		base.File = o.logFile
	}

	l, err := logging.New(base, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	return l, nil
}
