package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/busybeaver/config"
	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/logging"
	"github.com/katalvlaran/busybeaver/search"
)

type fullOptions struct {
	configFile string

	states          int
	generator       string
	workers         int
	maxSteps        uint32
	chunkSize       uint64
	noProgress      bool
	hideHistogram   bool
	histogramHeight int
	histogramCutoff uint32
	metricsAddr     string
}

func newFullCmd(root *rootOptions) *cobra.Command {
	def := config.Default()
	o := &fullOptions{}
	cmd := &cobra.Command{
		Use:   "full -n N",
		Short: "Analyze the full class of Turing machines with N states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}

			logger, err := root.openLogger(cmd, cfg.Log)
			if err != nil {
				return err
			}
			defer logger.Close()

			return runFull(cmd, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configFile, "config", "", "YAML file with search settings; flags override it")
	f.IntVarP(&o.states, "states", "n", def.States, "number of states of the Turing machines (1-6)")
	f.StringVarP(&o.generator, "generator", "g", def.Generator.String(),
		"'all' blindly generates all possible TMs; 'no-symmetries' eliminates symmetric TMs "+
			"that will result in the same outcome; 'optimized' also eliminates TMs that have no chance of winning")
	f.IntVarP(&o.workers, "jobs", "j", def.Workers, "number of worker goroutines")
	f.Uint32Var(&o.maxSteps, "max-steps", def.MaxSteps, "number of steps after which TMs are stopped")
	f.Uint64Var(&o.chunkSize, "chunk-size", 0, "machines per work item (0 picks one based on N)")
	f.BoolVar(&o.noProgress, "no-progress", false, "do not show the progress line")
	f.BoolVar(&o.hideHistogram, "hide-histogram", false, "do not print the step histogram")
	f.IntVar(&o.histogramHeight, "histogram-height", def.Histogram.Height, "height of the histogram in rows")
	f.Uint32Var(&o.histogramCutoff, "histogram-cutoff", def.Histogram.Cutoff, "first step count not shown in the histogram")
	f.StringVar(&o.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")

	return cmd
}

// resolve loads the config file, if any, and applies explicitly set flags.
func (o *fullOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	if o.configFile == "" && !f.Changed("states") {
		return config.Config{}, errors.New("either -n or --config is required")
	}

	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return cfg, err
		}
	}

	if f.Changed("states") {
		cfg.States = o.states
	}
	if f.Changed("generator") {
		opt, err := gen.ParseOpt(o.generator)
		if err != nil {
			return cfg, err
		}
		cfg.Generator = opt
	}
	if f.Changed("jobs") {
		cfg.Workers = o.workers
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = o.maxSteps
	}
	if f.Changed("chunk-size") {
		cfg.ChunkSize = o.chunkSize
	}
	if f.Changed("no-progress") {
		cfg.NoProgress = o.noProgress
	}
	if f.Changed("hide-histogram") {
		cfg.Histogram.Hide = o.hideHistogram
	}
	if f.Changed("histogram-height") {
		cfg.Histogram.Height = o.histogramHeight
	}
	if f.Changed("histogram-cutoff") {
		cfg.Histogram.Cutoff = o.histogramCutoff
	}
	if f.Changed("metrics-addr") {
		cfg.MetricsAddr = o.metricsAddr
	}

	return cfg, cfg.Validate()
}

func runFull(cmd *cobra.Command, cfg config.Config, logger *logging.Logger) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	st := newStyles(w)

	g, err := gen.New(cfg.States, cfg.Generator)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("▸ Analyzing %d TMs with %d states...", g.NumTMs(), g.N())))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "... using the generator '%s'\n\n", g.Description())

	sc := search.Config{
		MaxSteps:  cfg.MaxSteps,
		Workers:   cfg.Workers,
		ChunkSize: cfg.ChunkSize,
		Logger:    logger.Logger,
	}

	// 1. Optional metrics endpoint
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		sc.Metrics = search.NewMetrics(reg)

		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// 2. Progress line on terminals only
	errOut := cmd.ErrOrStderr()
	var p *progress
	if !cfg.NoProgress && isTerminal(errOut) {
		p = newProgress(errOut, g.NumTMs())
		sc.OnProgress = p.set
		p.start(100 * time.Millisecond)
	}

	// 3. Search
	began := time.Now()
	s, err := search.Run(ctx, g, sc)
	if p != nil {
		p.finish()
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	fmt.Fprintln(w)
	printTiming(w, time.Since(began), sc.Workers, g.NumTMs())
	fmt.Fprintln(w)
	printReport(w, s, cfg)

	return nil
}
