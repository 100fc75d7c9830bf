package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/busybeaver/analyze"
	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/logging"
	"github.com/katalvlaran/busybeaver/summary"
	"github.com/katalvlaran/busybeaver/tm"
)

// queueSize bounds the chunks waiting for a worker.
const queueSize = 32

// Config controls a Run.
type Config struct {
	// MaxSteps is the step ceiling passed to every Analyzer.
	MaxSteps uint32

	// Workers is the number of analyzing goroutines; values below 1 mean 1.
	Workers int

	// ChunkSize is the number of machines per work item; 0 means
	// DefaultChunkSize.
	ChunkSize uint64

	// OnProgress, if non-nil, is called after every chunk with the number of
	// machines analyzed so far. It is called from the worker goroutines and
	// must be safe for concurrent use.
	OnProgress func(done uint64)

	// Metrics, if non-nil, is updated after every chunk.
	Metrics *Metrics

	// Logger, if non-nil, receives start, chunk (debug) and finish records.
	Logger *slog.Logger
}

// DefaultChunkSize keeps chunks small enough for a responsive progress
// report on small N and large enough to be cheap to hand out on large N.
func DefaultChunkSize(n int) uint64 {
	switch n {
	case 1:
		return 1
	case 2:
		return 500
	case 3:
		return 50_000
	default:
		return 1_000_000
	}
}

// DefaultConfig returns a Config for n-state machines using every CPU.
func DefaultConfig(n int) Config {
	return Config{
		MaxSteps:  200,
		Workers:   runtime.NumCPU(),
		ChunkSize: DefaultChunkSize(n),
	}
}

// chunk is the index range [start, end).
type chunk struct {
	start, end uint64
}

// Run analyzes every machine of g and returns the merged Summary.
func Run(ctx context.Context, g *gen.Generator, cfg Config) (*summary.Summary, error) {
	// 1. Normalize config
	cfg.Workers = max(cfg.Workers, 1)
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize(g.N())
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	total := g.NumTMs()
	logger.InfoContext(ctx, "search started",
		"states", g.N(), "generator", g.Opt(), "machines", total,
		"workers", cfg.Workers, "chunk_size", cfg.ChunkSize, "max_steps", cfg.MaxSteps)
	began := time.Now()

	var (
		result = summary.New()
		mu     sync.Mutex
		done   atomic.Uint64
		chunks = make(chan chunk, queueSize)
	)
	grp, ctx := errgroup.WithContext(ctx)

	// 2. Produce chunks
	grp.Go(func() error {
		defer close(chunks)
		for start := uint64(0); start < total; start += cfg.ChunkSize {
			c := chunk{start: start, end: min(start+cfg.ChunkSize, total)}
			select {
			case chunks <- c:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	// 3. Analyze chunks
	for w := 0; w < cfg.Workers; w++ {
		wctx := logging.WithWorker(ctx, w)
		grp.Go(func() error {
			a := analyze.New(cfg.MaxSteps)
			local := summary.New()
			var kinds [analyze.NumKinds]uint64

			for c := range chunks {
				if err := ctx.Err(); err != nil {
					return err
				}

				cfg.Metrics.busy(1)
				err := g.ForRange(c.start, c.end, func(m tm.Machine) {
					o := a.Analyze(m)
					local.Add(o)
					kinds[o.Kind]++
				})
				cfg.Metrics.busy(-1)
				if err != nil {
					return err
				}

				cfg.Metrics.observe(&kinds)
				kinds = [analyze.NumKinds]uint64{}
				n := done.Add(c.end - c.start)
				if cfg.OnProgress != nil {
					cfg.OnProgress(n)
				}
				logger.DebugContext(wctx, "chunk done", "start", c.start, "end", c.end)
			}

			// 4. Fold into the result
			mu.Lock()
			result.Merge(local)
			mu.Unlock()

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		logger.WarnContext(ctx, "search aborted", "error", err, "done", done.Load())
		return nil, err
	}

	logger.InfoContext(ctx, "search finished",
		"elapsed", time.Since(began), "high_score", result.HighScore(), "winners", result.NumWinners())

	return result, nil
}
