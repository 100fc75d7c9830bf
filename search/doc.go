// Package search runs the exhaustive analysis of every machine a
// gen.Generator yields.
//
// What:
//
//   - a producer splits [0, NumTMs) into chunks and sends them through a
//     channel bounded at 32 entries;
//   - Config.Workers goroutines (golang.org/x/sync/errgroup) each own one
//     analyze.Analyzer and a local summary.Summary, and merge it into the
//     result once the channel is drained;
//   - progress is reported per finished chunk, metrics go to prometheus.
//
// Cancelling the context stops the producer; workers notice it before their
// next chunk, never inside one, and Run returns the context error.
//
// Errors:
//
//   - ctx.Err() when cancelled
//   - gen.ErrInvalidRange never happens for produced chunks; it is returned
//     unchanged if it does
package search
