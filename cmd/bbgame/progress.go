package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
)

const progressWidth = 40

// progress redraws a single status line on a terminal until stopped.
type progress struct {
	w     io.Writer
	st    styles
	total uint64
	done  atomic.Uint64

	stop chan struct{}
	wg   sync.WaitGroup
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newProgress(w io.Writer, total uint64) *progress {
	return &progress{w: w, st: newStyles(w), total: total, stop: make(chan struct{})}
}

// set records the number of finished machines. Safe for concurrent use.
func (p *progress) set(done uint64) {
	for {
		old := p.done.Load()
		if done <= old || p.done.CompareAndSwap(old, done) {
			return
		}
	}
}

// start redraws every interval until finish is called.
func (p *progress) start(interval time.Duration) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.draw()
			case <-p.stop:
				p.draw()
				fmt.Fprintln(p.w)
				return
			}
		}
	}()
}

// finish draws the final state and ends the line.
func (p *progress) finish() {
	close(p.stop)
	p.wg.Wait()
}

func (p *progress) draw() {
	fmt.Fprint(p.w, "\r"+p.line(p.done.Load()))
}

// line renders e.g. "[█████░░░░░] 12.50%  125 / 1000".
func (p *progress) line(done uint64) string {
	ratio := 1.0
	if p.total > 0 {
		ratio = float64(done) / float64(p.total)
	}
	filled := min(int(ratio*progressWidth), progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

	return fmt.Sprintf("[%s] %6.2f%%  %d / %d", p.st.blue.Render(bar), 100*ratio, done, p.total)
}
