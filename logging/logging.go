package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ErrLevel is returned for level names other than debug, info, warn, error.
var ErrLevel = errors.New("logging: unknown level")

// Config selects the level and the optional log file.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `yaml:"level"`

	// File, if set, receives every record as JSON in addition to the
	// terminal.
	File string `yaml:"file"`
}

// ParseLevel maps a level name to a slog.Level, case-insensitively.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	switch strings.ToLower(name) {
	case "debug", "info", "warn", "error":
		// cannot fail for these names
		_ = level.UnmarshalText([]byte(name))
		return level, nil
	default:
		return level, fmt.Errorf("%w: %q", ErrLevel, name)
	}
}

type workerKey struct{}

// WithWorker returns a context whose records carry the "worker" attribute.
func WithWorker(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// Handler adds the worker id of the record context, if any.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(workerKey{}).(int); ok {
		record.Add("worker", v)
	}

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// Logger is a *slog.Logger plus the level and file behind it.
type Logger struct {
	*slog.Logger

	// Level can be changed while the logger is in use.
	Level *slog.LevelVar

	file *os.File
}

// New builds a Logger writing text to terminal and, if cfg.File is set, JSON
// to that file. The caller must Close the Logger.
func New(cfg Config, terminal io.Writer) (*Logger, error) {
	// 1. Resolve the level
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	lv := new(slog.LevelVar)
	lv.Set(level)
	opts := &slog.HandlerOptions{Level: lv}

	// 2. Terminal handler
	handlers := []slog.Handler{slog.NewTextHandler(terminal, opts)}

	// 3. Optional file handler
	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
	}

	return &Logger{
		Logger: slog.New(&Handler{Handler: slogmulti.Fanout(handlers...)}),
		Level:  lv,
		file:   file,
	}, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}
