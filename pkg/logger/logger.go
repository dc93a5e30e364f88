package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type options struct {
	debug  bool
	writer io.Writer
}

type Option func(*options)

func WithDebugFlag(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// Init installs a tint handler as the default slog logger. Color is only
// enabled when writing to a terminal.
func Init(opts ...Option) {
	slog.SetDefault(New(opts...))
}

func New(opts ...Option) *slog.Logger {
	o := &options{writer: os.Stderr}

	for _, opt := range opts {
		opt(o)
	}

	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(o.writer, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(o.writer),
	})

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
