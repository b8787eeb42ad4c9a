// Package logger writes structured run logs through zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	// Verbose enables debug entries.
	Verbose bool
	// JSON forces JSON lines even when Writer is a terminal.
	JSON bool
	// Writer receives entries. Defaults to os.Stderr so stdout stays free for results.
	Writer io.Writer
}

// Logger is a leveled, field-carrying logger. A nil *Logger discards everything.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger. Terminals get console formatting; anything else gets JSON lines.
func New(opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	out := w
	if !opts.JSON && IsTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a child logger that adds key to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a child logger that adds every field to each entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.zl.Debug().Msg(msg)
	}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.zl.Info().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.zl.Warn().Msg(msg)
	}
}

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(err error, msg string) {
	if l != nil {
		l.zl.Error().Err(err).Msg(msg)
	}
}
