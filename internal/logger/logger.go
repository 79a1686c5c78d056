// Package logger wraps charmbracelet/log with the defaults used by asciiref.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger on stderr that respects the global log level.
// Stdout is reserved for command output.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetLevel parses name and applies it to the default logger.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	log.SetLevel(lvl)
	return nil
}

// Silence redirects the default logger to w, returning a func that restores it.
// The TUI uses it so log lines do not corrupt the alt screen.
func Silence(w io.Writer) func() {
	prev := log.Default()
	log.SetDefault(NewWithWriter(w, prev.GetPrefix()))
	return func() { log.SetDefault(prev) }
}
