// Package debug provides the process-wide diagnostic logger: disabled by
// default, switched on by the CLI's --verbose flag, and handed to the
// parser and command handlers as a plain *slog.Logger so nothing below
// the host adapter depends on this package directly.
package debug

import (
	"log/slog"
	"os"
	"sync"
)

var (
	logger  *slog.Logger
	enabled bool
	mu      sync.RWMutex
)

// component tags every record this package emits, distinguishing a
// servergen debug stream from any library log lines mixed into the same
// terminal.
const component = "servergen"

// Init switches debug logging on or off for the process. With enable
// true, records go to stderr at debug level tagged with component; with
// enable false, Logger still returns a usable logger but one that drops
// every record, error level included.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable

	level := slog.LevelError + 1
	if enable {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler).With("component", component)
}

// Enabled reports whether verbose debug logging is switched on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Logger returns the process-wide logger. Init must run first (the CLI's
// PersistentPreRun does this before any command body executes); a nil
// logger here means a command reached Logger() outside that lifecycle.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// ForPhase returns the process logger tagged with the generation phase
// name, for call sites that log around a specific pipeline step rather
// than a one-off CLI action.
func ForPhase(name string) *slog.Logger {
	return Logger().With("phase", name)
}
