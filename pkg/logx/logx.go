// Package logx provides named loggers plus the console output surface of the
// CLI. Loggers carry a component name and printf-style levels; the console
// helpers print the user-facing lines (confirmations, warnings, errors) that
// commands emit directly.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Console writers, swappable in tests.
var (
	mu   sync.Mutex
	out  io.Writer = os.Stdout
	errw io.Writer = os.Stderr

	debugEnabled = false
)

func init() {
	if debug := os.Getenv("DEBUG"); debug == "1" || strings.EqualFold(debug, "true") {
		debugEnabled = true
	}
}

// SetOutput redirects console and logger output. Tests use this to capture
// what a command printed.
func SetOutput(stdout, stderr io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if stdout != nil {
		out = stdout
	}
	if stderr != nil {
		errw = stderr
	}
}

// SetDebug toggles debug-level logging at runtime.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// Logger writes timestamped, component-tagged lines.
type Logger struct {
	name string
}

// NewLogger creates a logger tagged with a component name.
func NewLogger(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) log(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level == LevelDebug && !debugEnabled {
		return
	}
	w := out
	if level == LevelWarn || level == LevelError {
		w = errw
	}
	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(w, "%s [%s] %s: %s\n", ts, l.name, level, fmt.Sprintf(format, args...))
}

// Debug logs at debug level; suppressed unless DEBUG is set.
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Console output. These print bare user-facing lines, not log records.

// Print writes a plain line to stdout.
func Print(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format+"\n", args...)
}

// Ok writes a success confirmation to stdout.
func Ok(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "OK: "+format+"\n", args...)
}

// Warnf writes a warning line to stderr.
func Warnf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(errw, "Warning: "+format+"\n", args...)
}

// Errorf writes an error line to stderr.
func Errorf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(errw, "Error: "+format+"\n", args...)
}

// Trace prints the full error chain, outermost first. Commands call this
// under --verbose before emitting their one-line message.
func Trace(err error) {
	mu.Lock()
	defer mu.Unlock()
	depth := 0
	for e := err; e != nil; e = unwrap(e) {
		fmt.Fprintf(errw, "%s%s\n", strings.Repeat("  ", depth), e.Error())
		depth++
	}
}

func unwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
