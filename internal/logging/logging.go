package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "floatwin.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = zerolog.InfoLevel
	out          io.WriteCloser
	logger       *zerolog.Logger
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetLevel sets the minimum level for Error/Info/Debug entries. Unknown
// names fall back to info.
func SetLevel(name string) {
	var lvl zerolog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	mu.Lock()
	level = lvl
	if logger != nil {
		l := logger.Level(lvl)
		logger = &l
	}
	mu.Unlock()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	if l := current(); l != nil {
		l.Error().Err(err).Send()
	}
}

// Info records an informational message with optional fields.
func Info(msg string, fields map[string]interface{}) {
	if !enabled(zerolog.InfoLevel) {
		return
	}
	if l := current(); l != nil {
		l.Info().Fields(fields).Msg(msg)
	}
}

// Debug records a debug message with optional fields.
func Debug(msg string, fields map[string]interface{}) {
	if !enabled(zerolog.DebugLevel) {
		return
	}
	if l := current(); l != nil {
		l.Debug().Fields(fields).Msg(msg)
	}
}

func enabled(lvl zerolog.Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return lvl >= level
}

// Trace appends a structured entry when tracing is enabled. Trace entries
// bypass the level filter.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	l := current()
	if l == nil {
		return
	}
	entry := l.Log().Str("event", event)
	if payload != nil {
		entry = entry.Interface("payload", payload)
	}
	entry.Send()
}

// WithComponent returns a child logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	l := current()
	if l == nil {
		return zerolog.Nop()
	}
	return l.With().Str("component", component).Logger()
}

// Close flushes and closes the log file. Later writes reopen it.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if out == nil {
		return nil
	}
	err := out.Close()
	out = nil
	return err
}

// current lazily opens the log file so nothing is created until the first
// entry is written.
func current() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil
	}
	out = f
	l := zerolog.New(f).With().Timestamp().Logger().Level(level)
	logger = &l
	return logger
}
