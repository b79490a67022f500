// Package logger writes the application log to a file. The terminal is owned
// by the screen while the program runs, so nothing is logged to stdout or
// stderr.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Level is the minimum severity written to the log.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is used when nothing was passed to Init before the first
// message.
const DefaultLogPath = "/tmp/cellgrid.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	file     *os.File
	path     string
	tried    bool // a file was opened or failed to open
	level    = LevelInfo
	levelVar = new(slog.LevelVar)
)

// SetLevel changes the minimum level, also for loggers handed out earlier.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	levelVar.Set(l.slog())
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// Init opens the log file at p for appending. Only the first successful call
// has an effect until Reset.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()
	if base != nil {
		return nil
	}
	return open(p)
}

// open must be called with mu held.
func open(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", p, err)
	}
	file, path, tried = f, p, true
	levelVar.Set(level.slog())
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", p)
	return nil
}

// current returns the base logger, opening the default file on first use.
// It must be called with mu held and may return nil.
func current() *slog.Logger {
	if base == nil && !tried {
		tried = true
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return base
}

// Path returns the file being written, or "" before the first message.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

func logf(l slog.Level, format string, args ...any) {
	mu.Lock()
	lg := current()
	mu.Unlock()
	if lg == nil || !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }
func Info(format string, args ...any)  { logf(slog.LevelInfo, format, args...) }
func Warn(format string, args ...any)  { logf(slog.LevelWarn, format, args...) }
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// ComponentLogger returns a structured logger tagged with the component name.
//
//	log := logger.ComponentLogger("ui")
//	log.Debug("layout solved", "columns", cols)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	lg := current()
	if lg == nil {
		return slog.New(slog.DiscardHandler)
	}
	return lg.With(slog.String("component", component))
}

// Close closes the log file. Later messages are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
	}
	base = nil
}

// Reset forgets all state so Init can be called again. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
	}
	base, file, path = nil, nil, ""
	tried = false
	level = LevelInfo
	levelVar = new(slog.LevelVar)
}
