// Package logx holds the module-wide structured logger. Register accessors
// never log; services and host tools do, tagged with their component.
package logx

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Component identifies a subsystem for log filtering.
type Component string

const (
	ComponentReset   Component = "reset"
	ComponentDecode  Component = "decode"
	ComponentTargets Component = "targets"
	ComponentCLI     Component = "cli"
)

// Format selects the handler used by SetOutput.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

var (
	level = new(slog.LevelVar)

	mu     sync.RWMutex
	logger *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func SetLevel(l slog.Level) { level.Set(l) }
func Level() slog.Level     { return level.Level() }

// SetOutput replaces the default logger with one writing to w.
func SetOutput(w io.Writer, f Format) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch f {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	SetLogger(slog.New(h))
}

// SetLogger installs l as the default logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// For returns the default logger tagged with c.
func For(c Component) *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return l.With("component", string(c))
}
