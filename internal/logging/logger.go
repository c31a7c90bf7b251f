// Package logging provides the leveled logger injected into the simulation
// components. The core never owns a process-wide logger; the composition
// root (cmd/atomsim or scene.Build) constructs one and passes it down.
package logging

import (
	"log"
	"strings"
)

// Logger is the capability handed to components that emit diagnostics.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// Level represents the logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name (case-insensitive), defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Leveled writes through the stdlib logger, filtering below its threshold.
type Leveled struct {
	level Level
}

// New creates a leveled logger from a level name.
func New(level string) *Leveled {
	return &Leveled{level: ParseLevel(level)}
}

func (l *Leveled) shouldLog(level Level) bool {
	return level >= l.level
}

func (l *Leveled) Debugf(format string, v ...any) {
	if l.shouldLog(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func (l *Leveled) Infof(format string, v ...any) {
	if l.shouldLog(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *Leveled) Warnf(format string, v ...any) {
	if l.shouldLog(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

func (l *Leveled) Errorf(format string, v ...any) {
	if l.shouldLog(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}

// NoOp discards everything. Useful in tests and when a component is used
// without diagnostics.
type NoOp struct{}

func (NoOp) Debugf(format string, v ...any) {}
func (NoOp) Infof(format string, v ...any)  {}
func (NoOp) Warnf(format string, v ...any)  {}
func (NoOp) Errorf(format string, v ...any) {}

// NewNoOp creates a logger that does nothing.
func NewNoOp() Logger {
	return NoOp{}
}
