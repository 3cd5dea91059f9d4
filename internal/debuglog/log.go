// Package debuglog is a small levelled logger for the cursorfit tools.
//
// Logging is off until Setup is called with a level other than LevelOff.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "OFF", "":
		return LevelOff
	default:
		return LevelInfo
	}
}

var (
	mu      sync.Mutex
	level   = LevelOff
	logger  *log.Logger
	logFile *os.File
)

// DefaultPath is where Setup writes when no path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cursorfit", "cursorfit.log")
}

// Setup sets the level and opens path for appending. An empty path means
// DefaultPath.
func Setup(lvl Level, path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	level = lvl
	if lvl == LevelOff {
		return nil
	}

	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput logs to w at lvl instead of a file.
func SetOutput(lvl Level, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	level = lvl
	if lvl != LevelOff && w != nil {
		logger = newLogger(w)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "cursorfit ", log.LstdFlags|log.Lmicroseconds)
}

// GetLevel returns the current level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// Close closes the log file, if any, and turns logging off.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	level = LevelOff
	return err
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func logf(lvl Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if lvl < level || logger == nil {
		return
	}
	logger.Printf("[%s] %s", lvl, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

// Fields are key/value pairs appended to a message.
type Fields map[string]any

// FieldLogger appends a fixed set of fields to every message.
type FieldLogger struct {
	suffix string
}

// WithFields returns a logger that appends fields, sorted by key.
func WithFields(fields Fields) FieldLogger {
	if len(fields) == 0 {
		return FieldLogger{}
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return FieldLogger{suffix: " [" + strings.Join(parts, " ") + "]"}
}

func (fl FieldLogger) Debugf(format string, args ...any) {
	logf(LevelDebug, "%s%s", fmt.Sprintf(format, args...), fl.suffix)
}

func (fl FieldLogger) Infof(format string, args ...any) {
	logf(LevelInfo, "%s%s", fmt.Sprintf(format, args...), fl.suffix)
}

func (fl FieldLogger) Warnf(format string, args ...any) {
	logf(LevelWarn, "%s%s", fmt.Sprintf(format, args...), fl.suffix)
}

func (fl FieldLogger) Errorf(format string, args ...any) {
	logf(LevelError, "%s%s", fmt.Sprintf(format, args...), fl.suffix)
}
