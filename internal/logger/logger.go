package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
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
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to INFO
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes every message to the log file and the ones at or above
// minLevel to the console.
type Logger struct {
	mu            sync.Mutex
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	logFile       *os.File
	verbose       bool
	minLevel      Level
}

var globalLogger *Logger

// Init initializes the global logger
// consoleOutput: where to write INFO logs (typically os.Stdout)
// logFilePath: path to the log file for all levels
// verbose: if true, show DEBUG logs on console as well
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}

	globalLogger = &Logger{
		consoleLogger: log.New(consoleOutput, "", 0),
		fileLogger:    log.New(logFile, "", log.LstdFlags),
		logFile:       logFile,
		verbose:       verbose,
		minLevel:      minLevel,
	}

	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

// SetLevel changes the console threshold; the file always gets everything
func SetLevel(level Level) {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	if globalLogger.verbose && level > LevelDebug {
		return
	}
	globalLogger.minLevel = level
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.fileLogger.Printf("[%s] %s", level.String(), message)

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelDebug:
		l.consoleLogger.Printf("[DEBUG] %s", message)
	case LevelInfo:
		l.consoleLogger.Printf("%s", message)
	case LevelWarn:
		l.consoleLogger.Printf("⚠️  %s", message)
	case LevelError:
		l.consoleLogger.Printf("❌ %s", message)
	}
}

// LogRowError records a sheet parsing failure in the log file only.
// The console gets a DEBUG line; callers report the failure to the user themselves.
func LogRowError(source string, err error, context string) {
	if globalLogger == nil || err == nil {
		return
	}

	globalLogger.mu.Lock()
	globalLogger.fileLogger.Printf("[ROW_ERROR] Source: %s, Context: %s, Error: %v", source, context, err)
	globalLogger.mu.Unlock()

	Debug("Row error in %s: %v", source, err)
}

// Writer returns an io.Writer that logs each written line at level.
// Used to route third-party output (gin) through the same sinks.
func Writer(level Level) io.Writer {
	return levelWriter{level: level}
}

type levelWriter struct {
	level Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch w.level {
		case LevelDebug:
			Debug("%s", line)
		case LevelWarn:
			Warn("%s", line)
		case LevelError:
			Error("%s", line)
		default:
			Info("%s", line)
		}
	}
	return len(p), nil
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
