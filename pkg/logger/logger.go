package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLogLevel converts a string log level to its LogLevel constant.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures file rotation. An empty FilePath logs to stdout only.
type Options struct {
	FilePath   string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger writes level-prefixed lines to stdout and an optional rotating file.
type Logger struct {
	out   *log.Logger
	level LogLevel
	mu    sync.RWMutex
}

var instance *Logger
var once sync.Once

// Init initializes the global logger at INFO with default rotation settings.
func Init(logPath string) {
	InitWithOptions(Options{FilePath: logPath, Level: INFO, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true})
}

// InitWithConfig initializes the global logger with custom log rotation configuration.
func InitWithConfig(logPath string, level LogLevel, maxSize, maxBackups, maxAge int, compress bool) {
	InitWithOptions(Options{
		FilePath:   logPath,
		Level:      level,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})
}

// InitWithOptions initializes the global logger once; later calls are ignored.
func InitWithOptions(opts Options) {
	once.Do(func() {
		l, err := New(opts)
		if err != nil {
			log.Printf("[WARN] file logging disabled: %v", err)
			l = NewWithWriter(os.Stdout, opts.Level)
		}
		instance = l
	})
}

// New creates a logger writing to stdout and, when configured, to a lumberjack-rotated file.
func New(opts Options) (*Logger, error) {
	if opts.FilePath == "" {
		return NewWithWriter(os.Stdout, opts.Level), nil
	}

	dir := filepath.Dir(opts.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	logFile := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	return NewWithWriter(io.MultiWriter(os.Stdout, logFile), opts.Level), nil
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lshortfile),
		level: level,
	}
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) enabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

// logf writes one line; depth is the number of frames between the caller of interest and logf.
func (l *Logger) logf(depth int, level LogLevel, format string, v ...interface{}) {
	if !l.enabled(level) {
		return
	}
	_ = l.out.Output(depth+1, "["+level.String()+"] "+fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(2, DEBUG, format, v...) }

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.logf(2, INFO, format, v...) }

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(2, WARN, format, v...) }

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(2, ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.logf(2, FATAL, format, v...) }

// Global convenience functions. They are no-ops until Init has been called.

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(3, DEBUG, format, v...)
	}
}

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(3, INFO, format, v...)
	}
}

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(3, WARN, format, v...)
	}
}

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(3, ERROR, format, v...)
	}
}

// Fatalf logs a formatted fatal-level message and exits the program.
// Falls back to the standard logger before Init so startup failures are never silent.
func Fatalf(format string, v ...interface{}) {
	if instance != nil {
		instance.logf(3, FATAL, format, v...)
		return
	}
	log.Fatalf("[FATAL] "+format, v...)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	if instance != nil {
		instance.SetLevel(level)
	}
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	if instance != nil {
		return instance.GetLevel()
	}
	return INFO
}

// Default returns the global logger, or nil before Init.
func Default() *Logger {
	return instance
}
