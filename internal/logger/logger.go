package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger is the global logger instance
	Logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "abfall-grid"})

	// logFile is the rotating file writer, if one is configured
	logFile *lumberjack.Logger
)

// Config holds logger configuration
type Config struct {
	Level string
	File  string
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var writer io.Writer = os.Stderr
	if cfg.File != "" {
		logFile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writer = io.MultiWriter(os.Stderr, logFile)
	}

	// Human readable output on a terminal, logfmt when piped or written to a file
	formatter := log.LogfmtFormatter
	if cfg.File == "" && term.IsTerminal(int(os.Stderr.Fd())) {
		formatter = log.TextFormatter
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "abfall-grid",
		Formatter:       formatter,
	})
	return nil
}

// Close flushes and closes the log file, if any
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetOutput redirects the global logger, mainly for tests
func SetOutput(w io.Writer, level log.Level) {
	Logger = log.NewWithOptions(w, log.Options{Level: level, Formatter: log.LogfmtFormatter})
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
