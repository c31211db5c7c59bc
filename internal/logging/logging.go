package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for terminal output
const (
	colorRed    = "\033[97;41m" // White text on red background
	colorGreen  = "\033[97;42m" // White text on green background
	colorYellow = "\033[90;43m" // Black text on yellow background
	colorBlue   = "\033[97;44m" // White text on blue background
	colorReset  = "\033[0m"
)

// Logger writes leveled, colored log lines to stdout and a rotated file.
type Logger struct {
	*log.Logger
	writer *lumberjack.Logger
}

// NewLogger creates a logger backed by the given configuration.
func NewLogger(config *LogConfig) (*Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Set up log rotation
	writer := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}

	multiWriter := io.MultiWriter(writer, os.Stdout)

	return &Logger{
		Logger: log.New(multiWriter, "", log.LstdFlags),
		writer: writer,
	}, nil
}

func (l *Logger) Close() error {
	return l.writer.Close()
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.Printf(colorBlue+"[DEBUG]"+colorReset+" "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.Printf(colorGreen+"[INFO]"+colorReset+" "+format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.Printf(colorYellow+"[WARN]"+colorReset+" "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.Printf(colorRed+"[ERROR]"+colorReset+" "+format, v...)
}

// LogHTTPError logs a handled HTTP error with its request context.
func (l *Logger) LogHTTPError(method, path, clientIP string, status int, message string, err error) {
	l.Printf("[HTTP-ERROR] %d | %15s | %-7s | %s | %s: %v",
		status,
		clientIP,
		method,
		path,
		message,
		err,
	)
}
