package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger.
// It is safe to call more than once; later calls replace the instance.
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger instance.
// It panics if InitLogger has not been called.
func GetGlobalLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
