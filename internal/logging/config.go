package logging

import (
	"fmt"
)

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	File       string `json:"file"`        // Path to log file
	MaxSize    int    `json:"max_size"`    // Max size in MB
	MaxBackups int    `json:"max_backups"` // Number of backups to keep
	MaxAge     int    `json:"max_age"`     // Max age in days
}

// Validate checks if the configuration is valid
func (c *LogConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if c.Level != "" && !validLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must be non-negative")
	}

	if c.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be non-negative")
	}

	if c.MaxAge < 0 {
		return fmt.Errorf("max_age must be non-negative")
	}

	return nil
}
