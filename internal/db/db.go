package db

import (
	"context"
	"fmt"
	"os"

	"foliolink/internal/db/ent"

	"entgo.io/ent/dialect"

	_ "github.com/lib/pq"
)

// Initialize opens the Ent client and runs the auto migration tool.
func Initialize(databaseURL string) (*ent.Client, error) {
	if databaseURL == "" {
		config := NewConfig()
		databaseURL = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
		)
	}

	client, err := ent.Open(dialect.Postgres, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	return client, nil
}

// Database represents the database connection
type Database struct {
	DB *ent.Client
}

// NewDatabase creates a new database instance
func NewDatabase(client *ent.Client) *Database {
	return &Database{
		DB: client,
	}
}

// Config represents database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefaultInt("DB_PORT", 5432),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:   getEnvOrDefault("DB_NAME", "foliolink"),
		SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
