package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything the process reads from the environment. It is
// built once at startup and injected explicitly; nothing reads the
// environment after LoadConfig returns.
type Config struct {
	SQLHost     string
	SQLPort     int
	SQLUser     string
	SQLPassword string
	DBName      string
	SSLMode     string
	HTTPPort    int
}

func LoadConfig() (*Config, error) {
	sqlPort, err := getEnvInt("SQL_PORT", 5432)
	if err != nil {
		return nil, err
	}

	httpPort, err := getEnvInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		SQLHost:     getEnv("SQL_HOSTNAME", "localhost"),
		SQLPort:     sqlPort,
		SQLUser:     getEnv("SQL_USER", "postgres"),
		SQLPassword: getEnv("SQL_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "lanchonete"),
		SSLMode:     getEnv("SQL_SSLMODE", "require"),
		HTTPPort:    httpPort,
	}, nil
}

// ConnString renders the pgx connection string. SSLMode defaults to
// "require": the store connection is expected to run over TLS.
func (c *Config) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.SQLUser, c.SQLPassword, c.SQLHost, c.SQLPort, c.DBName, c.SSLMode)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
