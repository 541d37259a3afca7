// Package config provides application configuration management.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config defines the application configuration interface.
type Config interface {
	GetServerPort() string
	GetEnvironment() string
	GetLogLevel() string
	IsProduction() bool
}

// ServerConfig interface for server-specific configuration.
type ServerConfig interface {
	GetServerPort() string
	GetReadTimeout() time.Duration
	GetWriteTimeout() time.Duration
	GetIdleTimeout() time.Duration
}

// SessionConfig interface for session-related configuration.
type SessionConfig interface {
	GetSessionTTL() time.Duration
	GetSecretScheme() string
}

// SeedConfig interface for the administrative seed loader.
type SeedConfig interface {
	GetSeedFile() string
}

// Secret verification schemes selectable via SECRET_SCHEME.
const (
	SecretSchemePlain  = "plain"
	SecretSchemeBcrypt = "bcrypt"
)

// AppConfig implements all configuration interfaces.
type AppConfig struct {
	serverPort   string
	environment  string
	logLevel     string
	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration
	sessionTTL   time.Duration
	secretScheme string
	seedFile     string
}

// NewConfig creates a new configuration instance with default values
// and overrides from environment variables.
func NewConfig() *AppConfig {
	return &AppConfig{
		serverPort:   getEnvString("SERVER_PORT", "8080"),
		environment:  getEnvString("ENVIRONMENT", "development"),
		logLevel:     getEnvString("LOG_LEVEL", "info"),
		readTimeout:  getEnvDuration("READ_TIMEOUT", "15s"),
		writeTimeout: getEnvDuration("WRITE_TIMEOUT", "15s"),
		idleTimeout:  getEnvDuration("IDLE_TIMEOUT", "60s"),
		sessionTTL:   getEnvDuration("SESSION_TTL", "5m"),
		secretScheme: getEnvString("SECRET_SCHEME", SecretSchemeBcrypt),
		seedFile:     getEnvString("SEED_FILE", ""),
	}
}

// GetServerPort returns the server port configuration.
func (c *AppConfig) GetServerPort() string {
	return c.serverPort
}

// GetEnvironment returns the application environment configuration.
func (c *AppConfig) GetEnvironment() string {
	return c.environment
}

// GetLogLevel returns the log level configuration.
func (c *AppConfig) GetLogLevel() string {
	return c.logLevel
}

// IsProduction returns true if the application is running in production environment.
func (c *AppConfig) IsProduction() bool {
	return c.environment == "production"
}

// GetReadTimeout returns the server read timeout configuration.
func (c *AppConfig) GetReadTimeout() time.Duration {
	return c.readTimeout
}

// GetWriteTimeout returns the server write timeout configuration.
func (c *AppConfig) GetWriteTimeout() time.Duration {
	return c.writeTimeout
}

// GetIdleTimeout returns the server idle timeout configuration.
func (c *AppConfig) GetIdleTimeout() time.Duration {
	return c.idleTimeout
}

// GetSessionTTL returns the session time-to-live configuration.
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.sessionTTL
}

// GetSecretScheme returns the secret verification scheme.
func (c *AppConfig) GetSecretScheme() string {
	return c.secretScheme
}

// GetSeedFile returns the path to the administrative seed file, empty
// if none was configured.
func (c *AppConfig) GetSeedFile() string {
	return c.seedFile
}

// Validate checks if the configuration is valid.
func (c *AppConfig) Validate() error {
	if c.serverPort == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.sessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", c.sessionTTL)
	}

	if c.secretScheme != SecretSchemePlain && c.secretScheme != SecretSchemeBcrypt {
		return fmt.Errorf("unknown secret scheme %q", c.secretScheme)
	}

	validEnvironments := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvironments[c.environment] {
		return fmt.Errorf("invalid environment: %s", c.environment)
	}

	return nil
}

// getEnvString reads a string environment variable with a fallback default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable with a fallback default.
func getEnvDuration(key, defaultValue string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		fallback, _ := time.ParseDuration(defaultValue)
		return fallback
	}
	return duration
}
