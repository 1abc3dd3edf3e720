package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jbdata/ledger-engine/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	IsolationLevel  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	SlowThreshold   time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		SQLitePath:      "ledger.db",
		IsolationLevel:  "read committed",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "warn",
		SlowThreshold:   200 * time.Millisecond,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// NewConfig adapts the application database section, keeping defaults for unset values
func NewConfig(conf config.DatabaseConfig) *Config {
	c := DefaultConfig()

	if conf.Driver != "" {
		c.Driver = strings.ToLower(conf.Driver)
	}
	c.Host = conf.Host
	if p := ParsePort(conf.Port); p > 0 {
		c.Port = p
	}
	c.Username = conf.Username
	c.Password = conf.Password
	c.Database = conf.Database
	if conf.SSLMode != "" {
		c.SSLMode = conf.SSLMode
	}
	if conf.SQLitePath != "" {
		c.SQLitePath = conf.SQLitePath
	}
	if conf.IsolationLevel != "" {
		c.IsolationLevel = strings.ToLower(conf.IsolationLevel)
	}
	if conf.MaxOpenConns > 0 {
		c.MaxOpenConns = conf.MaxOpenConns
	}
	if conf.MaxIdleConns > 0 {
		c.MaxIdleConns = conf.MaxIdleConns
	}
	if conf.ConnMaxLifetime > 0 {
		c.ConnMaxLifetime = conf.ConnMaxLifetime
	}
	if conf.ConnMaxIdleTime > 0 {
		c.ConnMaxIdleTime = conf.ConnMaxIdleTime
	}
	if conf.QueryTimeout > 0 {
		c.QueryTimeout = conf.QueryTimeout
	}
	if conf.LogLevel != "" {
		c.LogLevel = strings.ToLower(conf.LogLevel)
	}
	if conf.SlowThreshold > 0 {
		c.SlowThreshold = conf.SlowThreshold
	}
	if conf.RetryAttempts > 0 {
		c.RetryAttempts = conf.RetryAttempts
	}
	if conf.RetryDelay > 0 {
		c.RetryDelay = conf.RetryDelay
	}

	return c
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if _, ok := isolationLevels[c.IsolationLevel]; !ok {
		return fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"error":  true,
		"warn":   true,
		"info":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid database log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// ParsePort converts a port string to an int, returning 0 when it is not a valid port
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
