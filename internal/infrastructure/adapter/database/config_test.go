package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jbdata/ledger-engine/internal/infrastructure/config"
)

func TestNewConfig(t *testing.T) {
	t.Run("Keeps defaults for unset values", func(t *testing.T) {
		c := NewConfig(config.DatabaseConfig{Driver: "SQLite", SQLitePath: "/tmp/l.db"})

		assert.Equal(t, DriverSQLite, c.Driver)
		assert.Equal(t, "/tmp/l.db", c.SQLitePath)
		assert.Equal(t, 5432, c.Port)
		assert.Equal(t, "read committed", c.IsolationLevel)
		assert.Equal(t, 5*time.Second, c.QueryTimeout)
		assert.NoError(t, c.Validate())
	})

	t.Run("Copies postgres settings", func(t *testing.T) {
		c := NewConfig(config.DatabaseConfig{
			Driver:         "postgres",
			Host:           "db",
			Port:           "6543",
			Username:       "ledger",
			Database:       "ledger",
			SSLMode:        "require",
			IsolationLevel: "Serializable",
			RetryAttempts:  5,
			QueryTimeout:   2 * time.Second,
		})

		assert.Equal(t, 6543, c.Port)
		assert.Equal(t, "serializable", c.IsolationLevel)
		assert.Equal(t, 5, c.RetryAttempts)
		assert.Equal(t, "host=db port=6543 user=ledger password= dbname=ledger sslmode=require", c.DSN())
		assert.NoError(t, c.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	postgres := func() *Config {
		c := DefaultConfig()
		c.Host = "localhost"
		c.Username = "ledger"
		c.Database = "ledger"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Missing host", mutate: func(c *Config) { c.Host = "" }, wantErr: "database host is required"},
		{name: "Bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "invalid port number"},
		{name: "Bad ssl mode", mutate: func(c *Config) { c.SSLMode = "sometimes" }, wantErr: "invalid SSL mode"},
		{name: "Unknown driver", mutate: func(c *Config) { c.Driver = "oracle" }, wantErr: "unsupported database driver"},
		{name: "Bad isolation", mutate: func(c *Config) { c.IsolationLevel = "read uncommitted" }, wantErr: "invalid isolation level"},
		{name: "No retries", mutate: func(c *Config) { c.RetryAttempts = 0 }, wantErr: "retry attempts"},
		{name: "Bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid database log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := postgres()
			tt.mutate(c)

			assert.ErrorContains(t, c.Validate(), tt.wantErr)
		})
	}
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Zero(t, ParsePort(""))
	assert.Zero(t, ParsePort("port"))
	assert.Zero(t, ParsePort("70000"))
}
