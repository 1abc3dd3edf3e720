package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliteYAML = `
server:
  port: 9090
  corsOrigins:
    - https://admin.example.com
database:
  driver: sqlite
  sqlitePath: /tmp/ledger.db
  queryTimeout: 3
logger:
  level: debug
export:
  lockTTL: 60
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadFromPaths(t *testing.T) {
	t.Run("Reads file values and fills defaults", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Test, sqliteYAML)

		// Act
		cfg, err := LoadFromPaths(Test, dir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"https://admin.example.com"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, "read committed", cfg.Database.IsolationLevel)
		assert.Equal(t, time.Minute, cfg.Export.LockTTL)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 5*time.Second, cfg.RabbitMQ.ReconnectInterval)
		assert.False(t, cfg.Delivery.StrictTransitions)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "X-Principal-Id", cfg.Auth.PrincipalIDHeader)
	})

	t.Run("Short environment names override the file", func(t *testing.T) {
		dir := writeConfig(t, Test, sqliteYAML)
		t.Setenv("JB_SERVER_PORT", "7070")
		t.Setenv("JB_DELIVERY_STRICT", "true")
		t.Setenv("JB_REDIS_ENABLED", "true")
		t.Setenv("JB_REDIS_ADDRESS", "redis:6379")
		t.Setenv("JB_SERVER_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
		t.Setenv("JB_EXPORT_LOCK_TTL_SECONDS", "30")

		cfg, err := LoadFromPaths(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.True(t, cfg.Delivery.StrictTransitions)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "redis:6379", cfg.Redis.Address)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
		assert.Equal(t, 30*time.Second, cfg.Export.LockTTL)
	})

	t.Run("Malformed override is rejected", func(t *testing.T) {
		dir := writeConfig(t, Test, sqliteYAML)
		t.Setenv("JB_SERVER_PORT", "eighty")

		_, err := LoadFromPaths(Test, dir)

		assert.ErrorContains(t, err, "JB_SERVER_PORT")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFromPaths(Production, t.TempDir())

		assert.ErrorContains(t, err, "error reading config file")
	})

	t.Run("Postgres without host fails validation", func(t *testing.T) {
		dir := writeConfig(t, Test, "database:\n  driver: postgres\n  username: ledger\n  database: ledger\n")

		_, err := LoadFromPaths(Test, dir)

		assert.ErrorContains(t, err, "database.host is required")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "ledger.db", IsolationLevel: "read committed"},
			Export:   ExportConfig{LockTTL: time.Minute},
			Auth:     AuthConfig{PrincipalIDHeader: "X-Principal-Id", PrincipalRoleHeader: "X-Principal-Role"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "Unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "database.driver"},
		{name: "Unknown isolation level", mutate: func(c *Config) { c.Database.IsolationLevel = "chaos" }, wantErr: "isolationLevel"},
		{name: "Zero lock TTL", mutate: func(c *Config) { c.Export.LockTTL = 0 }, wantErr: "export.lockTTL"},
		{name: "Redis without address", mutate: func(c *Config) { c.Redis.Enabled = true }, wantErr: "redis.address"},
		{name: "RabbitMQ without queue", mutate: func(c *Config) {
			c.RabbitMQ = RabbitMQConfig{Enabled: true, URL: "amqp://localhost", DeliveryExchange: "ledger.delivery"}
		}, wantErr: "rabbitmq.ingestQueue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Warnings(t *testing.T) {
	t.Run("Production with insecure settings", func(t *testing.T) {
		cfg := Config{
			Environment: Production,
			Server:      ServerConfig{CORSOrigins: []string{"*"}},
			Database:    DatabaseConfig{Driver: "postgres", SSLMode: "disable"},
		}

		warnings := cfg.Warnings()

		assert.Len(t, warnings, 3)
		assert.Contains(t, warnings, "database.sslMode is disabled in production")
	})

	t.Run("Development is never warned", func(t *testing.T) {
		cfg := Config{Environment: Development, Server: ServerConfig{CORSOrigins: []string{"*"}}}

		assert.Empty(t, cfg.Warnings())
	})
}
