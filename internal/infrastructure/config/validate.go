package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var validIsolationLevels = []string{"read committed", "repeatable read", "serializable"}

// Validate checks the keys required to start the service
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}

	switch strings.ToLower(c.Database.Driver) {
	case "postgres":
		if c.Database.Host == "" {
			problems = append(problems, errors.New("database.host is required for postgres"))
		}
		if c.Database.Username == "" {
			problems = append(problems, errors.New("database.username is required for postgres"))
		}
		if c.Database.Database == "" {
			problems = append(problems, errors.New("database.database is required for postgres"))
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			problems = append(problems, errors.New("database.sqlitePath is required for sqlite"))
		}
	default:
		problems = append(problems, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}

	if !slices.Contains(validIsolationLevels, strings.ToLower(c.Database.IsolationLevel)) {
		problems = append(problems, fmt.Errorf("database.isolationLevel %q is not supported", c.Database.IsolationLevel))
	}

	if c.Export.LockTTL <= 0 {
		problems = append(problems, errors.New("export.lockTTL must be positive"))
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		problems = append(problems, errors.New("redis.address is required when redis is enabled"))
	}

	if c.RabbitMQ.Enabled {
		if c.RabbitMQ.URL == "" {
			problems = append(problems, errors.New("rabbitmq.url is required when rabbitmq is enabled"))
		}
		if c.RabbitMQ.IngestQueue == "" {
			problems = append(problems, errors.New("rabbitmq.ingestQueue is required when rabbitmq is enabled"))
		}
		if c.RabbitMQ.DeliveryExchange == "" {
			problems = append(problems, errors.New("rabbitmq.deliveryExchange is required when rabbitmq is enabled"))
		}
	}

	if c.Auth.PrincipalIDHeader == "" || c.Auth.PrincipalRoleHeader == "" {
		problems = append(problems, errors.New("auth principal headers are required"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// Warnings lists settings that are accepted but unsafe for production
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}

	var warnings []string
	if strings.EqualFold(c.Database.Driver, "postgres") && strings.EqualFold(c.Database.SSLMode, "disable") {
		warnings = append(warnings, "database.sslMode is disabled in production")
	}
	if strings.EqualFold(c.Database.Driver, "sqlite") {
		warnings = append(warnings, "sqlite is not intended for production")
	}
	if slices.Contains(c.Server.CORSOrigins, "*") {
		warnings = append(warnings, "server.corsOrigins allows every origin in production")
	}
	if !c.Redis.Enabled {
		warnings = append(warnings, "redis is disabled; exports rely on the database claim alone")
	}
	if strings.EqualFold(c.Logger.Level, "debug") {
		warnings = append(warnings, "logger.level is debug in production")
	}
	return warnings
}
