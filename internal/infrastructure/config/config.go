package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Delivery    DeliveryConfig `mapstructure:"delivery"`
	Export      ExportConfig   `mapstructure:"export"`
	Redis       RedisConfig    `mapstructure:"redis"`
	RabbitMQ    RabbitMQConfig `mapstructure:"rabbitmq"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Auth        AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	LogLevel        string        `mapstructure:"logLevel"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// DeliveryConfig controls the delivery state machine
type DeliveryConfig struct {
	StrictTransitions bool `mapstructure:"strictTransitions"`
}

// ExportConfig controls pending-order exports
type ExportConfig struct {
	LockTTL time.Duration `mapstructure:"lockTTL"` // seconds
}

// RedisConfig contains the export lock backend settings
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Address      string        `mapstructure:"address"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"poolSize"`
	KeyPrefix    string        `mapstructure:"keyPrefix"`
	DialTimeout  time.Duration `mapstructure:"dialTimeout"`  // seconds
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`  // seconds
	WriteTimeout time.Duration `mapstructure:"writeTimeout"` // seconds
}

// RabbitMQConfig contains ingestion and delivery event settings
type RabbitMQConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	URL               string        `mapstructure:"url"`
	IngestQueue       string        `mapstructure:"ingestQueue"`
	DeliveryExchange  string        `mapstructure:"deliveryExchange"`
	Prefetch          int           `mapstructure:"prefetch"`
	ReconnectInterval time.Duration `mapstructure:"reconnectInterval"` // seconds
	ConnectTimeout    time.Duration `mapstructure:"connectTimeout"`    // seconds
	HandlerTimeout    time.Duration `mapstructure:"handlerTimeout"`    // seconds
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// AuthConfig names the headers carrying the gateway principal
type AuthConfig struct {
	PrincipalIDHeader   string `mapstructure:"principalIdHeader"`
	PrincipalRoleHeader string `mapstructure:"principalRoleHeader"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
