package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retry budgets, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server        ServerConfig
	DB            DBConfig
	CORS          CORSConfig
	Log           LogConfig
	JWT           JWTConfig
	ControlNumber ControlNumberConfig
	Provider      ProviderConfig
	Delivery      DeliveryConfig
	Events        EventsConfig
	Sweeper       SweeperConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Shared secret for machine callers (webhooks, internal services).
	APIKey string `envconfig:"API_KEY" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Api-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ControlNumberConfig governs code issuance. The retry budget bounds the
// collision loop; exhausting it is a typed internal failure, never a hang.
type ControlNumberConfig struct {
	Prefix          string        `envconfig:"CONTROL_NUMBER_PREFIX" default:"991"`
	RandomDigits    int           `envconfig:"CONTROL_NUMBER_RANDOM_DIGITS" default:"6"`
	MaxAttempts     int           `envconfig:"CONTROL_NUMBER_MAX_ATTEMPTS" default:"5"`
	DefaultExpiry   time.Duration `envconfig:"CONTROL_NUMBER_DEFAULT_EXPIRY" default:"24h"`
	DefaultValidity time.Duration `envconfig:"CONTROL_NUMBER_DEFAULT_VALIDITY" default:"168h"`
	MaxBatchSize    int           `envconfig:"CONTROL_NUMBER_MAX_BATCH_SIZE" default:"1000"`
	DefaultCurrency string        `envconfig:"DEFAULT_CURRENCY" default:"TZS"`
}

type ProviderConfig struct {
	BaseURL string        `envconfig:"PROVIDER_BASE_URL" default:"http://localhost:9080"`
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
}

type DeliveryConfig struct {
	// Zero means activated services never expire.
	ServiceDuration time.Duration `envconfig:"SERVICE_DURATION" default:"720h"`
}

type EventsConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"payment.events"`
	GroupID string   `envconfig:"KAFKA_GROUP_ID" default:"controlpay-reconciler"`
}

type SweeperConfig struct {
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:   "8889", // Test port
			APIKey: "test-api-key",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		ControlNumber: ControlNumberConfig{
			Prefix:          "991",
			RandomDigits:    6,
			MaxAttempts:     5,
			DefaultExpiry:   24 * time.Hour,
			DefaultValidity: 7 * 24 * time.Hour,
			MaxBatchSize:    1000,
			DefaultCurrency: "TZS",
		},
		Provider: ProviderConfig{
			BaseURL: "http://localhost:9080",
			Timeout: 2 * time.Second,
		},
		Delivery: DeliveryConfig{
			ServiceDuration: 720 * time.Hour,
		},
		Sweeper: SweeperConfig{
			Interval: time.Minute,
		},
	}
}
