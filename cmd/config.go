package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	DBSslMode     string `env:"DB_SSLMODE" envDefault:"disable"`

	OperatorAccount string `env:"OPERATOR_ACCOUNT,required"`

	// TransferEndpoint receives payout transfers. Transfers are only logged when empty.
	TransferEndpoint string        `env:"TRANSFER_ENDPOINT"`
	TransferTimeout  time.Duration `env:"TRANSFER_TIMEOUT" envDefault:"5s"`

	SettlementSchedule  string `env:"SETTLEMENT_SCHEDULE" envDefault:"* * * * * *"`
	SettlementBatchSize int    `env:"SETTLEMENT_BATCH_SIZE" envDefault:"100"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the values env.Parse cannot.
func (c Config) Validate() error {
	if c.OperatorAccount == "" {
		return errors.New("OPERATOR_ACCOUNT must not be empty")
	}

	switch c.StorageDriver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q, want %q or %q",
			c.StorageDriver, StorageDriverMemory, StorageDriverPostgres)
	}

	if c.SettlementBatchSize <= 0 {
		return fmt.Errorf("settlement batch size must be positive, got %d", c.SettlementBatchSize)
	}

	return nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
