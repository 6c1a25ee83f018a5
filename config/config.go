package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreBolt   = "bbolt"
)

// Config holds the application configuration
type Config struct {
	Version      string
	Host         string
	Port         string
	StoreDriver  string
	DBPath       string
	StaticDir    string
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the optional .env file and builds the configuration from the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}

	cfg := &Config{
		Version:     getEnv("APP_VERSION", "1.0.0"),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "5000"),
		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),
		DBPath:      getEnv("DB_PATH", "timesheets.db"),
		StaticDir:   getEnv("STATIC_DIR", "static"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "timesheet-submissions"),
	}

	for _, broker := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	return cfg, nil
}

// Validate checks the configuration for unsupported values
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite, StoreBolt:
	default:
		return fmt.Errorf("invalid store driver %q (must be %s, %s or %s)", c.StoreDriver, StoreMemory, StoreSQLite, StoreBolt)
	}

	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}

	if c.StoreDriver != StoreMemory && c.DBPath == "" {
		return fmt.Errorf("db path is required for the %s store", c.StoreDriver)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// KafkaEnabled reports whether submission events go to Kafka
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
