package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_VERSION", "HOST", "PORT", "STORE_DRIVER", "DB_PATH", "STATIC_DIR", "KAFKA_BROKERS", "KAFKA_TOPIC"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "timesheet-submissions", cfg.KafkaTopic)
	assert.False(t, cfg.KafkaEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_VERSION", "2.3.4")
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", StoreSQLite)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "2.3.4", cfg.Version)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_VERSION=9.9.9\nSTORE_DRIVER=bbolt\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.Version)
	assert.Equal(t, StoreBolt, cfg.StoreDriver)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "5000", StoreDriver: "postgres"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: "5000", StoreDriver: StoreBolt}
	assert.Error(t, cfg.Validate(), "db path is required")

	cfg = &Config{Port: "", StoreDriver: StoreMemory}
	assert.Error(t, cfg.Validate())
}
