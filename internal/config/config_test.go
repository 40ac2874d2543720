package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, LogConfig{Level: "info", Format: "text"}, cfg.Log)
	assert.Equal(t, EventsConfig{Workers: 2, QueueSize: 100}, cfg.Events)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BOOKSHELF_ADDR", ":8081")
	t.Setenv("BOOKSHELF_MODE", "debug")
	t.Setenv("BOOKSHELF_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BOOKSHELF_LOG_LEVEL", "debug")
	t.Setenv("BOOKSHELF_LOG_FORMAT", "json")
	t.Setenv("BOOKSHELF_EVENTS_QUEUE_SIZE", "5")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, 5, cfg.Events.QueueSize)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOOKSHELF_EVENTS_WORKERS=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BOOKSHELF_EVENTS_WORKERS") })

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Events.Workers)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "mode", key: "BOOKSHELF_MODE", val: "production"},
		{name: "log level", key: "BOOKSHELF_LOG_LEVEL", val: "verbose"},
		{name: "log format", key: "BOOKSHELF_LOG_FORMAT", val: "xml"},
		{name: "workers", key: "BOOKSHELF_EVENTS_WORKERS", val: "0"},
		{name: "queue size", key: "BOOKSHELF_EVENTS_QUEUE_SIZE", val: "-1"},
		{name: "shutdown timeout", key: "BOOKSHELF_SHUTDOWN_TIMEOUT", val: "0s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)

			_, err := Load(viper.New(), "")
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)

	for _, want := range []string{"addr", "mode", "shutdown_timeout", "log.level", "log.format", "events.workers", "events.queue_size"} {
		assert.ErrorContains(t, err, want)
	}
}
