package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWatcherDefaults(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "")
	t.Setenv("POLL_TIMEOUT", "")

	cfg := LoadConfig()
	assert.Equal(t, 2*time.Second, cfg.Watcher.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Watcher.PollTimeout)
}

func TestLoadConfigWatcherFromEnv(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("POLL_TIMEOUT", "3m")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.Watcher.PollInterval)
	assert.Equal(t, 3*time.Minute, cfg.Watcher.PollTimeout)
}

func TestLoadConfigIgnoresMalformedDurations(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 2*time.Second, cfg.Watcher.PollInterval)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/bok"},
		Server:   ServerConfig{Addr: ":8080"},
		Runner:   RunnerConfig{BaseURL: "http://localhost:9000"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Runner.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
