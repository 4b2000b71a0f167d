package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("overrides set variables only", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		err := cfg.applyEnvFrom(map[string]string{
			"PREPOP_LISTEN_ADDR":  "0.0.0.0:8181",
			"PREPOP_LOG_LEVEL":    "debug",
			"PREPOP_FLAG":         "fill",
			"PREPOP_READ_TIMEOUT": "250ms",
		})
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8181", cfg.Listener.Address)
		assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
		assert.Equal(t, LogFormatText, cfg.Logging.Format)
		assert.Equal(t, "fill", cfg.PrePopulate.Flag)
		assert.Equal(t, 250*time.Millisecond, cfg.Listener.ReadTimeout.AsDuration())
		assert.Equal(t, 10*time.Second, cfg.Listener.WriteTimeout.AsDuration())
		require.NoError(t, cfg.Validate())
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		err := cfg.applyEnvFrom(map[string]string{"PREPOP_IDLE_TIMEOUT": "forever"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}

func TestConfig_ApplyEnvProcess(t *testing.T) {
	t.Setenv("PREPOP_LOG_FORMAT", "json")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}
