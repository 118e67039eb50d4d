package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatcherConfig(t *testing.T) {
	cfg := DefaultDispatcherConfig()

	assert.Equal(t, "migration-jobs", cfg.QueueName)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.VisibilityTimeout)
	assert.Equal(t, 0, cfg.MaxRetryCount)
	assert.Equal(t, 25*time.Minute, cfg.MessageTimeout)
	require.NoError(t, cfg.Validate())
}

func TestDispatcherConfigFromSettings(t *testing.T) {
	t.Setenv("VISIBILITY_TIMEOUT_MINUTES", "7")
	t.Setenv("MAX_RETRY_COUNT", "2")
	t.Setenv("POLL_INTERVAL_SECONDS", "3")
	t.Setenv("MESSAGE_TIMEOUT_MINUTES", "15")
	t.Setenv("MAX_CONCURRENT_WORKERS", "8")
	t.Setenv("MIGRATION_QUEUE_NAME", "custom-jobs")

	s := LoadSettings(context.Background(), nil)
	cfg, err := DispatcherConfigFromSettings(s)
	require.NoError(t, err)

	assert.Equal(t, "custom-jobs", cfg.QueueName)
	assert.Equal(t, 7*time.Minute, cfg.VisibilityTimeout)
	assert.Equal(t, 2, cfg.MaxRetryCount)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 15*time.Minute, cfg.MessageTimeout)
	assert.Equal(t, 8, cfg.WorkerCount)
}

func TestDispatcherConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DispatcherConfig)
	}{
		{"empty queue name", func(c *DispatcherConfig) { c.QueueName = "" }},
		{"zero workers", func(c *DispatcherConfig) { c.WorkerCount = 0 }},
		{"zero poll interval", func(c *DispatcherConfig) { c.PollInterval = 0 }},
		{"zero visibility timeout", func(c *DispatcherConfig) { c.VisibilityTimeout = 0 }},
		{"negative retries", func(c *DispatcherConfig) { c.MaxRetryCount = -1 }},
		{"zero message timeout", func(c *DispatcherConfig) { c.MessageTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDispatcherConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestDeadLetterQueueName(t *testing.T) {
	cfg := DefaultDispatcherConfig()
	cfg.QueueName = "migration-jobs"

	assert.Equal(t, "migration-jobs-dead-letter", cfg.DeadLetterQueue())
}
