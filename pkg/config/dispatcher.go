package config

import (
	"fmt"
	"log/slog"
	"time"
)

// DispatcherConfig controls how the queue dispatcher polls, leases, and
// retries migration jobs.
type DispatcherConfig struct {
	// QueueName is the logical queue the dispatcher drains.
	QueueName string `yaml:"queue_name"`

	// WorkerCount is the number of concurrent worker goroutines. Each
	// worker owns one process execution at a time.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval between queue polls.
	PollInterval time.Duration `yaml:"poll_interval"`

	// VisibilityTimeout is how long a leased message stays hidden from
	// other workers.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// MaxRetryCount bounds redelivery: a message whose dequeue count
	// exceeds it goes to the dead-letter queue.
	MaxRetryCount int `yaml:"max_retry_count"`

	// MessageTimeout is the maximum wall time for processing one message.
	MessageTimeout time.Duration `yaml:"message_timeout"`

	// GracefulShutdownTimeout is the maximum wait for in-flight workers
	// during shutdown before leases are released.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanSweepInterval is how often expired leases are swept back to
	// visible.
	OrphanSweepInterval time.Duration `yaml:"orphan_sweep_interval"`
}

// DefaultDispatcherConfig returns the built-in dispatcher defaults.
func DefaultDispatcherConfig() *DispatcherConfig {
	return &DispatcherConfig{
		QueueName:               "migration-jobs",
		WorkerCount:             3,
		PollInterval:            5 * time.Second,
		VisibilityTimeout:       5 * time.Minute,
		MaxRetryCount:           0,
		MessageTimeout:          25 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		OrphanSweepInterval:     1 * time.Minute,
	}
}

// DispatcherConfigFromSettings builds the dispatcher configuration from the
// resolved settings surface.
func DispatcherConfigFromSettings(s *Settings) (*DispatcherConfig, error) {
	cfg := DefaultDispatcherConfig()

	if name := s.String("queue_name"); name != "" {
		cfg.QueueName = name
	}

	var err error
	if cfg.VisibilityTimeout, err = s.Minutes("visibility_timeout_minutes"); err != nil {
		return nil, err
	}
	if cfg.MaxRetryCount, err = s.Int("max_retry_count"); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = s.Seconds("poll_interval_seconds"); err != nil {
		return nil, err
	}
	if cfg.MessageTimeout, err = s.Minutes("message_timeout_minutes"); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = s.Int("max_concurrent_workers"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dispatcher invariants and warns about lease/processing
// timing hazards.
func (c *DispatcherConfig) Validate() error {
	if c.QueueName == "" {
		return NewValidationError("dispatcher", "queue", "queue_name", ErrMissingRequiredField)
	}
	if c.WorkerCount < 1 {
		return NewValidationError("dispatcher", "queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if c.PollInterval <= 0 {
		return NewValidationError("dispatcher", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if c.VisibilityTimeout <= 0 {
		return NewValidationError("dispatcher", "queue", "visibility_timeout", fmt.Errorf("must be positive"))
	}
	if c.MaxRetryCount < 0 {
		return NewValidationError("dispatcher", "queue", "max_retry_count", fmt.Errorf("must not be negative"))
	}
	if c.MessageTimeout <= 0 {
		return NewValidationError("dispatcher", "queue", "message_timeout", fmt.Errorf("must be positive"))
	}

	// Leases are not renewed mid-flight. A message timeout longer than the
	// visibility timeout means a slow job's message can reappear and be
	// claimed twice; the telemetry store's process-id key makes the second
	// run a no-op, but the double work is worth a warning.
	if c.MessageTimeout > c.VisibilityTimeout {
		slog.Warn("Message timeout exceeds visibility timeout; slow jobs may be redelivered while still running",
			"message_timeout", c.MessageTimeout,
			"visibility_timeout", c.VisibilityTimeout)
	}

	return nil
}

// DeadLetterQueue returns the sibling queue that receives exhausted messages.
func (c *DispatcherConfig) DeadLetterQueue() string {
	return c.QueueName + "-dead-letter"
}
