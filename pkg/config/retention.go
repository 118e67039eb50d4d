package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls how long finished process telemetry and
// dead-letter messages are kept.
type RetentionConfig struct {
	// ProcessRetentionDays is how long completed and failed process rows
	// (with their phase runs and agent records) are kept.
	ProcessRetentionDays int `yaml:"process_retention_days"`

	// DeadLetterRetentionDays is how long dead-lettered queue messages
	// are kept for inspection.
	DeadLetterRetentionDays int `yaml:"dead_letter_retention_days"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ProcessRetentionDays:    90,
		DeadLetterRetentionDays: 14,
		CleanupInterval:         6 * time.Hour,
	}
}

// RetentionConfigFromSettings builds the retention configuration from the
// resolved settings surface.
func RetentionConfigFromSettings(s *Settings) (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.ProcessRetentionDays, err = s.Int("process_retention_days"); err != nil {
		return nil, err
	}
	if cfg.DeadLetterRetentionDays, err = s.Int("dead_letter_retention_days"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks retention invariants.
func (c *RetentionConfig) Validate() error {
	if c.ProcessRetentionDays < 1 {
		return NewValidationError("retention", "cleanup", "process_retention_days", fmt.Errorf("must be at least 1"))
	}
	if c.DeadLetterRetentionDays < 1 {
		return NewValidationError("retention", "cleanup", "dead_letter_retention_days", fmt.Errorf("must be at least 1"))
	}
	if c.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup", "cleanup_interval", fmt.Errorf("must be positive"))
	}
	return nil
}
