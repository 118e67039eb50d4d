package config

import (
	"fmt"
)

// validToolCategories are the tool groups the agent-response observer knows
// how to classify.
var validToolCategories = map[string]bool{
	"blob":           true,
	"file":           true,
	"docs":           true,
	"datetime":       true,
	"context":        true,
	"memory":         true,
	"functionapp":    true,
	"infrastructure": true,
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Agents first so phase roster references are validated against a
	// known-good registry.

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validatePhases(); err != nil {
		return fmt.Errorf("phase validation failed: %w", err)
	}

	if err := v.cfg.Dispatcher.Validate(); err != nil {
		return fmt.Errorf("dispatcher validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		if agent.Role == "" {
			return NewValidationError("agent", name, "role", ErrMissingRequiredField)
		}

		for _, tool := range agent.Tools {
			if !validToolCategories[tool] {
				return NewValidationError("agent", name, "tools", fmt.Errorf("unknown tool category '%s'", tool))
			}
		}

		if agent.MaxCompletionTokens != nil && *agent.MaxCompletionTokens < 1 {
			return NewValidationError("agent", name, "max_completion_tokens", fmt.Errorf("must be at least 1"))
		}
	}

	return nil
}

func (v *ConfigValidator) validatePhases() error {
	// Every pipeline phase must be configured; extra phases are rejected at merge time.
	for _, phase := range PhaseOrder() {
		cfg, err := v.cfg.PhaseRegistry.Get(phase)
		if err != nil {
			return NewValidationError("phase", string(phase), "", err)
		}

		if len(cfg.Roster) == 0 {
			return NewValidationError("phase", string(phase), "roster", fmt.Errorf("at least one agent required"))
		}

		for _, agentName := range cfg.Roster {
			if !v.cfg.AgentRegistry.Has(agentName) {
				return NewValidationError("phase", string(phase), "roster", fmt.Errorf("agent '%s' not found", agentName))
			}
		}

		if cfg.Manager == "" {
			return NewValidationError("phase", string(phase), "manager", ErrMissingRequiredField)
		}
		managerInRoster := false
		for _, agentName := range cfg.Roster {
			if agentName == cfg.Manager {
				managerInRoster = true
				break
			}
		}
		if !managerInRoster {
			return NewValidationError("phase", string(phase), "manager", fmt.Errorf("manager '%s' must appear in roster", cfg.Manager))
		}

		if cfg.MaxTurns < 1 {
			return NewValidationError("phase", string(phase), "max_turns", fmt.Errorf("must be at least 1"))
		}
		if cfg.MaxMessages < 1 {
			return NewValidationError("phase", string(phase), "max_messages", fmt.Errorf("must be at least 1"))
		}
		if cfg.PhaseRetry < 1 {
			return NewValidationError("phase", string(phase), "phase_retry", fmt.Errorf("must be at least 1"))
		}
	}

	return nil
}
