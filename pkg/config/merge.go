package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeAgents combines built-in and user-defined agents. A user entry with
// the same name overrides the built-in field-by-field: set fields win,
// unset fields fall through to the built-in value.
func mergeAgents(builtin map[string]AgentConfig, user map[string]AgentConfig) (map[string]*AgentConfig, error) {
	merged := make(map[string]*AgentConfig, len(builtin)+len(user))

	for name, cfg := range builtin {
		c := cfg
		merged[name] = &c
	}

	for name, userCfg := range user {
		base, exists := merged[name]
		if !exists {
			c := userCfg
			merged[name] = &c
			continue
		}
		if err := mergo.Merge(base, userCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent %q: %w", name, err)
		}
	}

	return merged, nil
}

// mergePhases combines built-in and user-defined phase definitions with the
// same override semantics as mergeAgents. Unknown phase names are rejected
// here rather than at validation time so the error points at the YAML key.
func mergePhases(builtin map[Phase]PhaseConfig, user map[Phase]PhaseConfig) (map[Phase]*PhaseConfig, error) {
	merged := make(map[Phase]*PhaseConfig, len(builtin))

	for phase, cfg := range builtin {
		c := cfg
		merged[phase] = &c
	}

	for phase, userCfg := range user {
		if !phase.IsValid() {
			return nil, NewValidationError("phase", string(phase), "", fmt.Errorf("unknown phase name"))
		}
		base, exists := merged[phase]
		if !exists {
			c := userCfg
			merged[phase] = &c
			continue
		}
		if err := mergo.Merge(base, userCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge phase %q: %w", phase, err)
		}
	}

	return merged, nil
}
