package config

import (
	"fmt"
	"sort"
	"sync"
)

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Names returns a sorted list of registered agent names (thread-safe)
func (r *AgentRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// PhaseRegistry stores phase configurations in memory with thread-safe access
type PhaseRegistry struct {
	phases map[Phase]*PhaseConfig
	mu     sync.RWMutex
}

// NewPhaseRegistry creates a new phase registry
func NewPhaseRegistry(phases map[Phase]*PhaseConfig) *PhaseRegistry {
	copied := make(map[Phase]*PhaseConfig, len(phases))
	for k, v := range phases {
		copied[k] = v
	}
	return &PhaseRegistry{
		phases: copied,
	}
}

// Get retrieves a phase configuration (thread-safe)
func (r *PhaseRegistry) Get(phase Phase) (*PhaseConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, exists := r.phases[phase]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPhaseNotFound, phase)
	}
	return cfg, nil
}

// GetAll returns all phase configurations (thread-safe, returns copy)
func (r *PhaseRegistry) GetAll() map[Phase]*PhaseConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[Phase]*PhaseConfig, len(r.phases))
	for k, v := range r.phases {
		result[k] = v
	}
	return result
}

// Len returns the number of phases in the registry (thread-safe)
func (r *PhaseRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.phases)
}
