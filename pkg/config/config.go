package config

// Config is the umbrella configuration object that encapsulates
// all settings, registries, and credential state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Resolved environment settings
	Settings *Settings

	// Queue dispatcher configuration
	Dispatcher *DispatcherConfig

	// Retention policy for finished telemetry and dead letters
	Retention *RetentionConfig

	// Model-service configuration
	Model *ModelConfig

	// Selected credential source
	Credential CredentialSpec

	// Component registries
	AgentRegistry *AgentRegistry
	PhaseRegistry *PhaseRegistry
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetPhase retrieves a phase configuration.
// This is a convenience method that wraps PhaseRegistry.Get().
func (c *Config) GetPhase(phase Phase) (*PhaseConfig, error) {
	return c.PhaseRegistry.Get(phase)
}
