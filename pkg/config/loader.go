package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CloudShiftYAMLConfig represents the complete cloudshift.yaml file structure
type CloudShiftYAMLConfig struct {
	Agents     map[string]AgentConfig `yaml:"agents"`
	Phases     map[Phase]PhaseConfig  `yaml:"phases"`
	Dispatcher *DispatcherConfig      `yaml:"dispatcher"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Resolve environment settings (optionally augmented by a remote store)
//  2. Load cloudshift.yaml from configDir (optional file)
//  3. Expand environment variables
//  4. Merge built-in + user-defined agents and phases
//  5. Build in-memory registries
//  6. Select the credential source
//  7. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	var remote RemoteStore
	if endpoint := os.Getenv("APP_CONFIG_ENDPOINT"); endpoint != "" {
		store, err := NewHTTPKeyValueStore(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to reach remote settings store: %w", err)
		}
		remote = store
	}
	settings := LoadSettings(ctx, remote)

	cfg, err := load(configDir, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Credential = SelectCredential(DefaultCredentialProbes())

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"agents", cfg.AgentRegistry.Len(),
		"phases", cfg.PhaseRegistry.Len(),
		"queue", cfg.Dispatcher.QueueName,
		"credential", cfg.Credential.Kind)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(configDir string, settings *Settings) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load cloudshift.yaml (agents, phases, dispatcher overrides).
	// A missing file means builtin-only configuration.
	yamlConfig, err := loader.loadCloudShiftYAML()
	if err != nil {
		return nil, NewLoadError("cloudshift.yaml", err)
	}

	// 2. Merge built-in + user-defined components (user overrides built-in)
	builtin := GetBuiltinConfig()
	agents, err := mergeAgents(builtin.Agents, yamlConfig.Agents)
	if err != nil {
		return nil, err
	}
	phases, err := mergePhases(builtin.Phases, yamlConfig.Phases)
	if err != nil {
		return nil, err
	}

	// 3. Resolve dispatcher config: settings first, then YAML overrides
	dispatcher, err := DispatcherConfigFromSettings(settings)
	if err != nil {
		return nil, err
	}
	if yamlConfig.Dispatcher != nil {
		if err := mergo.Merge(dispatcher, yamlConfig.Dispatcher, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge dispatcher config: %w", err)
		}
	}

	// 4. Resolve model-service config (endpoint required)
	model, err := settings.ModelConfig()
	if err != nil {
		return nil, err
	}

	// 5. Resolve retention policy
	retention, err := RetentionConfigFromSettings(settings)
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir:     configDir,
		Settings:      settings,
		Dispatcher:    dispatcher,
		Retention:     retention,
		Model:         model,
		AgentRegistry: NewAgentRegistry(agents),
		PhaseRegistry: NewPhaseRegistry(phases),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCloudShiftYAML() (*CloudShiftYAMLConfig, error) {
	var config CloudShiftYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)
	config.Phases = make(map[Phase]PhaseConfig)

	err := l.loadYAML("cloudshift.yaml", &config)
	if err != nil {
		// The YAML file is optional: built-ins cover the full roster.
		if errors.Is(err, ErrConfigNotFound) {
			slog.Debug("No cloudshift.yaml found, using built-in configuration")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}
