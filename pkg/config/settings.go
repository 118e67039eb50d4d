package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Setting declares one configuration value: a logical name, the environment
// variable it reads from, and the default applied when neither the
// environment nor the remote store provides it.
type Setting struct {
	Name    string
	EnvVar  string
	Default string
}

// settingDefs is the full configuration surface. Resolution order per
// setting: environment variable → remote store → default.
var settingDefs = []Setting{
	{Name: "storage_account_name", EnvVar: "STORAGE_ACCOUNT_NAME", Default: ""},
	{Name: "queue_name", EnvVar: "MIGRATION_QUEUE_NAME", Default: "migration-jobs"},
	{Name: "model_endpoint", EnvVar: "MODEL_ENDPOINT", Default: ""},
	{Name: "model_api_key", EnvVar: "MODEL_API_KEY", Default: ""},
	{Name: "model_deployment", EnvVar: "MODEL_DEPLOYMENT", Default: "gpt-4o"},
	{Name: "model_api_version", EnvVar: "MODEL_API_VERSION", Default: "2024-06-01"},
	{Name: "max_completion_tokens", EnvVar: "MAX_COMPLETION_TOKENS", Default: "4096"},
	{Name: "model_temperature", EnvVar: "MODEL_TEMPERATURE", Default: "0.1"},
	{Name: "visibility_timeout_minutes", EnvVar: "VISIBILITY_TIMEOUT_MINUTES", Default: "5"},
	{Name: "max_retry_count", EnvVar: "MAX_RETRY_COUNT", Default: "0"},
	{Name: "poll_interval_seconds", EnvVar: "POLL_INTERVAL_SECONDS", Default: "5"},
	{Name: "message_timeout_minutes", EnvVar: "MESSAGE_TIMEOUT_MINUTES", Default: "25"},
	{Name: "max_concurrent_workers", EnvVar: "MAX_CONCURRENT_WORKERS", Default: "3"},
	{Name: "process_retention_days", EnvVar: "PROCESS_RETENTION_DAYS", Default: "90"},
	{Name: "dead_letter_retention_days", EnvVar: "DEAD_LETTER_RETENTION_DAYS", Default: "14"},
	{Name: "logging_enabled", EnvVar: "LOGGING_ENABLED", Default: "true"},
	{Name: "log_level", EnvVar: "LOG_LEVEL", Default: "info"},
}

// RemoteStore is a read-only key-value source that augments environment
// variables, addressed by a URL at startup.
type RemoteStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
}

// Settings holds the resolved configuration values keyed by logical name.
type Settings struct {
	values map[string]string
}

// LoadSettings resolves every declared setting. remote may be nil, in which
// case only the environment and defaults are consulted. Remote lookup
// failures are logged and fall through to the default — a flaky config
// service must not block startup when the environment is complete.
func LoadSettings(ctx context.Context, remote RemoteStore) *Settings {
	values := make(map[string]string, len(settingDefs))
	for _, def := range settingDefs {
		if v := os.Getenv(def.EnvVar); v != "" {
			values[def.Name] = v
			continue
		}
		if remote != nil {
			v, ok, err := remote.Get(ctx, def.EnvVar)
			if err != nil {
				slog.Warn("Remote setting lookup failed, using default",
					"setting", def.Name,
					"error", err)
			} else if ok && v != "" {
				values[def.Name] = v
				continue
			}
		}
		values[def.Name] = def.Default
	}
	return &Settings{values: values}
}

// String returns the resolved value for the named setting.
func (s *Settings) String(name string) string {
	return s.values[name]
}

// Int returns the named setting parsed as an integer.
func (s *Settings) Int(name string) (int, error) {
	v, err := strconv.Atoi(s.values[name])
	if err != nil {
		return 0, fmt.Errorf("%w: setting %q: %v", ErrInvalidValue, name, err)
	}
	return v, nil
}

// Float returns the named setting parsed as a float.
func (s *Settings) Float(name string) (float64, error) {
	v, err := strconv.ParseFloat(s.values[name], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: setting %q: %v", ErrInvalidValue, name, err)
	}
	return v, nil
}

// Bool returns the named setting parsed as a boolean.
func (s *Settings) Bool(name string) (bool, error) {
	v, err := strconv.ParseBool(s.values[name])
	if err != nil {
		return false, fmt.Errorf("%w: setting %q: %v", ErrInvalidValue, name, err)
	}
	return v, nil
}

// Minutes returns the named integer setting as a duration in minutes.
func (s *Settings) Minutes(name string) (time.Duration, error) {
	v, err := s.Int(name)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Minute, nil
}

// Seconds returns the named integer setting as a duration in seconds.
func (s *Settings) Seconds(name string) (time.Duration, error) {
	v, err := s.Int(name)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

// ModelConfig assembles the model-service configuration from settings.
// The endpoint is required; its absence is a fatal configuration error.
func (s *Settings) ModelConfig() (*ModelConfig, error) {
	endpoint := s.String("model_endpoint")
	if endpoint == "" {
		return nil, fmt.Errorf("%w: MODEL_ENDPOINT", ErrMissingRequiredField)
	}

	maxTokens, err := s.Int("max_completion_tokens")
	if err != nil {
		return nil, err
	}
	temperature, err := s.Float("model_temperature")
	if err != nil {
		return nil, err
	}

	return &ModelConfig{
		Endpoint:            endpoint,
		APIKey:              s.String("model_api_key"),
		Deployment:          s.String("model_deployment"),
		APIVersion:          s.String("model_api_version"),
		MaxCompletionTokens: maxTokens,
		Temperature:         float32(temperature),
	}, nil
}

// HTTPKeyValueStore fetches a flat JSON object of settings from a URL once
// and answers lookups from the cached document.
type HTTPKeyValueStore struct {
	endpoint string
	client   *http.Client

	values map[string]string
}

// NewHTTPKeyValueStore fetches the remote settings document. A non-2xx
// response or malformed body is an error; the caller decides whether the
// remote store is mandatory.
func NewHTTPKeyValueStore(ctx context.Context, endpoint string) (*HTTPKeyValueStore, error) {
	store := &HTTPKeyValueStore{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	if err := store.refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load remote settings from %s: %w", endpoint, err)
	}
	return store, nil
}

func (s *HTTPKeyValueStore) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote settings endpoint returned %d", resp.StatusCode)
	}

	values := make(map[string]string)
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	s.values = values
	return nil
}

// Get implements RemoteStore against the cached document.
func (s *HTTPKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}
