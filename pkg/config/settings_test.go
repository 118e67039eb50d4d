package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemoteStore struct {
	values map[string]string
	err    error
}

func (f *fakeRemoteStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func TestLoadSettingsDefaults(t *testing.T) {
	s := LoadSettings(context.Background(), nil)

	assert.Equal(t, "migration-jobs", s.String("queue_name"))
	assert.Equal(t, "gpt-4o", s.String("model_deployment"))

	visibility, err := s.Minutes("visibility_timeout_minutes")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, visibility)

	retries, err := s.Int("max_retry_count")
	require.NoError(t, err)
	assert.Equal(t, 0, retries)

	poll, err := s.Seconds("poll_interval_seconds")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, poll)

	msgTimeout, err := s.Minutes("message_timeout_minutes")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, msgTimeout)
}

func TestLoadSettingsEnvironmentWins(t *testing.T) {
	t.Setenv("VISIBILITY_TIMEOUT_MINUTES", "10")
	remote := &fakeRemoteStore{values: map[string]string{
		"VISIBILITY_TIMEOUT_MINUTES": "99",
	}}

	s := LoadSettings(context.Background(), remote)

	visibility, err := s.Minutes("visibility_timeout_minutes")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, visibility, "environment must take precedence over remote store")
}

func TestLoadSettingsRemoteFallback(t *testing.T) {
	remote := &fakeRemoteStore{values: map[string]string{
		"MIGRATION_QUEUE_NAME": "remote-queue",
	}}

	s := LoadSettings(context.Background(), remote)
	assert.Equal(t, "remote-queue", s.String("queue_name"))
}

func TestLoadSettingsRemoteErrorFallsThroughToDefault(t *testing.T) {
	remote := &fakeRemoteStore{err: errors.New("connection refused")}

	s := LoadSettings(context.Background(), remote)
	assert.Equal(t, "migration-jobs", s.String("queue_name"),
		"remote failures must not block startup when defaults exist")
}

func TestSettingsInvalidValue(t *testing.T) {
	t.Setenv("MAX_RETRY_COUNT", "not-a-number")

	s := LoadSettings(context.Background(), nil)
	_, err := s.Int("max_retry_count")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestModelConfigRequiresEndpoint(t *testing.T) {
	s := LoadSettings(context.Background(), nil)

	_, err := s.ModelConfig()
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestModelConfigFromSettings(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("MODEL_API_KEY", "secret")
	t.Setenv("MAX_COMPLETION_TOKENS", "2048")
	t.Setenv("MODEL_TEMPERATURE", "0.2")

	s := LoadSettings(context.Background(), nil)
	model, err := s.ModelConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.openai.azure.com", model.Endpoint)
	assert.Equal(t, "secret", model.APIKey)
	assert.Equal(t, "gpt-4o", model.Deployment)
	assert.Equal(t, 2048, model.MaxCompletionTokens)
	assert.InDelta(t, 0.2, float64(model.Temperature), 0.001)
}
