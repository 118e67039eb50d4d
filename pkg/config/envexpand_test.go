package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "substitutes a model credential",
			input: "api_key: {{.MODEL_API_KEY}}",
			env:   map[string]string{"MODEL_API_KEY": "sk-test-123"},
			want:  "api_key: sk-test-123",
		},
		{
			name:  "multiple substitutions in one line",
			input: "dsn: postgres://{{.DB_USER}}@{{.DB_HOST}}:{{.DB_PORT}}/cloudshift",
			env: map[string]string{
				"DB_USER": "cloudshift",
				"DB_HOST": "localhost",
				"DB_PORT": "5432",
			},
			want: "dsn: postgres://cloudshift@localhost:5432/cloudshift",
		},
		{
			name: "nested YAML structure",
			input: "database:\n  host: {{.DB_HOST}}\n  password: {{.DB_PASSWORD}}",
			env: map[string]string{
				"DB_HOST":     "db.internal",
				"DB_PASSWORD": "secret",
			},
			want: "database:\n  host: db.internal\n  password: secret",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "literal ${VAR} is not expanded",
			input: `pattern: "user_${USER_ID}_.*"`,
			env:   map[string]string{"USER_ID": "123"},
			want:  `pattern: "user_${USER_ID}_.*"`,
		},
		{
			name:  "literal $ in regex is preserved",
			input: `termination_pattern: "^TERMINATE$"`,
			env:   map[string]string{},
			want:  `termination_pattern: "^TERMINATE$"`,
		},
		{
			name:  "literal $ in password is preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.DB_PASSWORD}}",
			env:   map[string]string{"DB_PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "no template syntax passes through",
			input: "queue_name: migration-jobs\nworker_count: 4",
			env:   map[string]string{"UNUSED": "value"},
			want:  "queue_name: migration-jobs\nworker_count: 4",
		},
		{
			name:  "empty variable expands to empty",
			input: "container: {{.CONTAINER_NAME}}",
			env:   map[string]string{"CONTAINER_NAME": ""},
			want:  "container: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvEmptyInput(t *testing.T) {
	assert.Empty(t, string(ExpandEnv(nil)))
}

// Malformed template syntax must come back unchanged, without leaking any
// environment values, so the YAML parser reports the real problem.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key: {{.MODEL_API_KEY",
		},
		{
			name:  "empty template",
			input: "api_key: {{}}",
		},
		{
			name:  "undefined function",
			input: "api_key: {{.MODEL_API_KEY | upper}}",
		},
		{
			name:  "unclosed template inside otherwise valid YAML",
			input: "host: localhost\napi_key: {{.MODEL_API_KEY\nport: 8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MODEL_API_KEY", "should-not-appear")

			result := string(ExpandEnv([]byte(tt.input)))
			assert.Equal(t, tt.input, result)
			assert.NotContains(t, result, "should-not-appear")
		})
	}
}
