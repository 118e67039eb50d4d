package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv substitutes environment variables into YAML content using Go
// template syntax: {{.MODEL_API_KEY}} becomes the value of MODEL_API_KEY,
// {{.DB_HOST}}:{{.DB_PORT}} expands both sides of the colon. The {{.VAR}}
// form is deliberate: agent configs carry literal $ characters in regex
// patterns, passwords, and shell snippets, so $-style expansion would
// corrupt them.
//
// Missing variables expand to empty string; config validation catches
// required fields left empty. Malformed template syntax returns the input
// unchanged so the YAML parser reports the real problem.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only: values may contain = themselves.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
