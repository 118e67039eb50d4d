package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func probesWithEnv(env map[string]string, devCLI, interactive bool) CredentialProbes {
	return CredentialProbes{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		DeveloperCLIAvailable: func() bool { return devCLI },
		InteractiveAvailable:  func() bool { return interactive },
	}
}

func TestSelectCredentialManagedIdentity(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantKind CredentialKind
		wantID   string
	}{
		{
			name:     "system-assigned on managed host",
			env:      map[string]string{"IDENTITY_ENDPOINT": "http://169.254.169.254"},
			wantKind: CredentialManagedIdentitySystem,
		},
		{
			name: "user-assigned when client id present",
			env: map[string]string{
				"MSI_ENDPOINT":    "http://localhost:4141",
				"AZURE_CLIENT_ID": "abc-123",
			},
			wantKind: CredentialManagedIdentityUser,
			wantID:   "abc-123",
		},
		{
			name:     "federated token file counts as managed host",
			env:      map[string]string{"AZURE_FEDERATED_TOKEN_FILE": "/var/run/secrets/token"},
			wantKind: CredentialManagedIdentitySystem,
		},
		{
			name:     "empty indicator value is ignored",
			env:      map[string]string{"IDENTITY_ENDPOINT": ""},
			wantKind: CredentialComposite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Developer/interactive probes off so managed-host detection is isolated
			spec := SelectCredential(probesWithEnv(tt.env, false, false))
			assert.Equal(t, tt.wantKind, spec.Kind)
			assert.Equal(t, tt.wantID, spec.ClientID)
		})
	}
}

func TestSelectCredentialDeveloperFallbackChain(t *testing.T) {
	empty := map[string]string{}

	spec := SelectCredential(probesWithEnv(empty, true, true))
	assert.Equal(t, CredentialDeveloperCLI, spec.Kind, "developer CLI wins over interactive")

	spec = SelectCredential(probesWithEnv(empty, false, true))
	assert.Equal(t, CredentialInteractiveCLI, spec.Kind)

	spec = SelectCredential(probesWithEnv(empty, false, false))
	assert.Equal(t, CredentialComposite, spec.Kind)
}

func TestSelectCredentialManagedHostBeatsDeveloperCLI(t *testing.T) {
	env := map[string]string{"IDENTITY_ENDPOINT": "http://169.254.169.254"}

	spec := SelectCredential(probesWithEnv(env, true, true))
	assert.Equal(t, CredentialManagedIdentitySystem, spec.Kind)
}
