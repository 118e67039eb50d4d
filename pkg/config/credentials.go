package config

import (
	"log/slog"
	"os"
	"os/exec"
)

// CredentialKind identifies which credential flavor the process should use
// when talking to cloud services.
type CredentialKind string

const (
	// CredentialManagedIdentityUser is a user-assigned managed identity
	// selected by client id.
	CredentialManagedIdentityUser CredentialKind = "managed-identity-user"
	// CredentialManagedIdentitySystem is the host's system-assigned identity.
	CredentialManagedIdentitySystem CredentialKind = "managed-identity-system"
	// CredentialDeveloperCLI reuses the developer's CLI login.
	CredentialDeveloperCLI CredentialKind = "developer-cli"
	// CredentialInteractiveCLI prompts the developer to log in.
	CredentialInteractiveCLI CredentialKind = "interactive-cli"
	// CredentialComposite chains all available sources as a fallback.
	CredentialComposite CredentialKind = "composite"
)

// CredentialSpec is the outcome of credential selection.
type CredentialSpec struct {
	Kind CredentialKind

	// ClientID is set only for user-assigned managed identities.
	ClientID string
}

// managedHostIndicators are environment variables whose presence means the
// process runs on a managed host with an ambient identity endpoint.
var managedHostIndicators = []string{
	"IDENTITY_ENDPOINT",
	"MSI_ENDPOINT",
	"IDENTITY_HEADER",
	"AZURE_FEDERATED_TOKEN_FILE",
}

// CredentialProbes abstracts the environment checks behind credential
// selection so the policy stays deterministic and testable.
type CredentialProbes struct {
	// LookupEnv reports an environment variable's value and presence.
	LookupEnv func(string) (string, bool)

	// DeveloperCLIAvailable reports whether a logged-in developer CLI
	// can mint tokens.
	DeveloperCLIAvailable func() bool

	// InteractiveAvailable reports whether an interactive login prompt
	// is possible (a terminal is attached).
	InteractiveAvailable func() bool
}

// DefaultCredentialProbes returns probes backed by the real process
// environment.
func DefaultCredentialProbes() CredentialProbes {
	return CredentialProbes{
		LookupEnv: os.LookupEnv,
		DeveloperCLIAvailable: func() bool {
			_, err := exec.LookPath("az")
			return err == nil
		},
		InteractiveAvailable: func() bool {
			fi, err := os.Stdin.Stat()
			if err != nil {
				return false
			}
			return fi.Mode()&os.ModeCharDevice != 0
		},
	}
}

// SelectCredential applies the deterministic credential policy:
//
//  1. Any managed-host indicator present → managed identity
//     (user-assigned when AZURE_CLIENT_ID is set, system-assigned otherwise).
//  2. Developer CLI available → developer-CLI credential.
//  3. Interactive login possible → interactive-CLI credential.
//  4. Otherwise → composite credential that tries every source at call time.
func SelectCredential(probes CredentialProbes) CredentialSpec {
	for _, indicator := range managedHostIndicators {
		if v, ok := probes.LookupEnv(indicator); ok && v != "" {
			if clientID, ok := probes.LookupEnv("AZURE_CLIENT_ID"); ok && clientID != "" {
				slog.Debug("Selected user-assigned managed identity",
					"indicator", indicator)
				return CredentialSpec{
					Kind:     CredentialManagedIdentityUser,
					ClientID: clientID,
				}
			}
			slog.Debug("Selected system-assigned managed identity",
				"indicator", indicator)
			return CredentialSpec{Kind: CredentialManagedIdentitySystem}
		}
	}

	if probes.DeveloperCLIAvailable != nil && probes.DeveloperCLIAvailable() {
		return CredentialSpec{Kind: CredentialDeveloperCLI}
	}

	if probes.InteractiveAvailable != nil && probes.InteractiveAvailable() {
		return CredentialSpec{Kind: CredentialInteractiveCLI}
	}

	slog.Warn("No preferred credential source detected, falling back to composite credential")
	return CredentialSpec{Kind: CredentialComposite}
}
