package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cloudshift.yaml"), []byte(content), 0o644))
}

func TestInitializeBuiltinOnly(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	// Built-in roster covers every pipeline phase
	assert.Equal(t, 7, cfg.AgentRegistry.Len())
	assert.Equal(t, len(PhaseOrder()), cfg.PhaseRegistry.Len())

	analysis, err := cfg.GetPhase(PhaseAnalysis)
	require.NoError(t, err)
	assert.Equal(t, "ChiefArchitect", analysis.Manager)
	assert.Contains(t, analysis.Roster, "EKSExpert")
}

func TestInitializeUserOverridesBuiltin(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
agents:
  EKSExpert:
    instructions: "Focus on Fargate profiles."
  CostAnalyst:
    role: "Cost Analyst"
    description: "Estimates AKS running costs"
    tools: ["docs", "context"]
phases:
  analysis:
    roster: ["ChiefArchitect", "EKSExpert", "CostAnalyst"]
    manager: "ChiefArchitect"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	eks, err := cfg.GetAgent("EKSExpert")
	require.NoError(t, err)
	assert.Equal(t, "Focus on Fargate profiles.", eks.Instructions)
	assert.Equal(t, "EKS Platform Expert", eks.Role, "unset fields fall through to built-in")

	analysis, err := cfg.GetPhase(PhaseAnalysis)
	require.NoError(t, err)
	assert.Equal(t, []string{"ChiefArchitect", "EKSExpert", "CostAnalyst"}, analysis.Roster)
	assert.Equal(t, 30, analysis.MaxTurns, "unset phase fields fall through to built-in")
}

func TestInitializeRejectsUnknownRosterAgent(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
phases:
  design:
    roster: ["ChiefArchitect", "NoSuchAgent"]
    manager: "ChiefArchitect"
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchAgent")
}

func TestInitializeRejectsUnknownPhase(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
phases:
  deployment:
    roster: ["ChiefArchitect"]
    manager: "ChiefArchitect"
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phase")
}

func TestInitializeRequiresModelEndpoint(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestInitializeManagerMustBeInRoster(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
phases:
  documentation:
    roster: ["TechnicalWriter"]
    manager: "ChiefArchitect"
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manager")
}

func TestInitializeEnvExpansionInYAML(t *testing.T) {
	t.Setenv("MODEL_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("EXTRA_INSTRUCTIONS", "Prefer spot node pools.")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
agents:
  AKSExpert:
    instructions: "{{.EXTRA_INSTRUCTIONS}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	aks, err := cfg.GetAgent("AKSExpert")
	require.NoError(t, err)
	assert.Equal(t, "Prefer spot node pools.", aks.Instructions)
}

func TestPhaseOrderAndIndex(t *testing.T) {
	order := PhaseOrder()
	require.Len(t, order, 4)

	assert.Equal(t, 1, PhaseAnalysis.Index())
	assert.Equal(t, 2, PhaseDesign.Index())
	assert.Equal(t, 3, PhaseYAML.Index())
	assert.Equal(t, 4, PhaseDocumentation.Index())
	assert.Equal(t, 0, Phase("deployment").Index())
	assert.False(t, Phase("deployment").IsValid())
}
