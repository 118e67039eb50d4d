package phases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// scriptedCompleter replays responses in call order. Safe for concurrent use
// by the conversion fan-out.
type scriptedCompleter struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (c *scriptedCompleter) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if len(c.responses) == 0 {
		return "continue", nil
	}
	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

// fakeTelemetry records every store call.
type fakeTelemetry struct {
	mu             sync.Mutex
	phases         []string
	runsStarted    []models.CreatePhaseRunRequest
	runsCompleted  []phaserun.Status
	failures       []*failure.Record
	errorLog       []string
	warningLog     []string
	insights       []string
	stepsCompleted []string
}

func (f *fakeTelemetry) SetPhase(_ context.Context, _, phase, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phases = append(f.phases, phase)
	return nil
}

func (f *fakeTelemetry) StartPhaseRun(_ context.Context, req models.CreatePhaseRunRequest) (*ent.PhaseRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runsStarted = append(f.runsStarted, req)
	return &ent.PhaseRun{ID: "run-1"}, nil
}

func (f *fakeTelemetry) CompletePhaseRun(_ context.Context, _ string, status phaserun.Status, _ map[string]any, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runsCompleted = append(f.runsCompleted, status)
	return nil
}

func (f *fakeTelemetry) RecordFailure(_ context.Context, _ string, record *failure.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, record)
	return nil
}

func (f *fakeTelemetry) AppendInsights(_ context.Context, _ string, insights []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insights = append(f.insights, insights...)
	return nil
}

func (f *fakeTelemetry) AppendErrors(_ context.Context, _, _ string, messages []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorLog = append(f.errorLog, messages...)
	return nil
}

func (f *fakeTelemetry) AppendWarnings(_ context.Context, _, _ string, messages []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warningLog = append(f.warningLog, messages...)
	return nil
}

func (f *fakeTelemetry) MarkStepCompleted(_ context.Context, _, step string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepsCompleted = append(f.stepsCompleted, step)
	return nil
}

func testConfig(t *testing.T, retries int) *config.Config {
	t.Helper()
	agents := map[string]*config.AgentConfig{
		"ChiefArchitect": {Role: "migration lead"},
		"EKSExpert":      {Role: "EKS expert", Tools: []string{"blob", "file"}},
		"YAMLConverter":  {Role: "manifest converter", Tools: []string{"file"}},
	}
	phases := map[config.Phase]*config.PhaseConfig{
		config.PhaseAnalysis: {
			Roster:      []string{"ChiefArchitect", "EKSExpert"},
			Manager:     "ChiefArchitect",
			MaxTurns:    5,
			MaxMessages: 20,
			PhaseRetry:  retries,
		},
		config.PhaseYAML: {
			Roster:      []string{"ChiefArchitect", "YAMLConverter"},
			Manager:     "ChiefArchitect",
			MaxTurns:    5,
			MaxMessages: 20,
			PhaseRetry:  retries,
		},
	}
	return &config.Config{
		AgentRegistry: config.NewAgentRegistry(agents),
		PhaseRegistry: config.NewPhaseRegistry(phases),
	}
}

const analysisPayload = `{"detected_platform": "EKS", "analyzed_files": ["deployment.yaml", "service.yaml"], "insights": ["workload uses IRSA"]}`

const softVerdict = `{"terminate": true, "reason": "phase complete", "kind": "soft_completion", "confidence": 0.9}`

func TestStepStartAnalysisSuccess(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"EKSExpert",      // selection
		analysisPayload,  // agent turn
		softVerdict,      // termination
	}}
	store := &fakeTelemetry{}
	step := NewStep(config.PhaseAnalysis, Dependencies{
		Config:    testConfig(t, 1),
		Telemetry: store,
		LLM:       completer,
	})

	state := &models.SharedState{ProcessID: "proc-1", SourceFolder: "source"}
	result, err := step.Start(context.Background(), "proc-1", state)
	require.NoError(t, err)

	assert.True(t, result.Completed())
	assert.Equal(t, 1, result.Attempts)
	assert.Nil(t, result.Failure)

	assert.True(t, state.AnalysisComplete)
	assert.Equal(t, "eks", state.DetectedPlatform)
	assert.Equal(t, []string{"deployment.yaml", "service.yaml"}, state.AnalyzedFiles)
	assert.Equal(t, []string{"workload uses IRSA"}, state.Insights)

	assert.Equal(t, []string{"analysis"}, store.phases)
	assert.Equal(t, []string{"workload uses IRSA"}, store.insights)
	assert.Equal(t, []string{"analysis"}, store.stepsCompleted)
	require.Len(t, store.runsStarted, 1)
	assert.Equal(t, 1, store.runsStarted[0].PhaseIndex)
	assert.Equal(t, []phaserun.Status{phaserun.StatusCompleted}, store.runsCompleted)
}

func TestStepStartRetriesErrorTermination(t *testing.T) {
	hardError := `{"terminate": true, "reason": "model produced garbage", "hard": true, "kind": "hard_error", "blocking_issues": ["unusable output"], "confidence": 1.0}`
	completer := &scriptedCompleter{responses: []string{
		// Attempt 1: fails with a retryable hard error.
		"EKSExpert", "unparseable noise", hardError,
		// Attempt 2: succeeds.
		"EKSExpert", analysisPayload, softVerdict,
	}}
	store := &fakeTelemetry{}
	step := NewStep(config.PhaseAnalysis, Dependencies{
		Config:    testConfig(t, 2),
		Telemetry: store,
		LLM:       completer,
	})

	state := &models.SharedState{ProcessID: "proc-1"}
	result, err := step.Start(context.Background(), "proc-1", state)
	require.NoError(t, err)

	assert.True(t, result.Completed())
	assert.Equal(t, 2, result.Attempts)
	require.Len(t, store.runsStarted, 2)
	assert.Equal(t, 1, store.runsStarted[0].Attempt)
	assert.Equal(t, 2, store.runsStarted[1].Attempt)
	assert.Equal(t, []phaserun.Status{phaserun.StatusFailed, phaserun.StatusCompleted}, store.runsCompleted)
	require.Len(t, store.failures, 1)
	assert.Equal(t, failure.VariantHardTermination, store.failures[0].Variant)
}

func TestStepStartBlockedDoesNotRetry(t *testing.T) {
	blocked := `{"terminate": true, "reason": "credentials missing", "hard": true, "kind": "hard_blocked", "blocking_issues": ["no container access"], "confidence": 1.0}`
	completer := &scriptedCompleter{responses: []string{
		"EKSExpert", "cannot proceed", blocked,
	}}
	store := &fakeTelemetry{}
	step := NewStep(config.PhaseAnalysis, Dependencies{
		Config:    testConfig(t, 3),
		Telemetry: store,
		LLM:       completer,
	})

	state := &models.SharedState{ProcessID: "proc-1"}
	result, err := step.Start(context.Background(), "proc-1", state)
	require.NoError(t, err)

	assert.False(t, result.Completed())
	assert.Equal(t, 1, result.Attempts, "blocked terminations are not retryable")
	require.NotNil(t, result.Failure)
	assert.True(t, result.Termination.ShouldEscalate())
	assert.False(t, state.AnalysisComplete)
	assert.Contains(t, store.errorLog, "credentials missing")
}

func TestStepStartYAMLFanOut(t *testing.T) {
	yamlPayload := `{"converted_files": ["converted/deployment.yaml"], "insights": []}`
	completer := &scriptedCompleter{responses: []string{
		"YAMLConverter", // selection
		yamlPayload,     // agent turn covers one of two files
		softVerdict,     // termination
		"apiVersion: v1\nkind: Service", // fan-out conversion of service.yaml
	}}
	store := &fakeTelemetry{}
	step := NewStep(config.PhaseYAML, Dependencies{
		Config:      testConfig(t, 1),
		Telemetry:   store,
		LLM:         completer,
		Concurrency: 1,
	})

	state := &models.SharedState{
		ProcessID:     "proc-1",
		OutputFolder:  "converted",
		AnalyzedFiles: []string{"deployment.yaml", "service.yaml"},
	}
	result, err := step.Start(context.Background(), "proc-1", state)
	require.NoError(t, err)

	assert.True(t, result.Completed())
	assert.True(t, state.YAMLComplete)
	assert.ElementsMatch(t,
		[]string{"converted/deployment.yaml", "converted/service.yaml"},
		state.ConvertedFiles)

	dimensions, ok := result.Payload["dimensions"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, dimensions["compute"])
	assert.Equal(t, 1, dimensions["network"])

	statuses, ok := result.Payload["conversion_status"].(map[string]any)
	require.True(t, ok)
	require.Len(t, statuses, 2)
	assert.Equal(t, map[string]any{"status": "converted"}, statuses["deployment.yaml"])
	serviceStatus, ok := statuses["service.yaml"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "converted", serviceStatus["status"])
	assert.Equal(t, "converted/service.yaml", serviceStatus["output"])
	assert.Contains(t, serviceStatus["preview"], "kind: Service")
}

func TestStepStartYAMLFanOutConversionFailure(t *testing.T) {
	yamlPayload := `{"converted_files": ["converted/deployment.yaml"], "insights": []}`
	completer := &scriptedCompleter{responses: []string{
		"YAMLConverter",
		yamlPayload,
		softVerdict,
		"", // the fan-out conversion comes back empty on every attempt
	}}
	store := &fakeTelemetry{}
	step := NewStep(config.PhaseYAML, Dependencies{
		Config:      testConfig(t, 1),
		Telemetry:   store,
		LLM:         completer,
		Concurrency: 1,
	})

	state := &models.SharedState{
		ProcessID:     "proc-1",
		OutputFolder:  "converted",
		AnalyzedFiles: []string{"deployment.yaml", "service.yaml"},
	}
	result, err := step.Start(context.Background(), "proc-1", state)
	require.NoError(t, err)

	assert.True(t, result.Completed(), "a per-file conversion failure does not fail the phase")
	assert.Equal(t, []string{"converted/deployment.yaml"}, state.ConvertedFiles)

	statuses, ok := result.Payload["conversion_status"].(map[string]any)
	require.True(t, ok)
	serviceStatus, ok := statuses["service.yaml"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "failed", serviceStatus["status"])
	assert.Contains(t, serviceStatus["error"], "empty conversion")

	require.Len(t, store.warningLog, 1)
	assert.Contains(t, store.warningLog[0], "service.yaml")
}

func TestStepStartUnknownPhaseConfig(t *testing.T) {
	step := NewStep(config.PhaseDesign, Dependencies{
		Config:    testConfig(t, 1),
		Telemetry: &fakeTelemetry{},
		LLM:       &scriptedCompleter{},
	})

	_, err := step.Start(context.Background(), "proc-1", &models.SharedState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "design")
}
