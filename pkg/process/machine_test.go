package process

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/phases"
	"github.com/cloudshift-ai/cloudshift/pkg/telemetry"
)

// fakeStep is a StepRunner with a scripted outcome. mutate runs against
// shared state before the result is returned, standing in for the phase
// output a real group chat would apply.
type fakeStep struct {
	phase  config.Phase
	result *phases.Result
	err    error
	mutate func(*models.SharedState)

	calls      int
	seenPhases []string
}

func (s *fakeStep) Phase() config.Phase { return s.phase }

func (s *fakeStep) Start(_ context.Context, _ string, state *models.SharedState) (*phases.Result, error) {
	s.calls++
	s.seenPhases = append(s.seenPhases, state.CurrentPhase)
	if s.mutate != nil {
		s.mutate(state)
	}
	return s.result, s.err
}

// fakeStore records telemetry calls made by the machine.
type fakeStore struct {
	createErr      error
	snapshotStatus string

	created   []models.CreateProcessRequest
	finalized bool
	succeeded bool
	summary   map[string]any
	generated []string
	failures  []*failure.Record
	snapshots int
}

func (f *fakeStore) CreateProcess(_ context.Context, req models.CreateProcessRequest) (*ent.MigrationProcess, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &ent.MigrationProcess{ID: req.ProcessID}, nil
}

func (f *fakeStore) Snapshot(_ context.Context, processID string) (*models.ProcessSnapshot, error) {
	f.snapshots++
	return &models.ProcessSnapshot{ProcessID: processID, Status: f.snapshotStatus}, nil
}

func (f *fakeStore) Finalize(_ context.Context, _ string, succeeded bool, outcome map[string]any, generatedFiles []string) error {
	f.finalized = true
	f.succeeded = succeeded
	f.summary = outcome
	f.generated = generatedFiles
	return nil
}

func (f *fakeStore) RecordFailure(_ context.Context, _ string, record *failure.Record) error {
	f.failures = append(f.failures, record)
	return nil
}

func completedResult(phase config.Phase) *phases.Result {
	return &phases.Result{
		Phase:    phase,
		Attempts: 1,
		Termination: &agent.TerminationResult{
			Terminate:  true,
			Reason:     "phase complete",
			Kind:       agent.TerminationSoftCompletion,
			Confidence: 0.9,
		},
	}
}

func blockedResult(phase config.Phase) *phases.Result {
	verdict := agent.HardTermination(agent.TerminationHardBlocked, "credentials missing")
	return &phases.Result{
		Phase:       phase,
		Attempts:    1,
		Termination: verdict,
		Failure: failure.CollectHardTermination(verdict, failure.StepContext{
			ProcessID: "proc-1",
			StepName:  string(phase),
			StepPhase: string(phase),
		}, time.Now().UTC()),
	}
}

func timedOutResult(phase config.Phase) *phases.Result {
	verdict := agent.HardTermination(agent.TerminationHardTimeout, "turn cap reached")
	return &phases.Result{
		Phase:       phase,
		Attempts:    1,
		Termination: verdict,
		Failure: failure.CollectHardTermination(verdict, failure.StepContext{
			ProcessID: "proc-1",
			StepName:  string(phase),
			StepPhase: string(phase),
		}, time.Now().UTC()),
	}
}

func job() *models.JobMessage {
	return &models.JobMessage{ProcessID: "proc-1", UserID: "user-1"}
}

func fullPipeline() []*fakeStep {
	return []*fakeStep{
		{
			phase:  config.PhaseAnalysis,
			result: completedResult(config.PhaseAnalysis),
			mutate: func(s *models.SharedState) {
				s.DetectedPlatform = "eks"
				s.AnalyzedFiles = []string{"deployment.yaml", "service.yaml"}
			},
		},
		{phase: config.PhaseDesign, result: completedResult(config.PhaseDesign)},
		{
			phase:  config.PhaseYAML,
			result: completedResult(config.PhaseYAML),
			mutate: func(s *models.SharedState) {
				s.ConvertedFiles = []string{"converted/deployment.yaml", "converted/service.yaml"}
			},
		},
		{
			phase:  config.PhaseDocumentation,
			result: completedResult(config.PhaseDocumentation),
			mutate: func(s *models.SharedState) {
				s.DocumentationResult = map[string]any{
					"summary":     "migration complete",
					"report_path": "converted/MIGRATION.md",
				}
			},
		},
	}
}

func asRunners(steps []*fakeStep) []StepRunner {
	runners := make([]StepRunner, len(steps))
	for i, s := range steps {
		runners[i] = s
	}
	return runners
}

func TestMachineRunCompletesAllPhases(t *testing.T) {
	steps := fullPipeline()
	store := &fakeStore{}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.True(t, outcome.Succeeded)
	assert.False(t, outcome.AlreadyCompleted)
	assert.Empty(t, outcome.FailedPhase)

	// Each step saw its own phase as the current one.
	assert.Equal(t, []string{"analysis"}, steps[0].seenPhases)
	assert.Equal(t, []string{"design"}, steps[1].seenPhases)
	assert.Equal(t, []string{"yaml"}, steps[2].seenPhases)
	assert.Equal(t, []string{"documentation"}, steps[3].seenPhases)

	require.Len(t, store.created, 1)
	assert.Equal(t, "analysis", store.created[0].Step)
	assert.Equal(t, "initialization", store.created[0].Phase)

	assert.True(t, store.finalized)
	assert.True(t, store.succeeded)
	assert.Equal(t, "migration complete", store.summary["summary"])
	assert.Equal(t, "eks", store.summary["detected_platform"])
	assert.Equal(t, 2, store.summary["converted_files"])
	assert.Equal(t, []string{
		"converted/MIGRATION.md",
		"converted/deployment.yaml",
		"converted/service.yaml",
	}, store.generated)
}

func TestMachineRunStopsOnFailedPhase(t *testing.T) {
	steps := fullPipeline()
	steps[1].result = blockedResult(config.PhaseDesign)
	store := &fakeStore{}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, config.PhaseDesign, outcome.FailedPhase)
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, failure.VariantHardTermination, outcome.Failure.Variant)

	assert.Equal(t, 1, steps[0].calls)
	assert.Equal(t, 1, steps[1].calls)
	assert.Zero(t, steps[2].calls, "later phases must not run")
	assert.Zero(t, steps[3].calls)

	assert.True(t, store.finalized)
	assert.False(t, store.succeeded)
	assert.Equal(t, "design", store.summary["failed_phase"])
	assert.Equal(t, true, store.summary["manual_intervention"])
	assert.Equal(t, string(failure.EscalationCritical), store.summary["escalation"])
}

func TestMachineRunRetryableFailureLeavesProcessOpen(t *testing.T) {
	steps := fullPipeline()
	steps[1].result = timedOutResult(config.PhaseDesign)
	store := &fakeStore{}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.True(t, outcome.Retry, "a timeout with budget left goes back to the queue")
	assert.False(t, outcome.Succeeded)
	assert.Equal(t, config.PhaseDesign, outcome.FailedPhase)
	assert.Contains(t, outcome.FailureSummary(), "hard_timeout")

	assert.False(t, store.finalized, "the process stays open for the next delivery")
	assert.Zero(t, steps[2].calls)
	assert.Zero(t, steps[3].calls)
}

func TestMachineRunRetryableFailureOnFinalAttemptFinalizes(t *testing.T) {
	steps := fullPipeline()
	steps[1].result = timedOutResult(config.PhaseDesign)
	store := &fakeStore{}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	j := job()
	j.DequeueCount = 2
	j.FinalAttempt = true
	outcome, err := machine.Run(context.Background(), j)
	require.NoError(t, err)

	assert.False(t, outcome.Retry)
	assert.True(t, store.finalized)
	assert.False(t, store.succeeded)
	assert.Equal(t, "hard_timeout", store.summary["termination_kind"])
}

func TestMachineRunStepError(t *testing.T) {
	steps := fullPipeline()
	steps[0].result = nil
	steps[0].err = fmt.Errorf("phase analysis is not configured")
	store := &fakeStore{}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, config.PhaseAnalysis, outcome.FailedPhase)
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, failure.VariantSystemFailure, outcome.Failure.Variant)

	require.Len(t, store.failures, 1)
	assert.True(t, store.finalized)
	assert.False(t, store.succeeded)
	assert.Equal(t, "phase analysis is not configured", store.summary["error"])
}

func TestMachineRunSkipsFinishedProcess(t *testing.T) {
	steps := fullPipeline()
	store := &fakeStore{
		createErr:      telemetry.ErrAlreadyExists,
		snapshotStatus: "completed",
	}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.True(t, outcome.AlreadyCompleted)
	assert.True(t, outcome.Succeeded)
	assert.Zero(t, steps[0].calls, "no phase runs on a finished process")
	assert.False(t, store.finalized)
	assert.Equal(t, 1, store.snapshots)
}

func TestMachineRunResumesUnfinishedProcess(t *testing.T) {
	steps := fullPipeline()
	store := &fakeStore{
		createErr:      telemetry.ErrAlreadyExists,
		snapshotStatus: "active",
	}
	machine, err := New(store, asRunners(steps))
	require.NoError(t, err)

	outcome, err := machine.Run(context.Background(), job())
	require.NoError(t, err)

	assert.False(t, outcome.AlreadyCompleted)
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, 1, steps[0].calls)
}

func TestMachineRunCreateFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("database unavailable")}
	machine, err := New(store, asRunners(fullPipeline()))
	require.NoError(t, err)

	_, err = machine.Run(context.Background(), job())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, asRunners(fullPipeline()))
	assert.Error(t, err)

	_, err = New(&fakeStore{}, nil)
	assert.Error(t, err)
}
