// Package process sequences the migration phases for one job. The state
// machine owns the current-phase field of shared state, routes each
// phase-complete result to the next step, and finalizes the process through
// the telemetry store — it never persists intermediate data itself.
package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/phases"
	"github.com/cloudshift-ai/cloudshift/pkg/telemetry"
)

// Telemetry is the slice of the telemetry store the state machine uses.
type Telemetry interface {
	CreateProcess(ctx context.Context, req models.CreateProcessRequest) (*ent.MigrationProcess, error)
	Snapshot(ctx context.Context, processID string) (*models.ProcessSnapshot, error)
	Finalize(ctx context.Context, processID string, succeeded bool, outcome map[string]any, generatedFiles []string) error
	RecordFailure(ctx context.Context, processID string, record *failure.Record) error
}

// StepRunner is one phase step. *phases.Step satisfies it.
type StepRunner interface {
	Phase() config.Phase
	Start(ctx context.Context, processID string, state *models.SharedState) (*phases.Result, error)
}

// Outcome summarizes one pipeline run for the queue worker.
type Outcome struct {
	ProcessID string
	Succeeded bool

	// AlreadyCompleted marks an idempotent re-dispatch of a finished
	// process: nothing ran, the message should simply be acknowledged.
	AlreadyCompleted bool

	// Retry marks a retryable failure on a non-final delivery. The process
	// is left unfinished and the message goes back to the queue; the next
	// delivery re-runs it.
	Retry bool

	// FailedPhase and Failure are set when a phase ended the pipeline.
	FailedPhase config.Phase
	Failure     *failure.Record

	GeneratedFiles []string
	Summary        map[string]any
}

// FailureSummary renders the one-line description attached to released and
// dead-lettered queue messages.
func (o *Outcome) FailureSummary() string {
	if o.Failure != nil {
		if t := o.Failure.Termination; t != nil {
			return fmt.Sprintf("%s phase %s: %s", o.FailedPhase, t.Kind, t.Reason)
		}
		if sys := o.Failure.System; sys != nil {
			return fmt.Sprintf("%s phase system failure: %s", o.FailedPhase, sys.Message)
		}
	}
	return fmt.Sprintf("%s phase failed", o.FailedPhase)
}

// Machine drives the fixed phase pipeline.
type Machine struct {
	steps     []StepRunner
	telemetry Telemetry
}

// NewPipeline builds the four phase steps in execution order.
func NewPipeline(deps phases.Dependencies) []StepRunner {
	order := config.PhaseOrder()
	steps := make([]StepRunner, 0, len(order))
	for _, phase := range order {
		steps = append(steps, phases.NewStep(phase, deps))
	}
	return steps
}

// New creates a state machine over the given ordered steps.
func New(store Telemetry, steps []StepRunner) (*Machine, error) {
	if store == nil {
		return nil, fmt.Errorf("telemetry store is required")
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("at least one phase step is required")
	}
	return &Machine{steps: steps, telemetry: store}, nil
}

// Run executes the pipeline for one job. Each phase must complete before
// the next starts; a failed phase finalizes the process as failed with the
// failure record attached.
func (m *Machine) Run(ctx context.Context, job *models.JobMessage) (*Outcome, error) {
	state := models.NewSharedState(job)
	outcome := &Outcome{ProcessID: job.ProcessID}

	firstPhase := string(m.steps[0].Phase())
	_, err := m.telemetry.CreateProcess(ctx, models.CreateProcessRequest{
		ProcessID:       job.ProcessID,
		UserID:          job.UserID,
		Step:            firstPhase,
		Phase:           "initialization",
		ContainerName:   state.ContainerName,
		SourceFolder:    state.SourceFolder,
		WorkspaceFolder: state.WorkspaceFolder,
		OutputFolder:    state.OutputFolder,
	})
	if err != nil {
		if !errors.Is(err, telemetry.ErrAlreadyExists) {
			return nil, fmt.Errorf("failed to create process: %w", err)
		}
		// Re-dispatched message. A finished process is a no-op; an
		// unfinished one runs again — phase no-regress and attempt
		// bookkeeping make the duplicate writes harmless.
		snapshot, snapErr := m.telemetry.Snapshot(ctx, job.ProcessID)
		if snapErr != nil {
			return nil, fmt.Errorf("failed to inspect existing process: %w", snapErr)
		}
		if snapshot.Status == "completed" || snapshot.Status == "failed" {
			slog.Info("Skipping re-dispatch of finished process",
				"process_id", job.ProcessID,
				"status", snapshot.Status)
			outcome.AlreadyCompleted = true
			outcome.Succeeded = snapshot.Status == "completed"
			return outcome, nil
		}
		slog.Warn("Re-running unfinished process",
			"process_id", job.ProcessID,
			"last_phase", snapshot.Phase)
	}

	for _, step := range m.steps {
		phase := step.Phase()
		state.CurrentPhase = string(phase)

		result, err := step.Start(ctx, job.ProcessID, state)
		if err != nil {
			return m.finalizeSystemFailure(ctx, job.ProcessID, phase, state, err, outcome)
		}
		if !result.Completed() {
			return m.finalizeFailed(ctx, job, phase, result, outcome)
		}

		slog.Info("Phase completed",
			"process_id", job.ProcessID,
			"phase", phase,
			"attempts", result.Attempts)
	}

	return m.finalizeCompleted(ctx, job.ProcessID, state, outcome)
}

// finalizeCompleted closes a fully migrated process.
func (m *Machine) finalizeCompleted(ctx context.Context, processID string, state *models.SharedState, outcome *Outcome) (*Outcome, error) {
	summary := map[string]any{
		"detected_platform": state.DetectedPlatform,
		"analyzed_files":    len(state.AnalyzedFiles),
		"converted_files":   len(state.ConvertedFiles),
		"insights":          len(state.Insights),
	}
	if doc := state.DocumentationResult; doc != nil {
		if text, ok := doc["summary"].(string); ok && text != "" {
			summary["summary"] = text
		}
		if report, ok := doc["report_path"].(string); ok && report != "" {
			summary["report_path"] = report
			outcome.GeneratedFiles = append(outcome.GeneratedFiles, report)
		}
	}
	outcome.GeneratedFiles = append(outcome.GeneratedFiles, state.ConvertedFiles...)
	outcome.Summary = summary
	outcome.Succeeded = true

	if err := m.telemetry.Finalize(ctx, processID, true, summary, outcome.GeneratedFiles); err != nil {
		return nil, fmt.Errorf("failed to finalize completed process: %w", err)
	}
	return outcome, nil
}

// finalizeFailed closes a process whose phase ended with a failure record.
// A retryable termination on a non-final delivery skips finalization: the
// message returns to the queue and the next delivery re-runs the still-open
// process. Blocked terminations and exhausted budgets finalize as failed.
func (m *Machine) finalizeFailed(ctx context.Context, job *models.JobMessage, phase config.Phase, result *phases.Result, outcome *Outcome) (*Outcome, error) {
	outcome.FailedPhase = phase
	outcome.Failure = result.Failure

	summary := map[string]any{
		"failed_phase": string(phase),
		"attempts":     result.Attempts,
	}
	verdict := result.Termination
	if verdict != nil {
		summary["termination_kind"] = string(verdict.Kind)
		summary["manual_intervention"] = failure.ManualInterventionRequired(verdict)
		summary["escalation"] = string(failure.Escalation(verdict))
	}
	outcome.Summary = summary

	if verdict != nil && verdict.ShouldRetry() && !job.FinalAttempt {
		slog.Warn("Phase failed with a retryable termination, releasing for redelivery",
			"process_id", job.ProcessID,
			"phase", phase,
			"kind", verdict.Kind,
			"dequeue_count", job.DequeueCount)
		outcome.Retry = true
		return outcome, nil
	}

	if err := m.telemetry.Finalize(ctx, job.ProcessID, false, summary, nil); err != nil {
		return nil, fmt.Errorf("failed to finalize failed process: %w", err)
	}
	return outcome, nil
}

// finalizeSystemFailure handles a step that errored before producing a
// result (configuration gaps, store outages).
func (m *Machine) finalizeSystemFailure(ctx context.Context, processID string, phase config.Phase, state *models.SharedState, cause error, outcome *Outcome) (*Outcome, error) {
	record := failure.CollectSystemFailure(cause, failure.StepContext{
		ProcessID: processID,
		StepName:  string(phase),
		StepPhase: string(phase),
		State:     state,
	}, time.Now().UTC())

	if err := m.telemetry.RecordFailure(ctx, processID, record); err != nil {
		slog.Warn("Failed to persist system-failure record",
			"process_id", processID,
			"error", err)
	}

	outcome.FailedPhase = phase
	outcome.Failure = record
	summary := map[string]any{
		"failed_phase": string(phase),
		"error":        cause.Error(),
	}
	if err := m.telemetry.Finalize(ctx, processID, false, summary, nil); err != nil {
		return nil, fmt.Errorf("failed to finalize failed process: %w", err)
	}
	outcome.Summary = summary
	return outcome, nil
}
