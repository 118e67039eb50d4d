// Package phases implements the four migration phase steps. Every step has
// the same shape: mark the phase started, build the roster, delegate to the
// group-chat runtime, and interpret the termination verdict into a phase
// result the process state machine can route.
package phases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/agent/groupchat"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/telemetry"
)

// Telemetry is the slice of the telemetry store the phase steps use.
// *telemetry.Store satisfies it.
type Telemetry interface {
	SetPhase(ctx context.Context, processID, phase, step string) error
	StartPhaseRun(ctx context.Context, req models.CreatePhaseRunRequest) (*ent.PhaseRun, error)
	CompletePhaseRun(ctx context.Context, runID string, status phaserun.Status, result map[string]any, errorMessage string) error
	RecordFailure(ctx context.Context, processID string, record *failure.Record) error
	AppendInsights(ctx context.Context, processID string, insights []string) error
	AppendErrors(ctx context.Context, processID, phase string, messages []string) error
	AppendWarnings(ctx context.Context, processID, phase string, messages []string) error
	MarkStepCompleted(ctx context.Context, processID, step string) error
}

// Dependencies carries everything a phase step needs.
type Dependencies struct {
	Config    *config.Config
	Telemetry Telemetry
	LLM       groupchat.Completer

	// Observers stream every agent message (tool detection, telemetry).
	Observers []agent.Observer

	// Concurrency caps parallel per-file conversion tasks. 0 is unbounded.
	Concurrency int
}

// Result is the outcome of one phase step after all attempts.
type Result struct {
	Phase    config.Phase
	Attempts int

	// Termination is the final conversation verdict, nil when the run
	// failed before producing one.
	Termination *agent.TerminationResult

	// Failure is set for blocking terminations and system failures.
	Failure *failure.Record

	// Payload is the phase output extracted from the closing message.
	Payload map[string]any
}

// Completed reports whether the phase reached its goal.
func (r *Result) Completed() bool {
	return r.Failure == nil && r.Termination != nil &&
		r.Termination.Terminate && !r.Termination.Hard
}

// retryable reports whether another attempt may succeed: system failures
// and error-type terminations retry, blocked does not.
func (r *Result) retryable() bool {
	if r.Failure == nil {
		return false
	}
	if r.Termination == nil {
		return true
	}
	return r.Termination.ShouldRetry()
}

// Step runs one phase of the migration pipeline.
type Step struct {
	phase config.Phase
	deps  Dependencies
}

// NewStep creates the step for one phase.
func NewStep(phase config.Phase, deps Dependencies) *Step {
	return &Step{phase: phase, deps: deps}
}

// Phase returns the phase this step runs.
func (s *Step) Phase() config.Phase {
	return s.phase
}

// Start executes the phase: telemetry phase mark, roster construction,
// group-chat delegation, verdict interpretation, bounded retries. Shared
// state is mutated only on success, through the phase payload.
func (s *Step) Start(ctx context.Context, processID string, state *models.SharedState) (*Result, error) {
	phaseName := string(s.phase)

	if err := s.deps.Telemetry.SetPhase(ctx, processID, phaseName, phaseName); err != nil {
		return nil, fmt.Errorf("failed to mark phase %s started: %w", phaseName, err)
	}

	phaseCfg, err := s.deps.Config.GetPhase(s.phase)
	if err != nil {
		return nil, fmt.Errorf("phase %s not configured: %w", phaseName, err)
	}

	roster, manager, err := s.buildRoster(phaseCfg)
	if err != nil {
		return nil, err
	}

	maxAttempts := phaseCfg.PhaseRetry
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var result *Result
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result = s.runAttempt(ctx, processID, state, phaseCfg, roster, manager, attempt)
		if result.retryable() && attempt < maxAttempts && ctx.Err() == nil {
			slog.Info("Retrying phase",
				"process_id", processID,
				"phase", phaseName,
				"attempt", attempt+1,
				"of", maxAttempts)
			continue
		}
		break
	}
	return result, nil
}

// buildRoster instantiates the configured agents and the manager rules.
func (s *Step) buildRoster(phaseCfg *config.PhaseConfig) ([]agent.Agent, groupchat.Manager, error) {
	roster := make([]agent.Agent, 0, len(phaseCfg.Roster))
	for _, name := range phaseCfg.Roster {
		agentCfg, err := s.deps.Config.GetAgent(name)
		if err != nil {
			return nil, groupchat.Manager{}, fmt.Errorf("roster agent %s: %w", name, err)
		}
		roster = append(roster, groupchat.NewChatAgent(name, agentCfg, s.deps.LLM))
	}

	manager := groupchat.NewLLMManager(
		phaseCfg.Manager,
		s.deps.LLM,
		string(s.phase),
		WellFormed(s.phase))
	return roster, manager, nil
}

// runAttempt runs one conversation and interprets its verdict.
func (s *Step) runAttempt(
	ctx context.Context,
	processID string,
	state *models.SharedState,
	phaseCfg *config.PhaseConfig,
	roster []agent.Agent,
	manager groupchat.Manager,
	attempt int,
) *Result {
	phaseName := string(s.phase)
	result := &Result{Phase: s.phase, Attempts: attempt}
	stepCtx := failure.StepContext{
		ProcessID: processID,
		StepName:  phaseName,
		StepPhase: phaseName,
		State:     state,
	}

	run, err := s.deps.Telemetry.StartPhaseRun(ctx, models.CreatePhaseRunRequest{
		ProcessID:  processID,
		PhaseName:  phaseName,
		PhaseIndex: s.phase.Index(),
		Attempt:    attempt,
	})
	if err != nil {
		if errors.Is(err, telemetry.ErrAlreadyExists) {
			// Re-dispatched message: the attempt was already recorded.
			slog.Warn("Phase attempt already recorded, continuing",
				"process_id", processID,
				"phase", phaseName,
				"attempt", attempt)
		} else {
			slog.Error("Failed to record phase run",
				"process_id", processID,
				"phase", phaseName,
				"error", err)
		}
	}

	runtime, err := groupchat.New(groupchat.Config{
		Step:        phaseName,
		MaxTurns:    phaseCfg.MaxTurns,
		MaxMessages: phaseCfg.MaxMessages,
	}, manager, roster, s.deps.Observers...)
	if err != nil {
		result.Failure = failure.CollectSystemFailure(err, stepCtx, time.Now().UTC())
		s.recordFailure(ctx, processID, run, result, err.Error())
		return result
	}

	chat, err := runtime.Run(ctx, processID, buildSeed(s.phase, state))
	if err != nil {
		result.Failure = failure.CollectSystemFailure(err, stepCtx, time.Now().UTC())
		s.recordFailure(ctx, processID, run, result, err.Error())
		return result
	}

	verdict := chat.Termination
	result.Termination = verdict

	if verdict.Terminate && !verdict.Hard {
		payload, ok := extractPayload(chat.Messages)
		if !ok {
			payload = map[string]any{}
		}
		if s.phase == config.PhaseYAML {
			s.fanOutConversions(ctx, processID, state, payload)
		}
		applyPhaseOutput(s.phase, state, payload)
		result.Payload = payload

		s.recordSuccess(ctx, processID, run, payload)
		return result
	}

	// Blocking termination.
	result.Failure = failure.CollectHardTermination(verdict, stepCtx, time.Now().UTC())
	s.recordFailure(ctx, processID, run, result, verdict.Reason)
	return result
}

// extractPayload takes the phase output from the newest assistant message.
func extractPayload(messages []agent.Message) (map[string]any, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != agent.RoleAssistant {
			continue
		}
		if payload, ok := ParsePayload(messages[i].Content); ok {
			return payload, true
		}
		return nil, false
	}
	return nil, false
}

// recordSuccess persists the completed attempt and phase-level bookkeeping.
func (s *Step) recordSuccess(ctx context.Context, processID string, run *ent.PhaseRun, payload map[string]any) {
	phaseName := string(s.phase)

	if insights := stringSlice(payload["insights"]); len(insights) > 0 {
		if err := s.deps.Telemetry.AppendInsights(ctx, processID, insights); err != nil {
			slog.Warn("Failed to record phase insights",
				"process_id", processID,
				"phase", phaseName,
				"error", err)
		}
	}
	if err := s.deps.Telemetry.MarkStepCompleted(ctx, processID, phaseName); err != nil {
		slog.Warn("Failed to mark step completed",
			"process_id", processID,
			"phase", phaseName,
			"error", err)
	}
	if run != nil {
		if err := s.deps.Telemetry.CompletePhaseRun(ctx, run.ID, phaserun.StatusCompleted, payload, ""); err != nil {
			slog.Warn("Failed to complete phase run",
				"process_id", processID,
				"phase", phaseName,
				"error", err)
		}
	}
}

// recordFailure persists the failed attempt, the failure record, and the
// error log entry.
func (s *Step) recordFailure(ctx context.Context, processID string, run *ent.PhaseRun, result *Result, reason string) {
	phaseName := string(s.phase)

	if err := s.deps.Telemetry.RecordFailure(ctx, processID, result.Failure); err != nil {
		slog.Warn("Failed to persist failure record",
			"process_id", processID,
			"phase", phaseName,
			"error", err)
	}
	if err := s.deps.Telemetry.AppendErrors(ctx, processID, phaseName, []string{reason}); err != nil {
		slog.Warn("Failed to append error log",
			"process_id", processID,
			"phase", phaseName,
			"error", err)
	}
	if run != nil {
		status := phaserun.StatusFailed
		if result.Termination != nil && result.Termination.Kind == agent.TerminationHardTimeout {
			status = phaserun.StatusTimedOut
		}
		if err := s.deps.Telemetry.CompletePhaseRun(ctx, run.ID, status, nil, reason); err != nil {
			slog.Warn("Failed to complete phase run",
				"process_id", processID,
				"phase", phaseName,
				"error", err)
		}
	}
}
