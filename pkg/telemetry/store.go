// Package telemetry persists process status, per-agent activity, and
// tool-usage events, and projects read-only snapshots for dashboards.
//
// Writers for the same process are serialized through a per-process lock;
// activity-class writes retry a bounded number of times and their persistent
// failure is reported to the caller, which logs and continues — telemetry
// must never abort a migration.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

const (
	// Critical writes (create, phase transition, finalize) detach from the
	// request context so shutdown cannot lose a state transition.
	criticalWriteTimeout = 10 * time.Second
	activityWriteTimeout = 5 * time.Second

	// Activity writes retry transient failures before giving up.
	activityWriteAttempts = 3
	activityWriteBackoff  = 100 * time.Millisecond
)

// phaseRank orders the pipeline phases for the no-regress check.
// completed and failed are both terminal.
var phaseRank = map[string]int{
	"initialization": 0,
	"analysis":       1,
	"design":         2,
	"yaml":           3,
	"documentation":  4,
	"completed":      5,
	"failed":         5,
}

// Store is the telemetry store backed by PostgreSQL via ent.
type Store struct {
	client *ent.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a telemetry store on the given database client.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		locks:  make(map[string]*sync.Mutex),
	}
}

// processLock returns the serialization lock for one process id.
func (s *Store) processLock(processID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[processID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[processID] = lock
	}
	return lock
}

// ReleaseProcess drops the per-process lock after a process reaches a
// terminal state. Safe to call for unknown ids.
func (s *Store) ReleaseProcess(processID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, processID)
}

// CreateProcess inserts a new process status record. Returns ErrAlreadyExists
// when a record with the same process id is present.
func (s *Store) CreateProcess(ctx context.Context, req models.CreateProcessRequest) (*ent.MigrationProcess, error) {
	if req.ProcessID == "" {
		return nil, NewValidationError("process_id", "is required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "is required")
	}
	if req.Phase != "" {
		if _, ok := phaseRank[req.Phase]; !ok {
			return nil, NewValidationError("phase", fmt.Sprintf("unknown phase '%s'", req.Phase))
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.MigrationProcess.Create().
		SetID(req.ProcessID).
		SetUserID(req.UserID).
		SetCurrentStep(req.Step).
		SetLastUpdateTime(time.Now().UTC())
	if req.Phase != "" {
		builder.SetPhase(migrationprocess.Phase(req.Phase))
	}
	if req.SourcePlatform != "" {
		builder.SetSourcePlatform(req.SourcePlatform)
	}
	if req.ContainerName != "" {
		builder.SetContainerName(req.ContainerName)
	}
	if req.SourceFolder != "" {
		builder.SetSourceFolder(req.SourceFolder)
	}
	if req.WorkspaceFolder != "" {
		builder.SetWorkspaceFolder(req.WorkspaceFolder)
	}
	if req.OutputFolder != "" {
		builder.SetOutputFolder(req.OutputFolder)
	}

	process, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: process %s", ErrAlreadyExists, req.ProcessID)
		}
		return nil, fmt.Errorf("failed to create process record: %w", err)
	}

	slog.Info("Created process record",
		"process_id", process.ID,
		"user_id", process.UserID,
		"phase", process.Phase)
	return process, nil
}

// UpdateAgentActivity upserts the named agent record, pushes an entry onto
// its bounded history, and advances the process last-update time.
func (s *Store) UpdateAgentActivity(ctx context.Context, req models.UpdateAgentActivityRequest) error {
	if req.ProcessID == "" {
		return NewValidationError("process_id", "is required")
	}
	if req.AgentName == "" {
		return NewValidationError("agent_name", "is required")
	}
	if req.Action == "" {
		return NewValidationError("action", "is required")
	}

	entry := models.ActivityEntry{
		Timestamp:      time.Now().UTC(),
		Action:         req.Action,
		MessagePreview: models.TruncatePreview(req.MessagePreview),
		Step:           req.Step,
		ToolUsed:       req.ToolUsed,
	}
	return s.upsertAgentRecord(req.ProcessID, req.AgentName, entry, &speakingState{
		speaking: req.IsSpeaking,
		thinking: req.IsThinking,
	})
}

// TrackToolUsage records a tool-usage event as an agent-activity entry
// carrying the tool fields.
func (s *Store) TrackToolUsage(ctx context.Context, req models.TrackToolUsageRequest) error {
	if req.ProcessID == "" {
		return NewValidationError("process_id", "is required")
	}
	if req.AgentName == "" {
		return NewValidationError("agent_name", "is required")
	}
	if req.ToolName == "" {
		return NewValidationError("tool_name", "is required")
	}

	preview := req.ToolResultPreview
	if preview == "" {
		preview = req.ToolDetails
	}
	entry := models.ActivityEntry{
		Timestamp:      time.Now().UTC(),
		Action:         "tool_usage",
		MessagePreview: models.TruncatePreview(preview),
		ToolUsed:       toolLabel(req.ToolName, req.ToolAction),
	}
	return s.upsertAgentRecord(req.ProcessID, req.AgentName, entry, nil)
}

// toolLabel joins category and action into the stored tool identifier.
func toolLabel(name, action string) string {
	if action == "" {
		return name
	}
	return name + "/" + action
}

// speakingState carries the speaking/thinking flags of an activity write.
// A nil state leaves the stored flags untouched (tool-usage events say
// nothing about who holds the floor).
type speakingState struct {
	speaking bool
	thinking bool
}

// upsertAgentRecord serializes per process, retries transient write failures,
// and keeps the history bounded. When state marks the agent as speaking, the
// flag is cleared on the process's other agents in the same transaction so at
// most one agent holds it.
func (s *Store) upsertAgentRecord(processID, agentName string, entry models.ActivityEntry, state *speakingState) error {
	lock := s.processLock(processID)
	lock.Lock()
	defer lock.Unlock()

	return s.withRetries(fmt.Sprintf("agent activity for %s/%s", processID, agentName), func() error {
		writeCtx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
		defer cancel()

		tx, err := s.client.Tx(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()

		record, err := tx.AgentRecord.Query().
			Where(
				agentrecord.ProcessID(processID),
				agentrecord.AgentName(agentName),
			).
			Only(writeCtx)
		switch {
		case ent.IsNotFound(err):
			create := tx.AgentRecord.Create().
				SetID(uuid.NewString()).
				SetProcessID(processID).
				SetAgentName(agentName).
				SetCurrentAction(entry.Action).
				SetLastMessagePreview(entry.MessagePreview).
				SetParticipationStatus("active").
				SetRecentActivity(appendActivity(nil, entry)).
				SetLastToolUsed(entry.ToolUsed).
				SetLastUpdateTime(entry.Timestamp)
			if state != nil {
				create.SetIsSpeaking(state.speaking).SetIsThinking(state.thinking)
			}
			if _, err := create.Save(writeCtx); err != nil {
				return fmt.Errorf("failed to create agent record: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to query agent record: %w", err)
		default:
			update := tx.AgentRecord.UpdateOne(record).
				SetCurrentAction(entry.Action).
				SetParticipationStatus("active").
				SetRecentActivity(appendActivity(record.RecentActivity, entry)).
				SetLastUpdateTime(advance(record.LastUpdateTime, entry.Timestamp))
			if entry.MessagePreview != "" {
				update.SetLastMessagePreview(entry.MessagePreview)
			}
			if entry.ToolUsed != "" {
				update.SetLastToolUsed(entry.ToolUsed)
			}
			if state != nil {
				update.SetIsSpeaking(state.speaking).SetIsThinking(state.thinking)
			}
			if err := update.Exec(writeCtx); err != nil {
				return fmt.Errorf("failed to update agent record: %w", err)
			}
		}

		if state != nil && state.speaking {
			_, err = tx.AgentRecord.Update().
				Where(
					agentrecord.ProcessID(processID),
					agentrecord.AgentNameNEQ(agentName),
				).
				SetIsSpeaking(false).
				Save(writeCtx)
			if err != nil {
				return fmt.Errorf("failed to clear speaking flag: %w", err)
			}
		}

		// Advance the process clock without regressing it.
		_, err = tx.MigrationProcess.Update().
			Where(
				migrationprocess.ID(processID),
				migrationprocess.LastUpdateTimeLT(entry.Timestamp),
			).
			SetLastUpdateTime(entry.Timestamp).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to advance process update time: %w", err)
		}

		return tx.Commit()
	})
}

// withRetries runs op up to activityWriteAttempts times with linear backoff.
func (s *Store) withRetries(what string, op func() error) error {
	var err error
	for attempt := 1; attempt <= activityWriteAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt < activityWriteAttempts {
			slog.Warn("Telemetry write failed, retrying",
				"write", what,
				"attempt", attempt,
				"error", err)
			time.Sleep(time.Duration(attempt) * activityWriteBackoff)
		}
	}
	slog.Error("Telemetry write failed after retries", "write", what, "error", err)
	return err
}

// SetPhase transitions the process to the given phase and step atomically.
// Stored phases never regress: a backwards transition is ignored so a
// redelivered job can replay already-completed phases without corrupting the
// dashboard projection. Re-entering the current phase still writes, which
// refreshes phase_started_at for the attempt.
func (s *Store) SetPhase(ctx context.Context, processID, phase, step string) error {
	if processID == "" {
		return NewValidationError("process_id", "is required")
	}
	newRank, ok := phaseRank[phase]
	if !ok {
		return NewValidationError("phase", fmt.Sprintf("unknown phase '%s'", phase))
	}

	lock := s.processLock(processID)
	lock.Lock()
	defer lock.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	process, err := tx.MigrationProcess.Query().
		Where(migrationprocess.ID(processID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, processID)
		}
		return fmt.Errorf("failed to load process: %w", err)
	}

	if newRank < phaseRank[string(process.Phase)] {
		slog.Info("Ignoring backwards phase transition",
			"process_id", processID,
			"stored_phase", process.Phase,
			"requested_phase", phase)
		return nil
	}

	now := time.Now().UTC()
	err = tx.MigrationProcess.UpdateOne(process).
		SetPhase(migrationprocess.Phase(phase)).
		SetCurrentStep(step).
		SetPhaseStartedAt(now).
		SetLastUpdateTime(advance(process.LastUpdateTime, now)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set phase: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit phase transition: %w", err)
	}

	slog.Info("Process phase transition",
		"process_id", processID,
		"phase", phase,
		"step", step)
	return nil
}

// Finalize marks the process completed or failed and attaches the final
// outcome map and generated-file list.
func (s *Store) Finalize(ctx context.Context, processID string, succeeded bool, outcome map[string]any, generatedFiles []string) error {
	if processID == "" {
		return NewValidationError("process_id", "is required")
	}

	lock := s.processLock(processID)
	lock.Lock()
	defer lock.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	process, err := tx.MigrationProcess.Query().
		Where(migrationprocess.ID(processID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, processID)
		}
		return fmt.Errorf("failed to load process: %w", err)
	}

	status := migrationprocess.StatusCompleted
	phase := migrationprocess.PhaseCompleted
	if !succeeded {
		status = migrationprocess.StatusFailed
		phase = migrationprocess.PhaseFailed
	}

	now := time.Now().UTC()
	update := tx.MigrationProcess.UpdateOne(process).
		SetStatus(status).
		SetPhase(phase).
		SetCompletedAt(now).
		SetLastUpdateTime(advance(process.LastUpdateTime, now))
	if outcome != nil {
		update.SetOutcome(outcome)
	}
	if len(generatedFiles) > 0 {
		update.SetGeneratedFiles(generatedFiles)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to finalize process: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit finalize: %w", err)
	}

	slog.Info("Finalized process",
		"process_id", processID,
		"status", status,
		"generated_files", len(generatedFiles))
	return nil
}

// RecordFailure attaches a step-failure record to the process row.
func (s *Store) RecordFailure(ctx context.Context, processID string, record *failure.Record) error {
	if processID == "" {
		return NewValidationError("process_id", "is required")
	}
	if record == nil {
		return NewValidationError("record", "is required")
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode failure record: %w", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return fmt.Errorf("failed to encode failure record: %w", err)
	}

	lock := s.processLock(processID)
	lock.Lock()
	defer lock.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	count, err := s.client.MigrationProcess.Update().
		Where(migrationprocess.ID(processID)).
		SetFailure(asMap).
		SetLastUpdateTime(time.Now().UTC()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, processID)
	}
	return nil
}

// AppendInsights merges new expert insights into the process record,
// preserving order and dropping duplicates.
func (s *Store) AppendInsights(ctx context.Context, processID string, insights []string) error {
	if len(insights) == 0 {
		return nil
	}
	return s.mutateProcess(processID, func(process *ent.MigrationProcess, update *ent.MigrationProcessUpdateOne) {
		update.SetInsights(mergeStrings(process.Insights, insights))
	})
}

// MarkStepCompleted appends the step to the completed list if absent.
func (s *Store) MarkStepCompleted(ctx context.Context, processID, step string) error {
	if step == "" {
		return NewValidationError("step", "is required")
	}
	return s.mutateProcess(processID, func(process *ent.MigrationProcess, update *ent.MigrationProcessUpdateOne) {
		update.SetStepsCompleted(mergeStrings(process.StepsCompleted, []string{step}))
	})
}

// AppendErrors adds phase-prefixed entries to the process error log.
func (s *Store) AppendErrors(ctx context.Context, processID, phase string, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return s.mutateProcess(processID, func(process *ent.MigrationProcess, update *ent.MigrationProcessUpdateOne) {
		update.SetErrorLog(mergeStrings(process.ErrorLog, prefixMessages(phase, messages)))
	})
}

// AppendWarnings adds phase-prefixed entries to the process warning log.
func (s *Store) AppendWarnings(ctx context.Context, processID, phase string, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return s.mutateProcess(processID, func(process *ent.MigrationProcess, update *ent.MigrationProcessUpdateOne) {
		update.SetWarningLog(mergeStrings(process.WarningLog, prefixMessages(phase, messages)))
	})
}

// mutateProcess runs a read-modify-write on one process row under the
// per-process lock.
func (s *Store) mutateProcess(processID string, mutate func(*ent.MigrationProcess, *ent.MigrationProcessUpdateOne)) error {
	if processID == "" {
		return NewValidationError("process_id", "is required")
	}

	lock := s.processLock(processID)
	lock.Lock()
	defer lock.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	process, err := tx.MigrationProcess.Query().
		Where(migrationprocess.ID(processID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, processID)
		}
		return fmt.Errorf("failed to load process: %w", err)
	}

	update := tx.MigrationProcess.UpdateOne(process).
		SetLastUpdateTime(advance(process.LastUpdateTime, time.Now().UTC()))
	mutate(process, update)
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update process: %w", err)
	}
	return tx.Commit()
}

// Snapshot returns the read-only projection combining process-level fields
// with the flattened agent records.
func (s *Store) Snapshot(ctx context.Context, processID string) (*models.ProcessSnapshot, error) {
	if processID == "" {
		return nil, NewValidationError("process_id", "is required")
	}

	process, err := s.client.MigrationProcess.Query().
		Where(migrationprocess.ID(processID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, processID)
		}
		return nil, fmt.Errorf("failed to load process: %w", err)
	}

	records, err := s.client.AgentRecord.Query().
		Where(agentrecord.ProcessID(processID)).
		Order(ent.Asc(agentrecord.FieldAgentName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent records: %w", err)
	}

	return buildSnapshot(process, records), nil
}

// StartPhaseRun records the start of one phase attempt.
func (s *Store) StartPhaseRun(ctx context.Context, req models.CreatePhaseRunRequest) (*ent.PhaseRun, error) {
	if req.ProcessID == "" {
		return nil, NewValidationError("process_id", "is required")
	}
	if req.PhaseName == "" {
		return nil, NewValidationError("phase_name", "is required")
	}
	if req.Attempt < 1 {
		return nil, NewValidationError("attempt", "must be >= 1")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	run, err := s.client.PhaseRun.Create().
		SetID(uuid.NewString()).
		SetProcessID(req.ProcessID).
		SetPhaseName(req.PhaseName).
		SetPhaseIndex(req.PhaseIndex).
		SetAttempt(req.Attempt).
		SetStatus(phaserun.StatusActive).
		SetStartedAt(time.Now().UTC()).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: phase run %s/%s attempt %d",
				ErrAlreadyExists, req.ProcessID, req.PhaseName, req.Attempt)
		}
		return nil, fmt.Errorf("failed to create phase run: %w", err)
	}
	return run, nil
}

// CompletePhaseRun closes a phase attempt with its terminal status, result
// payload, and optional error message.
func (s *Store) CompletePhaseRun(ctx context.Context, runID string, status phaserun.Status, result map[string]any, errorMessage string) error {
	if runID == "" {
		return NewValidationError("phase_run_id", "is required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	run, err := s.client.PhaseRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: phase run %s", ErrNotFound, runID)
		}
		return fmt.Errorf("failed to load phase run: %w", err)
	}

	now := time.Now().UTC()
	update := s.client.PhaseRun.UpdateOne(run).
		SetStatus(status).
		SetCompletedAt(now)
	if run.StartedAt != nil {
		update.SetDurationMs(int(now.Sub(*run.StartedAt).Milliseconds()))
	}
	if result != nil {
		update.SetResult(result)
	}
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to complete phase run: %w", err)
	}
	return nil
}

// advance keeps last_update_time monotonic: the stored value never regresses
// even if clocks skew between writers.
func advance(existing, candidate time.Time) time.Time {
	if candidate.After(existing) {
		return candidate
	}
	return existing
}

// appendActivity pushes an entry onto the history and evicts oldest entries
// past the cap.
func appendActivity(history []map[string]interface{}, entry models.ActivityEntry) []map[string]interface{} {
	history = append(history, activityToMap(entry))
	if overflow := len(history) - models.MaxActivityHistory; overflow > 0 {
		history = history[overflow:]
	}
	return history
}

// activityToMap serializes an entry for JSON storage, keeping only present
// fields.
func activityToMap(entry models.ActivityEntry) map[string]interface{} {
	m := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		"action":    entry.Action,
	}
	if entry.MessagePreview != "" {
		m["message_preview"] = entry.MessagePreview
	}
	if entry.Step != "" {
		m["step"] = entry.Step
	}
	if entry.ToolUsed != "" {
		m["tool_used"] = entry.ToolUsed
	}
	return m
}

// mergeStrings appends additions not already present, preserving order.
func mergeStrings(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(additions))
	for _, s := range existing {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range additions {
		if s != "" && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

// prefixMessages tags each message with its originating phase.
func prefixMessages(phase string, messages []string) []string {
	if phase == "" {
		return messages
	}
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if m == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", phase, m))
	}
	return out
}

// buildSnapshot flattens a process row and its agent records into the
// dashboard projection.
func buildSnapshot(process *ent.MigrationProcess, records []*ent.AgentRecord) *models.ProcessSnapshot {
	snapshot := &models.ProcessSnapshot{
		ProcessID:      process.ID,
		UserID:         process.UserID,
		Phase:          string(process.Phase),
		Step:           process.CurrentStep,
		Status:         string(process.Status),
		StepsCompleted: process.StepsCompleted,
		Insights:       process.Insights,
		ErrorLog:       process.ErrorLog,
		WarningLog:     process.WarningLog,
		Outcome:        process.Outcome,
		GeneratedFiles: process.GeneratedFiles,
		StartTime:      process.CreatedAt,
		LastUpdateTime: process.LastUpdateTime,
		Agents:         make([]models.AgentSnapshot, 0, len(records)),
	}

	for _, record := range records {
		snapshot.Agents = append(snapshot.Agents, models.AgentSnapshot{
			Name:                record.AgentName,
			CurrentAction:       record.CurrentAction,
			LastMessagePreview:  record.LastMessagePreview,
			IsSpeaking:          record.IsSpeaking,
			IsThinking:          record.IsThinking,
			ParticipationStatus: record.ParticipationStatus,
			LastToolUsed:        record.LastToolUsed,
			RecentActivity:      activityFromMaps(record.RecentActivity),
			LastUpdateTime:      record.LastUpdateTime,
		})
	}
	return snapshot
}

// activityFromMaps decodes the stored JSON history back into typed entries.
// Malformed entries are skipped rather than failing the snapshot.
func activityFromMaps(history []map[string]interface{}) []models.ActivityEntry {
	if len(history) == 0 {
		return nil
	}
	entries := make([]models.ActivityEntry, 0, len(history))
	for _, m := range history {
		entry := models.ActivityEntry{}
		if ts, ok := m["timestamp"].(string); ok {
			parsed, err := time.Parse(time.RFC3339Nano, ts)
			if err != nil {
				continue
			}
			entry.Timestamp = parsed
		}
		if action, ok := m["action"].(string); ok {
			entry.Action = action
		}
		if preview, ok := m["message_preview"].(string); ok {
			entry.MessagePreview = preview
		}
		if step, ok := m["step"].(string); ok {
			entry.Step = step
		}
		if tool, ok := m["tool_used"].(string); ok {
			entry.ToolUsed = tool
		}
		entries = append(entries, entry)
	}
	return entries
}
