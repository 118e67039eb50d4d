package telemetry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/pkg/failure"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	testdb "github.com/cloudshift-ai/cloudshift/test/database"
)

func newTestStore(t *testing.T) *Store {
	client := testdb.NewTestClient(t)
	return NewStore(client.Client)
}

func createTestProcess(t *testing.T, store *Store) string {
	t.Helper()
	processID := uuid.New().String()
	_, err := store.CreateProcess(context.Background(), models.CreateProcessRequest{
		ProcessID:      processID,
		UserID:         "user@example.com",
		SourcePlatform: "eks",
		Step:           "analysis",
		Phase:          "initialization",
		ContainerName:  "migrations",
	})
	require.NoError(t, err)
	return processID
}

func TestStore_CreateProcess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("creates process with defaults", func(t *testing.T) {
		processID := uuid.New().String()
		process, err := store.CreateProcess(ctx, models.CreateProcessRequest{
			ProcessID: processID,
			UserID:    "user@example.com",
			Step:      "analysis",
			Phase:     "initialization",
		})
		require.NoError(t, err)
		assert.Equal(t, processID, process.ID)
		assert.Equal(t, "running", string(process.Status))
		assert.Equal(t, "initialization", string(process.Phase))
		assert.Equal(t, "source", process.SourceFolder)
		assert.Equal(t, "converted", process.OutputFolder)
	})

	t.Run("rejects duplicate process id", func(t *testing.T) {
		processID := createTestProcess(t, store)

		_, err := store.CreateProcess(ctx, models.CreateProcessRequest{
			ProcessID: processID,
			UserID:    "user@example.com",
			Step:      "analysis",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestStore_UpdateAgentActivity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	t.Run("creates record on first write", func(t *testing.T) {
		err := store.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
			ProcessID:      processID,
			AgentName:      "EKSExpert",
			Action:         "speaking",
			MessagePreview: "Found 12 manifests in source",
			Step:           "analysis",
		})
		require.NoError(t, err)

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		require.Len(t, snapshot.Agents, 1)
		agent := snapshot.Agents[0]
		assert.Equal(t, "EKSExpert", agent.Name)
		assert.Equal(t, "speaking", agent.CurrentAction)
		assert.Equal(t, "active", agent.ParticipationStatus)
		require.Len(t, agent.RecentActivity, 1)
		assert.Equal(t, "analysis", agent.RecentActivity[0].Step)
	})

	t.Run("bounds history with oldest-first eviction", func(t *testing.T) {
		for i := 0; i < models.MaxActivityHistory+10; i++ {
			err := store.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
				ProcessID:      processID,
				AgentName:      "EKSExpert",
				Action:         fmt.Sprintf("turn-%d", i),
				MessagePreview: "m",
			})
			require.NoError(t, err)
		}

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		history := snapshot.Agents[0].RecentActivity
		assert.Len(t, history, models.MaxActivityHistory)
		assert.Equal(t, fmt.Sprintf("turn-%d", models.MaxActivityHistory+9),
			history[len(history)-1].Action, "newest entry survives")
	})

	t.Run("speaking flag moves to the latest speaker", func(t *testing.T) {
		err := store.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
			ProcessID:      processID,
			AgentName:      "EKSExpert",
			Action:         "speaking",
			MessagePreview: "Workload uses IRSA for pod identity",
			IsSpeaking:     true,
		})
		require.NoError(t, err)

		err = store.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
			ProcessID:      processID,
			AgentName:      "ChiefArchitect",
			Action:         "speaking",
			MessagePreview: "Map that to workload identity on AKS",
			IsSpeaking:     true,
		})
		require.NoError(t, err)

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		byName := make(map[string]models.AgentSnapshot)
		for _, a := range snapshot.Agents {
			byName[a.Name] = a
		}
		assert.True(t, byName["ChiefArchitect"].IsSpeaking)
		assert.False(t, byName["EKSExpert"].IsSpeaking, "only the latest speaker holds the flag")
		assert.Contains(t, byName["ChiefArchitect"].LastMessagePreview, "workload identity")
	})

	t.Run("advances process last-update time", func(t *testing.T) {
		before, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)

		err = store.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
			ProcessID: processID,
			AgentName: "GKEExpert",
			Action:    "thinking",
		})
		require.NoError(t, err)

		after, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		assert.False(t, after.LastUpdateTime.Before(before.LastUpdateTime))
	})
}

func TestStore_TrackToolUsage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	err := store.TrackToolUsage(ctx, models.TrackToolUsageRequest{
		ProcessID:   processID,
		AgentName:   "YAMLConverter",
		ToolName:    "blob",
		ToolAction:  "read_blob_content",
		ToolDetails: "Calling read_blob_content on deployment.yaml",
	})
	require.NoError(t, err)

	snapshot, err := store.Snapshot(ctx, processID)
	require.NoError(t, err)
	require.Len(t, snapshot.Agents, 1)
	agent := snapshot.Agents[0]
	assert.Equal(t, "blob/read_blob_content", agent.LastToolUsed)
	require.Len(t, agent.RecentActivity, 1)
	assert.Equal(t, "tool_usage", agent.RecentActivity[0].Action)
	assert.Contains(t, agent.RecentActivity[0].MessagePreview, "deployment.yaml")
}

func TestStore_SetPhase(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	t.Run("transitions forward", func(t *testing.T) {
		require.NoError(t, store.SetPhase(ctx, processID, "analysis", "analysis"))
		require.NoError(t, store.SetPhase(ctx, processID, "design", "design"))

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		assert.Equal(t, "design", snapshot.Phase)
		assert.Equal(t, "design", snapshot.Step)
	})

	t.Run("backwards transition is a no-op", func(t *testing.T) {
		require.NoError(t, store.SetPhase(ctx, processID, "analysis", "analysis"))

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		assert.Equal(t, "design", snapshot.Phase, "stored phase never regresses")
		assert.Equal(t, "design", snapshot.Step)
	})

	t.Run("same phase is not a regression", func(t *testing.T) {
		assert.NoError(t, store.SetPhase(ctx, processID, "design", "design"))
	})

	t.Run("unknown process", func(t *testing.T) {
		err := store.SetPhase(ctx, uuid.New().String(), "analysis", "analysis")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Finalize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("completed with outcome and files", func(t *testing.T) {
		processID := createTestProcess(t, store)

		err := store.Finalize(ctx, processID, true,
			map[string]any{"summary": "migration complete", "phases": 4},
			[]string{"converted/deployment.yaml", "converted/service.yaml"})
		require.NoError(t, err)

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		assert.Equal(t, "completed", snapshot.Status)
		assert.Equal(t, "completed", snapshot.Phase)
		assert.Equal(t, "migration complete", snapshot.Outcome["summary"])
		assert.Len(t, snapshot.GeneratedFiles, 2)
	})

	t.Run("failed", func(t *testing.T) {
		processID := createTestProcess(t, store)

		require.NoError(t, store.Finalize(ctx, processID, false, nil, nil))

		snapshot, err := store.Snapshot(ctx, processID)
		require.NoError(t, err)
		assert.Equal(t, "failed", snapshot.Status)
		assert.Equal(t, "failed", snapshot.Phase)
	})
}

func TestStore_RecordFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	record := failure.CollectSystemFailure(
		errors.New("model endpoint unreachable"),
		failure.StepContext{ProcessID: processID, StepName: "analysis", StepPhase: "analysis"},
		time.Now().UTC())
	require.NoError(t, store.RecordFailure(ctx, processID, record))

	err := store.RecordFailure(ctx, uuid.New().String(), record)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_LogHelpers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	require.NoError(t, store.AppendInsights(ctx, processID, []string{"IRSA in use", "IRSA in use", "3 node groups"}))
	require.NoError(t, store.AppendInsights(ctx, processID, []string{"3 node groups", "spot instances"}))
	require.NoError(t, store.AppendErrors(ctx, processID, "yaml", []string{"invalid apiVersion"}))
	require.NoError(t, store.AppendWarnings(ctx, processID, "design", []string{"no resource limits"}))
	require.NoError(t, store.MarkStepCompleted(ctx, processID, "analysis"))
	require.NoError(t, store.MarkStepCompleted(ctx, processID, "analysis"))

	snapshot, err := store.Snapshot(ctx, processID)
	require.NoError(t, err)
	assert.Equal(t, []string{"IRSA in use", "3 node groups", "spot instances"}, snapshot.Insights)
	assert.Equal(t, []string{"yaml: invalid apiVersion"}, snapshot.ErrorLog)
	assert.Equal(t, []string{"design: no resource limits"}, snapshot.WarningLog)
	assert.Equal(t, []string{"analysis"}, snapshot.StepsCompleted)
}

func TestStore_PhaseRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	processID := createTestProcess(t, store)

	run, err := store.StartPhaseRun(ctx, models.CreatePhaseRunRequest{
		ProcessID:  processID,
		PhaseName:  "analysis",
		PhaseIndex: 1,
		Attempt:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, phaserun.StatusActive, run.Status)
	require.NotNil(t, run.StartedAt)

	t.Run("duplicate attempt rejected", func(t *testing.T) {
		_, err := store.StartPhaseRun(ctx, models.CreatePhaseRunRequest{
			ProcessID:  processID,
			PhaseName:  "analysis",
			PhaseIndex: 1,
			Attempt:    1,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("retry gets a new attempt", func(t *testing.T) {
		_, err := store.StartPhaseRun(ctx, models.CreatePhaseRunRequest{
			ProcessID:  processID,
			PhaseName:  "analysis",
			PhaseIndex: 1,
			Attempt:    2,
		})
		assert.NoError(t, err)
	})

	t.Run("complete records duration and result", func(t *testing.T) {
		err := store.CompletePhaseRun(ctx, run.ID, phaserun.StatusCompleted,
			map[string]any{"detected_platform": "eks"}, "")
		require.NoError(t, err)

		updated, err := store.client.PhaseRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, phaserun.StatusCompleted, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.DurationMs)
		assert.GreaterOrEqual(t, *updated.DurationMs, 0)
		assert.Equal(t, "eks", updated.Result["detected_platform"])
	})

	t.Run("unknown run", func(t *testing.T) {
		err := store.CompletePhaseRun(ctx, uuid.New().String(), phaserun.StatusFailed, nil, "boom")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
