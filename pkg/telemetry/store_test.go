package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/ent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

func TestAppendActivityBoundedEviction(t *testing.T) {
	var history []map[string]interface{}
	for i := 0; i < models.MaxActivityHistory+5; i++ {
		history = appendActivity(history, models.ActivityEntry{
			Timestamp: time.Now().UTC(),
			Action:    "speaking",
			Step:      string(rune('a' + i%26)),
		})
	}

	assert.Len(t, history, models.MaxActivityHistory, "history must stay at the cap")
	// The 5 oldest entries were dropped; the first survivor is entry index 5.
	assert.Equal(t, string(rune('a'+5)), history[0]["step"])
}

func TestActivityToMapOmitsEmptyFields(t *testing.T) {
	m := activityToMap(models.ActivityEntry{
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Action:    "thinking",
	})

	assert.Equal(t, "thinking", m["action"])
	assert.Contains(t, m, "timestamp")
	assert.NotContains(t, m, "message_preview")
	assert.NotContains(t, m, "step")
	assert.NotContains(t, m, "tool_used")
}

func TestActivityRoundTrip(t *testing.T) {
	entry := models.ActivityEntry{
		Timestamp:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Action:         "tool_usage",
		MessagePreview: "converted deployment.yaml",
		Step:           "yaml",
		ToolUsed:       "file/write_file",
	}

	decoded := activityFromMaps([]map[string]interface{}{activityToMap(entry)})
	require.Len(t, decoded, 1)
	assert.Equal(t, entry, decoded[0])
}

func TestActivityFromMapsSkipsMalformedTimestamps(t *testing.T) {
	decoded := activityFromMaps([]map[string]interface{}{
		{"timestamp": "not-a-time", "action": "broken"},
		{"timestamp": time.Now().UTC().Format(time.RFC3339Nano), "action": "ok"},
	})

	require.Len(t, decoded, 1)
	assert.Equal(t, "ok", decoded[0].Action)
}

func TestMergeStringsDedupesPreservingOrder(t *testing.T) {
	merged := mergeStrings(
		[]string{"a", "b", "b"},
		[]string{"b", "c", "", "a", "d"},
	)
	assert.Equal(t, []string{"a", "b", "c", "d"}, merged)
}

func TestPrefixMessages(t *testing.T) {
	assert.Equal(t,
		[]string{"analysis: missing manifests", "analysis: unreadable file"},
		prefixMessages("analysis", []string{"missing manifests", "", "unreadable file"}))

	assert.Equal(t, []string{"bare"}, prefixMessages("", []string{"bare"}))
}

func TestAdvanceNeverRegresses(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Minute)

	assert.Equal(t, later, advance(earlier, later))
	assert.Equal(t, later, advance(later, earlier), "clock skew must not move the value backwards")
	assert.Equal(t, later, advance(later, later))
}

func TestToolLabel(t *testing.T) {
	assert.Equal(t, "blob/list_blobs_in_container", toolLabel("blob", "list_blobs_in_container"))
	assert.Equal(t, "unknown", toolLabel("unknown", ""))
}

func TestPhaseRankOrdering(t *testing.T) {
	order := []string{"initialization", "analysis", "design", "yaml", "documentation"}
	for i := 1; i < len(order); i++ {
		assert.Less(t, phaseRank[order[i-1]], phaseRank[order[i]],
			"%s must precede %s", order[i-1], order[i])
	}
	assert.Equal(t, phaseRank["completed"], phaseRank["failed"], "terminal phases share a rank")
}

func TestBuildSnapshotFlattensAgents(t *testing.T) {
	start := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	process := &ent.MigrationProcess{
		ID:             "proc-1",
		UserID:         "user-1",
		Phase:          "design",
		CurrentStep:    "design",
		Status:         "running",
		StepsCompleted: []string{"analysis"},
		Insights:       []string{"uses EKS IRSA"},
		CreatedAt:      start,
		LastUpdateTime: start.Add(time.Minute),
	}
	records := []*ent.AgentRecord{
		{
			AgentName:           "AKSExpert",
			CurrentAction:       "speaking",
			ParticipationStatus: "active",
			LastUpdateTime:      start.Add(time.Minute),
		},
		{
			AgentName:           "ChiefArchitect",
			ParticipationStatus: "idle",
			LastUpdateTime:      start,
		},
	}

	snapshot := buildSnapshot(process, records)

	assert.Equal(t, "proc-1", snapshot.ProcessID)
	assert.Equal(t, "design", snapshot.Phase)
	assert.Equal(t, "running", snapshot.Status)
	assert.Equal(t, []string{"analysis"}, snapshot.StepsCompleted)
	require.Len(t, snapshot.Agents, 2)
	assert.Equal(t, "AKSExpert", snapshot.Agents[0].Name)
	assert.Equal(t, "ChiefArchitect", snapshot.Agents[1].Name)
}

func TestValidationBeforeAnyIO(t *testing.T) {
	// A nil client proves validation rejects bad input before touching the DB.
	s := NewStore(nil)
	ctx := context.Background()

	_, err := s.CreateProcess(ctx, models.CreateProcessRequest{UserID: "u"})
	assert.True(t, IsValidationError(err))

	_, err = s.CreateProcess(ctx, models.CreateProcessRequest{ProcessID: "p"})
	assert.True(t, IsValidationError(err))

	_, err = s.CreateProcess(ctx, models.CreateProcessRequest{ProcessID: "p", UserID: "u", Phase: "bogus"})
	assert.True(t, IsValidationError(err))

	err = s.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{ProcessID: "p", AgentName: "a"})
	assert.True(t, IsValidationError(err), "action is required")

	err = s.TrackToolUsage(ctx, models.TrackToolUsageRequest{ProcessID: "p", AgentName: "a"})
	assert.True(t, IsValidationError(err), "tool name is required")

	err = s.SetPhase(ctx, "p", "not-a-phase", "step")
	assert.True(t, IsValidationError(err))

	_, err = s.StartPhaseRun(ctx, models.CreatePhaseRunRequest{ProcessID: "p", PhaseName: "analysis", Attempt: 0})
	assert.True(t, IsValidationError(err))

	_, err = s.Snapshot(ctx, "")
	assert.True(t, IsValidationError(err))
}
