package observer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

type recordingSink struct {
	events []models.TrackToolUsageRequest
	err    error
}

func (s *recordingSink) TrackToolUsage(_ context.Context, req models.TrackToolUsageRequest) error {
	s.events = append(s.events, req)
	return s.err
}

func observe(t *testing.T, sink *recordingSink, content string) {
	t.Helper()
	o := New(sink)
	o.ObserveMessage(context.Background(), "proc-1", agent.Message{
		Role:      agent.RoleAssistant,
		AgentName: "EKSExpert",
		Content:   content,
	})
}

func TestObserveMessageDetectsBlobTool(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "I will inspect the container.\nCalling list_blobs_in_container to enumerate manifests.\nThen I'll read each one.")

	require.Len(t, sink.events, 1, "exactly one event per message")
	ev := sink.events[0]
	assert.Equal(t, "blob", ev.ToolName)
	assert.Equal(t, "list_blobs_in_container", ev.ToolAction)
	assert.Equal(t, "proc-1", ev.ProcessID)
	assert.Equal(t, "EKSExpert", ev.AgentName)
	assert.Contains(t, ev.ToolDetails, "enumerate manifests")
}

func TestObserveMessageFirstMatchWins(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "read_file first\nthen list_blobs_in_container")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "file", sink.events[0].ToolName)
	assert.Equal(t, "read_file", sink.events[0].ToolAction)
}

func TestObserveMessageCategories(t *testing.T) {
	tests := []struct {
		tool     string
		category string
	}{
		{"write_blob_content", "blob"},
		{"create_directory", "file"},
		{"search_documentation", "docs"},
		{"get_current_datetime", "datetime"},
		{"update_migration_context", "context"},
		{"recall_memory", "memory"},
		{"deploy_function_app", "functionapp"},
		{"get_cluster_info", "infrastructure"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			sink := &recordingSink{}
			observe(t, sink, "Using "+tt.tool+" now.")

			require.Len(t, sink.events, 1)
			assert.Equal(t, tt.category, sink.events[0].ToolName)
			assert.Equal(t, tt.tool, sink.events[0].ToolAction)
		})
	}
}

func TestObserveMessageGenericInvocationPhrase(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "I am invoking tool convert_manifest with these parameters.")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "unknown", sink.events[0].ToolName)
	assert.Equal(t, "invoking tool", sink.events[0].ToolAction)
	assert.Contains(t, sink.events[0].ToolDetails, "convert_manifest")
}

func TestObserveMessageCatalogMatchSuppressesGenericPhrase(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "Calling function read_file on deployment.yaml")

	require.Len(t, sink.events, 1)
	assert.Equal(t, "read_file", sink.events[0].ToolAction)
}

func TestObserveMessageNoDetection(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "The deployment looks healthy, moving on to services.")

	assert.Empty(t, sink.events)
}

func TestObserveMessageTruncatesContext(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "read_file "+strings.Repeat("x", 500))

	require.Len(t, sink.events, 1)
	assert.LessOrEqual(t, len([]rune(sink.events[0].ToolDetails)), maxContextLen+3)
	assert.True(t, strings.HasSuffix(sink.events[0].ToolDetails, "..."))
}

func TestObserveMessageSinkErrorSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("telemetry down")}

	assert.NotPanics(t, func() {
		observe(t, sink, "Using read_file now.")
	})
	assert.Len(t, sink.events, 1)
}

func TestObserveMessageNilSink(t *testing.T) {
	o := New(nil)
	assert.NotPanics(t, func() {
		o.ObserveMessage(context.Background(), "proc-1", agent.Message{Content: "read_file"})
	})
}

func TestObserveMessageEmptyContent(t *testing.T) {
	sink := &recordingSink{}
	observe(t, sink, "")
	assert.Empty(t, sink.events)
}
