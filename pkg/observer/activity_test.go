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

type recordingActivitySink struct {
	updates []models.UpdateAgentActivityRequest
	err     error
}

func (s *recordingActivitySink) UpdateAgentActivity(_ context.Context, req models.UpdateAgentActivityRequest) error {
	s.updates = append(s.updates, req)
	return s.err
}

func TestActivityObserverForwardsMessage(t *testing.T) {
	sink := &recordingActivitySink{}
	o := NewActivity(sink)

	o.ObserveMessage(context.Background(), "proc-1", agent.Message{
		Role:      agent.RoleAssistant,
		AgentName: "ChiefArchitect",
		Content:   "The ingress maps cleanly to Application Gateway.",
	})

	require.Len(t, sink.updates, 1)
	update := sink.updates[0]
	assert.Equal(t, "proc-1", update.ProcessID)
	assert.Equal(t, "ChiefArchitect", update.AgentName)
	assert.Equal(t, "speaking", update.Action)
	assert.True(t, update.IsSpeaking)
	assert.Contains(t, update.MessagePreview, "Application Gateway")
}

func TestActivityObserverTruncatesPreview(t *testing.T) {
	sink := &recordingActivitySink{}
	o := NewActivity(sink)

	o.ObserveMessage(context.Background(), "proc-1", agent.Message{
		Role:      agent.RoleAssistant,
		AgentName: "YAMLConverter",
		Content:   strings.Repeat("y", models.MaxMessagePreview+50),
	})

	require.Len(t, sink.updates, 1)
	assert.LessOrEqual(t, len([]rune(sink.updates[0].MessagePreview)), models.MaxMessagePreview+3)
}

func TestActivityObserverSkipsAnonymousMessages(t *testing.T) {
	sink := &recordingActivitySink{}
	o := NewActivity(sink)

	o.ObserveMessage(context.Background(), "proc-1", agent.Message{
		Role:    agent.RoleUser,
		Content: "Please migrate the manifests in the source folder.",
	})

	assert.Empty(t, sink.updates)
}

func TestActivityObserverSinkErrorSwallowed(t *testing.T) {
	sink := &recordingActivitySink{err: errors.New("telemetry down")}
	o := NewActivity(sink)

	assert.NotPanics(t, func() {
		o.ObserveMessage(context.Background(), "proc-1", agent.Message{
			Role:      agent.RoleAssistant,
			AgentName: "EKSExpert",
			Content:   "Checking node pools.",
		})
	})
	assert.Len(t, sink.updates, 1)
}

func TestActivityObserverNilSink(t *testing.T) {
	o := NewActivity(nil)
	assert.NotPanics(t, func() {
		o.ObserveMessage(context.Background(), "proc-1", agent.Message{
			AgentName: "EKSExpert",
			Content:   "hello",
		})
	})
}
