package observer

import (
	"context"
	"log/slog"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// ActivitySink receives per-agent activity updates.
type ActivitySink interface {
	UpdateAgentActivity(ctx context.Context, req models.UpdateAgentActivityRequest) error
}

// ActivityObserver implements agent.Observer. It forwards every streamed
// message as an agent-activity update so the dashboard projection shows who
// is speaking and what they last said. Like ResponseObserver it must never
// fail the conversation: errors are logged and swallowed.
type ActivityObserver struct {
	sink ActivitySink
}

// NewActivity creates an observer forwarding to the given sink. A nil sink
// produces a no-op observer.
func NewActivity(sink ActivitySink) *ActivityObserver {
	return &ActivityObserver{sink: sink}
}

// ObserveMessage records one streamed message as a speaking event for its
// agent. Messages without an agent name (user prompts, system notices) are
// skipped.
func (o *ActivityObserver) ObserveMessage(ctx context.Context, processID string, msg agent.Message) {
	if o == nil || o.sink == nil || msg.AgentName == "" {
		return
	}

	err := o.sink.UpdateAgentActivity(ctx, models.UpdateAgentActivityRequest{
		ProcessID:      processID,
		AgentName:      msg.AgentName,
		Action:         "speaking",
		MessagePreview: models.TruncatePreview(msg.Content),
		IsSpeaking:     true,
	})
	if err != nil {
		slog.Warn("Failed to record agent activity",
			"process_id", processID,
			"agent", msg.AgentName,
			"error", err)
	}
}
