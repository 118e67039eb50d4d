// Package agent provides the core agent framework for CloudShift.
// Agents collaborate in a group chat to analyze, design, convert, and
// document a Kubernetes workload migration.
package agent

import (
	"context"
	"time"
)

// Role identifies who authored a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a group-chat conversation.
type Message struct {
	Role Role

	// AgentName is the speaking agent, empty for system/user messages.
	AgentName string

	Content   string
	Timestamp time.Time
}

// Agent is one group-chat participant.
// Agents are created per-process (not shared between migrations).
type Agent interface {
	// Name returns the roster name of the agent.
	Name() string

	// Invoke runs one conversational turn. ctx carries the phase timeout
	// and cancellation signal; conversation is the full message stream so
	// far. Returns the agent's reply message.
	//
	// Returns (Message{}, error) only for infrastructure failures (model
	// service unreachable, context cancelled). Content-level problems are
	// expressed in the returned message and judged by the termination rule.
	Invoke(ctx context.Context, conversation []Message) (Message, error)
}

// Observer receives each streamed agent message for side-channel processing
// (tool-usage detection, telemetry). Implementations must never fail the
// conversation: errors are logged and swallowed internally.
type Observer interface {
	ObserveMessage(ctx context.Context, processID string, msg Message)
}
