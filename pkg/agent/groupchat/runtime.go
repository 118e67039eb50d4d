// Package groupchat implements the multi-agent conversation runtime.
// A manager's selection rule picks the next speaker, the chosen agent takes
// a turn, observers see every streamed message, and the manager's
// termination rule decides when the conversation is done.
package groupchat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
)

// SelectionFunc decides which agent speaks next. It returns the raw model
// response; the runtime cleans it through the selection parser.
type SelectionFunc func(ctx context.Context, conversation []agent.Message, roster []string) (string, error)

// TerminationFunc judges whether the conversation should stop. When the
// verdict is ambiguous the rule must favor continuation unless a hard
// condition holds.
type TerminationFunc func(ctx context.Context, conversation []agent.Message) (*agent.TerminationResult, error)

// Manager bundles the two callable rules driving a conversation.
type Manager struct {
	Name        string
	Selection   SelectionFunc
	Termination TerminationFunc
}

// Config bounds one conversation.
type Config struct {
	// Step is the pipeline step name, used for contextual selection reasons.
	Step string

	// MaxTurns caps agent turns; hitting it is a hard timeout.
	MaxTurns int

	// MaxMessages caps the conversation length; exceeding it is a hard
	// resource limit.
	MaxMessages int
}

// Result is the outcome of one conversation: the termination verdict plus
// the full message stream.
type Result struct {
	Termination *agent.TerminationResult
	Messages    []agent.Message
	Turns       int
}

// Runtime runs one group-chat conversation over a fixed roster.
type Runtime struct {
	cfg       Config
	manager   Manager
	byName    map[string]agent.Agent
	names     []string
	observers []agent.Observer
}

// New creates a runtime. The roster order is the selection whitelist order,
// so the first agent is the fallback speaker.
func New(cfg Config, manager Manager, roster []agent.Agent, observers ...agent.Observer) (*Runtime, error) {
	if len(roster) == 0 {
		return nil, fmt.Errorf("roster must not be empty")
	}
	if cfg.MaxTurns < 1 {
		return nil, fmt.Errorf("max turns must be >= 1")
	}
	if cfg.MaxMessages < 1 {
		return nil, fmt.Errorf("max messages must be >= 1")
	}
	if manager.Selection == nil || manager.Termination == nil {
		return nil, fmt.Errorf("manager requires selection and termination rules")
	}

	byName := make(map[string]agent.Agent, len(roster))
	names := make([]string, 0, len(roster))
	for _, a := range roster {
		name := a.Name()
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate roster agent %q", name)
		}
		byName[name] = a
		names = append(names, name)
	}

	return &Runtime{
		cfg:       cfg,
		manager:   manager,
		byName:    byName,
		names:     names,
		observers: observers,
	}, nil
}

// Run executes the conversation until the termination rule stops it, a cap
// is hit, or the context is cancelled. Cancellation is honored on turn
// boundaries and returns a hard-timeout verdict with the partial transcript.
func (r *Runtime) Run(ctx context.Context, processID string, seed []agent.Message) (*Result, error) {
	conversation := make([]agent.Message, len(seed))
	copy(conversation, seed)

	for turn := 1; turn <= r.cfg.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return r.result(conversation, turn-1, agent.HardTermination(
				agent.TerminationHardTimeout,
				fmt.Sprintf("conversation cancelled after %d turns: %v", turn-1, err))), nil
		}

		raw, err := r.manager.Selection(ctx, conversation, r.names)
		if err != nil {
			if isCancellation(err) {
				return r.result(conversation, turn-1, agent.HardTermination(
					agent.TerminationHardTimeout,
					fmt.Sprintf("conversation cancelled during speaker selection: %v", err))), nil
			}
			return nil, fmt.Errorf("selection rule failed on turn %d: %w", turn, err)
		}

		selection := agent.ParseSelection(raw, r.names, r.cfg.Step)
		name := selection.Result
		if name == "" {
			// Terminal words force the fallback speaker.
			name = r.names[0]
			slog.Debug("Selection forced fallback speaker",
				"process_id", processID,
				"fallback", name,
				"reason", selection.Reason)
		}

		speaker := r.byName[name]
		msg, err := speaker.Invoke(ctx, conversation)
		if err != nil {
			if isCancellation(err) {
				return r.result(conversation, turn, agent.HardTermination(
					agent.TerminationHardTimeout,
					fmt.Sprintf("agent %s cancelled mid-turn: %v", name, err))), nil
			}
			return nil, fmt.Errorf("agent %s failed on turn %d: %w", name, turn, err)
		}

		if msg.Role == "" {
			msg.Role = agent.RoleAssistant
		}
		if msg.AgentName == "" {
			msg.AgentName = name
		}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now().UTC()
		}
		conversation = append(conversation, msg)

		for _, obs := range r.observers {
			obs.ObserveMessage(ctx, processID, msg)
		}

		if len(conversation) > r.cfg.MaxMessages {
			return r.result(conversation, turn, agent.HardTermination(
				agent.TerminationHardResourceLimit,
				fmt.Sprintf("conversation exceeded %d messages", r.cfg.MaxMessages))), nil
		}

		verdict, err := r.manager.Termination(ctx, conversation)
		if err != nil {
			if isCancellation(err) {
				return r.result(conversation, turn, agent.HardTermination(
					agent.TerminationHardTimeout,
					fmt.Sprintf("conversation cancelled during termination check: %v", err))), nil
			}
			// Ambiguity favors continuation.
			slog.Warn("Termination rule failed, continuing conversation",
				"process_id", processID,
				"turn", turn,
				"error", err)
			continue
		}
		if verdict == nil {
			continue
		}
		if err := verdict.Validate(); err != nil {
			slog.Warn("Termination rule produced invalid verdict, continuing",
				"process_id", processID,
				"turn", turn,
				"error", err)
			continue
		}
		if verdict.Terminate {
			return r.result(conversation, turn, verdict), nil
		}
	}

	return r.result(conversation, r.cfg.MaxTurns, agent.HardTermination(
		agent.TerminationHardTimeout,
		fmt.Sprintf("turn cap of %d reached without completion", r.cfg.MaxTurns))), nil
}

func (r *Runtime) result(conversation []agent.Message, turns int, verdict *agent.TerminationResult) *Result {
	return &Result{
		Termination: verdict,
		Messages:    conversation,
		Turns:       turns,
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
