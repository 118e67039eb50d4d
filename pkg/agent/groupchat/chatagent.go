package groupchat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
)

// Completer is the slice of the model client the chat needs.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

// ChatAgent is an LLM-backed group-chat participant built from an agent
// configuration. Each Invoke prepends the agent's system prompt to the
// shared conversation so every participant sees the same stream through its
// own persona.
type ChatAgent struct {
	name      string
	cfg       *config.AgentConfig
	completer Completer
	system    string
}

// NewChatAgent creates a participant from its configuration.
func NewChatAgent(name string, cfg *config.AgentConfig, completer Completer) *ChatAgent {
	return &ChatAgent{
		name:      name,
		cfg:       cfg,
		completer: completer,
		system:    buildSystemPrompt(name, cfg),
	}
}

// Name returns the roster name.
func (a *ChatAgent) Name() string {
	return a.name
}

// Invoke runs one conversational turn against the model service.
func (a *ChatAgent) Invoke(ctx context.Context, conversation []agent.Message) (agent.Message, error) {
	messages := make([]agent.Message, 0, len(conversation)+1)
	messages = append(messages, agent.Message{Role: agent.RoleSystem, Content: a.system})
	messages = append(messages, conversation...)

	content, err := a.completer.Complete(ctx, llm.CompletionRequest{
		Messages:  messages,
		MaxTokens: a.cfg.MaxCompletionTokens,
	})
	if err != nil {
		return agent.Message{}, fmt.Errorf("agent %s completion failed: %w", a.name, err)
	}

	return agent.Message{
		Role:      agent.RoleAssistant,
		AgentName: a.name,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}, nil
}

// buildSystemPrompt composes the persona prompt from the agent config.
func buildSystemPrompt(name string, cfg *config.AgentConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, %s.\n", name, cfg.Role)
	if cfg.Description != "" {
		b.WriteString(cfg.Description)
		b.WriteString("\n")
	}
	if cfg.Instructions != "" {
		b.WriteString("\n")
		b.WriteString(cfg.Instructions)
		b.WriteString("\n")
	}
	if len(cfg.Tools) > 0 {
		fmt.Fprintf(&b, "\nAvailable tool categories: %s.\n", strings.Join(cfg.Tools, ", "))
		b.WriteString("When you use a tool, state the exact tool call on its own line.\n")
	}
	return b.String()
}
