package groupchat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
)

type capturingCompleter struct {
	lastReq  llm.CompletionRequest
	response string
	err      error
}

func (c *capturingCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	c.lastReq = req
	return c.response, c.err
}

func eksExpertConfig() *config.AgentConfig {
	tokens := 4096
	return &config.AgentConfig{
		Role:                "EKS platform expert",
		Description:         "Analyzes Amazon EKS workloads.",
		Instructions:        "Identify EKS-specific resources and report findings.",
		Tools:               []string{"blob", "file"},
		MaxCompletionTokens: &tokens,
	}
}

func TestChatAgentInvokePrependsSystemPrompt(t *testing.T) {
	completer := &capturingCompleter{response: "Found 3 EKS manifests"}
	a := NewChatAgent("EKSExpert", eksExpertConfig(), completer)

	conversation := []agent.Message{
		{Role: agent.RoleUser, Content: "Analyze the workload"},
	}
	msg, err := a.Invoke(context.Background(), conversation)
	require.NoError(t, err)

	assert.Equal(t, agent.RoleAssistant, msg.Role)
	assert.Equal(t, "EKSExpert", msg.AgentName)
	assert.Equal(t, "Found 3 EKS manifests", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())

	require.Len(t, completer.lastReq.Messages, 2)
	system := completer.lastReq.Messages[0]
	assert.Equal(t, agent.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "EKSExpert")
	assert.Contains(t, system.Content, "EKS platform expert")
	assert.Contains(t, system.Content, "blob, file")
	require.NotNil(t, completer.lastReq.MaxTokens)
	assert.Equal(t, 4096, *completer.lastReq.MaxTokens)
}

func TestChatAgentInvokePropagatesFailure(t *testing.T) {
	completer := &capturingCompleter{err: errors.New("429 throttled")}
	a := NewChatAgent("EKSExpert", eksExpertConfig(), completer)

	_, err := a.Invoke(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EKSExpert")
}

func TestBuildSystemPromptWithoutTools(t *testing.T) {
	prompt := buildSystemPrompt("TechnicalWriter", &config.AgentConfig{
		Role: "migration documentation writer",
	})
	assert.Contains(t, prompt, "TechnicalWriter")
	assert.NotContains(t, prompt, "tool categories")
}
