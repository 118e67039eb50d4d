package llm

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
)

func testClient() *Client {
	return NewClient(&config.ModelConfig{
		Endpoint:            "https://example.openai.azure.com",
		APIKey:              "test-key",
		Deployment:          "gpt-4o",
		APIVersion:          "2024-06-01",
		MaxCompletionTokens: 4096,
		Temperature:         0.1,
	})
}

func TestBuildChatRequestAppliesContract(t *testing.T) {
	c := testClient()

	req := c.buildChatRequest(CompletionRequest{
		Messages: []agent.Message{
			{Role: agent.RoleSystem, Content: "You are the Chief Architect."},
			{Role: agent.RoleAssistant, AgentName: "EKSExpert", Content: "Found 3 IRSA annotations."},
			{Role: agent.RoleUser, Content: "Continue."},
		},
	})

	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, 4096, req.MaxTokens, "client-wide token cap applies by default")
	assert.InDelta(t, 0.1, float64(req.Temperature), 0.001, "temperature is fixed")
	require.Len(t, req.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "EKSExpert", req.Messages[1].Name)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[2].Role)
	assert.Empty(t, req.Tools)
	assert.Nil(t, req.ToolChoice)
}

func TestBuildChatRequestTokenOverride(t *testing.T) {
	c := testClient()
	override := 512

	req := c.buildChatRequest(CompletionRequest{
		Messages:  []agent.Message{{Role: agent.RoleUser, Content: "hi"}},
		MaxTokens: &override,
	})

	assert.Equal(t, 512, req.MaxTokens)
}

func TestBuildChatRequestFunctionChoicePolicy(t *testing.T) {
	c := testClient()

	req := c.buildChatRequest(CompletionRequest{
		Messages: []agent.Message{{Role: agent.RoleUser, Content: "hi"}},
		Tools: []openai.Tool{
			{Type: openai.ToolTypeFunction, Function: &openai.FunctionDefinition{Name: "list_blobs_in_container"}},
		},
	})

	require.Len(t, req.Tools, 1)
	assert.Equal(t, "auto", req.ToolChoice)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(&openai.APIError{HTTPStatusCode: 429}))
	assert.False(t, isRateLimited(&openai.APIError{HTTPStatusCode: 500}))
	assert.False(t, isRateLimited(assert.AnError))
}
