package groupchat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
)

// fakeCompleter records prompts and replays canned responses.
type fakeCompleter struct {
	responses []string
	prompts   []string
	err       error
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.prompts = append(f.prompts, req.Messages[len(req.Messages)-1].Content)
	if f.err != nil {
		return "", f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func TestParseVerdict(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		v := parseVerdict(`{"terminate": true, "reason": "done", "kind": "soft_completion", "confidence": 0.8}`)
		require.NotNil(t, v)
		assert.True(t, v.Terminate)
		assert.Equal(t, agent.TerminationSoftCompletion, v.Kind)
		assert.InDelta(t, 0.8, v.Confidence, 1e-9)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		v := parseVerdict("```json\n{\"terminate\": false, \"confidence\": 1.0}\n```")
		require.NotNil(t, v)
		assert.False(t, v.Terminate)
	})

	t.Run("prose-wrapped JSON", func(t *testing.T) {
		v := parseVerdict(`Based on the transcript my verdict is {"terminate": true, "reason": "blocked on credentials", "hard": true, "kind": "hard_blocked", "blocking_issues": ["no AKS credentials"], "confidence": 0.95} as explained above.`)
		require.NotNil(t, v)
		assert.True(t, v.BlockingTermination())
		assert.Equal(t, []string{"no AKS credentials"}, v.BlockingIssues)
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, parseVerdict("the conversation should continue"))
		assert.Nil(t, parseVerdict(""))
		assert.Nil(t, parseVerdict("{not json}"))
	})
}

func TestLLMSelectionPromptNamesRoster(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"EKSExpert"}}
	selection := llmSelection(completer, "analysis")

	raw, err := selection(context.Background(),
		[]agent.Message{{Role: agent.RoleUser, Content: "analyze"}},
		[]string{"ChiefArchitect", "EKSExpert"})
	require.NoError(t, err)
	assert.Equal(t, "EKSExpert", raw)

	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], "ChiefArchitect, EKSExpert")
	assert.Contains(t, completer.prompts[0], "analysis")
}

func TestLLMTerminationDemotesUnbackedSoftCompletion(t *testing.T) {
	verdict := `{"terminate": true, "reason": "done", "kind": "soft_completion", "confidence": 0.9}`
	conversation := []agent.Message{
		{Role: agent.RoleAssistant, AgentName: "EKSExpert", Content: "not a payload"},
	}

	t.Run("payload check fails", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{verdict}}
		termination := llmTermination(completer, "analysis", func(string) bool { return false })

		result, err := termination(context.Background(), conversation)
		require.NoError(t, err)
		assert.False(t, result.Terminate, "unbacked soft completion must continue")
	})

	t.Run("payload check passes", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{verdict}}
		termination := llmTermination(completer, "analysis", func(string) bool { return true })

		result, err := termination(context.Background(), conversation)
		require.NoError(t, err)
		assert.True(t, result.SuccessfulCompletion())
	})

	t.Run("hard verdicts bypass the payload check", func(t *testing.T) {
		completer := &fakeCompleter{responses: []string{
			`{"terminate": true, "reason": "stuck", "hard": true, "kind": "hard_blocked", "blocking_issues": ["missing manifests"], "confidence": 1.0}`,
		}}
		termination := llmTermination(completer, "analysis", func(string) bool { return false })

		result, err := termination(context.Background(), conversation)
		require.NoError(t, err)
		assert.True(t, result.BlockingTermination())
	})
}

func TestLLMTerminationUnparseableContinues(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"I think we should keep going"}}
	termination := llmTermination(completer, "yaml", nil)

	result, err := termination(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, result.Terminate)
}

func TestTranscriptTailBounds(t *testing.T) {
	var conversation []agent.Message
	for i := 0; i < managerTailMessages+8; i++ {
		conversation = append(conversation, agent.Message{
			Role:      agent.RoleAssistant,
			AgentName: "EKSExpert",
			Content:   strings.Repeat("x", managerTailRunes+100),
		})
	}

	tail := transcriptTail(conversation)
	lines := strings.Split(strings.TrimSpace(tail), "\n")
	assert.Len(t, lines, managerTailMessages)
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), managerTailRunes+len("EKSExpert: ")+3)
	}
}

func TestLatestAgentMessage(t *testing.T) {
	conversation := []agent.Message{
		{Role: agent.RoleUser, Content: "start"},
		{Role: agent.RoleAssistant, AgentName: "A", Content: "first"},
		{Role: agent.RoleAssistant, AgentName: "B", Content: "second"},
		{Role: agent.RoleUser, Content: "note"},
	}

	latest := latestAgentMessage(conversation)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Content)

	assert.Nil(t, latestAgentMessage([]agent.Message{{Role: agent.RoleUser, Content: "only"}}))
}
