package groupchat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
)

const (
	// managerTailMessages bounds how much transcript the manager rules see.
	managerTailMessages = 12
	// managerTailRunes bounds each quoted message.
	managerTailRunes = 2000
)

// PayloadCheck reports whether an agent message parses as a well-formed
// phase output. Soft completions are only accepted when the latest message
// passes the check.
type PayloadCheck func(content string) bool

// NewLLMManager builds a manager whose selection and termination rules
// consult the model service. step names the pipeline step for prompts and
// selection reasons.
func NewLLMManager(name string, completer Completer, step string, payloadCheck PayloadCheck) Manager {
	return Manager{
		Name:        name,
		Selection:   llmSelection(completer, step),
		Termination: llmTermination(completer, step, payloadCheck),
	}
}

func llmSelection(completer Completer, step string) SelectionFunc {
	return func(ctx context.Context, conversation []agent.Message, roster []string) (string, error) {
		prompt := fmt.Sprintf(
			"You coordinate a %s conversation between these agents: %s.\n"+
				"Given the transcript below, reply with the name of the single agent "+
				"who should speak next. Reply with the name only.\n\n%s",
			step, strings.Join(roster, ", "), transcriptTail(conversation))

		return completer.Complete(ctx, completionOf(prompt))
	}
}

func llmTermination(completer Completer, step string, payloadCheck PayloadCheck) TerminationFunc {
	return func(ctx context.Context, conversation []agent.Message) (*agent.TerminationResult, error) {
		prompt := fmt.Sprintf(
			"You judge whether this %s conversation has reached its goal.\n"+
				"Reply with a JSON object: {\"terminate\": bool, \"reason\": string, "+
				"\"hard\": bool, \"kind\": string, \"blocking_issues\": [string], "+
				"\"retry_suggestions\": [string], \"confidence\": number}.\n"+
				"kind is one of soft_completion, soft_early_exit, hard_blocked, "+
				"hard_error, hard_timeout, hard_resource_limit. "+
				"When in doubt, do not terminate.\n\n%s",
			step, transcriptTail(conversation))

		raw, err := completer.Complete(ctx, completionOf(prompt))
		if err != nil {
			return nil, err
		}

		verdict := parseVerdict(raw)
		if verdict == nil {
			// Unparseable verdicts favor continuation.
			slog.Debug("Unparseable termination verdict, continuing", "step", step)
			return agent.Continue(), nil
		}

		// A soft completion must be backed by a well-formed phase output in
		// the latest agent message.
		if verdict.SuccessfulCompletion() && payloadCheck != nil {
			latest := latestAgentMessage(conversation)
			if latest == nil || !payloadCheck(latest.Content) {
				slog.Warn("Soft completion without well-formed phase output, continuing",
					"step", step)
				return agent.Continue(), nil
			}
		}
		return verdict, nil
	}
}

// parseVerdict extracts a termination result from a model response. The
// parser is forgiving: it strips code fences and surrounding prose, then
// tries the outermost JSON object. Nil means no usable verdict.
func parseVerdict(raw string) *agent.TerminationResult {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil
	}
	candidate = stripCodeFences(candidate)

	start := strings.IndexByte(candidate, '{')
	end := strings.LastIndexByte(candidate, '}')
	if start < 0 || end <= start {
		return nil
	}

	var verdict agent.TerminationResult
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &verdict); err != nil {
		return nil
	}
	return &verdict
}

// stripCodeFences removes a ```json ... ``` wrapper when present.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// transcriptTail formats the most recent conversation slice for a manager
// prompt, bounding both message count and per-message size.
func transcriptTail(conversation []agent.Message) string {
	start := 0
	if len(conversation) > managerTailMessages {
		start = len(conversation) - managerTailMessages
	}

	var b strings.Builder
	for _, msg := range conversation[start:] {
		author := msg.AgentName
		if author == "" {
			author = string(msg.Role)
		}
		content := msg.Content
		if runes := []rune(content); len(runes) > managerTailRunes {
			content = string(runes[:managerTailRunes]) + "..."
		}
		fmt.Fprintf(&b, "%s: %s\n", author, content)
	}
	return b.String()
}

// latestAgentMessage returns the newest assistant message, nil when none.
func latestAgentMessage(conversation []agent.Message) *agent.Message {
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == agent.RoleAssistant {
			return &conversation[i]
		}
	}
	return nil
}

func completionOf(prompt string) llm.CompletionRequest {
	return llm.CompletionRequest{
		Messages: []agent.Message{{Role: agent.RoleUser, Content: prompt}},
	}
}
