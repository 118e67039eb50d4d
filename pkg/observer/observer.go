// Package observer scans streamed agent messages for tool activity and
// forwards usage events to the telemetry store.
package observer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// toolCatalog maps tool-name patterns to their category. Order within a
// category is irrelevant: detection reports the first pattern found in the
// message, scanning line by line.
var toolCatalog = []struct {
	category string
	patterns []string
}{
	{"blob", []string{
		"list_blobs_in_container",
		"read_blob_content",
		"write_blob_content",
		"upload_blob",
		"download_blob",
		"delete_blob",
	}},
	{"file", []string{
		"read_file",
		"write_file",
		"list_files",
		"create_directory",
		"delete_file",
	}},
	{"docs", []string{
		"search_documentation",
		"fetch_documentation",
		"lookup_docs",
	}},
	{"datetime", []string{
		"get_current_datetime",
		"get_current_time",
	}},
	{"context", []string{
		"get_migration_context",
		"update_migration_context",
	}},
	{"memory", []string{
		"save_memory",
		"recall_memory",
		"list_memories",
	}},
	{"functionapp", []string{
		"deploy_function_app",
		"list_function_apps",
		"get_function_app",
	}},
	{"infrastructure", []string{
		"provision_infrastructure",
		"validate_infrastructure",
		"get_cluster_info",
	}},
}

// invocationPhrases are generic phrases that suggest a tool call whose name
// did not match the catalog.
var invocationPhrases = []string{
	"calling function",
	"invoking tool",
	"executing function",
	"executing tool",
	"using tool",
}

// maxContextLen bounds the surrounding-line context attached to an event.
const maxContextLen = 200

// ToolUsageSink receives detected tool-usage events.
type ToolUsageSink interface {
	TrackToolUsage(ctx context.Context, req models.TrackToolUsageRequest) error
}

// ResponseObserver implements agent.Observer. It must never fail the
// conversation: every error is logged and swallowed.
type ResponseObserver struct {
	sink ToolUsageSink
}

// New creates an observer forwarding to the given sink. A nil sink produces
// a no-op observer.
func New(sink ToolUsageSink) *ResponseObserver {
	return &ResponseObserver{sink: sink}
}

// ObserveMessage scans one streamed agent message. On the first catalog
// match it forwards a single tool-usage event with the surrounding line as
// context; generic invocation phrases without a catalog match forward one
// unknown-tool event.
func (o *ResponseObserver) ObserveMessage(ctx context.Context, processID string, msg agent.Message) {
	if o == nil || o.sink == nil || msg.Content == "" {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Observer panicked while scanning message",
				"process_id", processID,
				"agent", msg.AgentName,
				"panic", r)
		}
	}()

	// The tool name is the catalog category; the action is the matched call.
	if action, category, line, ok := detectTool(msg.Content); ok {
		o.track(ctx, models.TrackToolUsageRequest{
			ProcessID:   processID,
			AgentName:   msg.AgentName,
			ToolName:    category,
			ToolAction:  action,
			ToolDetails: truncateContext(line),
		})
		return
	}

	if phrase, line, ok := detectInvocationPhrase(msg.Content); ok {
		o.track(ctx, models.TrackToolUsageRequest{
			ProcessID:   processID,
			AgentName:   msg.AgentName,
			ToolName:    "unknown",
			ToolAction:  phrase,
			ToolDetails: truncateContext(line),
		})
	}
}

func (o *ResponseObserver) track(ctx context.Context, req models.TrackToolUsageRequest) {
	if err := o.sink.TrackToolUsage(ctx, req); err != nil {
		slog.Warn("Failed to record tool usage",
			"process_id", req.ProcessID,
			"tool", req.ToolName,
			"error", err)
	}
}

// detectTool returns the first catalog pattern found in the content,
// together with its category and the line it appeared on.
func detectTool(content string) (action, category, line string, ok bool) {
	for _, rawLine := range strings.Split(content, "\n") {
		for _, group := range toolCatalog {
			for _, pattern := range group.patterns {
				if strings.Contains(rawLine, pattern) {
					return pattern, group.category, strings.TrimSpace(rawLine), true
				}
			}
		}
	}
	return "", "", "", false
}

// detectInvocationPhrase finds a generic function-invocation phrase.
func detectInvocationPhrase(content string) (phrase, line string, ok bool) {
	lower := strings.ToLower(content)
	for _, p := range invocationPhrases {
		if idx := strings.Index(lower, p); idx >= 0 {
			lineStart := strings.LastIndexByte(content[:idx], '\n') + 1
			lineEnd := strings.IndexByte(content[idx:], '\n')
			if lineEnd == -1 {
				lineEnd = len(content)
			} else {
				lineEnd += idx
			}
			return p, strings.TrimSpace(content[lineStart:lineEnd]), true
		}
	}
	return "", "", false
}

func truncateContext(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContextLen {
		return s
	}
	return string(runes[:maxContextLen]) + "..."
}
