package models

import "time"

// MaxActivityHistory caps the per-agent recent_activity list.
// Oldest entries are dropped first.
const MaxActivityHistory = 50

// MaxMessagePreview caps stored message previews.
const MaxMessagePreview = 200

// CreateProcessRequest contains fields for creating a new process status record.
type CreateProcessRequest struct {
	ProcessID       string            `json:"process_id"`
	UserID          string            `json:"user_id"`
	SourcePlatform  string            `json:"source_platform,omitempty"`
	Step            string            `json:"step"`
	Phase           string            `json:"phase"`
	ContainerName   string            `json:"container_name,omitempty"`
	SourceFolder    string            `json:"source_folder,omitempty"`
	WorkspaceFolder string            `json:"workspace_folder,omitempty"`
	OutputFolder    string            `json:"output_folder,omitempty"`
}

// UpdateAgentActivityRequest contains fields for an agent-activity upsert.
// Step and ToolUsed are optional. IsSpeaking marks the agent as the current
// speaker; the store clears the flag on the process's other agents.
type UpdateAgentActivityRequest struct {
	ProcessID      string `json:"process_id"`
	AgentName      string `json:"agent_name"`
	Action         string `json:"action"`
	MessagePreview string `json:"message_preview,omitempty"`
	Step           string `json:"step,omitempty"`
	ToolUsed       string `json:"tool_used,omitempty"`
	IsSpeaking     bool   `json:"is_speaking,omitempty"`
	IsThinking     bool   `json:"is_thinking,omitempty"`
}

// TrackToolUsageRequest contains fields for a tool-usage telemetry event.
type TrackToolUsageRequest struct {
	ProcessID         string `json:"process_id"`
	AgentName         string `json:"agent_name"`
	ToolName          string `json:"tool_name"`
	ToolAction        string `json:"tool_action"`
	ToolDetails       string `json:"tool_details,omitempty"`
	ToolResultPreview string `json:"tool_result_preview,omitempty"`
}

// ActivityEntry is one element of an agent's bounded history.
type ActivityEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	Action         string    `json:"action"`
	MessagePreview string    `json:"message_preview,omitempty"`
	Step           string    `json:"step,omitempty"`
	ToolUsed       string    `json:"tool_used,omitempty"`
}

// AgentSnapshot is the per-agent slice of a process snapshot.
type AgentSnapshot struct {
	Name                string          `json:"name"`
	CurrentAction       string          `json:"current_action,omitempty"`
	LastMessagePreview  string          `json:"last_message_preview,omitempty"`
	IsSpeaking          bool            `json:"is_speaking"`
	IsThinking          bool            `json:"is_thinking"`
	ParticipationStatus string          `json:"participation_status"`
	LastToolUsed        string          `json:"last_tool_used,omitempty"`
	RecentActivity      []ActivityEntry `json:"recent_activity,omitempty"`
	LastUpdateTime      time.Time       `json:"last_update_time"`
}

// ProcessSnapshot is the read-only projection combining process-level fields
// with a flattened list of agent entries.
type ProcessSnapshot struct {
	ProcessID      string          `json:"process_id"`
	UserID         string          `json:"user_id"`
	Phase          string          `json:"phase"`
	Step           string          `json:"step,omitempty"`
	Status         string          `json:"status"`
	StepsCompleted []string        `json:"steps_completed,omitempty"`
	Insights       []string        `json:"insights,omitempty"`
	ErrorLog       []string        `json:"error_log,omitempty"`
	WarningLog     []string        `json:"warning_log,omitempty"`
	Outcome        map[string]any  `json:"outcome,omitempty"`
	GeneratedFiles []string        `json:"generated_files,omitempty"`
	StartTime      time.Time       `json:"start_time"`
	LastUpdateTime time.Time       `json:"last_update_time"`
	Agents         []AgentSnapshot `json:"agents"`
}

// CreatePhaseRunRequest contains fields for recording a phase attempt.
type CreatePhaseRunRequest struct {
	ProcessID  string `json:"process_id"`
	PhaseName  string `json:"phase_name"`
	PhaseIndex int    `json:"phase_index"`
	Attempt    int    `json:"attempt"`
}

// TruncatePreview shortens s to MaxMessagePreview runes for storage.
func TruncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMessagePreview {
		return s
	}
	return string(runes[:MaxMessagePreview]) + "..."
}
