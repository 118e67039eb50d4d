// Package config provides configuration management for the CloudShift
// migration engine: environment settings, credential selection, dispatcher
// tuning, and the per-phase agent rosters.
package config

// Phase identifies one stage of the migration pipeline.
type Phase string

const (
	PhaseAnalysis      Phase = "analysis"
	PhaseDesign        Phase = "design"
	PhaseYAML          Phase = "yaml"
	PhaseDocumentation Phase = "documentation"
)

// PhaseOrder returns the fixed execution order of migration phases.
func PhaseOrder() []Phase {
	return []Phase{PhaseAnalysis, PhaseDesign, PhaseYAML, PhaseDocumentation}
}

// Index returns the 1-based position of the phase in the pipeline, or 0
// for an unknown phase.
func (p Phase) Index() int {
	for i, phase := range PhaseOrder() {
		if phase == p {
			return i + 1
		}
	}
	return 0
}

// IsValid checks if the phase is a known pipeline phase
func (p Phase) IsValid() bool {
	return p.Index() > 0
}

// AgentConfig defines one roster participant (metadata only — instantiation
// lives in the agent package).
type AgentConfig struct {
	// Role is the short functional title injected into prompts.
	Role string `yaml:"role"`

	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Instructions override or extend the built-in system prompt.
	Instructions string `yaml:"instructions,omitempty"`

	// Tools lists the tool categories this agent may invoke
	// (blob, file, docs, datetime, context, memory, functionapp, infrastructure).
	Tools []string `yaml:"tools,omitempty"`

	// MaxCompletionTokens caps each model call for this agent.
	// Falls back to the global model setting when unset.
	MaxCompletionTokens *int `yaml:"max_completion_tokens,omitempty" validate:"omitempty,min=1"`
}

// PhaseConfig defines the group-chat shape of one pipeline phase.
type PhaseConfig struct {
	// Description is a human-readable summary of what the phase produces.
	Description string `yaml:"description,omitempty"`

	// Roster is the ordered list of participant agent names.
	Roster []string `yaml:"roster"`

	// Manager names the agent whose selection/termination judgment drives
	// the conversation. Must appear in Roster.
	Manager string `yaml:"manager"`

	// MaxTurns caps conversation turns before a hard-timeout termination.
	MaxTurns int `yaml:"max_turns,omitempty"`

	// MaxMessages caps accumulated messages before a hard-resource-limit
	// termination.
	MaxMessages int `yaml:"max_messages,omitempty"`

	// PhaseRetry is how many attempts the phase gets. Error-type
	// terminations are retryable; blocked terminations are not.
	PhaseRetry int `yaml:"phase_retry,omitempty"`
}

// ModelConfig holds the chat-completion endpoint settings shared by all agents.
type ModelConfig struct {
	Endpoint            string
	APIKey              string
	Deployment          string
	APIVersion          string
	MaxCompletionTokens int
	Temperature         float32
}
