package config

import (
	"sync"
)

// BuiltinConfig holds the built-in agent roster and phase definitions.
// User YAML overrides these on a per-name basis.
type BuiltinConfig struct {
	Agents map[string]AgentConfig
	Phases map[Phase]PhaseConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents: initBuiltinAgents(),
		Phases: initBuiltinPhases(),
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"ChiefArchitect": {
			Role:        "Chief Architect",
			Description: "Coordinates the migration conversation and owns phase verdicts",
			Instructions: "Lead the discussion, pick the next speaker, and decide when " +
				"the phase goal is met. Demand concrete evidence before declaring completion.",
			Tools: []string{"context", "memory", "datetime"},
		},
		"EKSExpert": {
			Role:        "EKS Platform Expert",
			Description: "Understands Amazon EKS workload patterns and their AWS dependencies",
			Instructions: "Analyze source manifests for EKS-specific constructs: IRSA " +
				"annotations, ALB ingress classes, EBS/EFS storage classes, and AWS service references.",
			Tools: []string{"blob", "file", "docs"},
		},
		"GKEExpert": {
			Role:        "GKE Platform Expert",
			Description: "Understands Google GKE workload patterns and their GCP dependencies",
			Instructions: "Analyze source manifests for GKE-specific constructs: Workload " +
				"Identity, BackendConfig, GCE persistent disks, and GCP service references.",
			Tools: []string{"blob", "file", "docs"},
		},
		"AKSExpert": {
			Role:        "AKS Platform Expert",
			Description: "Maps source-platform constructs to their AKS equivalents",
			Instructions: "Propose AKS-native replacements: workload identity, application " +
				"gateway ingress, Azure disk/file storage classes, and managed service bindings.",
			Tools: []string{"blob", "file", "docs", "infrastructure", "functionapp"},
		},
		"YAMLConverter": {
			Role:        "YAML Conversion Specialist",
			Description: "Rewrites source manifests into AKS-ready YAML",
			Instructions: "Convert each manifest according to the approved design. Preserve " +
				"semantics, replace platform-specific fields, and write results to the output folder.",
			Tools: []string{"blob", "file"},
		},
		"QAEngineer": {
			Role:        "Quality Assurance Engineer",
			Description: "Verifies converted manifests for correctness and completeness",
			Instructions: "Validate converted YAML against the design decisions. Flag any " +
				"remaining source-platform references or schema violations.",
			Tools: []string{"blob", "file"},
		},
		"TechnicalWriter": {
			Role:        "Technical Writer",
			Description: "Produces the migration report and operator documentation",
			Instructions: "Summarize what was analyzed, designed, and converted. Document " +
				"manual follow-ups and verification steps for the operator.",
			Tools: []string{"blob", "file", "context", "memory"},
		},
	}
}

func initBuiltinPhases() map[Phase]PhaseConfig {
	return map[Phase]PhaseConfig{
		PhaseAnalysis: {
			Description: "Inventory source workloads and detect platform dependencies",
			Roster:      []string{"ChiefArchitect", "EKSExpert", "GKEExpert"},
			Manager:     "ChiefArchitect",
			MaxTurns:    30,
			MaxMessages: 120,
			PhaseRetry:  1,
		},
		PhaseDesign: {
			Description: "Decide AKS-native replacements for every detected dependency",
			Roster:      []string{"ChiefArchitect", "AKSExpert"},
			Manager:     "ChiefArchitect",
			MaxTurns:    30,
			MaxMessages: 120,
			PhaseRetry:  1,
		},
		PhaseYAML: {
			Description: "Convert source manifests into AKS-ready YAML",
			Roster:      []string{"ChiefArchitect", "YAMLConverter", "QAEngineer"},
			Manager:     "ChiefArchitect",
			MaxTurns:    50,
			MaxMessages: 200,
			PhaseRetry:  1,
		},
		PhaseDocumentation: {
			Description: "Write the migration report and operator runbook",
			Roster:      []string{"ChiefArchitect", "TechnicalWriter"},
			Manager:     "ChiefArchitect",
			MaxTurns:    20,
			MaxMessages: 80,
			PhaseRetry:  1,
		},
	}
}
