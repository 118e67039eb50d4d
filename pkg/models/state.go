package models

// SharedState is the mutable per-process state threaded through the phase
// pipeline. The process state machine owns CurrentPhase; each phase step
// mutates only its designated fields through its step result.
type SharedState struct {
	ProcessID string
	UserID    string

	// Folder layout inside the artifact container
	ContainerName   string
	SourceFolder    string
	WorkspaceFolder string
	OutputFolder    string

	// CurrentPhase is written only by the process state machine.
	CurrentPhase string

	// Source platform detected during analysis (e.g. "eks", "gke")
	DetectedPlatform string

	// Per-phase completion flags
	AnalysisComplete      bool
	DesignComplete        bool
	YAMLComplete          bool
	DocumentationComplete bool

	// AnalyzedFiles lists source manifests inspected during analysis.
	AnalyzedFiles []string

	// Phase outputs, keyed the way the phase emitted them
	AnalysisResult      map[string]any
	DesignResult        map[string]any
	ConvertedFiles      []string
	DocumentationResult map[string]any

	// Insights accumulated across phases
	Insights []string
}

// NewSharedState seeds state from a queue job, applying folder defaults.
func NewSharedState(job *JobMessage) *SharedState {
	state := &SharedState{
		ProcessID:       job.ProcessID,
		UserID:          job.UserID,
		SourceFolder:    "source",
		WorkspaceFolder: "workspace",
		OutputFolder:    "converted",
	}
	if req := job.MigrationRequest; req != nil {
		if req.ContainerName != "" {
			state.ContainerName = req.ContainerName
		}
		if req.SourceFolder != "" {
			state.SourceFolder = req.SourceFolder
		}
		if req.WorkspaceFolder != "" {
			state.WorkspaceFolder = req.WorkspaceFolder
		}
		if req.OutputFolder != "" {
			state.OutputFolder = req.OutputFolder
		}
	}
	return state
}
