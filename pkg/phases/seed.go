package phases

import (
	"fmt"
	"strings"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// buildSeed composes the opening message for a phase conversation from the
// shared state accumulated so far.
func buildSeed(phase config.Phase, state *models.SharedState) []agent.Message {
	var b strings.Builder

	switch phase {
	case config.PhaseAnalysis:
		fmt.Fprintf(&b, "Analyze the Kubernetes workload in container %q, folder %q.\n",
			state.ContainerName, state.SourceFolder)
		b.WriteString("Identify the source platform and enumerate every manifest. ")
		b.WriteString("Conclude with a JSON object carrying detected_platform, analyzed_files, and insights.\n")

	case config.PhaseDesign:
		fmt.Fprintf(&b, "Design the AKS target architecture for a workload migrated from %s.\n",
			orUnknown(state.DetectedPlatform))
		writeFileList(&b, "Analyzed manifests", state.AnalyzedFiles)
		b.WriteString("Conclude with a JSON object carrying architecture and insights.\n")

	case config.PhaseYAML:
		fmt.Fprintf(&b, "Convert the %s manifests to AKS-compatible YAML, writing results to folder %q.\n",
			orUnknown(state.DetectedPlatform), state.OutputFolder)
		writeFileList(&b, "Manifests to convert", state.AnalyzedFiles)
		b.WriteString("Conclude with a JSON object carrying converted_files and insights.\n")

	case config.PhaseDocumentation:
		b.WriteString("Write the migration documentation: an executive summary, per-phase findings, and follow-up actions.\n")
		writeFileList(&b, "Converted manifests", state.ConvertedFiles)
		if len(state.Insights) > 0 {
			b.WriteString("Key insights so far:\n")
			for _, insight := range state.Insights {
				fmt.Fprintf(&b, "- %s\n", insight)
			}
		}
		b.WriteString("Conclude with a JSON object carrying summary, report_path, and insights.\n")
	}

	return []agent.Message{{
		Role:      agent.RoleUser,
		Content:   b.String(),
		Timestamp: time.Now().UTC(),
	}}
}

func writeFileList(b *strings.Builder, label string, files []string) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, f := range files {
		fmt.Fprintf(b, "- %s\n", f)
	}
}

func orUnknown(platform string) string {
	if platform == "" {
		return "an unidentified platform"
	}
	return platform
}
