package phases

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/llm"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
	"github.com/cloudshift-ai/cloudshift/pkg/tasks"
)

// conversionTaskTimeout bounds one per-file conversion attempt.
const conversionTaskTimeout = 2 * time.Minute

// conversionOutcome is the result of one fan-out conversion: the output path
// and a bounded preview of the converted YAML.
type conversionOutcome struct {
	Path    string
	Preview string
}

// fanOutConversions converts any analyzed manifest the group chat did not
// already cover, one task per file on the parallel executor, then attaches
// a per-file status map and the aggregated dimension breakdown to the
// payload. Conversion failures become process warnings, not phase failures.
func (s *Step) fanOutConversions(ctx context.Context, processID string, state *models.SharedState, payload map[string]any) {
	converted := stringSlice(payload["converted_files"])
	statuses := make(map[string]any, len(state.AnalyzedFiles))

	covered := make(map[string]bool, len(converted))
	for _, f := range converted {
		covered[path.Base(f)] = true
		statuses[path.Base(f)] = map[string]any{"status": "converted"}
	}
	var pending []string
	for _, f := range state.AnalyzedFiles {
		if !covered[path.Base(f)] {
			pending = append(pending, f)
		}
	}

	if len(pending) > 0 {
		executor := tasks.NewExecutor(s.deps.Concurrency)
		for _, file := range pending {
			source := file
			err := executor.AddTask(source, func(taskCtx context.Context) (any, error) {
				return s.convertManifest(taskCtx, state, source)
			},
				tasks.WithMaxRetries(1),
				tasks.WithTimeout(conversionTaskTimeout))
			if err != nil {
				slog.Warn("Skipping duplicate conversion task",
					"process_id", processID,
					"file", source)
			}
		}

		executor.ExecuteAll(ctx, false, nil)

		for name, result := range executor.Successful() {
			outcome, ok := result.Value.(*conversionOutcome)
			if !ok {
				continue
			}
			converted = append(converted, outcome.Path)
			statuses[path.Base(name)] = map[string]any{
				"status":  "converted",
				"output":  outcome.Path,
				"preview": outcome.Preview,
			}
		}

		var warnings []string
		for name, result := range executor.Failed() {
			warnings = append(warnings, fmt.Sprintf("conversion of %s failed: %v", name, result.Err))
			statuses[path.Base(name)] = map[string]any{
				"status": "failed",
				"error":  result.Err.Error(),
			}
		}
		if len(warnings) > 0 {
			if err := s.deps.Telemetry.AppendWarnings(ctx, processID, "yaml", warnings); err != nil {
				slog.Warn("Failed to record conversion warnings",
					"process_id", processID,
					"error", err)
			}
		}
	}

	payload["converted_files"] = converted
	payload["conversion_status"] = statuses
	payload["dimensions"] = aggregateDimensions(converted)
}

// convertManifest runs a single-file conversion completion and returns the
// output path inside the converted folder with a preview of the model output.
func (s *Step) convertManifest(ctx context.Context, state *models.SharedState, source string) (*conversionOutcome, error) {
	prompt := fmt.Sprintf(
		"Convert the Kubernetes manifest %q from %s to an AKS-compatible equivalent. "+
			"Apply the agreed target architecture and preserve workload semantics. "+
			"Reply with the converted YAML only.",
		source, orUnknown(state.DetectedPlatform))

	resp, err := s.deps.LLM.Complete(ctx, llm.CompletionRequest{
		Messages: []agent.Message{{Role: agent.RoleUser, Content: prompt}},
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp) == "" {
		return nil, fmt.Errorf("model returned an empty conversion for %s", source)
	}
	return &conversionOutcome{
		Path:    path.Join(state.OutputFolder, path.Base(source)),
		Preview: models.TruncatePreview(resp),
	}, nil
}

// classifyManifest buckets a manifest into a migration dimension by its
// conventional file naming.
func classifyManifest(file string) string {
	name := strings.ToLower(path.Base(file))
	switch {
	// Security first: "serviceaccount" must not match the network "service".
	case containsAny(name, "rbac", "role", "secret", "serviceaccount", "psp", "certificate"):
		return "security"
	case containsAny(name, "service", "ingress", "gateway", "networkpolicy", "endpoint"):
		return "network"
	case containsAny(name, "pv", "pvc", "volume", "storageclass", "storage"):
		return "storage"
	case containsAny(name, "deployment", "statefulset", "daemonset", "replicaset", "job", "cronjob", "pod", "hpa"):
		return "compute"
	default:
		return "other"
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// aggregateDimensions counts converted manifests per migration dimension.
func aggregateDimensions(files []string) map[string]int {
	dimensions := make(map[string]int)
	for _, f := range files {
		dimensions[classifyManifest(f)]++
	}
	return dimensions
}
