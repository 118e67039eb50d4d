package phases

import (
	"encoding/json"
	"strings"

	"github.com/cloudshift-ai/cloudshift/pkg/agent/groupchat"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// requiredPayloadKeys defines what a well-formed phase output must carry.
var requiredPayloadKeys = map[config.Phase][]string{
	config.PhaseAnalysis:      {"detected_platform", "analyzed_files"},
	config.PhaseDesign:        {"architecture"},
	config.PhaseYAML:          {"converted_files"},
	config.PhaseDocumentation: {"summary"},
}

// ParsePayload extracts a JSON object from an agent message. Like the
// selection parser it is forgiving: code fences and surrounding prose are
// tolerated, only the outermost object is decoded.
func ParsePayload(content string) (map[string]any, bool) {
	candidate := strings.TrimSpace(content)
	if candidate == "" {
		return nil, false
	}
	if strings.HasPrefix(candidate, "```") {
		candidate = strings.TrimPrefix(candidate, "```json")
		candidate = strings.TrimPrefix(candidate, "```")
		if idx := strings.LastIndex(candidate, "```"); idx >= 0 {
			candidate = candidate[:idx]
		}
	}

	start := strings.IndexByte(candidate, '{')
	end := strings.LastIndexByte(candidate, '}')
	if start < 0 || end <= start {
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// WellFormed returns the payload check for one phase: the content must parse
// as JSON and carry the phase's required keys.
func WellFormed(phase config.Phase) groupchat.PayloadCheck {
	required := requiredPayloadKeys[phase]
	return func(content string) bool {
		payload, ok := ParsePayload(content)
		if !ok {
			return false
		}
		for _, key := range required {
			if _, present := payload[key]; !present {
				return false
			}
		}
		return true
	}
}

// applyPhaseOutput mutates shared state with a successful phase's payload:
// flips the completion flag, stores the phase result, and merges insights.
func applyPhaseOutput(phase config.Phase, state *models.SharedState, payload map[string]any) {
	switch phase {
	case config.PhaseAnalysis:
		state.AnalysisComplete = true
		state.AnalysisResult = payload
		if platform, ok := payload["detected_platform"].(string); ok && platform != "" {
			state.DetectedPlatform = strings.ToLower(platform)
		}
		if files := stringSlice(payload["analyzed_files"]); len(files) > 0 {
			state.AnalyzedFiles = files
		}
	case config.PhaseDesign:
		state.DesignComplete = true
		state.DesignResult = payload
	case config.PhaseYAML:
		state.YAMLComplete = true
		if files := stringSlice(payload["converted_files"]); len(files) > 0 {
			state.ConvertedFiles = files
		}
	case config.PhaseDocumentation:
		state.DocumentationComplete = true
		state.DocumentationResult = payload
	}
	state.Insights = mergeInsights(state.Insights, stringSlice(payload["insights"]))
}

// stringSlice coerces a decoded JSON value into []string, tolerating both
// []string and []any shapes.
func stringSlice(v any) []string {
	switch typed := v.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// mergeInsights appends new insights not already present, preserving order.
func mergeInsights(existing, additions []string) []string {
	if len(additions) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range additions {
		if s != "" && !seen[s] {
			seen[s] = true
			existing = append(existing, s)
		}
	}
	return existing
}
