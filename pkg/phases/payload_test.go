package phases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/config"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

func TestParsePayload(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		payload, ok := ParsePayload(`{"detected_platform": "eks"}`)
		require.True(t, ok)
		assert.Equal(t, "eks", payload["detected_platform"])
	})

	t.Run("fenced JSON", func(t *testing.T) {
		payload, ok := ParsePayload("```json\n{\"architecture\": {\"cluster\": \"aks\"}}\n```")
		require.True(t, ok)
		assert.Contains(t, payload, "architecture")
	})

	t.Run("prose-wrapped JSON", func(t *testing.T) {
		payload, ok := ParsePayload(`Here is my final output: {"summary": "done"} — let me know.`)
		require.True(t, ok)
		assert.Equal(t, "done", payload["summary"])
	})

	t.Run("no JSON", func(t *testing.T) {
		_, ok := ParsePayload("the analysis went well")
		assert.False(t, ok)

		_, ok = ParsePayload("")
		assert.False(t, ok)
	})
}

func TestWellFormedRequiresPhaseKeys(t *testing.T) {
	check := WellFormed(config.PhaseAnalysis)

	assert.True(t, check(`{"detected_platform": "eks", "analyzed_files": []}`))
	assert.False(t, check(`{"detected_platform": "eks"}`), "analyzed_files missing")
	assert.False(t, check("not json"))

	assert.True(t, WellFormed(config.PhaseDesign)(`{"architecture": {}}`))
	assert.True(t, WellFormed(config.PhaseYAML)(`{"converted_files": []}`))
	assert.True(t, WellFormed(config.PhaseDocumentation)(`{"summary": "migrated"}`))
}

func TestApplyPhaseOutput(t *testing.T) {
	t.Run("analysis", func(t *testing.T) {
		state := &models.SharedState{}
		applyPhaseOutput(config.PhaseAnalysis, state, map[string]any{
			"detected_platform": "GKE",
			"analyzed_files":    []any{"a.yaml", "b.yaml"},
			"insights":          []any{"uses workload identity"},
		})

		assert.True(t, state.AnalysisComplete)
		assert.Equal(t, "gke", state.DetectedPlatform, "platform is normalized to lower case")
		assert.Equal(t, []string{"a.yaml", "b.yaml"}, state.AnalyzedFiles)
		assert.Equal(t, []string{"uses workload identity"}, state.Insights)
	})

	t.Run("design", func(t *testing.T) {
		state := &models.SharedState{Insights: []string{"existing"}}
		payload := map[string]any{"architecture": map[string]any{"ingress": "agic"}, "insights": []any{"existing", "new"}}
		applyPhaseOutput(config.PhaseDesign, state, payload)

		assert.True(t, state.DesignComplete)
		assert.Equal(t, payload, state.DesignResult)
		assert.Equal(t, []string{"existing", "new"}, state.Insights, "insights deduplicate")
	})

	t.Run("yaml", func(t *testing.T) {
		state := &models.SharedState{}
		applyPhaseOutput(config.PhaseYAML, state, map[string]any{
			"converted_files": []string{"converted/a.yaml"},
		})

		assert.True(t, state.YAMLComplete)
		assert.Equal(t, []string{"converted/a.yaml"}, state.ConvertedFiles)
	})

	t.Run("documentation", func(t *testing.T) {
		state := &models.SharedState{}
		payload := map[string]any{"summary": "migration complete", "report_path": "docs/report.md"}
		applyPhaseOutput(config.PhaseDocumentation, state, payload)

		assert.True(t, state.DocumentationComplete)
		assert.Equal(t, payload, state.DocumentationResult)
	})

	t.Run("empty payload still flips the flag", func(t *testing.T) {
		state := &models.SharedState{AnalyzedFiles: []string{"kept.yaml"}}
		applyPhaseOutput(config.PhaseAnalysis, state, map[string]any{})

		assert.True(t, state.AnalysisComplete)
		assert.Equal(t, []string{"kept.yaml"}, state.AnalyzedFiles, "absent keys leave state untouched")
	})
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"a"}, stringSlice([]any{"a", 42, ""}))
	assert.Nil(t, stringSlice("not-a-slice"))
	assert.Nil(t, stringSlice(nil))
}
