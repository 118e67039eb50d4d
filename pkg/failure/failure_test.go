package failure

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

var testClock = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testStepContext() StepContext {
	return StepContext{
		ProcessID: "proc-1",
		StepName:  "analysis_step",
		StepPhase: "analysis",
		State: &models.SharedState{
			ProcessID:        "proc-1",
			SourceFolder:     "source",
			DetectedPlatform: "eks",
			AnalyzedFiles:    []string{"deployment.yaml", "service.yaml"},
			AnalysisResult: map[string]any{
				"analyzed_files": []string{"service.yaml", "ingress.yaml"},
			},
		},
	}
}

func TestCollectSystemFailure(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := fmt.Errorf("failed to list blobs: %w", cause)

	rec := CollectSystemFailure(err, testStepContext(), testClock)

	assert.Equal(t, VariantSystemFailure, rec.Variant)
	require.NotNil(t, rec.System)
	assert.Nil(t, rec.Termination, "exactly one variant populated")

	sys := rec.System
	assert.Equal(t, "failed to list blobs: connection refused", sys.Message)
	assert.Equal(t, "connection refused", sys.Cause)
	assert.Equal(t, []string{"failed to list blobs: connection refused", "connection refused"}, sys.ErrorChain)
	assert.Equal(t, testClock, sys.Timestamp)
	assert.Equal(t, "proc-1", sys.ProcessID)
	assert.Equal(t, "analysis_step", sys.StepName)
	assert.Equal(t, "analysis", sys.StepPhase)

	assert.Equal(t, map[string]any{
		"source_folder":        "source",
		"analyzed_files_count": 2,
		"detected_platform":    "eks",
		"has_analysis_result":  true,
	}, sys.InputSummary)
}

func TestCollectHardTermination(t *testing.T) {
	res := &agent.TerminationResult{
		Terminate:        true,
		Reason:           "custom CRD has no AKS equivalent",
		Hard:             true,
		Kind:             agent.TerminationHardBlocked,
		BlockingIssues:   []string{"unsupported CRD: FluxKustomization"},
		RetrySuggestions: []string{"install flux extension first"},
		Confidence:       0.8,
	}

	rec := CollectHardTermination(res, testStepContext(), testClock)

	assert.Equal(t, VariantHardTermination, rec.Variant)
	require.NotNil(t, rec.Termination)
	assert.Nil(t, rec.System, "exactly one variant populated")

	term := rec.Termination
	assert.Equal(t, agent.TerminationHardBlocked, term.Kind)
	assert.Equal(t, "custom CRD has no AKS equivalent", term.Reason)
	assert.True(t, term.ManualIntervention)
	assert.Equal(t, EscalationCritical, term.Escalation)
	// De-duplicated union of analyzed files and analysis output files
	assert.Equal(t, []string{"deployment.yaml", "ingress.yaml", "service.yaml"}, term.InputFiles)
}

func TestCollectIsDeterministic(t *testing.T) {
	res := &agent.TerminationResult{
		Terminate:      true,
		Reason:         "turn cap reached",
		Hard:           true,
		Kind:           agent.TerminationHardTimeout,
		BlockingIssues: []string{"turn cap reached"},
		Confidence:     1.0,
	}

	a, err := json.Marshal(CollectHardTermination(res, testStepContext(), testClock))
	require.NoError(t, err)
	b, err := json.Marshal(CollectHardTermination(res, testStepContext(), testClock))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same inputs and clock must produce byte-identical records")
}

func TestCollectDoesNotMutateInputs(t *testing.T) {
	stepCtx := testStepContext()
	res := &agent.TerminationResult{
		Terminate:      true,
		Reason:         "r",
		Hard:           true,
		Kind:           agent.TerminationHardError,
		BlockingIssues: []string{"a"},
		Confidence:     0.9,
	}

	rec := CollectHardTermination(res, stepCtx, testClock)
	rec.Termination.BlockingIssues[0] = "mutated"
	rec.Termination.InputFiles[0] = "mutated"

	assert.Equal(t, "a", res.BlockingIssues[0])
	assert.Equal(t, "deployment.yaml", stepCtx.State.AnalyzedFiles[0])
}

func TestManualInterventionRequired(t *testing.T) {
	tests := []struct {
		name string
		res  agent.TerminationResult
		want bool
	}{
		{
			name: "blocked always requires intervention",
			res:  agent.TerminationResult{Kind: agent.TerminationHardBlocked, Confidence: 1.0},
			want: true,
		},
		{
			name: "error always requires intervention",
			res:  agent.TerminationResult{Kind: agent.TerminationHardError, Confidence: 1.0},
			want: true,
		},
		{
			name: "resource limit always requires intervention",
			res:  agent.TerminationResult{Kind: agent.TerminationHardResourceLimit, Confidence: 1.0},
			want: true,
		},
		{
			name: "low confidence requires intervention",
			res:  agent.TerminationResult{Kind: agent.TerminationHardTimeout, Confidence: 0.4},
			want: true,
		},
		{
			name: "many blocking issues require intervention",
			res: agent.TerminationResult{
				Kind:           agent.TerminationHardTimeout,
				Confidence:     0.9,
				BlockingIssues: []string{"a", "b", "c"},
			},
			want: true,
		},
		{
			name: "confident timeout with few issues does not",
			res: agent.TerminationResult{
				Kind:           agent.TerminationHardTimeout,
				Confidence:     0.9,
				BlockingIssues: []string{"a", "b"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ManualInterventionRequired(&tt.res))
		})
	}
}

func TestEscalation(t *testing.T) {
	tests := []struct {
		name string
		res  agent.TerminationResult
		want EscalationLevel
	}{
		{
			name: "blocked is critical regardless of confidence",
			res:  agent.TerminationResult{Kind: agent.TerminationHardBlocked, Confidence: 0.95},
			want: EscalationCritical,
		},
		{
			name: "error is high",
			res:  agent.TerminationResult{Kind: agent.TerminationHardError, Confidence: 0.95},
			want: EscalationHigh,
		},
		{
			name: "very low confidence is high",
			res:  agent.TerminationResult{Kind: agent.TerminationHardTimeout, Confidence: 0.2},
			want: EscalationHigh,
		},
		{
			name: "medium confidence is medium",
			res:  agent.TerminationResult{Kind: agent.TerminationHardTimeout, Confidence: 0.5},
			want: EscalationMedium,
		},
		{
			name: "confident timeout is low",
			res:  agent.TerminationResult{Kind: agent.TerminationHardTimeout, Confidence: 0.9},
			want: EscalationLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escalation(&tt.res))
		})
	}
}

func TestSummarizeInputOnlyPresentKeys(t *testing.T) {
	assert.Nil(t, SummarizeInput(nil))
	assert.Nil(t, SummarizeInput(&models.SharedState{}))

	summary := SummarizeInput(&models.SharedState{DetectedPlatform: "gke"})
	assert.Equal(t, map[string]any{"detected_platform": "gke"}, summary)
}

func TestExtractInputFilesDeduplicates(t *testing.T) {
	state := &models.SharedState{
		AnalyzedFiles: []string{"a.yaml", "b.yaml", "a.yaml"},
		AnalysisResult: map[string]any{
			"analyzed_files": []any{"b.yaml", "c.yaml", ""},
		},
	}

	assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, ExtractInputFiles(state))
	assert.Nil(t, ExtractInputFiles(nil))
}
