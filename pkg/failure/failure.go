// Package failure builds the failure-context records attached to a process
// when a phase step fails. All functions are pure: no I/O, no mutation of
// inputs, and identical inputs plus an identical clock yield identical
// records.
package failure

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/models"
)

// Variant distinguishes the two failure-record shapes.
type Variant string

const (
	VariantSystemFailure   Variant = "system_failure"
	VariantHardTermination Variant = "hard_termination"
)

// EscalationLevel grades how urgently a failure needs human attention.
type EscalationLevel string

const (
	EscalationLow      EscalationLevel = "low"
	EscalationMedium   EscalationLevel = "medium"
	EscalationHigh     EscalationLevel = "high"
	EscalationCritical EscalationLevel = "critical"
)

// StepContext identifies where in the pipeline a failure happened.
type StepContext struct {
	ProcessID string
	StepName  string
	StepPhase string
	State     *models.SharedState
}

// SystemFailure captures an unexpected error with its step context.
type SystemFailure struct {
	ErrorType    string         `json:"error_type"`
	Message      string         `json:"message"`
	ErrorChain   []string       `json:"error_chain,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	ProcessID    string         `json:"process_id"`
	StepName     string         `json:"step_name"`
	StepPhase    string         `json:"step_phase"`
	InputSummary map[string]any `json:"input_summary,omitempty"`
	Cause        string         `json:"cause,omitempty"`
}

// HardTerminationFailure captures a hard group-chat termination.
type HardTerminationFailure struct {
	Kind               agent.TerminationKind `json:"kind"`
	Reason             string                `json:"reason"`
	BlockingIssues     []string              `json:"blocking_issues,omitempty"`
	RetrySuggestions   []string              `json:"retry_suggestions,omitempty"`
	Confidence         float64               `json:"confidence"`
	InputFiles         []string              `json:"input_files,omitempty"`
	ManualIntervention bool                  `json:"manual_intervention"`
	Escalation         EscalationLevel       `json:"escalation"`
	Timestamp          time.Time             `json:"timestamp"`
	ProcessID          string                `json:"process_id"`
	StepName           string                `json:"step_name"`
	StepPhase          string                `json:"step_phase"`
}

// Record is one step-failure record. Exactly one variant is populated.
type Record struct {
	Variant     Variant                 `json:"variant"`
	System      *SystemFailure          `json:"system,omitempty"`
	Termination *HardTerminationFailure `json:"termination,omitempty"`
}

// CollectSystemFailure builds a system-failure record from an error and its
// step context.
func CollectSystemFailure(err error, stepCtx StepContext, now time.Time) *Record {
	sys := &SystemFailure{
		ErrorType:    fmt.Sprintf("%T", err),
		Message:      errMessage(err),
		ErrorChain:   errorChain(err),
		Timestamp:    now,
		ProcessID:    stepCtx.ProcessID,
		StepName:     stepCtx.StepName,
		StepPhase:    stepCtx.StepPhase,
		InputSummary: SummarizeInput(stepCtx.State),
	}
	if cause := errors.Unwrap(err); cause != nil {
		sys.Cause = cause.Error()
	}
	return &Record{
		Variant: VariantSystemFailure,
		System:  sys,
	}
}

// CollectHardTermination builds a hard-termination record from a group-chat
// termination result and its step context.
func CollectHardTermination(res *agent.TerminationResult, stepCtx StepContext, now time.Time) *Record {
	return &Record{
		Variant: VariantHardTermination,
		Termination: &HardTerminationFailure{
			Kind:               res.Kind,
			Reason:             res.Reason,
			BlockingIssues:     copyStrings(res.BlockingIssues),
			RetrySuggestions:   copyStrings(res.RetrySuggestions),
			Confidence:         res.Confidence,
			InputFiles:         ExtractInputFiles(stepCtx.State),
			ManualIntervention: ManualInterventionRequired(res),
			Escalation:         Escalation(res),
			Timestamp:          now,
			ProcessID:          stepCtx.ProcessID,
			StepName:           stepCtx.StepName,
			StepPhase:          stepCtx.StepPhase,
		},
	}
}

// ManualInterventionRequired decides whether a human must step in: blocked,
// error, and resource-limit kinds always qualify, as do low-confidence
// verdicts and verdicts with many blocking issues.
func ManualInterventionRequired(res *agent.TerminationResult) bool {
	switch res.Kind {
	case agent.TerminationHardBlocked, agent.TerminationHardError, agent.TerminationHardResourceLimit:
		return true
	}
	if res.Confidence < 0.5 {
		return true
	}
	return len(res.BlockingIssues) > 2
}

// Escalation grades the termination: hard-error is high, hard-blocked is
// critical, and otherwise confidence drives the level. Critical wins when
// rules conflict.
func Escalation(res *agent.TerminationResult) EscalationLevel {
	if res.Kind == agent.TerminationHardBlocked {
		return EscalationCritical
	}
	if res.Kind == agent.TerminationHardError {
		return EscalationHigh
	}
	switch {
	case res.Confidence < 0.3:
		return EscalationHigh
	case res.Confidence < 0.7:
		return EscalationMedium
	default:
		return EscalationLow
	}
}

// SummarizeInput extracts only the present keys from shared state: folder
// layout, analyzed-file count, detected platform, and which prior-phase
// results exist. Absent values produce no key.
func SummarizeInput(state *models.SharedState) map[string]any {
	if state == nil {
		return nil
	}

	summary := make(map[string]any)
	if state.SourceFolder != "" {
		summary["source_folder"] = state.SourceFolder
	}
	if len(state.AnalyzedFiles) > 0 {
		summary["analyzed_files_count"] = len(state.AnalyzedFiles)
	}
	if state.DetectedPlatform != "" {
		summary["detected_platform"] = state.DetectedPlatform
	}
	if state.AnalysisResult != nil {
		summary["has_analysis_result"] = true
	}
	if state.DesignResult != nil {
		summary["has_design_result"] = true
	}
	if len(summary) == 0 {
		return nil
	}
	return summary
}

// ExtractInputFiles returns the de-duplicated, sorted union of the analyzed
// file list and any file list carried in the analysis output.
func ExtractInputFiles(state *models.SharedState) []string {
	if state == nil {
		return nil
	}

	seen := make(map[string]bool)
	var files []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}

	for _, f := range state.AnalyzedFiles {
		add(f)
	}
	if state.AnalysisResult != nil {
		switch v := state.AnalysisResult["analyzed_files"].(type) {
		case []string:
			for _, f := range v {
				add(f)
			}
		case []any:
			for _, item := range v {
				if f, ok := item.(string); ok {
					add(f)
				}
			}
		}
	}

	sort.Strings(files)
	return files
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// errorChain flattens the wrap chain, outermost first.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
