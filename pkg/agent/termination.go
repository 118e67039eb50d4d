package agent

import (
	"errors"
	"fmt"
)

// TerminationKind classifies why a group-chat conversation ended.
type TerminationKind string

const (
	// TerminationSoftCompletion means the phase goal was met.
	TerminationSoftCompletion TerminationKind = "soft_completion"
	// TerminationSoftEarlyExit means the conversation ended early without
	// failure (e.g. nothing to do for this phase).
	TerminationSoftEarlyExit TerminationKind = "soft_early_exit"
	// TerminationHardBlocked means progress is impossible without human help.
	TerminationHardBlocked TerminationKind = "hard_blocked"
	// TerminationHardError means an unrecoverable processing error occurred.
	TerminationHardError TerminationKind = "hard_error"
	// TerminationHardTimeout means the turn cap or deadline was hit.
	TerminationHardTimeout TerminationKind = "hard_timeout"
	// TerminationHardResourceLimit means a message or resource cap was hit.
	TerminationHardResourceLimit TerminationKind = "hard_resource_limit"
)

// IsValid checks if the kind is a known termination kind
func (k TerminationKind) IsValid() bool {
	switch k {
	case TerminationSoftCompletion, TerminationSoftEarlyExit,
		TerminationHardBlocked, TerminationHardError,
		TerminationHardTimeout, TerminationHardResourceLimit:
		return true
	default:
		return false
	}
}

// IsHard reports whether the kind represents a hard termination.
func (k TerminationKind) IsHard() bool {
	switch k {
	case TerminationHardBlocked, TerminationHardError,
		TerminationHardTimeout, TerminationHardResourceLimit:
		return true
	default:
		return false
	}
}

// ErrInvalidTermination indicates a termination result violating its invariants.
var ErrInvalidTermination = errors.New("invalid termination result")

// TerminationResult is the verdict of a termination rule: whether the
// conversation should stop, how it ended, and what to do about it.
type TerminationResult struct {
	// Terminate signals the conversation should stop now.
	Terminate bool `json:"terminate"`

	// Reason is the human-readable explanation. Required when Terminate is set.
	Reason string `json:"reason"`

	// Hard marks a termination that did not reach the phase goal.
	Hard bool `json:"hard"`

	// Kind classifies the termination.
	Kind TerminationKind `json:"kind"`

	// BlockingIssues lists what prevents progress, in order of discovery.
	BlockingIssues []string `json:"blocking_issues,omitempty"`

	// RetrySuggestions lists ordered hints for a retry attempt.
	RetrySuggestions []string `json:"retry_suggestions,omitempty"`

	// Confidence is the rule's confidence in the verdict, in [0,1].
	Confidence float64 `json:"confidence"`

	// Metadata carries open rule-specific extras.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SuccessfulCompletion reports whether the conversation met the phase goal.
func (r *TerminationResult) SuccessfulCompletion() bool {
	return r.Terminate && !r.Hard && r.Kind == TerminationSoftCompletion
}

// BlockingTermination reports whether the conversation ended without
// reaching the phase goal.
func (r *TerminationResult) BlockingTermination() bool {
	return r.Terminate && r.Hard
}

// ShouldRetry reports whether a retry attempt may succeed: errors,
// timeouts, and resource limits are transient; blocked is not.
func (r *TerminationResult) ShouldRetry() bool {
	switch r.Kind {
	case TerminationHardError, TerminationHardTimeout, TerminationHardResourceLimit:
		return true
	default:
		return false
	}
}

// ShouldEscalate reports whether the result needs human attention instead
// of a retry.
func (r *TerminationResult) ShouldEscalate() bool {
	return r.Hard && r.Kind == TerminationHardBlocked
}

// Validate checks the result's structural invariants.
func (r *TerminationResult) Validate() error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v outside [0,1]", ErrInvalidTermination, r.Confidence)
	}
	if !r.Terminate {
		return nil
	}
	if r.Reason == "" {
		return fmt.Errorf("%w: terminating result requires a reason", ErrInvalidTermination)
	}
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTermination, r.Kind)
	}
	if r.Hard {
		if !r.Kind.IsHard() {
			return fmt.Errorf("%w: hard termination with soft kind %q", ErrInvalidTermination, r.Kind)
		}
		if len(r.BlockingIssues) == 0 {
			return fmt.Errorf("%w: hard termination must cite at least one blocking issue", ErrInvalidTermination)
		}
	} else if r.Kind.IsHard() {
		return fmt.Errorf("%w: soft termination with hard kind %q", ErrInvalidTermination, r.Kind)
	}
	return nil
}

// HardTermination builds a valid hard termination result of the given kind.
func HardTermination(kind TerminationKind, reason string, issues ...string) *TerminationResult {
	if len(issues) == 0 {
		issues = []string{reason}
	}
	return &TerminationResult{
		Terminate:      true,
		Reason:         reason,
		Hard:           true,
		Kind:           kind,
		BlockingIssues: issues,
		Confidence:     1.0,
	}
}

// Continue builds a non-terminating result.
func Continue() *TerminationResult {
	return &TerminationResult{Terminate: false, Confidence: 1.0}
}
