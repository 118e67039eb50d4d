package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminationKindClassification(t *testing.T) {
	hard := []TerminationKind{
		TerminationHardBlocked,
		TerminationHardError,
		TerminationHardTimeout,
		TerminationHardResourceLimit,
	}
	soft := []TerminationKind{
		TerminationSoftCompletion,
		TerminationSoftEarlyExit,
	}

	for _, k := range hard {
		assert.True(t, k.IsValid(), "%s should be valid", k)
		assert.True(t, k.IsHard(), "%s should be hard", k)
	}
	for _, k := range soft {
		assert.True(t, k.IsValid(), "%s should be valid", k)
		assert.False(t, k.IsHard(), "%s should be soft", k)
	}

	assert.False(t, TerminationKind("gone").IsValid())
	assert.False(t, TerminationKind("gone").IsHard())
}

func TestTerminationResultPredicates(t *testing.T) {
	tests := []struct {
		name           string
		result         TerminationResult
		wantSuccess    bool
		wantBlocking   bool
		wantRetry      bool
		wantEscalation bool
	}{
		{
			name: "successful completion",
			result: TerminationResult{
				Terminate:  true,
				Reason:     "all manifests converted",
				Kind:       TerminationSoftCompletion,
				Confidence: 0.9,
			},
			wantSuccess: true,
		},
		{
			name: "hard blocked escalates, never retries",
			result: TerminationResult{
				Terminate:      true,
				Reason:         "requires operator approval for CRD replacement",
				Hard:           true,
				Kind:           TerminationHardBlocked,
				BlockingIssues: []string{"custom CRD has no AKS equivalent"},
				Confidence:     0.8,
			},
			wantBlocking:   true,
			wantEscalation: true,
		},
		{
			name: "hard error retries",
			result: TerminationResult{
				Terminate:      true,
				Reason:         "model service returned malformed output repeatedly",
				Hard:           true,
				Kind:           TerminationHardError,
				BlockingIssues: []string{"unparseable phase output"},
				Confidence:     0.7,
			},
			wantBlocking: true,
			wantRetry:    true,
		},
		{
			name: "hard timeout retries",
			result: TerminationResult{
				Terminate:      true,
				Reason:         "turn cap reached",
				Hard:           true,
				Kind:           TerminationHardTimeout,
				BlockingIssues: []string{"turn cap reached"},
				Confidence:     1.0,
			},
			wantBlocking: true,
			wantRetry:    true,
		},
		{
			name: "resource limit retries",
			result: TerminationResult{
				Terminate:      true,
				Reason:         "message cap exceeded",
				Hard:           true,
				Kind:           TerminationHardResourceLimit,
				BlockingIssues: []string{"message cap exceeded"},
				Confidence:     1.0,
			},
			wantBlocking: true,
			wantRetry:    true,
		},
		{
			name:   "continuation",
			result: TerminationResult{Terminate: false, Confidence: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.result.Validate())
			assert.Equal(t, tt.wantSuccess, tt.result.SuccessfulCompletion())
			assert.Equal(t, tt.wantBlocking, tt.result.BlockingTermination())
			assert.Equal(t, tt.wantRetry, tt.result.ShouldRetry())
			assert.Equal(t, tt.wantEscalation, tt.result.ShouldEscalate())
		})
	}
}

func TestTerminationResultValidate(t *testing.T) {
	tests := []struct {
		name   string
		result TerminationResult
	}{
		{
			name:   "confidence above one",
			result: TerminationResult{Confidence: 1.5},
		},
		{
			name:   "negative confidence",
			result: TerminationResult{Confidence: -0.1},
		},
		{
			name:   "terminate without reason",
			result: TerminationResult{Terminate: true, Kind: TerminationSoftCompletion},
		},
		{
			name:   "terminate with unknown kind",
			result: TerminationResult{Terminate: true, Reason: "r", Kind: "mystery"},
		},
		{
			name: "hard with soft kind",
			result: TerminationResult{
				Terminate: true, Reason: "r", Hard: true,
				Kind: TerminationSoftCompletion, BlockingIssues: []string{"x"},
			},
		},
		{
			name: "hard without blocking issues",
			result: TerminationResult{
				Terminate: true, Reason: "r", Hard: true,
				Kind: TerminationHardBlocked,
			},
		},
		{
			name: "soft with hard kind",
			result: TerminationResult{
				Terminate: true, Reason: "r", Kind: TerminationHardError,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			assert.ErrorIs(t, err, ErrInvalidTermination)
		})
	}
}

func TestHardTerminationHelper(t *testing.T) {
	r := HardTermination(TerminationHardTimeout, "turn cap reached")
	require.NoError(t, r.Validate())
	assert.True(t, r.BlockingTermination())
	assert.Equal(t, []string{"turn cap reached"}, r.BlockingIssues)

	r = HardTermination(TerminationHardBlocked, "cannot proceed", "missing source folder")
	require.NoError(t, r.Validate())
	assert.Equal(t, []string{"missing source folder"}, r.BlockingIssues)
	assert.True(t, r.ShouldEscalate())
}

func TestContinueHelper(t *testing.T) {
	r := Continue()
	require.NoError(t, r.Validate())
	assert.False(t, r.Terminate)
	assert.False(t, r.SuccessfulCompletion())
}
