package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRoster = []string{"ChiefArchitect", "EKSExpert", "YAMLConverter"}

func TestParseSelectionStrictJSON(t *testing.T) {
	res := ParseSelection(`{"result": "EKSExpert", "reason": "knows IRSA"}`, testRoster, "analysis")

	assert.Equal(t, "EKSExpert", res.Result)
	assert.Equal(t, "knows IRSA", res.Reason, "strict JSON passes through untouched")
}

func TestParseSelectionJSONOffRosterFallsBack(t *testing.T) {
	res := ParseSelection(`{"result": "GhostAgent", "reason": "sounds plausible"}`, testRoster, "analysis")
	assert.Equal(t, "ChiefArchitect", res.Result, "JSON results resolve against the roster too")
}

func TestParseSelectionJSONCaseInsensitiveRosterMatch(t *testing.T) {
	res := ParseSelection(`{"result": "eksexpert", "reason": "knows IRSA"}`, testRoster, "analysis")
	assert.Equal(t, "EKSExpert", res.Result)
	assert.Equal(t, "knows IRSA", res.Reason)
}

func TestParseSelectionJSONTerminalWord(t *testing.T) {
	res := ParseSelection(`{"result": "terminate", "reason": "phase goal met"}`, testRoster, "analysis")
	assert.Empty(t, res.Result, "terminal word forces the caller's fallback")
}

func TestParseSelectionNormalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare name", "EKSExpert", "EKSExpert"},
		{"surrounding whitespace", "  EKSExpert  ", "EKSExpert"},
		{"surrounding quotes", `"EKSExpert"`, "EKSExpert"},
		{"single quotes", "'YAMLConverter'", "YAMLConverter"},
		{"select prefix", "Select EKSExpert", "EKSExpert"},
		{"agent prefix", "Agent: YAMLConverter", "YAMLConverter"},
		{"next prefix", "Next: ChiefArchitect", "ChiefArchitect"},
		{"speaker prefix", "Next speaker: EKSExpert", "EKSExpert"},
		{"first line only", "EKSExpert\nbecause they know EKS best", "EKSExpert"},
		{"zero-width space", "EKS\u200bExpert", "EKSExpert"},
		{"trailing punctuation", "EKSExpert.", "EKSExpert"},
		{"case-insensitive match", "eksexpert", "EKSExpert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseSelection(tt.raw, testRoster, "analysis")
			assert.Equal(t, tt.want, res.Result)
		})
	}
}

func TestParseSelectionTerminalWords(t *testing.T) {
	for _, word := range []string{
		"Success", "Complete", "Terminate", "Finished", "Done",
		"End", "Yes", "No", "True", "False",
	} {
		t.Run(word, func(t *testing.T) {
			res := ParseSelection(word, testRoster, "analysis")
			assert.Empty(t, res.Result, "terminal word must force fallback")
			assert.NotEmpty(t, res.Reason)
		})
	}
}

func TestParseSelectionFuzzyMatch(t *testing.T) {
	// Substring match in either direction
	res := ParseSelection("TheEKSExpertAgent", testRoster, "analysis")
	assert.Equal(t, "EKSExpert", res.Result)

	res = ParseSelection("Converter", testRoster, "yaml")
	assert.Equal(t, "YAMLConverter", res.Result)
}

func TestParseSelectionUnknownFallsBackToFirst(t *testing.T) {
	res := ParseSelection("CompletelyUnknownAgent", testRoster, "design")
	assert.Equal(t, "ChiefArchitect", res.Result)
}

func TestParseSelectionEmptyInput(t *testing.T) {
	res := ParseSelection("", testRoster, "design")
	assert.Equal(t, "ChiefArchitect", res.Result, "empty input falls back to first roster agent")

	res = ParseSelection("", nil, "design")
	assert.Empty(t, res.Result)
}

func TestParseSelectionWithoutWhitelist(t *testing.T) {
	res := ParseSelection("Select SomeAgent", nil, "analysis")
	assert.Equal(t, "SomeAgent", res.Result)
}

func TestParseSelectionReasonFromStepExpertise(t *testing.T) {
	res := ParseSelection("EKSExpert", testRoster, "analysis")
	assert.Contains(t, res.Reason, "source platform analysis")

	res = ParseSelection("YAMLConverter", testRoster, "yaml")
	assert.Contains(t, res.Reason, "manifest conversion")

	res = ParseSelection("EKSExpert", testRoster, "unmapped-step")
	assert.Contains(t, res.Reason, "continue the conversation")
}
