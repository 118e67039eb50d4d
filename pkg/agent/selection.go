package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// SelectionResult is the cleaned outcome of a speaker-selection response.
type SelectionResult struct {
	// Result is the selected agent name, or empty when the response was a
	// terminal word and the caller should fall back to its default.
	Result string `json:"result"`

	// Reason explains the selection for the conversation log.
	Reason string `json:"reason"`
}

// selectionPrefixes are leading phrases models prepend to a bare agent name.
var selectionPrefixes = []string{
	"Select ",
	"Selected ",
	"Agent: ",
	"Next: ",
	"Next agent: ",
	"Next speaker: ",
	"Speaker: ",
	"I select ",
	"I choose ",
	"The next agent is ",
}

// terminalWords are conversation-control words that must never be treated
// as agent names. A hit forces the caller's fallback selection.
var terminalWords = map[string]bool{
	"success":   true,
	"complete":  true,
	"terminate": true,
	"finished":  true,
	"done":      true,
	"end":       true,
	"yes":       true,
	"no":        true,
	"true":      true,
	"false":     true,
}

// stepExpertise maps pipeline steps to the expertise a selection exercises,
// used to compose contextual reasons.
var stepExpertise = map[string]string{
	"analysis":      "source platform analysis",
	"design":        "AKS architecture design",
	"yaml":          "manifest conversion",
	"documentation": "migration documentation",
}

var (
	// Zero-width and BOM characters models occasionally emit around names.
	invisibleRunes = strings.NewReplacer(
		"\u200B", "", // zero-width space
		"\u200C", "", // zero-width non-joiner
		"\u200D", "", // zero-width joiner
		"\u2060", "", // word joiner
		"\uFEFF", "", // byte-order mark
	)

	nonWordPattern = regexp.MustCompile(`[^\w]`)
)

// ParseSelection cleans a raw speaker-selection response into an agent name.
// The parser is intentionally forgiving — it tries strict JSON first, then a
// normalization pipeline, and never fails for non-empty input. When a
// whitelist is supplied the returned name is always a member of it (unless
// the response was a terminal word, which returns empty to force fallback).
func ParseSelection(raw string, whitelist []string, step string) SelectionResult {
	// 1. Strict JSON {result, reason} keeps the model's reason, but the
	// name still goes through the terminal-word and whitelist checks — a
	// well-formed response can name an agent that is not on the roster.
	var jsonResult SelectionResult
	if err := json.Unmarshal([]byte(raw), &jsonResult); err == nil && jsonResult.Result != "" {
		if terminalWords[strings.ToLower(jsonResult.Result)] {
			return SelectionResult{
				Result: "",
				Reason: fmt.Sprintf("selection response %q is a terminal word, not an agent name", jsonResult.Result),
			}
		}
		if len(whitelist) > 0 {
			jsonResult.Result = resolveAgainstWhitelist(jsonResult.Result, whitelist)
		}
		if jsonResult.Reason == "" {
			jsonResult.Reason = selectionReason(jsonResult.Result, step)
		}
		return jsonResult
	}

	// 2. Normalize the free-text response down to a bare name.
	name := normalizeSelection(raw)
	if name == "" {
		return fallbackSelection(whitelist, step, raw)
	}

	// 3. Terminal words force the caller's fallback.
	if terminalWords[strings.ToLower(name)] {
		return SelectionResult{
			Result: "",
			Reason: fmt.Sprintf("selection response %q is a terminal word, not an agent name", name),
		}
	}

	// 4. Resolve against the whitelist when one is supplied.
	if len(whitelist) > 0 {
		name = resolveAgainstWhitelist(name, whitelist)
	}

	// 5. Compose the contextual reason.
	return SelectionResult{
		Result: name,
		Reason: selectionReason(name, step),
	}
}

// normalizeSelection reduces a free-text response to a candidate agent name:
// trim, strip quotes and invisible runes, drop known prefixes, keep the
// first line, and remove everything outside word characters.
func normalizeSelection(raw string) string {
	s := strings.TrimSpace(raw)
	s = invisibleRunes.Replace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	for _, prefix := range selectionPrefixes {
		if strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix)) {
			s = s[len(prefix):]
			break
		}
	}

	// Keep only the first line
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	return nonWordPattern.ReplaceAllString(s, "")
}

// resolveAgainstWhitelist maps a normalized name onto the whitelist:
// case-insensitive exact match first, then substring fuzzy match, else the
// first whitelisted name with a warning.
func resolveAgainstWhitelist(name string, whitelist []string) string {
	for _, candidate := range whitelist {
		if strings.EqualFold(name, candidate) {
			return candidate
		}
	}

	lower := strings.ToLower(name)
	for _, candidate := range whitelist {
		candLower := strings.ToLower(candidate)
		if strings.Contains(lower, candLower) || strings.Contains(candLower, lower) {
			return candidate
		}
	}

	slog.Warn("Selection did not match any roster agent, falling back to first",
		"selection", name,
		"fallback", whitelist[0])
	return whitelist[0]
}

// fallbackSelection handles responses that normalize to nothing.
func fallbackSelection(whitelist []string, step, raw string) SelectionResult {
	if len(whitelist) == 0 {
		return SelectionResult{
			Result: "",
			Reason: fmt.Sprintf("selection response %q yielded no agent name", strings.TrimSpace(raw)),
		}
	}
	slog.Warn("Empty selection response, falling back to first roster agent",
		"fallback", whitelist[0])
	return SelectionResult{
		Result: whitelist[0],
		Reason: selectionReason(whitelist[0], step),
	}
}

func selectionReason(name, step string) string {
	if expertise, ok := stepExpertise[step]; ok {
		return fmt.Sprintf("Selected %s for %s", name, expertise)
	}
	return fmt.Sprintf("Selected %s to continue the conversation", name)
}
