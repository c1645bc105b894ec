package quizgen

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceOpenRE   = regexp.MustCompile(`(?i)^` + "```" + `(?:json)?\s*\n?`)
	fenceCloseRE  = regexp.MustCompile(`\n?` + "```" + `\s*$`)
	jsonObjectRE  = regexp.MustCompile(`\{[\s\S]*\}`)
	trailCommaRE  = regexp.MustCompile(`,(\s*[}\]])`)
	controlCharRE = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

// ExtractJSON recovers a JSON object from raw model output that may be
// wrapped in code fences, prefixed with commentary, or malformed in
// common ways. It tries, in order: a direct parse, the span between the
// first "{" and last "}" after cleanup, and a regex scan. A top-level
// array is unwrapped: a single-element array yields its element, and
// multiple elements that each carry a quiz_pool are merged into one.
// The second return value is false when no parseable object was found.
func ExtractJSON(raw string) (json.RawMessage, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}

	if strings.HasPrefix(text, "```") {
		text = fenceOpenRE.ReplaceAllString(text, "")
		text = fenceCloseRE.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
	}
	text = strings.TrimSpace(strings.TrimRight(text, "`"))

	if msg, ok := parseCandidate(text); ok {
		return msg, true
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first >= 0 && last > first {
		candidate := cleanJSON(text[first : last+1])
		if msg, ok := parseCandidate(candidate); ok {
			return msg, true
		}
	}

	if match := jsonObjectRE.FindString(text); match != "" {
		candidate := cleanJSON(match)
		if msg, ok := parseCandidate(candidate); ok {
			return msg, true
		}
	}

	return nil, false
}

// cleanJSON removes trailing commas and stray control characters.
func cleanJSON(text string) string {
	text = trailCommaRE.ReplaceAllString(text, "$1")
	return controlCharRE.ReplaceAllString(text, "")
}

func parseCandidate(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	var any json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &any); err != nil {
		return nil, false
	}
	return unwrapArray(any)
}

// unwrapArray handles the model quirk of wrapping the object in an
// array, or splitting one pool across several objects.
func unwrapArray(msg json.RawMessage) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(msg))
	if trimmed == "" {
		return nil, false
	}
	if trimmed[0] == '{' {
		return msg, true
	}
	if trimmed[0] != '[' {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(msg, &elems); err != nil {
		return nil, false
	}

	switch {
	case len(elems) == 1:
		inner := strings.TrimSpace(string(elems[0]))
		if inner != "" && inner[0] == '{' {
			return elems[0], true
		}
	case len(elems) > 1:
		merged := make([]json.RawMessage, 0, len(elems))
		for _, elem := range elems {
			var obj struct {
				QuizPool []json.RawMessage `json:"quiz_pool"`
			}
			if err := json.Unmarshal(elem, &obj); err != nil || obj.QuizPool == nil {
				return nil, false
			}
			merged = append(merged, obj.QuizPool...)
		}
		out, err := json.Marshal(map[string][]json.RawMessage{"quiz_pool": merged})
		if err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}
