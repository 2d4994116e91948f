package revision

import (
	"encoding/json"
	"strings"
)

// ExtractJSONSpan returns the greedy span from the first '{' to the last '}' in text.
func ExtractJSONSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseRevision extracts the {revised, feedback} object from free-form model output.
// Missing fields come back as empty strings.
func ParseRevision(text string) (Result, error) {
	span, ok := ExtractJSONSpan(text)
	if !ok {
		return Result{}, NewParseError("no JSON object in reply", nil)
	}
	var res Result
	if err := json.Unmarshal([]byte(span), &res); err != nil {
		return Result{}, NewParseError("invalid JSON object in reply", err)
	}
	return res, nil
}
