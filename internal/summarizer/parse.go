package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsableSummary marks a model response that could not be interpreted
// as the expected JSON shape. Callers surface it as a retryable failure,
// never as an empty success.
var ErrUnparsableSummary = errors.New("could not interpret the summary response")

// parseResult strips any surrounding code fences the model may have added
// despite the JSON instruction, then unmarshals the structured result.
func parseResult(text string) (*Result, error) {
	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUnparsableSummary)
	}

	var res Result
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableSummary, err)
	}

	if res.Summary == nil {
		res.Summary = []string{}
	}
	if res.ActionItems == nil {
		res.ActionItems = []ActionItem{}
	}
	return &res, nil
}

// stripCodeFences removes a leading ```json (or bare ```) fence and the
// matching trailing fence, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
