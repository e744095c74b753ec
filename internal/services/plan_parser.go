package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"wayfare/internal/models/response_models"
)

// ParseDayPlans extracts the day-plan array from raw generator output. It
// first strips any markdown code fence and parses directly. If that fails it
// falls back to the first balanced array substring with non-printable
// characters removed. If both attempts fail the error of the direct parse is
// returned, not the fallback's.
func ParseDayPlans(raw string) ([]response_models.DayPlan, error) {
	cleaned := stripCodeFences(raw)

	var plans []response_models.DayPlan
	directErr := json.Unmarshal([]byte(cleaned), &plans)
	if directErr == nil {
		return plans, nil
	}

	extracted, ok := extractArray(raw)
	if !ok {
		return nil, fmt.Errorf("parsing generated itinerary: %w", directErr)
	}

	extracted = stripNonPrintable(extracted)
	if err := json.Unmarshal([]byte(extracted), &plans); err != nil {
		return nil, fmt.Errorf("parsing generated itinerary: %w", directErr)
	}

	return plans, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// extractArray returns the first balanced [...] substring, honoring string
// literals and escapes so brackets inside values do not break the match.
func extractArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// stripNonPrintable drops everything outside the printable ASCII range.
func stripNonPrintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x20 && s[i] <= 0x7E {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
