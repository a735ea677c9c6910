package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// DecodeModelJSON decodes a JSON object out of language model output. The
// object may be bare, inside a markdown code fence, or embedded in prose.
func DecodeModelJSON(input string, target any) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty model output")
	}

	candidates := []string{input}
	if m := fencedBlock.FindStringSubmatch(input); len(m) > 1 {
		candidates = append(candidates, m[1])
	}
	if obj := firstObject(input); obj != "" {
		candidates = append(candidates, obj)
	}

	var lastErr error
	for _, candidate := range candidates {
		if lastErr = json.Unmarshal([]byte(candidate), target); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("no JSON object in model output %q: %w", truncate(input, 80), lastErr)
}

// firstObject returns the first brace-balanced {...} span, honoring strings
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth, inString, escaped := 0, false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
