// Package ai holds helpers shared by the AI client implementations:
// response cleaning for models that wrap their JSON output in prose or
// markdown fences.
package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when no JSON document can be located in a response.
var ErrNoJSON = errors.New("ai: no json document in response")

// CleanJSON strips markdown fences and surrounding prose from a model
// response and returns the first balanced JSON object or array found. The
// result is validated with json.Valid before it is returned.
func CleanJSON(response string) (string, error) {
	response = removeFences(response)
	doc := extractDocument(response)
	if doc == "" {
		return "", ErrNoJSON
	}
	if !json.Valid([]byte(doc)) {
		return "", ErrNoJSON
	}
	return doc, nil
}

func removeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractDocument scans for the first balanced {...} or [...] span,
// ignoring braces inside JSON strings.
func extractDocument(s string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == open:
			depth++
		case !inString && c == close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
