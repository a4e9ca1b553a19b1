// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// Ellipsis terminates a hard truncation when no whole sentence fits.
const Ellipsis = "…"

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// TrimSentences keeps the longest prefix of whole sentences that fits under
// max characters. Only when not even the first sentence fits does it hard
// truncate mid-sentence, ending with Ellipsis; the result never exceeds max.
func TrimSentences(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || s == "" {
		return ""
	}
	if len([]rune(s)) <= max {
		return s
	}
	var b strings.Builder
	kept := 0
	for _, sent := range SplitSentences(s) {
		candidate := sent
		if kept > 0 {
			candidate = " " + sent
		}
		if kept+len([]rune(candidate)) > max {
			break
		}
		b.WriteString(candidate)
		kept += len([]rune(candidate))
	}
	if kept > 0 {
		return b.String()
	}
	// Not a single sentence fits: hard cut with an ellipsis marker.
	r := []rune(s)
	cut := max - len([]rune(Ellipsis))
	if cut < 0 {
		cut = 0
	}
	return strings.TrimSpace(string(r[:cut])) + Ellipsis
}

// SplitSentences splits on sentence terminators (. ! ?), keeping the
// terminator attached to its sentence. Empty fragments are dropped.
func SplitSentences(s string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range s {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if frag := strings.TrimSpace(cur.String()); frag != "" {
				out = append(out, frag)
			}
			cur.Reset()
		}
	}
	if frag := strings.TrimSpace(cur.String()); frag != "" {
		out = append(out, frag)
	}
	return out
}
