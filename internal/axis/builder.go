// Package axis builds the 6-axis psychological profile from personality
// answers. Each known question id maps to a fixed triple of partial axis
// deltas, one per option index; deltas accumulate across answered questions
// and the raw vector is rescaled to a 0–10 range.
package axis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avenira/orient-api/internal/domain"
)

// Question is the client-provided question shape used to resolve which
// option an answer text corresponds to.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

const scaleMax = 10.0

// deltasFor resolves the delta template of a question id. Unknown ids get no
// template and are ignored by Build.
func deltasFor(id string) (optionDeltas, bool) {
	if n, ok := questionIndex(id, "secteur_"); ok && n >= 1 && n <= 40 {
		if n <= len(domainStyleTemplates) {
			return domainStyleTemplates[(n-1)%len(domainStyleTemplates)], true
		}
		return styleTemplates[(n-len(domainStyleTemplates)-1)%len(styleTemplates)], true
	}
	if n, ok := questionIndex(id, "metier_"); ok && n >= 1 && n <= 20 {
		return metierTemplates[(n-1)%len(metierTemplates)], true
	}
	return optionDeltas{}, false
}

func questionIndex(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Build accumulates axis deltas for every answered known question and
// normalizes the result. Unknown question ids are skipped without error.
func Build(answerTexts map[string]string, questions []Question) domain.AxisProfile {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var raw domain.AxisProfile
	for id, text := range answerTexts {
		deltas, ok := deltasFor(id)
		if !ok {
			continue
		}
		idx := optionIndex(text, byID[id].Options)
		for a, d := range deltas[idx] {
			raw[a] += d
		}
	}
	return normalize(raw)
}

// optionIndex resolves which option (0, 1, 2) an answer text selects, by
// normalized substring containment in either direction. Unresolvable
// answers fall back to index 0.
func optionIndex(text string, options []string) int {
	t := foldText(text)
	for i, opt := range options {
		if i > 2 {
			break
		}
		o := foldText(opt)
		if o == "" || t == "" {
			continue
		}
		if strings.Contains(t, o) || strings.Contains(o, t) {
			return i
		}
	}
	return 0
}

func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalize rescales the raw vector so the observed minimum maps to 0 and
// the observed maximum to scaleMax, using one shared range across all six
// axes (not per-axis). A zero range uses a 1.0 divisor, which yields the
// all-zero profile.
func normalize(raw domain.AxisProfile) domain.AxisProfile {
	minV, maxV := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	div := maxV - minV
	if div == 0 {
		div = 1.0
	}
	var out domain.AxisProfile
	for i, v := range raw {
		scaled := (v - minV) / div * scaleMax
		if scaled < 0 {
			scaled = 0
		}
		if scaled > scaleMax {
			scaled = scaleMax
		}
		out[i] = scaled
	}
	return out
}

// String renders a profile for debug payloads.
func String(p domain.AxisProfile) string {
	parts := make([]string, 0, domain.NumAxes)
	for a := domain.Axis(0); a < domain.NumAxes; a++ {
		parts = append(parts, fmt.Sprintf("%s=%.1f", a, p[a]))
	}
	return strings.Join(parts, " ")
}
