// Package tags derives the auxiliary domain signals from the two fixed
// question blocks: keyword-based human/system tags from the free-text domain
// questions (secteur_41..46), and choice-based per-sector bonuses from the
// micro-domain questions (secteur_47..50).
//
// Keyword lists and the micro scoring table are embedded YAML so they stay
// reviewable data rather than literals buried in control flow.
package tags

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/avenira/orient-api/internal/answers"
	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
)

//go:embed data/keywords.yaml
var keywordsYAML []byte

//go:embed data/micro_scores.yaml
var microScoresYAML []byte

// DomainQuestionIDs is the fixed block driving human/system tag extraction.
var DomainQuestionIDs = []string{"secteur_41", "secteur_42", "secteur_43", "secteur_44", "secteur_45", "secteur_46"}

// MicroQuestionIDs is the fixed forced-choice block driving sector bonuses.
var MicroQuestionIDs = []string{"secteur_47", "secteur_48", "secteur_49", "secteur_50"}

// dominance threshold for the human/system tallies.
const dominanceThreshold = 4

type keywordLists struct {
	Human  []string `yaml:"human"`
	System []string `yaml:"system"`
	Tech   []string `yaml:"tech"`
}

type microTable struct {
	Questions []struct {
		ID      string                        `yaml:"id"`
		Choices map[string]map[string]float64 `yaml:"choices"`
	} `yaml:"questions"`
}

var (
	keywords keywordLists
	micro    microTable
)

func init() {
	if err := yaml.Unmarshal(keywordsYAML, &keywords); err != nil {
		panic(fmt.Sprintf("tags: malformed keywords.yaml: %v", err))
	}
	if err := yaml.Unmarshal(microScoresYAML, &micro); err != nil {
		panic(fmt.Sprintf("tags: malformed micro_scores.yaml: %v", err))
	}
}

// ComputeDomainTags tallies human/system/tech keywords across the answered
// domain questions. Pure and deterministic: same input, same output.
func ComputeDomainTags(raw map[string]any) domain.DomainTags {
	var t domain.DomainTags
	for _, id := range DomainQuestionIDs {
		v, ok := raw[id]
		if !ok {
			continue
		}
		text := strings.ToLower(answers.FreeText(answers.Decode(v)))
		if text == "" {
			continue
		}
		if containsAny(text, keywords.Human) {
			t.HumanScore++
		}
		if containsAny(text, keywords.System) {
			t.SystemScore++
		}
		if containsAny(text, keywords.Tech) {
			t.SignauxTechExplicites = true
		}
	}
	switch {
	case t.HumanScore >= dominanceThreshold:
		t.FinaliteDominante = domain.FinaliteHumainDirect
	case t.SystemScore >= dominanceThreshold:
		t.FinaliteDominante = domain.FinaliteSystemeObjet
	default:
		t.FinaliteDominante = domain.FinaliteMixte
	}
	return t
}

// ComputeMicroDomainScores extracts a forced A/B/C choice for each of the
// four micro questions and accumulates the bonus table. The output is dense
// over the full sector catalog, with 0 for untouched sectors. Missing or
// unparseable choices contribute zero and are logged.
func ComputeMicroDomainScores(raw map[string]any) map[string]float64 {
	out := make(map[string]float64, len(catalog.Sectors))
	for _, id := range catalog.SectorIDs() {
		out[id] = 0
	}
	for _, q := range micro.Questions {
		v, ok := raw[q.ID]
		if !ok {
			slog.Debug("micro question unanswered", slog.String("question_id", q.ID))
			continue
		}
		choice, ok := answers.ChoiceOf(answers.Decode(v))
		if !ok {
			slog.Warn("micro question answer has no A/B/C choice", slog.String("question_id", q.ID))
			continue
		}
		for sectorID, delta := range q.Choices[string(choice)] {
			out[sectorID] += delta
		}
	}
	return out
}

// containsAny reports whether text contains one of the keywords. Keywords
// shorter than five characters only match whole words.
func containsAny(text string, kws []string) bool {
	for _, kw := range kws {
		kw = strings.ToLower(kw)
		if len([]rune(kw)) < 5 {
			if containsWord(text, kw) {
				return true
			}
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}
