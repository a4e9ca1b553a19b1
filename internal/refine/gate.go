package refine

import (
	"strings"

	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
)

// genericBlacklist lists phrases that discriminate nothing between two
// specific sectors. Generated question sets leaning on this phrasing read
// like a personality test and fail to separate the candidates, so they are
// discarded in favor of the curated bank.
var genericBlacklist = []string{
	"cadre structuré",
	"environnement structuré",
	"étape par étape",
	"autonomie",
	"en autonomie",
	"travailler en équipe",
	"esprit d'équipe",
	"sortir de votre zone de confort",
	"zone de confort",
	"relever des défis",
	"nouveaux défis",
	"apprendre de nouvelles choses",
	"routine",
	"organisé et méthodique",
	"prendre des initiatives",
}

// maxBlacklistHits: a set with this many generic questions is rejected
// wholesale rather than patched question by question.
const maxBlacklistHits = 2

// minVocabularyHits is the number of questions that must reference
// vocabulary specific to the candidate pair.
const minVocabularyHits = 2

// Acceptable reports whether a generated question set passes the quality
// gate for the (idA, idB) candidate pair. Rejection reasons: wrong set
// size, malformed options, too many generic questions, or too few
// questions anchored in the pair's vocabulary.
func Acceptable(qs []domain.MicroQuestion, idA, idB string) bool {
	if len(qs) < MinQuestions || len(qs) > MaxQuestions {
		return false
	}
	vocab := pairVocabulary(idA, idB)

	blacklistHits := 0
	vocabularyHits := 0
	for _, q := range qs {
		if !wellFormed(q) {
			return false
		}
		text := questionText(q)
		if matchesAny(text, genericBlacklist) {
			blacklistHits++
		}
		if matchesAny(text, vocab) {
			vocabularyHits++
		}
	}
	if blacklistHits >= maxBlacklistHits {
		return false
	}
	return vocabularyHits >= minVocabularyHits
}

// wellFormed checks the fixed three-option A/B/C shape.
func wellFormed(q domain.MicroQuestion) bool {
	if strings.TrimSpace(q.Question) == "" || len(q.Options) != 3 {
		return false
	}
	values := map[string]bool{}
	for _, o := range q.Options {
		if strings.TrimSpace(o.Label) == "" {
			return false
		}
		values[o.Value] = true
	}
	return values["A"] && values["B"] && values["C"]
}

func questionText(q domain.MicroQuestion) string {
	var b strings.Builder
	b.WriteString(q.Question)
	for _, o := range q.Options {
		b.WriteString(" ")
		b.WriteString(o.Label)
	}
	return strings.ToLower(b.String())
}

func pairVocabulary(idA, idB string) []string {
	var out []string
	for _, id := range []string{idA, idB} {
		if s, ok := catalog.SectorByID(id); ok {
			out = append(out, s.Vocabulary...)
		}
	}
	return out
}

func matchesAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
