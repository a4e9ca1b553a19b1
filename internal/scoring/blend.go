package scoring

import "github.com/avenira/orient-api/internal/domain"

// Blend weights: structured multiple-choice signals must outrank the
// free-text-derived base ranking, which is what guarantees deterministic
// reachability of every sector given the right answers.
const (
	baseWeight   = 1.0
	domainWeight = 2.0
	microWeight  = 4.0
)

const confidenceEpsilon = 1e-6

// Blend combines a base ranked list with the domain and micro-domain score
// maps and re-sorts. Sectors absent from the base list still appear when a
// score map touches them, so the result keeps full catalog coverage as long
// as the maps are dense.
func Blend(base []domain.RankedCategory, domainScores, microScores map[string]float64) []domain.RankedCategory {
	final := make(map[string]float64, len(base))
	for _, rc := range base {
		final[rc.ID] = rc.Score * baseWeight
	}
	for id, v := range domainScores {
		final[id] += v * domainWeight
	}
	for id, v := range microScores {
		final[id] += v * microWeight
	}
	out := make([]domain.RankedCategory, 0, len(final))
	for id, score := range final {
		out = append(out, domain.RankedCategory{ID: id, Score: round2(score)})
	}
	sortRanked(out)
	return out
}

// Confidence derives a [0,1] value from the gap between rank 1 and rank 2.
// It is monotonic in the gap when rank 1 is held fixed. Lists shorter than
// two entries yield full confidence.
func Confidence(ranked []domain.RankedCategory) float64 {
	if len(ranked) == 0 {
		return 0
	}
	if len(ranked) == 1 {
		return 1
	}
	s1, s2 := ranked[0].Score, ranked[1].Score
	den := s1
	if den < confidenceEpsilon {
		den = confidenceEpsilon
	}
	c := 0.2 + 0.8*(s1-s2)/den
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}

// TopN truncates a ranked list without copying beyond n entries.
func TopN(ranked []domain.RankedCategory, n int) []domain.RankedCategory {
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}
