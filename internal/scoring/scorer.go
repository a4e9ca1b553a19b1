// Package scoring ranks catalog categories against an axis profile and
// blends in the structured domain signals. All functions are pure and
// deterministic: same profile and tables, same ranking.
package scoring

import (
	"math"
	"sort"

	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
)

// whyThreshold: an axis explains a score when its weight is positive and
// the profile value reaches this level.
const whyThreshold = 5.0

// Diversity penalties subtracted from cluster scores for recently
// recommended jobs and clusters.
const (
	recentJobPenalty     = 0.75
	recentClusterPenalty = 0.5
)

// ClusterOptions carries the optional diversity inputs of the cluster
// scorer.
type ClusterOptions struct {
	RecentJobIDs     []string
	RecentClusterIDs []string
}

// RankSectors scores every sector of the catalog by the weighted dot
// product of the profile against the sector weights. The result covers the
// full catalog, sorted descending, scores rounded to two decimals.
func RankSectors(p domain.AxisProfile) []domain.RankedCategory {
	out := make([]domain.RankedCategory, 0, len(catalog.Sectors))
	for _, s := range catalog.Sectors {
		out = append(out, domain.RankedCategory{ID: s.ID, Score: round2(dot(p, s.Weights))})
	}
	sortRanked(out)
	return out
}

// RankClusters scores the clusters of one sector, applying the diversity
// penalties before the final sort. The second result lists, per cluster,
// the axes that carried the score (positive weight and profile value at or
// above the why threshold).
func RankClusters(p domain.AxisProfile, sectorID string, opts ClusterOptions) ([]domain.RankedCategory, map[string][]string) {
	clusters := catalog.ClustersForSector(sectorID)
	recentJobs := toSet(opts.RecentJobIDs)
	recentClusters := toSet(opts.RecentClusterIDs)

	out := make([]domain.RankedCategory, 0, len(clusters))
	why := make(map[string][]string, len(clusters))
	for _, c := range clusters {
		score := dot(p, c.Weights)
		if recentClusters[c.ID] {
			score -= recentClusterPenalty
		}
		for _, j := range c.Jobs {
			if recentJobs[j.ID] {
				score -= recentJobPenalty
				break
			}
		}
		out = append(out, domain.RankedCategory{ID: c.ID, Score: round2(score)})
		why[c.ID] = whyAxes(p, c.Weights)
	}
	sortRanked(out)
	return out, why
}

// CandidateJobs builds the job slate for a sector from its ranked clusters.
// Overused catch-all jobs are excluded unless their own cluster sits in the
// current top-K, so generic jobs cannot crowd out specific ones.
func CandidateJobs(sectorID string, ranked []domain.RankedCategory, topK int) []catalog.Job {
	top := map[string]bool{}
	for i, rc := range ranked {
		if i >= topK {
			break
		}
		top[rc.ID] = true
	}
	var out []catalog.Job
	seen := map[string]bool{}
	for _, c := range catalog.ClustersForSector(sectorID) {
		for _, j := range c.Jobs {
			if seen[j.ID] {
				continue
			}
			if catalog.IsOverusedJob(j.ID) && !top[c.ID] {
				continue
			}
			seen[j.ID] = true
			out = append(out, j)
		}
	}
	return out
}

// DomainScores expands the human/system tags into a dense per-sector score
// map, the middle term of the final blend.
func DomainScores(t domain.DomainTags) map[string]float64 {
	out := make(map[string]float64, len(catalog.Sectors))
	for _, s := range catalog.Sectors {
		score := 0.0
		switch t.FinaliteDominante {
		case domain.FinaliteHumainDirect:
			if s.Orientation == catalog.OrientationHuman {
				score = 1
			}
		case domain.FinaliteSystemeObjet:
			if s.Orientation == catalog.OrientationSystem {
				score = 1
			}
		default:
			if s.Orientation == catalog.OrientationMixed {
				score = 0.5
			}
		}
		if t.SignauxTechExplicites && s.Tech {
			score++
		}
		out[s.ID] = score
	}
	return out
}

func dot(p domain.AxisProfile, w domain.AxisWeights) float64 {
	var sum float64
	for a, weight := range w {
		sum += p[a] * weight
	}
	return sum
}

func whyAxes(p domain.AxisProfile, w domain.AxisWeights) []string {
	var out []string
	for a := domain.Axis(0); a < domain.NumAxes; a++ {
		if w[a] > 0 && p[a] >= whyThreshold {
			out = append(out, a.String())
		}
	}
	return out
}

// sortRanked orders by score descending with id as the deterministic
// tie-break.
func sortRanked(rs []domain.RankedCategory) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Score != rs[j].Score {
			return rs[i].Score > rs[j].Score
		}
		return rs[i].ID < rs[j].ID
	})
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func toSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
