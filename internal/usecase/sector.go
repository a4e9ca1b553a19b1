package usecase

import (
	"fmt"
	"log/slog"

	"github.com/avenira/orient-api/internal/adapter/observability"
	"github.com/avenira/orient-api/internal/axis"
	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/refine"
	"github.com/avenira/orient-api/internal/scoring"
	"github.com/avenira/orient-api/internal/tags"
)

// Decision reasons surfaced on sector responses.
const (
	ReasonHighConfidence = "high_confidence"
	ReasonMicroQuestions = "needs_micro_questions"
	ReasonForcedDecision = "forced_decision"
	ReasonRefined        = "refinement_resolved"
)

// SectorRequest is the transport-agnostic input of the sector flow. A
// request with two CandidateSectors is a refinement submission; everything
// else is a fresh classification.
type SectorRequest struct {
	RequestID string
	UserID    string

	Answers   map[string]any
	Questions []axis.Question

	MicroAnswers     map[string]any
	CandidateSectors []string
	RefinementCount  int
}

// SectorResult is the decided (or question-emitting) outcome.
type SectorResult struct {
	PickedSectorID string
	SectorName     string
	Description    string
	Ranked         []domain.RankedCategory
	Confidence     float64

	NeedsRefinement    bool
	RefinementRequired bool
	Questions          []domain.MicroQuestion
	DecisionReason     string
	Forced             bool
	Source             string
}

func (r SectorRequest) isRefinementSubmission() bool {
	return len(r.CandidateSectors) == 2
}

// ClassifySector runs the full sector pipeline. The picked id is always a
// whitelisted sector id; the ranked list always covers the full catalog.
func (s Service) ClassifySector(ctx domain.Context, req SectorRequest) (SectorResult, error) {
	if req.isRefinementSubmission() {
		return s.resolveSectorRefinement(ctx, req)
	}
	if len(req.Answers) == 0 {
		return SectorResult{}, fmt.Errorf("%w: answers required", domain.ErrInvalidArgument)
	}

	profile := axis.Build(answerTexts(req.Answers), req.Questions)
	det := normalizeBase(scoring.RankSectors(profile))
	domainTags := tags.ComputeDomainTags(req.Answers)
	micro := tags.ComputeMicroDomainScores(req.Answers)

	base, source, err := s.rankSectorsBase(ctx, req, det)
	if err != nil {
		return SectorResult{}, err
	}

	final := scoring.Blend(base, scoring.DomainScores(domainTags), micro)
	confidence := scoring.Confidence(final)

	res := SectorResult{
		Ranked:     final,
		Confidence: confidence,
		Source:     source,
	}
	switch refine.Decide(confidence, 0) {
	case refine.StateNeedsRefinement:
		idA, idB := final[0].ID, final[1].ID
		res.PickedSectorID = idA
		res.SectorName = sectorDisplayName(idA)
		res.NeedsRefinement = true
		res.RefinementRequired = true
		res.DecisionReason = ReasonMicroQuestions
		res.Questions = s.refinementQuestions(ctx, idA, idB)
		observability.RefinementRoundsTotal.WithLabelValues("questions_emitted").Inc()
	default:
		picked := final[0].ID
		res.PickedSectorID = picked
		res.SectorName = sectorDisplayName(picked)
		res.DecisionReason = ReasonHighConfidence
		res.Description = s.describe(ctx, "sector", picked, res.SectorName, staticSectorDescription(picked), maxSectorDescription)
	}

	s.persist(ctx, domain.Classification{
		RequestID:      req.RequestID,
		Kind:           "sector",
		PickedID:       res.PickedSectorID,
		Confidence:     res.Confidence,
		DecisionReason: res.DecisionReason,
		Source:         res.Source,
	})
	observability.ObserveClassification("sector", res.Source, res.Confidence)
	return res, nil
}

// rankSectorsBase picks the base ranked list: the AI ranking when AI is on
// and quota allows, otherwise the deterministic one. AI flakiness degrades
// to the deterministic list; only quota exhaustion is surfaced.
func (s Service) rankSectorsBase(ctx domain.Context, req SectorRequest, det []domain.RankedCategory) ([]domain.RankedCategory, string, error) {
	if !s.aiEnabled() {
		return det, SourceAIDisabled, nil
	}
	if err := s.reserveQuota(ctx, req.UserID); err != nil {
		return nil, "", err
	}

	system, user := sectorRankPrompts(req.Answers)
	actx, cancel := withTimeout(ctx, s.cfg.AIRankTimeout)
	defer cancel()
	var out struct {
		Ranked []struct {
			ID    string  `json:"id"`
			Score float64 `json:"score"`
		} `json:"ranked"`
	}
	if err := s.chatJSONInto(actx, system, user, 600, &out); err != nil {
		slog.Warn("ai sector ranking failed, falling back to deterministic", slog.Any("error", err))
		return det, SourceDeterministic, nil
	}

	seen := map[string]bool{}
	base := make([]domain.RankedCategory, 0, len(out.Ranked))
	for _, rc := range out.Ranked {
		id, ok := catalog.SectorIfWhitelisted(rc.ID)
		if !ok || seen[id] {
			slog.Warn("ai ranking entry outside catalog, dropped", slog.String("id", rc.ID))
			continue
		}
		seen[id] = true
		base = append(base, domain.RankedCategory{ID: id, Score: clamp01(rc.Score)})
	}
	if len(base) == 0 {
		slog.Warn("ai ranking empty after whitelist filtering, falling back to deterministic")
		return det, SourceDeterministic, nil
	}
	return base, SourceAI, nil
}

// resolveSectorRefinement handles a refinement submission: force past the
// round threshold, otherwise arbitrate between the two candidates.
func (s Service) resolveSectorRefinement(ctx domain.Context, req SectorRequest) (SectorResult, error) {
	idA, okA := catalog.SectorIfWhitelisted(req.CandidateSectors[0])
	idB, okB := catalog.SectorIfWhitelisted(req.CandidateSectors[1])
	if !okA || !okB {
		return SectorResult{}, fmt.Errorf("%w: candidateSectors must be whitelisted sector ids", domain.ErrInvalidArgument)
	}

	res := SectorResult{Source: SourceDeterministic}
	if refine.Decide(0, req.RefinementCount) == refine.StateForced {
		res.PickedSectorID = idA
		res.Confidence = refine.ForcedConfidence
		res.Forced = true
		res.DecisionReason = ReasonForcedDecision
		observability.RefinementRoundsTotal.WithLabelValues("forced").Inc()
	} else {
		pick, confidence, source, err := s.disambiguate(ctx, idA, idB, req)
		if err != nil {
			return SectorResult{}, err
		}
		res.PickedSectorID = pick
		res.Confidence = confidence
		res.Source = source
		res.DecisionReason = ReasonRefined
		observability.RefinementRoundsTotal.WithLabelValues("resolved").Inc()
	}

	res.SectorName = sectorDisplayName(res.PickedSectorID)
	res.Description = s.describe(ctx, "sector", res.PickedSectorID, res.SectorName, staticSectorDescription(res.PickedSectorID), maxSectorDescription)
	res.Ranked = []domain.RankedCategory{
		{ID: idA, Score: 1},
		{ID: idB, Score: 0.5},
	}

	s.persist(ctx, domain.Classification{
		RequestID:      req.RequestID,
		Kind:           "sector",
		PickedID:       res.PickedSectorID,
		Confidence:     res.Confidence,
		DecisionReason: res.DecisionReason,
		Source:         res.Source,
		Forced:         res.Forced,
	})
	observability.ObserveClassification("sector", res.Source, res.Confidence)
	return res, nil
}

// disambiguate asks the AI to pick one of the two candidates. Any AI
// failure resolves to the first candidate; an out-of-pair pick is
// substituted the same way. The only error returned is quota exhaustion.
func (s Service) disambiguate(ctx domain.Context, idA, idB string, req SectorRequest) (string, float64, string, error) {
	if !s.aiEnabled() {
		return idA, refine.ForcedConfidence, SourceAIDisabled, nil
	}
	if err := s.reserveQuota(ctx, req.UserID); err != nil {
		return "", 0, "", err
	}

	system, user := disambiguatePrompts(idA, idB, req.MicroAnswers)
	actx, cancel := withTimeout(ctx, s.cfg.AIRefineTimeout)
	defer cancel()
	var out struct {
		Pick       string  `json:"pick"`
		Confidence float64 `json:"confidence"`
	}
	if err := s.chatJSONInto(actx, system, user, 120, &out); err != nil {
		slog.Warn("ai disambiguation failed, picking first candidate", slog.Any("error", err))
		return idA, refine.ForcedConfidence, SourceDeterministic, nil
	}

	pick, ok := catalog.SectorIfWhitelisted(out.Pick)
	if !ok || (pick != idA && pick != idB) {
		slog.Warn("ai disambiguation pick outside candidate pair, substituting first",
			slog.String("pick", out.Pick), slog.String("id_a", idA), slog.String("id_b", idB))
		pick = idA
	}
	confidence := clamp01(out.Confidence)
	if confidence == 0 {
		confidence = refine.ForcedConfidence
	}
	return pick, confidence, SourceAI, nil
}

// refinementQuestions produces the 2-5 question set for a candidate pair:
// AI generation behind the quality gate, with the curated bank as the
// replacement for anything generic, malformed or unavailable.
func (s Service) refinementQuestions(ctx domain.Context, idA, idB string) []domain.MicroQuestion {
	if !s.aiEnabled() {
		return refine.FallbackQuestions(idA, idB)
	}
	system, user := refineQuestionsPrompts(idA, idB)
	actx, cancel := withTimeout(ctx, s.cfg.AIRefineTimeout)
	defer cancel()
	var out struct {
		Questions []domain.MicroQuestion `json:"questions"`
	}
	if err := s.chatJSONInto(actx, system, user, 700, &out); err != nil {
		slog.Warn("ai question generation failed, using bank", slog.Any("error", err))
		observability.FallbackQuestionsTotal.Inc()
		return refine.FallbackQuestions(idA, idB)
	}
	if !refine.Acceptable(out.Questions, idA, idB) {
		slog.Warn("generated questions rejected by quality gate, using bank",
			slog.String("id_a", idA), slog.String("id_b", idB))
		observability.FallbackQuestionsTotal.Inc()
		return refine.FallbackQuestions(idA, idB)
	}
	return out.Questions
}

func staticSectorDescription(id string) string {
	if sec, ok := catalog.SectorByID(id); ok {
		return sec.Description
	}
	return "Un secteur professionnel qui correspond à votre profil."
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
