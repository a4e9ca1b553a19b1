package usecase

import (
	"fmt"
	"log/slog"

	"github.com/avenira/orient-api/internal/adapter/observability"
	"github.com/avenira/orient-api/internal/axis"
	"github.com/avenira/orient-api/internal/catalog"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/scoring"
)

// jobConfidenceThreshold: below this the job flow answers with the
// undetermined sentinel instead of a possibly wrong pick.
const jobConfidenceThreshold = 0.55

// candidateTopK: overused catch-all jobs only survive when their cluster
// ranks within this many.
const candidateTopK = 2

// JobRequest is the input of the job flow. LockedSectorID scopes the
// candidate slate to one already-decided sector.
type JobRequest struct {
	RequestID string
	UserID    string

	Answers   map[string]any
	Questions []axis.Question

	LockedSectorID   string
	RecentJobIDs     []string
	RecentClusterIDs []string
}

// JobResult is the decided job outcome. PickedJobID is either a member of
// the locked sector's candidate slate or the undetermined sentinel.
type JobResult struct {
	PickedJobID string
	JobName     string
	Description string
	Ranked      []domain.RankedCategory
	WhyAxes     map[string][]string
	Confidence  float64
	Source      string
}

// ClassifyJob runs the job pipeline inside one locked sector.
func (s Service) ClassifyJob(ctx domain.Context, req JobRequest) (JobResult, error) {
	sectorID, ok := catalog.SectorIfWhitelisted(req.LockedSectorID)
	if !ok {
		return JobResult{}, fmt.Errorf("%w: lockedSectorId is not a whitelisted sector", domain.ErrInvalidArgument)
	}
	if len(req.Answers) == 0 {
		return JobResult{}, fmt.Errorf("%w: answers required", domain.ErrInvalidArgument)
	}

	profile := axis.Build(answerTexts(req.Answers), req.Questions)
	ranked, why := scoring.RankClusters(profile, sectorID, scoring.ClusterOptions{
		RecentJobIDs:     req.RecentJobIDs,
		RecentClusterIDs: req.RecentClusterIDs,
	})
	candidates := scoring.CandidateJobs(sectorID, ranked, candidateTopK)
	if len(ranked) == 0 || len(candidates) == 0 {
		return JobResult{}, fmt.Errorf("%w: sector %s has no job candidates", domain.ErrInternal, sectorID)
	}

	detPick := deterministicJobPick(ranked, candidates)
	pick, confidence, source, err := s.pickJob(ctx, req, sectorID, candidates, detPick, scoring.Confidence(ranked))
	if err != nil {
		return JobResult{}, err
	}

	res := JobResult{
		PickedJobID: pick,
		Ranked:      ranked,
		WhyAxes:     why,
		Confidence:  confidence,
		Source:      source,
	}
	if confidence < jobConfidenceThreshold {
		res.PickedJobID = domain.Undetermined
	}
	if res.PickedJobID == domain.Undetermined {
		res.JobName = "À déterminer"
		res.Description = trimDescription(
			"Votre profil hésite encore entre plusieurs métiers de ce secteur. Continuez le quiz ou explorez les fiches métiers pour affiner.",
			maxJobDescription)
	} else {
		job, _ := catalog.JobByID(res.PickedJobID)
		res.JobName = job.Name
		res.Description = s.describe(ctx, "job", res.PickedJobID, res.JobName, staticJobDescription(job), maxJobDescription)
	}

	s.persist(ctx, domain.Classification{
		RequestID:  req.RequestID,
		Kind:       "job",
		PickedID:   res.PickedJobID,
		Confidence: res.Confidence,
		Source:     res.Source,
	})
	observability.ObserveClassification("job", res.Source, res.Confidence)
	return res, nil
}

// pickJob resolves the job: AI pick constrained to the candidate slate,
// with one retry when the pick is a real job outside the slate, falling
// back to the deterministic pick. Only quota exhaustion errors out.
func (s Service) pickJob(ctx domain.Context, req JobRequest, sectorID string, candidates []catalog.Job, detPick string, detConfidence float64) (string, float64, string, error) {
	if !s.aiEnabled() {
		return detPick, detConfidence, SourceAIDisabled, nil
	}
	if err := s.reserveQuota(ctx, req.UserID); err != nil {
		return "", 0, "", err
	}

	allowed := map[string]bool{}
	for _, j := range candidates {
		allowed[j.ID] = true
	}
	system, user := jobPickPrompts(sectorID, candidates, req.Answers)

	var out struct {
		Pick       string  `json:"pick"`
		Confidence float64 `json:"confidence"`
	}
	actx, cancel := withTimeout(ctx, s.cfg.AIRankTimeout)
	defer cancel()
	if err := s.chatJSONInto(actx, system, user, 120, &out); err != nil {
		slog.Warn("ai job pick failed, falling back to deterministic", slog.Any("error", err))
		return detPick, detConfidence, SourceDeterministic, nil
	}

	pick, valid := catalog.JobIfWhitelisted(out.Pick)
	if valid && !allowed[pick] {
		// Real job, wrong sector slate: one retry with a tightened prompt.
		slog.Warn("ai job pick outside candidate slate, retrying once",
			slog.String("pick", pick), slog.String("sector", sectorID))
		retrySystem := system + "\nATTENTION: le métier choisi DOIT appartenir à la liste des candidats, aucun autre."
		if err := s.chatJSONInto(actx, retrySystem, user, 120, &out); err == nil {
			pick, valid = catalog.JobIfWhitelisted(out.Pick)
		}
	}
	if !valid || !allowed[pick] {
		slog.Warn("ai job pick invalid after retry, answering undetermined", slog.String("pick", out.Pick))
		return domain.Undetermined, clamp01(out.Confidence), SourceAI, nil
	}

	confidence := clamp01(out.Confidence)
	if confidence == 0 {
		confidence = detConfidence
	}
	return pick, confidence, SourceAI, nil
}

// deterministicJobPick walks the cluster ranking and returns the first
// candidate job of the best-ranked cluster that still has one.
func deterministicJobPick(ranked []domain.RankedCategory, candidates []catalog.Job) string {
	inSlate := map[string]bool{}
	for _, j := range candidates {
		inSlate[j.ID] = true
	}
	for _, rc := range ranked {
		c, ok := catalog.ClusterByID(rc.ID)
		if !ok {
			continue
		}
		for _, j := range c.Jobs {
			if inSlate[j.ID] {
				return j.ID
			}
		}
	}
	return candidates[0].ID
}

func staticJobDescription(j catalog.Job) string {
	return fmt.Sprintf("%s : un métier concret pour mettre votre profil en pratique au quotidien.", j.Name)
}
