package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenira/orient-api/internal/domain"
)

// creativeAnswers leans on creative vocabulary so the design clusters score.
func creativeAnswers() map[string]any {
	return map[string]any{
		"metier_1": "dessiner, créer des visuels, imaginer une identité graphique",
		"metier_2": "un projet artistique original, inventer quelque chose de nouveau",
	}
}

func TestClassifyJobInvalidLockedSector(t *testing.T) {
	svc, _ := newTestService(false, nil, true)

	_, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "pas_un_secteur",
		Answers:        creativeAnswers(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "creation_design",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClassifyJobDeterministicUndeterminedOnFlatSpread(t *testing.T) {
	svc, repo := newTestService(false, nil, true)

	// The three design clusters share most of the creative weight; the
	// deterministic spread cannot reach the pick threshold.
	res, err := svc.ClassifyJob(context.Background(), JobRequest{
		RequestID:      "job-1",
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, SourceAIDisabled, res.Source)
	assert.Equal(t, domain.Undetermined, res.PickedJobID)
	assert.Equal(t, "À déterminer", res.JobName)
	assert.NotEmpty(t, res.Description)
	assert.Less(t, res.Confidence, jobConfidenceThreshold)
	assert.NotEmpty(t, res.Ranked)
	assert.NotEmpty(t, res.WhyAxes)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "job", repo.rows[0].Kind)
	assert.Equal(t, domain.Undetermined, repo.rows[0].PickedID)
}

func TestClassifyJobAIPick(t *testing.T) {
	ai := &stubAI{responses: map[string]string{
		TaskJobPick:  `{"pick":"graphiste","confidence":0.82}`,
		TaskDescribe: `{"description":"Le graphisme comme métier au quotidien."}`,
	}}
	svc, repo := newTestService(true, ai, true)

	res, err := svc.ClassifyJob(context.Background(), JobRequest{
		RequestID:      "job-2",
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, "graphiste", res.PickedJobID)
	assert.Equal(t, "Graphiste", res.JobName)
	assert.InDelta(t, 0.82, res.Confidence, 0.001)
	assert.Equal(t, SourceAI, res.Source)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "graphiste", repo.rows[0].PickedID)
}

func TestClassifyJobAIPickOutsideSlateRetriedThenUndetermined(t *testing.T) {
	// developpeur_web is a real job of another sector; the retry returns the
	// same pick, so the flow answers undetermined rather than cross-sector.
	ai := &stubAI{responses: map[string]string{
		TaskJobPick: `{"pick":"developpeur_web","confidence":0.9}`,
	}}
	svc, _ := newTestService(true, ai, true)

	res, err := svc.ClassifyJob(context.Background(), JobRequest{
		RequestID:      "job-3",
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Undetermined, res.PickedJobID)
	assert.Equal(t, "À déterminer", res.JobName)

	pickCalls := 0
	for _, c := range ai.calls {
		if c == TaskJobPick {
			pickCalls++
		}
	}
	assert.Equal(t, 2, pickCalls, "exactly one tightened retry")
}

func TestClassifyJobLowAIConfidenceUndetermined(t *testing.T) {
	ai := &stubAI{responses: map[string]string{
		TaskJobPick: `{"pick":"graphiste","confidence":0.3}`,
	}}
	svc, _ := newTestService(true, ai, true)

	res, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Undetermined, res.PickedJobID)
}

func TestClassifyJobQuotaExhausted(t *testing.T) {
	ai := &stubAI{responses: map[string]string{}}
	svc := New(testConfig(true), ai, stubQuota{allowed: false}, newStubCache(), &stubRepo{})

	_, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Empty(t, ai.calls)
}

func TestClassifyJobAIFailureFallsBackDeterministic(t *testing.T) {
	ai := &stubAI{errs: map[string]error{
		TaskJobPick: assert.AnError,
	}}
	svc, _ := newTestService(true, ai, true)

	res, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)
	assert.Equal(t, SourceDeterministic, res.Source)
}

func TestClassifyJobRecentPenaltiesShiftSlate(t *testing.T) {
	svc, _ := newTestService(false, nil, true)

	fresh, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID: "creation_design",
		Answers:        creativeAnswers(),
	})
	require.NoError(t, err)

	penalized, err := svc.ClassifyJob(context.Background(), JobRequest{
		LockedSectorID:   "creation_design",
		Answers:          creativeAnswers(),
		RecentClusterIDs: []string{fresh.Ranked[0].ID},
	})
	require.NoError(t, err)

	assert.NotEqual(t, fresh.Ranked[0].Score, scoreOf(penalized.Ranked, fresh.Ranked[0].ID),
		"a recently surfaced cluster must score lower")
}

func scoreOf(ranked []domain.RankedCategory, id string) float64 {
	for _, rc := range ranked {
		if rc.ID == id {
			return rc.Score
		}
	}
	return 0
}
