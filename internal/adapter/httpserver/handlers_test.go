package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenira/orient-api/internal/adapter/httpserver"
	"github.com/avenira/orient-api/internal/config"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/usecase"
)

type stubClassifier struct {
	sectorRes usecase.SectorResult
	sectorErr error
	jobRes    usecase.JobResult
	jobErr    error

	lastSector usecase.SectorRequest
	lastJob    usecase.JobRequest
}

func (s *stubClassifier) ClassifySector(_ context.Context, req usecase.SectorRequest) (usecase.SectorResult, error) {
	s.lastSector = req
	return s.sectorRes, s.sectorErr
}

func (s *stubClassifier) ClassifyJob(_ context.Context, req usecase.JobRequest) (usecase.JobResult, error) {
	s.lastJob = req
	return s.jobRes, s.jobErr
}

type stubAudit struct {
	row domain.Classification
	err error
}

func (s stubAudit) Upsert(context.Context, domain.Classification) error { return nil }
func (s stubAudit) GetByRequestID(context.Context, string) (domain.Classification, error) {
	return s.row, s.err
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	rw := httptest.NewRecorder()
	h(rw, r)
	return rw
}

func decodeBody(t *testing.T, rw *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(rw.Result().Body).Decode(&m))
	return m
}

func errorCode(t *testing.T, rw *httptest.ResponseRecorder) string {
	t.Helper()
	m := decodeBody(t, rw)
	errObj, ok := m["error"].(map[string]any)
	require.True(t, ok, "error envelope expected, got %v", m)
	return errObj["code"].(string)
}

func TestSectorClassifyHandlerSuccess(t *testing.T) {
	cl := &stubClassifier{sectorRes: usecase.SectorResult{
		PickedSectorID: "ingenierie_tech",
		SectorName:     "Ingénierie & Tech",
		Description:    "Construire des systèmes.",
		Ranked:         []domain.RankedCategory{{ID: "ingenierie_tech", Score: 1}},
		Confidence:     0.82,
		DecisionReason: "high_confidence",
		Source:         "ai",
	}}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"requestId": "req-1",
		"answers":   map[string]any{"secteur_41": "je code"},
	})
	require.Equal(t, http.StatusOK, rw.Result().StatusCode)

	body := decodeBody(t, rw)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ingenierie_tech", body["pickedSectorId"])
	assert.Equal(t, "ingenierie_tech", body["secteurId"])
	assert.Equal(t, "Ingénierie & Tech", body["secteurName"])
	assert.Equal(t, "high_confidence", body["decisionReason"])
	assert.Equal(t, false, body["needsRefinement"])
	assert.Equal(t, "req-1", cl.lastSector.RequestID)
}

func TestSectorClassifyHandlerMergesAnswerBlocks(t *testing.T) {
	cl := &stubClassifier{sectorRes: usecase.SectorResult{PickedSectorID: "data_ia"}}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"coreAnswers":   map[string]any{"secteur_1": "calme"},
		"domainAnswers": map[string]any{"secteur_47": "C"},
		"answers":       map[string]any{"secteur_41": "les données"},
	})
	require.Equal(t, http.StatusOK, rw.Result().StatusCode)

	assert.Len(t, cl.lastSector.Answers, 3)
	assert.Equal(t, "C", cl.lastSector.Answers["secteur_47"])
}

func TestSectorClassifyHandlerRefinementQuestions(t *testing.T) {
	cl := &stubClassifier{sectorRes: usecase.SectorResult{
		PickedSectorID:     "sante_bien_etre",
		NeedsRefinement:    true,
		RefinementRequired: true,
		DecisionReason:     "needs_micro_questions",
		Questions: []domain.MicroQuestion{{
			ID:       "refine_1",
			Question: "Plutôt soigner ou entraîner ?",
			Options: []domain.ChoiceOption{
				{Label: "Soigner", Value: "A"},
				{Label: "Entraîner", Value: "B"},
				{Label: "Les deux", Value: "C"},
			},
		}},
	}}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"answers": map[string]any{"secteur_1": "bof"},
	})
	require.Equal(t, http.StatusOK, rw.Result().StatusCode)

	body := decodeBody(t, rw)
	assert.Equal(t, true, body["refinementRequired"])
	qs, ok := body["refinementQuestions"].([]any)
	require.True(t, ok)
	require.Len(t, qs, 1)
}

func TestSectorClassifyHandlerInvalidJSON(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, nil, nil)
	r := httptest.NewRequest(http.MethodPost, "/v1/sector/classify", bytes.NewReader([]byte("{pas du json")))
	r.Header.Set("Accept", "application/json")
	rw := httptest.NewRecorder()
	s.SectorClassifyHandler()(rw, r)

	assert.Equal(t, http.StatusBadRequest, rw.Result().StatusCode)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rw))
}

func TestSectorClassifyHandlerCandidatePairValidation(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"answers":          map[string]any{"secteur_1": "x"},
		"candidateSectors": []string{"sante_bien_etre"},
	})
	assert.Equal(t, http.StatusBadRequest, rw.Result().StatusCode)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rw))
}

func TestSectorClassifyHandlerBadMicroAnswer(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"answers":          map[string]any{"secteur_1": "x"},
		"candidateSectors": []string{"sante_bien_etre", "sport_evenementiel"},
		"microAnswers":     map[string]any{"refine_1": "D"},
	})
	assert.Equal(t, http.StatusBadRequest, rw.Result().StatusCode)
}

func TestSectorClassifyHandlerQuotaExceeded(t *testing.T) {
	cl := &stubClassifier{sectorErr: domain.ErrQuotaExceeded}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.SectorClassifyHandler(), "/v1/sector/classify", map[string]any{
		"answers": map[string]any{"secteur_1": "x"},
	})
	assert.Equal(t, http.StatusTooManyRequests, rw.Result().StatusCode)

	m := decodeBody(t, rw)
	errObj := m["error"].(map[string]any)
	assert.Equal(t, "QUOTA_EXCEEDED", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "quota", details["reason"])
}

func TestSectorClassifyHandlerNotAcceptable(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, nil, nil)
	r := httptest.NewRequest(http.MethodPost, "/v1/sector/classify", bytes.NewReader([]byte("{}")))
	r.Header.Set("Accept", "text/html")
	rw := httptest.NewRecorder()
	s.SectorClassifyHandler()(rw, r)
	assert.Equal(t, http.StatusBadRequest, rw.Result().StatusCode)
}

func TestSectorClassifyHandlerUserHeaderForQuota(t *testing.T) {
	cl := &stubClassifier{}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	b, _ := json.Marshal(map[string]any{"answers": map[string]any{"secteur_1": "x"}})
	r := httptest.NewRequest(http.MethodPost, "/v1/sector/classify", bytes.NewReader(b))
	r.Header.Set("Accept", "application/json")
	r.Header.Set("X-User-Id", "user-42")
	rw := httptest.NewRecorder()
	s.SectorClassifyHandler()(rw, r)

	assert.Equal(t, "user-42", cl.lastSector.UserID)
}

func TestJobClassifyHandlerSuccess(t *testing.T) {
	cl := &stubClassifier{jobRes: usecase.JobResult{
		PickedJobID: "graphiste",
		JobName:     "Graphiste",
		Description: "Créer des visuels.",
		Ranked:      []domain.RankedCategory{{ID: "design_graphique", Score: 1.4}},
		WhyAxes:     map[string][]string{"design_graphique": {"creative"}},
		Confidence:  0.7,
		Source:      "ai",
	}}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.JobClassifyHandler(), "/v1/job/classify", map[string]any{
		"requestId":      "req-9",
		"answers":        map[string]any{"metier_1": "dessiner"},
		"lockedSectorId": "creation_design",
	})
	require.Equal(t, http.StatusOK, rw.Result().StatusCode)

	body := decodeBody(t, rw)
	assert.Equal(t, "graphiste", body["pickedJobId"])
	assert.Equal(t, "Graphiste", body["jobName"])
	assert.Equal(t, "creation_design", cl.lastJob.LockedSectorID)
}

func TestJobClassifyHandlerMissingLockedSector(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, nil, nil)

	rw := postJSON(t, s.JobClassifyHandler(), "/v1/job/classify", map[string]any{
		"answers": map[string]any{"metier_1": "dessiner"},
	})
	assert.Equal(t, http.StatusBadRequest, rw.Result().StatusCode)

	m := decodeBody(t, rw)
	errObj := m["error"].(map[string]any)
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "required", details["lockedsectorid"])
}

func TestJobClassifyHandlerUndetermined(t *testing.T) {
	cl := &stubClassifier{jobRes: usecase.JobResult{
		PickedJobID: domain.Undetermined,
		JobName:     "À déterminer",
		Confidence:  0.3,
		Source:      "ai_disabled",
	}}
	s := httpserver.NewServer(config.Config{}, cl, stubAudit{}, nil, nil)

	rw := postJSON(t, s.JobClassifyHandler(), "/v1/job/classify", map[string]any{
		"answers":        map[string]any{"metier_1": "tout"},
		"lockedSectorId": "creation_design",
	})
	require.Equal(t, http.StatusOK, rw.Result().StatusCode)
	body := decodeBody(t, rw)
	assert.Equal(t, domain.Undetermined, body["pickedJobId"])
}

func TestClassificationHandler(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{
		row: domain.Classification{RequestID: "req-1", Kind: "sector", PickedID: "data_ia"},
	}, nil, nil)

	mux := chi.NewRouter()
	mux.Get("/v1/classifications/{requestId}", s.ClassificationHandler())

	r := httptest.NewRequest(http.MethodGet, "/v1/classifications/req-1", nil)
	r.Header.Set("Accept", "application/json")
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, r)

	require.Equal(t, http.StatusOK, rw.Result().StatusCode)
	body := decodeBody(t, rw)
	assert.Equal(t, "data_ia", body["pickedId"])
}

func TestClassificationHandlerNotFound(t *testing.T) {
	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{err: domain.ErrNotFound}, nil, nil)

	mux := chi.NewRouter()
	mux.Get("/v1/classifications/{requestId}", s.ClassificationHandler())

	r := httptest.NewRequest(http.MethodGet, "/v1/classifications/absent", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusNotFound, rw.Result().StatusCode)
}

func TestReadyzHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	bad := func(context.Context) error { return errors.New("connection refused") }

	s := httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, ok, ok)
	rw := httptest.NewRecorder()
	s.ReadyzHandler()(rw, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rw.Result().StatusCode)

	s = httpserver.NewServer(config.Config{}, &stubClassifier{}, stubAudit{}, ok, bad)
	rw = httptest.NewRecorder()
	s.ReadyzHandler()(rw, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rw.Result().StatusCode)
}

func TestHealthzHandler(t *testing.T) {
	rw := httptest.NewRecorder()
	httpserver.HealthzHandler()(rw, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rw.Result().StatusCode)
}
