package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/avenira/orient-api/internal/axis"
	"github.com/avenira/orient-api/internal/config"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/usecase"
)

// ClassifierService is the slice of the classification core the HTTP layer
// depends on.
type ClassifierService interface {
	ClassifySector(ctx context.Context, req usecase.SectorRequest) (usecase.SectorResult, error)
	ClassifyJob(ctx context.Context, req usecase.JobRequest) (usecase.JobResult, error)
}

// Server aggregates handler dependencies.
type Server struct {
	Cfg        config.Config
	Classifier ClassifierService
	Audit      domain.ClassificationRepository
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, classifier ClassifierService, audit domain.ClassificationRepository, dbCheck, redisCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Classifier: classifier, Audit: audit, DBCheck: dbCheck, RedisCheck: redisCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

const maxBodyBytes = 1 << 20 // 1MB

// acceptsJSON rejects requests whose Accept header excludes JSON; this API
// speaks nothing else.
func acceptsJSON(w http.ResponseWriter, r *http.Request) bool {
	a := r.Header.Get("Accept")
	if a == "" || a == "*/*" || strings.Contains(a, "application/json") {
		return true
	}
	writeError(w, r, fmt.Errorf("%w: not acceptable", domain.ErrInvalidArgument), map[string]any{"accept": a})
	return false
}

type sectorClassifyRequest struct {
	RequestID string          `json:"requestId"`
	Answers   map[string]any  `json:"answers"`
	Questions []axis.Question `json:"questions"`

	// Optional pre-split personality / domain blocks; merged into answers.
	CoreAnswers   map[string]any `json:"coreAnswers"`
	DomainAnswers map[string]any `json:"domainAnswers"`

	MicroAnswers     map[string]any `json:"microAnswers"`
	CandidateSectors []string       `json:"candidateSectors" validate:"omitempty,len=2"`
	RefinementCount  int            `json:"refinementCount" validate:"gte=0"`
}

type sectorClassifyResponse struct {
	OK             bool                    `json:"ok"`
	PickedSectorID string                  `json:"pickedSectorId"`
	SecteurID      string                  `json:"secteurId"`
	SecteurName    string                  `json:"secteurName"`
	Description    string                  `json:"description,omitempty"`
	SectorRanked   []domain.RankedCategory `json:"sectorRanked"`
	Confidence     float64                 `json:"confidence"`

	NeedsRefinement     bool                   `json:"needsRefinement"`
	RefinementRequired  bool                   `json:"refinementRequired,omitempty"`
	RefinementQuestions []domain.MicroQuestion `json:"refinementQuestions,omitempty"`
	ForcedDecision      bool                   `json:"forcedDecision,omitempty"`
	DecisionReason      string                 `json:"decisionReason"`
	Source              string                 `json:"source"`
}

// mergedAnswers folds the optional pre-split blocks into the main answer
// map. Explicit entries in answers win on id collision.
func (req sectorClassifyRequest) mergedAnswers() map[string]any {
	out := make(map[string]any, len(req.Answers)+len(req.CoreAnswers)+len(req.DomainAnswers))
	for id, v := range req.CoreAnswers {
		out[id] = v
	}
	for id, v := range req.DomainAnswers {
		out[id] = v
	}
	for id, v := range req.Answers {
		out[id] = v
	}
	return out
}

// SectorClassifyHandler runs the sector flow: fresh classification or
// refinement submission, depending on the presence of candidateSectors.
func (s *Server) SectorClassifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsJSON(w, r) {
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req sectorClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}
		if bad := invalidChoiceIDs(req.MicroAnswers); len(bad) > 0 {
			writeError(w, r, fmt.Errorf("%w: micro answers must be A, B or C", domain.ErrInvalidArgument), map[string]any{"ids": bad})
			return
		}

		res, err := s.Classifier.ClassifySector(r.Context(), usecase.SectorRequest{
			RequestID:        req.RequestID,
			UserID:           userIDFrom(r),
			Answers:          req.mergedAnswers(),
			Questions:        req.Questions,
			MicroAnswers:     req.MicroAnswers,
			CandidateSectors: req.CandidateSectors,
			RefinementCount:  req.RefinementCount,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, sectorClassifyResponse{
			OK:                  true,
			PickedSectorID:      res.PickedSectorID,
			SecteurID:           res.PickedSectorID,
			SecteurName:         res.SectorName,
			Description:         res.Description,
			SectorRanked:        res.Ranked,
			Confidence:          res.Confidence,
			NeedsRefinement:     res.NeedsRefinement,
			RefinementRequired:  res.RefinementRequired,
			RefinementQuestions: res.Questions,
			ForcedDecision:      res.Forced,
			DecisionReason:      res.DecisionReason,
			Source:              res.Source,
		})
	}
}

type jobClassifyRequest struct {
	RequestID string          `json:"requestId"`
	Answers   map[string]any  `json:"answers"`
	Questions []axis.Question `json:"questions"`

	LockedSectorID   string   `json:"lockedSectorId" validate:"required"`
	RecentJobIDs     []string `json:"recentJobIds"`
	RecentClusterIDs []string `json:"recentClusterIds"`
}

type jobClassifyResponse struct {
	OK          bool                    `json:"ok"`
	PickedJobID string                  `json:"pickedJobId"`
	JobName     string                  `json:"jobName"`
	Description string                  `json:"description,omitempty"`
	JobRanked   []domain.RankedCategory `json:"jobRanked"`
	WhyAxes     map[string][]string     `json:"whyAxes,omitempty"`
	Confidence  float64                 `json:"confidence"`
	Source      string                  `json:"source"`
}

// JobClassifyHandler runs the job flow inside one locked sector.
func (s *Server) JobClassifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsJSON(w, r) {
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req jobClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}

		res, err := s.Classifier.ClassifyJob(r.Context(), usecase.JobRequest{
			RequestID:        req.RequestID,
			UserID:           userIDFrom(r),
			Answers:          req.Answers,
			Questions:        req.Questions,
			LockedSectorID:   req.LockedSectorID,
			RecentJobIDs:     req.RecentJobIDs,
			RecentClusterIDs: req.RecentClusterIDs,
		})
		if err != nil {
			writeError(w, r, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, jobClassifyResponse{
			OK:          true,
			PickedJobID: res.PickedJobID,
			JobName:     res.JobName,
			Description: res.Description,
			JobRanked:   res.Ranked,
			WhyAxes:     res.WhyAxes,
			Confidence:  res.Confidence,
			Source:      res.Source,
		})
	}
}

// ClassificationHandler returns the audit row of a past classification.
func (s *Server) ClassificationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsJSON(w, r) {
			return
		}
		id := chi.URLParam(r, "requestId")
		if id == "" {
			writeError(w, r, fmt.Errorf("%w: requestId missing", domain.ErrInvalidArgument), nil)
			return
		}
		c, err := s.Audit.GetByRequestID(r.Context(), id)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, classificationResponse{
			RequestID:      c.RequestID,
			Kind:           c.Kind,
			PickedID:       c.PickedID,
			Confidence:     c.Confidence,
			DecisionReason: c.DecisionReason,
			Source:         c.Source,
			Forced:         c.Forced,
			CreatedAt:      c.CreatedAt,
		})
	}
}

type classificationResponse struct {
	RequestID      string    `json:"requestId"`
	Kind           string    `json:"kind"`
	PickedID       string    `json:"pickedId"`
	Confidence     float64   `json:"confidence"`
	DecisionReason string    `json:"decisionReason,omitempty"`
	Source         string    `json:"source"`
	Forced         bool      `json:"forced,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ReadyzHandler probes the Postgres and Redis dependencies.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.DBCheck != nil {
			if err := s.DBCheck(ctx); err != nil {
				checks = append(checks, check{Name: "db", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "db", OK: true})
			}
		}
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		st := http.StatusOK
		for _, c := range checks {
			if !c.OK {
				st = http.StatusServiceUnavailable
				break
			}
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}

// HealthzHandler reports process liveness.
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// userIDFrom resolves the caller identity for quota accounting. The auth
// layer upstream sets X-User-Id; absent means the shared anonymous bucket.
func userIDFrom(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}

func validationDetails(err error) map[string]string {
	verrs := map[string]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			verrs[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return verrs
}

// invalidChoiceIDs lists micro-answer ids whose value is not one of the
// three labelled choices.
func invalidChoiceIDs(micro map[string]any) []string {
	var bad []string
	for id, v := range micro {
		s, ok := v.(string)
		if !ok {
			if m, isMap := v.(map[string]any); isMap {
				if mv, has := m["value"].(string); has {
					s, ok = mv, true
				}
			}
		}
		if !ok {
			bad = append(bad, id)
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "A", "B", "C":
		default:
			bad = append(bad, id)
		}
	}
	return bad
}
