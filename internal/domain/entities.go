package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrRateLimited     = errors.New("rate limited")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrUpstreamTimeout = errors.New("upstream timeout")
	ErrSchemaInvalid   = errors.New("schema invalid")
	ErrInternal        = errors.New("internal error")
)

// CatalogKind enumerates the two category catalogs.
const (
	CatalogSector = "sector"
	CatalogJob    = "job"
)

// Undetermined is the sentinel job id used when the job flow cannot commit
// to a candidate. The sector flow never emits it on the success path.
const Undetermined = "undetermined"

// RankedCategory is one entry of a ranked list, always sorted descending by
// Score. Lists produced under different normalization regimes must not be
// mixed by callers.
type RankedCategory struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Finalite classifies whether answers orient toward people or systems.
type Finalite string

// Finalite values.
const (
	FinaliteHumainDirect Finalite = "humain_direct"
	FinaliteSystemeObjet Finalite = "systeme_objet"
	FinaliteMixte        Finalite = "mixte"
)

// DomainTags is the per-request auxiliary signal derived from the fixed
// block of domain questions (secteur_41..46). Never persisted.
type DomainTags struct {
	HumanScore            int
	SystemScore           int
	FinaliteDominante     Finalite
	SignauxTechExplicites bool
}

// MicroQuestion is one forced-choice disambiguation question. Options always
// carry exactly three choices with values A, B and C.
type MicroQuestion struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []ChoiceOption `json:"options"`
}

// ChoiceOption is a single labelled choice of a micro question.
type ChoiceOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Classification is the audit record persisted per classification request.
// Keyed by RequestID so client retries upsert onto the same row.
type Classification struct {
	ID             string
	RequestID      string
	Kind           string // sector | job
	PickedID       string
	Confidence     float64
	DecisionReason string
	Source         string // ai | deterministic | ai_disabled
	Forced         bool
	CreatedAt      time.Time
}

// ClassificationRepository (port)
type ClassificationRepository interface {
	Upsert(ctx Context, c Classification) error
	GetByRequestID(ctx Context, requestID string) (Classification, error)
}

// AIClient (port)
type AIClient interface {
	// ChatJSON returns the raw content of a chat completion expected to be a
	// single JSON document; deterministic in mock mode.
	ChatJSON(ctx Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// QuotaStore (port). Allow reports whether the user may issue one more AI
// call today, accounting for both the per-user and the global daily ceiling.
type QuotaStore interface {
	Allow(ctx Context, userID string) (bool, error)
}

// DescriptionCache (port). Keys are stable content hashes; entries are
// idempotent so last-writer-wins semantics are acceptable.
type DescriptionCache interface {
	Get(ctx Context, key string) (string, bool, error)
	Set(ctx Context, key, value string, ttl time.Duration) error
}

// Context is an alias so inner packages are not visually tied to net/http
// plumbing; adapters and usecases pass context.Context through.
type Context = context.Context
