package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"

	"github.com/avenira/orient-api/internal/domain"
)

// PgxPool is the minimal subset of pgxpool used by the repo, kept small for
// easy testing.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ClassificationRepo stores audit rows in PostgreSQL. Rows are keyed by
// request_id so a client retry lands on the same row.
type ClassificationRepo struct{ Pool PgxPool }

// NewClassificationRepo constructs a ClassificationRepo with the given pool.
func NewClassificationRepo(p PgxPool) *ClassificationRepo { return &ClassificationRepo{Pool: p} }

var _ domain.ClassificationRepository = (*ClassificationRepo)(nil)

// Upsert writes one audit row, replacing any previous row for the same
// request id.
func (r *ClassificationRepo) Upsert(ctx domain.Context, c domain.Classification) error {
	tracer := otel.Tracer("repo.classifications")
	ctx, span := tracer.Start(ctx, "classifications.Upsert")
	defer span.End()

	id := c.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	q := `INSERT INTO classifications (id, request_id, kind, picked_id, confidence, decision_reason, source, forced, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (request_id) DO UPDATE SET
  kind = EXCLUDED.kind,
  picked_id = EXCLUDED.picked_id,
  confidence = EXCLUDED.confidence,
  decision_reason = EXCLUDED.decision_reason,
  source = EXCLUDED.source,
  forced = EXCLUDED.forced,
  created_at = EXCLUDED.created_at`
	_, err := r.Pool.Exec(ctx, q, id, c.RequestID, c.Kind, c.PickedID, c.Confidence, c.DecisionReason, c.Source, c.Forced, createdAt)
	if err != nil {
		return fmt.Errorf("op=classifications.upsert: %w", err)
	}
	return nil
}

// GetByRequestID loads the audit row for one request id.
func (r *ClassificationRepo) GetByRequestID(ctx domain.Context, requestID string) (domain.Classification, error) {
	tracer := otel.Tracer("repo.classifications")
	ctx, span := tracer.Start(ctx, "classifications.GetByRequestID")
	defer span.End()

	q := `SELECT id, request_id, kind, picked_id, confidence, COALESCE(decision_reason,''), source, forced, created_at
FROM classifications WHERE request_id=$1`
	row := r.Pool.QueryRow(ctx, q, requestID)
	var c domain.Classification
	if err := row.Scan(&c.ID, &c.RequestID, &c.Kind, &c.PickedID, &c.Confidence, &c.DecisionReason, &c.Source, &c.Forced, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Classification{}, fmt.Errorf("op=classifications.get: %w", domain.ErrNotFound)
		}
		return domain.Classification{}, fmt.Errorf("op=classifications.get: %w", err)
	}
	return c, nil
}
