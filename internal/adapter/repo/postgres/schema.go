package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS classifications (
  id UUID PRIMARY KEY,
  request_id TEXT NOT NULL UNIQUE,
  kind TEXT NOT NULL,
  picked_id TEXT NOT NULL,
  confidence DOUBLE PRECISION NOT NULL,
  decision_reason TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL,
  forced BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS classifications_kind_created_at_idx
  ON classifications (kind, created_at);
`

// EnsureSchema creates the audit table when missing. Idempotent, run at
// startup.
func EnsureSchema(ctx context.Context, pool PgxPool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("op=postgres.EnsureSchema: %w", err)
	}
	return nil
}
