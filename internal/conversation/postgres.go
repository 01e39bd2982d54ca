package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresArchive persists flushed conversation logs in PostgreSQL.
type PostgresArchive struct {
	pool *pgxpool.Pool
}

func NewPostgresArchive(ctx context.Context, databaseURL string) (*PostgresArchive, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresArchive{pool: pool}, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conversation_turns (
			id TEXT PRIMARY KEY,
			session_key TEXT NOT NULL,
			seq INT NOT NULL,
			upstream_id TEXT,
			role TEXT NOT NULL,
			text TEXT NOT NULL,
			interrupted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ,
			archived_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_conversation_turns_session_seq ON conversation_turns (session_key, seq);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

// SaveTurns inserts the session's turns keyed by sequence so arrival
// order survives in the archive.
func (a *PostgresArchive) SaveTurns(ctx context.Context, sessionKey string, turns []Turn) error {
	archivedAt := time.Now().UTC()
	for seq, t := range turns {
		var createdAt *time.Time
		if t.CreatedAt != nil {
			ts := t.CreatedAt.UTC()
			createdAt = &ts
		}
		_, err := a.pool.Exec(ctx,
			`INSERT INTO conversation_turns (id, session_key, seq, upstream_id, role, text, interrupted, created_at, archived_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(),
			sessionKey,
			seq,
			t.ID,
			string(t.Role),
			t.Text,
			t.Interrupted,
			createdAt,
			archivedAt,
		)
		if err != nil {
			return fmt.Errorf("archive turn %d: %w", seq, err)
		}
	}
	return nil
}

func (a *PostgresArchive) Close() error {
	a.pool.Close()
	return nil
}
