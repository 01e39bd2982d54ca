package conversation

import (
	"context"
	"strings"
)

// Archive is an optional secondary sink for flushed turn logs. The
// per-session JSON file remains authoritative; the archive exists for
// querying across sessions.
type Archive interface {
	SaveTurns(ctx context.Context, sessionKey string, turns []Turn) error
	Close() error
}

// NewArchive creates a postgres-backed archive when configured,
// otherwise a no-op one.
func NewArchive(ctx context.Context, databaseURL string) (Archive, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return NoopArchive{}, nil
	}
	return NewPostgresArchive(ctx, databaseURL)
}

// NoopArchive discards turns; used when no DATABASE_URL is configured.
type NoopArchive struct{}

func (NoopArchive) SaveTurns(context.Context, string, []Turn) error { return nil }
func (NoopArchive) Close() error                                    { return nil }
