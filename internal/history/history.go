// Package history records served recommendation queries in PostgreSQL or SQLite.
package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-recommender/internal/types"
)

// ErrNotFound is returned by Get when no entry has the requested ID
var ErrNotFound = errors.New("history entry not found")

// DefaultListLimit is used when List is called with a non-positive limit
const DefaultListLimit = 50

// Entry is one recorded query and the recommendations returned for it
type Entry struct {
	ID        uuid.UUID              `json:"id"`
	Query     string                 `json:"query"`
	Strategy  string                 `json:"strategy"`
	TopK      int                    `json:"top_k"`
	Results   []types.Recommendation `json:"results"`
	CreatedAt time.Time              `json:"created_at"`
}

// Store persists history entries
type Store interface {
	// Save assigns ID and CreatedAt when they are zero, then stores the entry.
	Save(ctx context.Context, entry *Entry) error
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]Entry, error)
	// Get returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	Close() error
}

// Open selects a backend from the DSN: postgres:// and postgresql:// URLs use
// PostgreSQL, anything else is treated as a SQLite file path.
func Open(ctx context.Context, dsn string) (Store, error) {
	if isPostgresDSN(dsn) {
		store, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// prepare fills ID, CreatedAt and a non-nil result list before insertion
func prepare(entry *Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Results == nil {
		entry.Results = []types.Recommendation{}
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
