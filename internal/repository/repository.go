package repository

import (
	"context"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

// SleepLogRepository owns per-user log collections. Entries are
// append-only; insertion order is submission order.
type SleepLogRepository interface {
	// Append adds a validated entry to the user's collection.
	Append(ctx context.Context, userID string, entry domain.SleepLogEntry) error
	// List returns a snapshot of the user's collection in submission order.
	List(ctx context.Context, userID string) ([]domain.SleepLogEntry, error)
}

// InsightRepository keeps one live insight per user.
type InsightRepository interface {
	// Save stores the insight, overwriting any previous one for the user.
	Save(ctx context.Context, insight domain.Insight) error
	// Latest returns the stored insight, or domain.ErrNotFound.
	Latest(ctx context.Context, userID string) (*domain.Insight, error)
}
