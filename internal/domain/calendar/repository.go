package calendar

import (
	"context"
	"time"
)

// CalendarRepository defines data access methods for calendar facts.
type CalendarRepository interface {
	// CountFlaggedDates counts dates in [start, end] flagged as weekend or
	// holiday. A date carrying both flags is counted once.
	CountFlaggedDates(ctx context.Context, start, end time.Time) (int, error)

	// GetByDate retrieves the fact for a single date, nil when none exists
	GetByDate(ctx context.Context, date time.Time) (*Fact, error)

	// Upsert inserts a fact or updates the description/holiday flag of an
	// existing one for the same date
	Upsert(ctx context.Context, fact Fact) error

	// CreateMany inserts facts in bulk, skipping dates that already exist
	CreateMany(ctx context.Context, facts []Fact) (int, error)
}
