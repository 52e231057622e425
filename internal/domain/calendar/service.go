package calendar

import (
	"context"
	"time"
)

// CalendarService computes working-day totals and maintains calendar facts
type CalendarService interface {
	// WorkingDays counts working days in [start, end] inclusive
	WorkingDays(ctx context.Context, start, end time.Time) (int, error)

	// WorkingDaysUpTo clamps the effective end date to min(end, asOf).
	// Returns 0 when asOf is before start.
	WorkingDaysUpTo(ctx context.Context, start, end, asOf time.Time) (int, error)

	// SeedWeekends inserts weekend facts for every Saturday and Sunday of the
	// given year, skipping dates that already have a fact
	SeedWeekends(ctx context.Context, year int) (int, error)

	// AddHoliday marks a date as a holiday with a description
	AddHoliday(ctx context.Context, req AddHolidayRequest) error
}
