package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
)

type CalendarJobs struct {
	calendarSvc calendar.CalendarService
}

func NewCalendarJobs(calendarSvc calendar.CalendarService) *CalendarJobs {
	return &CalendarJobs{
		calendarSvc: calendarSvc,
	}
}

func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("seed_weekend_calendar", 24*time.Hour, j.SeedWeekendCalendar)
}

// SeedWeekendCalendar keeps the working-day calendar populated with weekend
// facts for the current year. Inserts are conflict-skipped, so re-running is
// harmless; around year end the next year is seeded too.
func (j *CalendarJobs) SeedWeekendCalendar(ctx context.Context) error {
	year := time.Now().UTC().Year()

	count, err := j.calendarSvc.SeedWeekends(ctx, year)
	if err != nil {
		return err
	}
	slog.Info("Cron: weekend calendar seeded", "year", year, "inserted", count)

	if time.Now().UTC().Month() == time.December {
		count, err = j.calendarSvc.SeedWeekends(ctx, year+1)
		if err != nil {
			return err
		}
		slog.Info("Cron: weekend calendar seeded", "year", year+1, "inserted", count)
	}

	return nil
}
