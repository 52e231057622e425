package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
	"github.com/rndpresence/presence-backend-go/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	calendarRepo calendar.CalendarRepository
	now          func() time.Time
}

func NewCalendarService(calendarRepo calendar.CalendarRepository) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		calendarRepo: calendarRepo,
		now:          time.Now,
	}
}

// WorkingDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) WorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, nil
	}

	totalDays := daysInRange(start, end)
	flagged, err := s.calendarRepo.CountFlaggedDates(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count holidays and weekends: %w", err)
	}

	return totalDays - flagged, nil
}

// WorkingDaysUpTo implements calendar.CalendarService. The effective end date
// is min(end, asOf) so a mid-month report never counts future weekdays.
func (s *CalendarServiceImpl) WorkingDaysUpTo(ctx context.Context, start, end, asOf time.Time) (int, error) {
	asOf = truncateToDay(asOf)
	if asOf.Before(truncateToDay(start)) {
		return 0, nil
	}

	effectiveEnd := end
	if effectiveEnd.After(asOf) {
		effectiveEnd = asOf
	}

	return s.WorkingDays(ctx, start, effectiveEnd)
}

// SeedWeekends implements calendar.CalendarService.
func (s *CalendarServiceImpl) SeedWeekends(ctx context.Context, year int) (int, error) {
	var facts []calendar.Fact

	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for date.Year() == year {
		weekday := date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			description := weekday.String()
			facts = append(facts, calendar.Fact{
				Date:        date,
				Description: &description,
				IsHoliday:   true,
				IsWeekend:   true,
			})
		}
		date = date.AddDate(0, 0, 1)
	}

	inserted, err := s.calendarRepo.CreateMany(ctx, facts)
	if err != nil {
		return inserted, fmt.Errorf("failed to seed weekend facts for %d: %w", year, err)
	}

	return inserted, nil
}

// AddHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) AddHoliday(ctx context.Context, req calendar.AddHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	date, _ := validator.IsValidDate(req.Date)

	// Preserve the weekend flag when the date already has a fact
	existing, err := s.calendarRepo.GetByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to look up calendar fact: %w", err)
	}

	fact := calendar.Fact{
		Date:        date,
		Description: &req.Description,
		IsHoliday:   true,
		IsWeekend:   false,
	}
	if existing != nil {
		fact.IsWeekend = existing.IsWeekend
	}

	if err := s.calendarRepo.Upsert(ctx, fact); err != nil {
		return fmt.Errorf("failed to add holiday: %w", err)
	}

	return nil
}

// daysInRange counts calendar days in [start, end] inclusive, by date.
func daysInRange(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
