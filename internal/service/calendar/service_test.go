package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
)

// fakeCalendarRepo keeps facts in a map keyed by date, mirroring the unique
// date constraint of the real table.
type fakeCalendarRepo struct {
	facts map[string]calendar.Fact
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{facts: make(map[string]calendar.Fact)}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (r *fakeCalendarRepo) CountFlaggedDates(_ context.Context, start, end time.Time) (int, error) {
	count := 0
	for _, fact := range r.facts {
		if fact.Date.Before(start) || fact.Date.After(end) {
			continue
		}
		if fact.IsHoliday || fact.IsWeekend {
			count++
		}
	}
	return count, nil
}

func (r *fakeCalendarRepo) GetByDate(_ context.Context, date time.Time) (*calendar.Fact, error) {
	fact, ok := r.facts[dateKey(date)]
	if !ok {
		return nil, nil
	}
	return &fact, nil
}

func (r *fakeCalendarRepo) Upsert(_ context.Context, fact calendar.Fact) error {
	r.facts[dateKey(fact.Date)] = fact
	return nil
}

func (r *fakeCalendarRepo) CreateMany(_ context.Context, facts []calendar.Fact) (int, error) {
	inserted := 0
	for _, fact := range facts {
		if _, exists := r.facts[dateKey(fact.Date)]; exists {
			continue
		}
		r.facts[dateKey(fact.Date)] = fact
		inserted++
	}
	return inserted, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalendarService_WorkingDays_FullMonth(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCalendarRepo()
	service := NewCalendarService(repo)

	// Seed weekends for 2024, then count March: 31 days minus 10 weekend days
	_, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)

	days, err := service.WorkingDays(ctx, date(2024, time.March, 1), date(2024, time.March, 31))

	assert.NoError(t, err)
	assert.Equal(t, 21, days)
}

func TestCalendarService_WorkingDays_HolidayOnWeekday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCalendarRepo()
	service := NewCalendarService(repo)

	_, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)

	// March 11th 2024 is a Monday
	err = service.AddHoliday(ctx, calendar.AddHolidayRequest{
		Date:        "2024-03-11",
		Description: "Company anniversary",
	})
	require.NoError(t, err)

	days, err := service.WorkingDays(ctx, date(2024, time.March, 1), date(2024, time.March, 31))

	assert.NoError(t, err)
	assert.Equal(t, 20, days)
}

func TestCalendarService_WorkingDays_HolidayOnWeekendCountsOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCalendarRepo()
	service := NewCalendarService(repo)

	_, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)

	// March 9th 2024 is a Saturday, already flagged as weekend
	err = service.AddHoliday(ctx, calendar.AddHolidayRequest{
		Date:        "2024-03-09",
		Description: "National day",
	})
	require.NoError(t, err)

	days, err := service.WorkingDays(ctx, date(2024, time.March, 1), date(2024, time.March, 31))

	assert.NoError(t, err)
	assert.Equal(t, 21, days)

	// The weekend flag must survive the holiday upsert
	fact, err := repo.GetByDate(ctx, date(2024, time.March, 9))
	require.NoError(t, err)
	require.NotNil(t, fact)
	assert.True(t, fact.IsWeekend)
	assert.True(t, fact.IsHoliday)
}

func TestCalendarService_WorkingDays_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	service := NewCalendarService(newFakeCalendarRepo())

	days, err := service.WorkingDays(ctx, date(2024, time.March, 31), date(2024, time.March, 1))

	assert.NoError(t, err)
	assert.Equal(t, 0, days)
}

func TestCalendarService_WorkingDaysUpTo_ClampsToAsOf(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCalendarRepo()
	service := NewCalendarService(repo)

	_, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)

	// As of March 15th only 1..15 counts: 15 days minus 4 weekend days
	days, err := service.WorkingDaysUpTo(ctx,
		date(2024, time.March, 1),
		date(2024, time.March, 31),
		date(2024, time.March, 15),
	)

	assert.NoError(t, err)
	assert.Equal(t, 11, days)
}

func TestCalendarService_WorkingDaysUpTo_AsOfBeforeStart(t *testing.T) {
	ctx := context.Background()
	service := NewCalendarService(newFakeCalendarRepo())

	days, err := service.WorkingDaysUpTo(ctx,
		date(2024, time.April, 1),
		date(2024, time.April, 30),
		date(2024, time.March, 20),
	)

	assert.NoError(t, err)
	assert.Equal(t, 0, days)
}

func TestCalendarService_SeedWeekends_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCalendarRepo()
	service := NewCalendarService(repo)

	first, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 104, first)

	second, err := service.SeedWeekends(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

func TestCalendarService_AddHoliday_InvalidDate(t *testing.T) {
	ctx := context.Background()
	service := NewCalendarService(newFakeCalendarRepo())

	err := service.AddHoliday(ctx, calendar.AddHolidayRequest{
		Date:        "11-03-2024",
		Description: "Backwards date",
	})

	assert.Error(t, err)
}
