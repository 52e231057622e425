package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
	"github.com/rndpresence/presence-backend-go/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepository{db: db}
}

// CountFlaggedDates implements calendar.CalendarRepository.
func (r *calendarRepository) CountFlaggedDates(ctx context.Context, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM calendar
		WHERE date >= $1
		  AND date <= $2
		  AND (is_holiday = TRUE OR is_weekend = TRUE)
	`

	var count int
	if err := q.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count flagged dates: %w", err)
	}

	return count, nil
}

// GetByDate implements calendar.CalendarRepository.
func (r *calendarRepository) GetByDate(ctx context.Context, date time.Time) (*calendar.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, description, is_holiday, is_weekend, created_at, updated_at
		FROM calendar
		WHERE date = $1
	`

	var fact calendar.Fact
	err := q.QueryRow(ctx, query, date).Scan(
		&fact.ID, &fact.Date, &fact.Description, &fact.IsHoliday, &fact.IsWeekend,
		&fact.CreatedAt, &fact.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get calendar fact by date: %w", err)
	}

	return &fact, nil
}

// Upsert implements calendar.CalendarRepository.
func (r *calendarRepository) Upsert(ctx context.Context, fact calendar.Fact) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar (date, description, is_holiday, is_weekend)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET description = EXCLUDED.description,
		    is_holiday  = EXCLUDED.is_holiday,
		    updated_at  = NOW()
	`

	if _, err := q.Exec(ctx, query, fact.Date, fact.Description, fact.IsHoliday, fact.IsWeekend); err != nil {
		return fmt.Errorf("failed to upsert calendar fact: %w", err)
	}

	return nil
}

// CreateMany implements calendar.CalendarRepository.
func (r *calendarRepository) CreateMany(ctx context.Context, facts []calendar.Fact) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar (date, description, is_holiday, is_weekend)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO NOTHING
	`

	inserted := 0
	for _, fact := range facts {
		tag, err := q.Exec(ctx, query, fact.Date, fact.Description, fact.IsHoliday, fact.IsWeekend)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert calendar fact for %s: %w", fact.Date.Format("2006-01-02"), err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
