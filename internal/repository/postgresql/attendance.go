package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByEmployees implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployees(ctx context.Context, employeeNumbers []string, start, end time.Time) ([]attendance.Record, error) {
	if len(employeeNumbers) == 0 {
		return []attendance.Record{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, date, checkin_time, checkout_time,
			   session_type, attendance_type,
			   taken_location, latitude, longitude, county, state, postcode, location_address,
			   photo_url, audio_url, audio_duration,
			   created_at, updated_at
		FROM attendance
		WHERE employee_number = ANY($1)
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeNumbers, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeNumber, &rec.Date, &rec.CheckinTime, &rec.CheckoutTime,
			&rec.SessionType, &rec.AttendanceType,
			&rec.TakenLocation, &rec.Latitude, &rec.Longitude, &rec.County, &rec.State, &rec.Postcode, &rec.LocationAddress,
			&rec.PhotoURL, &rec.AudioURL, &rec.AudioDuration,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// ListActiveFieldTrips implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListActiveFieldTrips(ctx context.Context, employeeNumbers []string) ([]attendance.FieldTrip, error) {
	if len(employeeNumbers) == 0 {
		return []attendance.FieldTrip{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, is_active, start_date, end_date
		FROM field_trip
		WHERE employee_number = ANY($1)
		  AND is_active = TRUE
	`

	rows, err := q.Query(ctx, query, employeeNumbers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var trips []attendance.FieldTrip
	for rows.Next() {
		var trip attendance.FieldTrip
		if err := rows.Scan(&trip.ID, &trip.EmployeeNumber, &trip.IsActive, &trip.StartDate, &trip.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan field trip: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read field trips: %w", err)
	}

	return trips, nil
}
