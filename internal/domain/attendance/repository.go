package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines read access to the attendance event store.
// The store is owned elsewhere; this system never writes to it.
type AttendanceRepository interface {
	// ListByEmployees retrieves all records for the given employee numbers
	// with dates inside [start, end], ordered by date ascending
	ListByEmployees(ctx context.Context, employeeNumbers []string, start, end time.Time) ([]Record, error)

	// ListActiveFieldTrips retrieves the active field trips for the given
	// employee numbers
	ListActiveFieldTrips(ctx context.Context, employeeNumbers []string) ([]FieldTrip, error)
}
