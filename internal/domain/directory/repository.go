package directory

import (
	"context"
)

// DirectoryRepository defines read access to the externally owned staff
// directory. The directory is queried, never written.
type DirectoryRepository interface {
	// ListByPI retrieves all directory rows for the given PI, ordered by
	// staff username ascending
	ListByPI(ctx context.Context, piUsername string) ([]Row, error)

	// ListPIs retrieves all distinct PIs, ordered by username ascending
	ListPIs(ctx context.Context) ([]PI, error)

	// GetByEmployeeNumber retrieves the first directory row for an employee,
	// nil when the employee is unknown
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*Row, error)
}
