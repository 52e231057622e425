package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/pkg/database"
)

// directoryRepository reads the externally maintained staff_with_pi view.
// The view lives in a separate database and is strictly read-only from here.
type directoryRepository struct {
	db *database.DB
}

func NewDirectoryRepository(db *database.DB) directory.DirectoryRepository {
	return &directoryRepository{db: db}
}

// ListByPI implements directory.DirectoryRepository.
func (r *directoryRepository) ListByPI(ctx context.Context, piUsername string) ([]directory.Row, error) {
	query := `
		SELECT staff_emp_id, staff_username, emp_class, project_id, dept_name,
			   pi_username, pi_full_name
		FROM staff_with_pi
		WHERE pi_username = $1
		ORDER BY staff_username ASC
	`

	rows, err := r.db.Query(ctx, query, piUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanDirectoryRows(rows)
}

// ListPIs implements directory.DirectoryRepository.
func (r *directoryRepository) ListPIs(ctx context.Context) ([]directory.PI, error) {
	query := `
		SELECT DISTINCT pi_username, pi_full_name
		FROM staff_with_pi
		ORDER BY pi_username ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", directory.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pis []directory.PI
	for rows.Next() {
		var pi directory.PI
		if err := rows.Scan(&pi.Username, &pi.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan PI row: %w", err)
		}
		pis = append(pis, pi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PI rows: %w", err)
	}

	return pis, nil
}

// GetByEmployeeNumber implements directory.DirectoryRepository.
func (r *directoryRepository) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*directory.Row, error) {
	query := `
		SELECT staff_emp_id, staff_username, emp_class, project_id, dept_name,
			   pi_username, pi_full_name
		FROM staff_with_pi
		WHERE staff_emp_id = $1
		LIMIT 1
	`

	var row directory.Row
	err := r.db.QueryRow(ctx, query, employeeNumber).Scan(
		&row.StaffEmpID, &row.StaffUsername, &row.EmpClass, &row.ProjectID, &row.DeptName,
		&row.PIUsername, &row.PIFullName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get directory row by employee number: %w", err)
	}

	return &row, nil
}

func scanDirectoryRows(rows pgx.Rows) ([]directory.Row, error) {
	var result []directory.Row
	for rows.Next() {
		var row directory.Row
		err := rows.Scan(
			&row.StaffEmpID, &row.StaffUsername, &row.EmpClass, &row.ProjectID, &row.DeptName,
			&row.PIUsername, &row.PIFullName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read directory rows: %w", err)
	}

	return result, nil
}
