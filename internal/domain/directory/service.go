package directory

import (
	"context"
)

// DirectoryService resolves PI membership and staff attributes.
type DirectoryService interface {
	// StaffForPI folds the PI's directory rows into one profile per employee
	StaffForPI(ctx context.Context, piUsername string) ([]StaffProfile, error)

	// AllPIs returns every PI in the directory, sorted ascending by username
	AllPIs(ctx context.Context) ([]PI, error)

	// ProfileByEmployeeNumber looks up a single employee's profile fields
	ProfileByEmployeeNumber(ctx context.Context, employeeNumber string) (StaffProfile, error)
}

// GroupRows folds directory rows into profiles, one per employee number, in
// first-seen order. Employee-level fields are taken from the first row for
// that employee; every row contributes a project assignment.
func GroupRows(rows []Row) []StaffProfile {
	index := make(map[string]int, len(rows))
	profiles := make([]StaffProfile, 0, len(rows))

	for _, row := range rows {
		i, ok := index[row.StaffEmpID]
		if !ok {
			i = len(profiles)
			index[row.StaffEmpID] = i
			profiles = append(profiles, StaffProfile{
				EmployeeNumber: row.StaffEmpID,
				Username:       row.StaffUsername,
				EmpClass:       row.EmpClass,
				Projects:       []ProjectAssignment{},
			})
		}
		profiles[i].Projects = append(profiles[i].Projects, ProjectAssignment{
			ProjectCode: row.ProjectID,
			Department:  row.DeptName,
		})
	}
	return profiles
}
