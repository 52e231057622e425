package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
)

type fakeDirectoryRepo struct {
	rows []directory.Row
	pis  []directory.PI
}

func (r *fakeDirectoryRepo) ListByPI(_ context.Context, piUsername string) ([]directory.Row, error) {
	var out []directory.Row
	for _, row := range r.rows {
		if row.PIUsername == piUsername {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeDirectoryRepo) ListPIs(_ context.Context) ([]directory.PI, error) {
	return r.pis, nil
}

func (r *fakeDirectoryRepo) GetByEmployeeNumber(_ context.Context, employeeNumber string) (*directory.Row, error) {
	for _, row := range r.rows {
		if row.StaffEmpID == employeeNumber {
			return &row, nil
		}
	}
	return nil, nil
}

func TestDirectoryService_StaffForPI_FoldsProjectRows(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDirectoryRepo{
		rows: []directory.Row{
			{StaffEmpID: "E001", StaffUsername: "alice", EmpClass: "RS", ProjectID: "P-100", DeptName: "Genomics", PIUsername: "drsmith"},
			{StaffEmpID: "E001", StaffUsername: "alice", EmpClass: "RS", ProjectID: "P-200", DeptName: "Genomics", PIUsername: "drsmith"},
			{StaffEmpID: "E001", StaffUsername: "alice", EmpClass: "RS", ProjectID: "P-300", DeptName: "Proteomics", PIUsername: "drsmith"},
			{StaffEmpID: "E002", StaffUsername: "bob", EmpClass: "RA", ProjectID: "P-100", DeptName: "Genomics", PIUsername: "drsmith"},
		},
	}
	service := NewDirectoryService(repo)

	staff, err := service.StaffForPI(ctx, "drsmith")

	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "E001", staff[0].EmployeeNumber)
	assert.Equal(t, "alice", staff[0].Username)
	require.Len(t, staff[0].Projects, 3)
	assert.Equal(t, "P-100", staff[0].Projects[0].ProjectCode)
	assert.Equal(t, "P-300", staff[0].Projects[2].ProjectCode)
	assert.Equal(t, "Proteomics", staff[0].Projects[2].Department)
	require.Len(t, staff[1].Projects, 1)
}

func TestDirectoryService_StaffForPI_UnknownPI(t *testing.T) {
	ctx := context.Background()
	service := NewDirectoryService(&fakeDirectoryRepo{})

	staff, err := service.StaffForPI(ctx, "nobody")

	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestDirectoryService_ProfileByEmployeeNumber_NotFound(t *testing.T) {
	ctx := context.Background()
	service := NewDirectoryService(&fakeDirectoryRepo{})

	_, err := service.ProfileByEmployeeNumber(ctx, "E999")

	assert.True(t, errors.Is(err, directory.ErrEmployeeNotFound))
}

func TestDirectoryService_ProfileByEmployeeNumber_Found(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDirectoryRepo{
		rows: []directory.Row{
			{StaffEmpID: "E001", StaffUsername: "alice", EmpClass: "RS", ProjectID: "P-100"},
		},
	}
	service := NewDirectoryService(repo)

	profile, err := service.ProfileByEmployeeNumber(ctx, "E001")

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "RS", profile.EmpClass)
}
