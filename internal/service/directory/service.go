package directory

import (
	"context"
	"fmt"

	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
)

type DirectoryServiceImpl struct {
	directoryRepo directory.DirectoryRepository
}

func NewDirectoryService(directoryRepo directory.DirectoryRepository) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{
		directoryRepo: directoryRepo,
	}
}

// StaffForPI implements directory.DirectoryService.
func (s *DirectoryServiceImpl) StaffForPI(ctx context.Context, piUsername string) ([]directory.StaffProfile, error) {
	rows, err := s.directoryRepo.ListByPI(ctx, piUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff for PI %s: %w", piUsername, err)
	}

	return directory.GroupRows(rows), nil
}

// AllPIs implements directory.DirectoryService.
func (s *DirectoryServiceImpl) AllPIs(ctx context.Context) ([]directory.PI, error) {
	pis, err := s.directoryRepo.ListPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PI list: %w", err)
	}

	return pis, nil
}

// ProfileByEmployeeNumber implements directory.DirectoryService.
func (s *DirectoryServiceImpl) ProfileByEmployeeNumber(ctx context.Context, employeeNumber string) (directory.StaffProfile, error) {
	row, err := s.directoryRepo.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return directory.StaffProfile{}, fmt.Errorf("failed to look up employee %s: %w", employeeNumber, err)
	}
	if row == nil {
		return directory.StaffProfile{}, directory.ErrEmployeeNotFound
	}

	return directory.StaffProfile{
		EmployeeNumber: row.StaffEmpID,
		Username:       row.StaffUsername,
		EmpClass:       row.EmpClass,
	}, nil
}
