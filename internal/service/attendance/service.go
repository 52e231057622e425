package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
	}
}

// Summarize implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, employeeNumbers []string, start, end time.Time) (map[string]attendance.MonthlyStatistics, error) {
	byEmployee, err := s.RecordsByEmployee(ctx, employeeNumbers, start, end)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]attendance.MonthlyStatistics, len(employeeNumbers))
	for _, employeeNumber := range employeeNumbers {
		stats[employeeNumber] = attendance.Statistics(byEmployee[employeeNumber])
	}

	return stats, nil
}

// RecordsByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordsByEmployee(ctx context.Context, employeeNumbers []string, start, end time.Time) (map[string][]attendance.Record, error) {
	records, err := s.attendanceRepo.ListByEmployees(ctx, employeeNumbers, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	byEmployee := make(map[string][]attendance.Record, len(employeeNumbers))
	for _, rec := range records {
		byEmployee[rec.EmployeeNumber] = append(byEmployee[rec.EmployeeNumber], rec)
	}

	return byEmployee, nil
}

// ActiveFieldTripsByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ActiveFieldTripsByEmployee(ctx context.Context, employeeNumbers []string) (map[string]bool, error) {
	trips, err := s.attendanceRepo.ListActiveFieldTrips(ctx, employeeNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch field trips: %w", err)
	}

	active := make(map[string]bool, len(trips))
	for _, trip := range trips {
		active[trip.EmployeeNumber] = true
	}

	return active, nil
}
