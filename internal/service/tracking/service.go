package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

type TrackingServiceImpl struct {
	state         *StateTable
	directorySvc  directory.DirectoryService
	attendanceSvc attendance.AttendanceService
}

func NewTrackingService(
	state *StateTable,
	directorySvc directory.DirectoryService,
	attendanceSvc attendance.AttendanceService,
) *TrackingServiceImpl {
	return &TrackingServiceImpl{
		state:         state,
		directorySvc:  directorySvc,
		attendanceSvc: attendanceSvc,
	}
}

// RequestData implements tracking.TrackingService. PIs are deliberately not
// validated against the directory; a bad username just never submits.
func (s *TrackingServiceImpl) RequestData(ctx context.Context, req tracking.RequestDataRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	period := req.Period()
	for _, pi := range req.PIUsernames {
		s.state.OpenRequest(pi, period)
	}

	slog.Info("HR data request opened", "period", period.Key(), "pi_count", len(req.PIUsernames))
	return len(req.PIUsernames), nil
}

// Submit implements tracking.TrackingService. The snapshot is computed here,
// at submission time, and frozen; later edits to attendance records do not
// leak into an already-submitted period.
func (s *TrackingServiceImpl) Submit(ctx context.Context, piUsername string, period tracking.Period) error {
	if !s.state.HasOpenRequest(piUsername, period) {
		return tracking.ErrNoActiveRequest
	}

	staff, err := s.directorySvc.StaffForPI(ctx, piUsername)
	if err != nil {
		return err
	}

	users := make([]tracking.EmployeeEntry, 0, len(staff))
	if len(staff) > 0 {
		employeeNumbers := make([]string, 0, len(staff))
		for _, profile := range staff {
			employeeNumbers = append(employeeNumbers, profile.EmployeeNumber)
		}

		start, end := period.Bounds()
		stats, err := s.attendanceSvc.Summarize(ctx, employeeNumbers, start, end)
		if err != nil {
			return err
		}

		for _, profile := range staff {
			users = append(users, tracking.EmployeeEntry{
				Username: profile.Username,
				MonthlyStatistics: tracking.SubmissionMetrics{
					TotalDays: stats[profile.EmployeeNumber].TotalDays,
				},
			})
		}
	}

	// The request may have been consumed by a concurrent submit between the
	// check above and here; RecordSubmission re-checks under the lock.
	if !s.state.RecordSubmission(piUsername, period, users) {
		return tracking.ErrNoActiveRequest
	}

	slog.Info("PI submission recorded", "pi", piUsername, "period", period.Key(), "employees", len(users))
	return nil
}

// StatusForAll implements tracking.TrackingService.
func (s *TrackingServiceImpl) StatusForAll(ctx context.Context, period tracking.Period) (map[string]tracking.PIStatus, error) {
	pis, err := s.directorySvc.AllPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve PI list: %w", err)
	}

	statuses := make(map[string]tracking.PIStatus, len(pis))
	for _, pi := range pis {
		statuses[pi.Username] = tracking.PIStatus{
			Status:   s.state.Status(pi.Username, period),
			FullName: pi.FullName,
		}
	}

	return statuses, nil
}

// ListPendingForPI implements tracking.TrackingService.
func (s *TrackingServiceImpl) ListPendingForPI(ctx context.Context, piUsername string) ([]tracking.Period, error) {
	periods := s.state.OpenPeriods(piUsername)

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year < periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})

	return periods, nil
}

// Submission implements tracking.TrackingService.
func (s *TrackingServiceImpl) Submission(ctx context.Context, piUsername string, period tracking.Period) (*tracking.SubmissionRecord, error) {
	return s.state.Submission(piUsername, period), nil
}
