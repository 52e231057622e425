package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

type fakeDirectorySvc struct {
	staff map[string][]directory.StaffProfile
	pis   []directory.PI
}

func (f *fakeDirectorySvc) StaffForPI(_ context.Context, piUsername string) ([]directory.StaffProfile, error) {
	return f.staff[piUsername], nil
}

func (f *fakeDirectorySvc) AllPIs(_ context.Context) ([]directory.PI, error) {
	return f.pis, nil
}

func (f *fakeDirectorySvc) ProfileByEmployeeNumber(_ context.Context, employeeNumber string) (directory.StaffProfile, error) {
	for _, profiles := range f.staff {
		for _, p := range profiles {
			if p.EmployeeNumber == employeeNumber {
				return p, nil
			}
		}
	}
	return directory.StaffProfile{}, directory.ErrEmployeeNotFound
}

type fakeAttendanceSvc struct {
	stats map[string]attendance.MonthlyStatistics
}

func (f *fakeAttendanceSvc) Summarize(_ context.Context, employeeNumbers []string, _, _ time.Time) (map[string]attendance.MonthlyStatistics, error) {
	out := make(map[string]attendance.MonthlyStatistics, len(employeeNumbers))
	for _, n := range employeeNumbers {
		out[n] = f.stats[n]
	}
	return out, nil
}

func (f *fakeAttendanceSvc) RecordsByEmployee(_ context.Context, _ []string, _, _ time.Time) (map[string][]attendance.Record, error) {
	return map[string][]attendance.Record{}, nil
}

func (f *fakeAttendanceSvc) ActiveFieldTripsByEmployee(_ context.Context, _ []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func newTestTrackingService() (*TrackingServiceImpl, *StateTable) {
	state := NewStateTable()
	directorySvc := &fakeDirectorySvc{
		staff: map[string][]directory.StaffProfile{
			"drsmith": {
				{EmployeeNumber: "E001", Username: "alice"},
				{EmployeeNumber: "E002", Username: "bob"},
			},
		},
		pis: []directory.PI{
			{Username: "drsmith", FullName: "Dr. Smith"},
			{Username: "drjones", FullName: "Dr. Jones"},
		},
	}
	attendanceSvc := &fakeAttendanceSvc{
		stats: map[string]attendance.MonthlyStatistics{
			"E001": {TotalDays: 20, FullDays: 18, HalfDays: 1, NotCheckedOut: 1},
			"E002": {TotalDays: 15, FullDays: 15},
		},
	}
	return NewTrackingService(state, directorySvc, attendanceSvc), state
}

var march = tracking.Period{Month: 3, Year: 2024}

func TestTrackingService_Submit_WithoutRequest(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	err := service.Submit(ctx, "drsmith", march)

	assert.True(t, errors.Is(err, tracking.ErrNoActiveRequest))
}

func TestTrackingService_RequestThenSubmit(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	count, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"},
		Month:       3,
		Year:        2024,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	statuses, err := service.StatusForAll(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusRequested, statuses["drsmith"].Status)
	assert.Equal(t, tracking.StatusNone, statuses["drjones"].Status)

	err = service.Submit(ctx, "drsmith", march)
	require.NoError(t, err)

	statuses, err = service.StatusForAll(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusComplete, statuses["drsmith"].Status)

	submission, err := service.Submission(ctx, "drsmith", march)
	require.NoError(t, err)
	require.NotNil(t, submission)
	require.Len(t, submission.Users, 2)
	assert.Equal(t, "alice", submission.Users[0].Username)
	assert.Equal(t, 20, submission.Users[0].MonthlyStatistics.TotalDays)
}

func TestTrackingService_Submit_ConsumesRequest(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	_, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)
	require.NoError(t, service.Submit(ctx, "drsmith", march))

	// The request was consumed, so a second submit needs a fresh one
	err = service.Submit(ctx, "drsmith", march)
	assert.True(t, errors.Is(err, tracking.ErrNoActiveRequest))
}

func TestTrackingService_ReRequest_ResetsStatusKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	_, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)
	require.NoError(t, service.Submit(ctx, "drsmith", march))

	// HR asks again for the same period
	_, err = service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)

	statuses, err := service.StatusForAll(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusRequested, statuses["drsmith"].Status)

	// The previous snapshot stays readable until the resubmission lands
	submission, err := service.Submission(ctx, "drsmith", march)
	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.Len(t, submission.Users, 2)
}

func TestTrackingService_Resubmission_Overwrites(t *testing.T) {
	ctx := context.Background()
	state := NewStateTable()
	directorySvc := &fakeDirectorySvc{
		staff: map[string][]directory.StaffProfile{
			"drsmith": {{EmployeeNumber: "E001", Username: "alice"}},
		},
		pis: []directory.PI{{Username: "drsmith", FullName: "Dr. Smith"}},
	}
	attendanceSvc := &fakeAttendanceSvc{
		stats: map[string]attendance.MonthlyStatistics{"E001": {TotalDays: 10}},
	}
	service := NewTrackingService(state, directorySvc, attendanceSvc)

	_, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)
	require.NoError(t, service.Submit(ctx, "drsmith", march))

	// Attendance changed between submissions
	attendanceSvc.stats["E001"] = attendance.MonthlyStatistics{TotalDays: 12}

	_, err = service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)
	require.NoError(t, service.Submit(ctx, "drsmith", march))

	submission, err := service.Submission(ctx, "drsmith", march)
	require.NoError(t, err)
	require.NotNil(t, submission)
	require.Len(t, submission.Users, 1)
	assert.Equal(t, 12, submission.Users[0].MonthlyStatistics.TotalDays)
}

func TestTrackingService_Submit_EmptyStaffStillRecords(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	_, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drjones"}, Month: 3, Year: 2024,
	})
	require.NoError(t, err)

	err = service.Submit(ctx, "drjones", march)
	require.NoError(t, err)

	submission, err := service.Submission(ctx, "drjones", march)
	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.Empty(t, submission.Users)

	// An empty snapshot reads as pending, not complete
	statuses, err := service.StatusForAll(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, tracking.StatusPending, statuses["drjones"].Status)
}

func TestTrackingService_ListPendingForPI_Sorted(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	for _, p := range []tracking.Period{
		{Month: 5, Year: 2024},
		{Month: 1, Year: 2024},
		{Month: 11, Year: 2023},
	} {
		_, err := service.RequestData(ctx, tracking.RequestDataRequest{
			PIUsernames: []string{"drsmith"}, Month: p.Month, Year: p.Year,
		})
		require.NoError(t, err)
	}

	pending, err := service.ListPendingForPI(ctx, "drsmith")

	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, tracking.Period{Month: 11, Year: 2023}, pending[0])
	assert.Equal(t, tracking.Period{Month: 1, Year: 2024}, pending[1])
	assert.Equal(t, tracking.Period{Month: 5, Year: 2024}, pending[2])
}

func TestTrackingService_RequestData_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestTrackingService()

	_, err := service.RequestData(ctx, tracking.RequestDataRequest{
		PIUsernames: []string{"drsmith"}, Month: 13, Year: 2024,
	})

	assert.Error(t, err)
}

func TestDerive_StatusTransitions(t *testing.T) {
	empty := &tracking.SubmissionRecord{}
	filled := &tracking.SubmissionRecord{Users: []tracking.EmployeeEntry{{Username: "alice"}}}

	assert.Equal(t, tracking.StatusNone, tracking.Derive(false, nil))
	assert.Equal(t, tracking.StatusRequested, tracking.Derive(true, nil))
	assert.Equal(t, tracking.StatusPending, tracking.Derive(false, empty))
	assert.Equal(t, tracking.StatusComplete, tracking.Derive(false, filled))
	// An open request outranks an old snapshot
	assert.Equal(t, tracking.StatusRequested, tracking.Derive(true, filled))
}
