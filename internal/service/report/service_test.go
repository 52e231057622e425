package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/report"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

type fakeCalendarSvc struct {
	workingDays int
}

func (f *fakeCalendarSvc) WorkingDays(_ context.Context, _, _ time.Time) (int, error) {
	return f.workingDays, nil
}

func (f *fakeCalendarSvc) WorkingDaysUpTo(_ context.Context, _, _, _ time.Time) (int, error) {
	return f.workingDays, nil
}

func (f *fakeCalendarSvc) SeedWeekends(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func (f *fakeCalendarSvc) AddHoliday(_ context.Context, _ calendar.AddHolidayRequest) error {
	return nil
}

type fakeAttendanceSvc struct {
	records map[string][]attendance.Record
	trips   map[string]bool
}

func (f *fakeAttendanceSvc) Summarize(_ context.Context, employeeNumbers []string, _, _ time.Time) (map[string]attendance.MonthlyStatistics, error) {
	out := make(map[string]attendance.MonthlyStatistics, len(employeeNumbers))
	for _, n := range employeeNumbers {
		out[n] = attendance.Statistics(f.records[n])
	}
	return out, nil
}

func (f *fakeAttendanceSvc) RecordsByEmployee(_ context.Context, employeeNumbers []string, _, _ time.Time) (map[string][]attendance.Record, error) {
	out := make(map[string][]attendance.Record, len(employeeNumbers))
	for _, n := range employeeNumbers {
		if recs, ok := f.records[n]; ok {
			out[n] = recs
		}
	}
	return out, nil
}

func (f *fakeAttendanceSvc) ActiveFieldTripsByEmployee(_ context.Context, _ []string) (map[string]bool, error) {
	return f.trips, nil
}

type fakeDirectorySvc struct {
	staff map[string][]directory.StaffProfile
}

func (f *fakeDirectorySvc) StaffForPI(_ context.Context, piUsername string) ([]directory.StaffProfile, error) {
	return f.staff[piUsername], nil
}

func (f *fakeDirectorySvc) AllPIs(_ context.Context) ([]directory.PI, error) {
	return nil, nil
}

func (f *fakeDirectorySvc) ProfileByEmployeeNumber(_ context.Context, _ string) (directory.StaffProfile, error) {
	return directory.StaffProfile{}, directory.ErrEmployeeNotFound
}

type fakeTrackingSvc struct {
	submissions map[string]*tracking.SubmissionRecord
}

func (f *fakeTrackingSvc) RequestData(_ context.Context, _ tracking.RequestDataRequest) (int, error) {
	return 0, nil
}

func (f *fakeTrackingSvc) Submit(_ context.Context, _ string, _ tracking.Period) error {
	return nil
}

func (f *fakeTrackingSvc) StatusForAll(_ context.Context, _ tracking.Period) (map[string]tracking.PIStatus, error) {
	return nil, nil
}

func (f *fakeTrackingSvc) ListPendingForPI(_ context.Context, _ string) ([]tracking.Period, error) {
	return nil, nil
}

func (f *fakeTrackingSvc) Submission(_ context.Context, piUsername string, _ tracking.Period) (*tracking.SubmissionRecord, error) {
	return f.submissions[piUsername], nil
}

func attendanceRecord(employeeNumber string, day int) attendance.Record {
	date := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	checkout := date.Add(17 * time.Hour)
	return attendance.Record{
		EmployeeNumber: employeeNumber,
		Date:           date,
		CheckinTime:    date.Add(8 * time.Hour),
		CheckoutTime:   &checkout,
		AttendanceType: attendance.TypeFullDay,
	}
}

var march = tracking.Period{Month: 3, Year: 2024}

func newTestReportService(
	calendarSvc calendar.CalendarService,
	attendanceSvc attendance.AttendanceService,
	directorySvc directory.DirectoryService,
	trackingSvc tracking.TrackingService,
) *ReportServiceImpl {
	service := NewReportService(calendarSvc, attendanceSvc, directorySvc, trackingSvc)
	service.now = func() time.Time {
		return time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func TestReportService_BuildCombinedReport_SkipsMissingSubmissions(t *testing.T) {
	ctx := context.Background()
	trackingSvc := &fakeTrackingSvc{
		submissions: map[string]*tracking.SubmissionRecord{
			"drsmith": {
				PIUsername: "drsmith",
				Period:     march,
				Users: []tracking.EmployeeEntry{
					{Username: "alice", MonthlyStatistics: tracking.SubmissionMetrics{TotalDays: 18}},
					{Username: "bob", MonthlyStatistics: tracking.SubmissionMetrics{TotalDays: 21}},
				},
			},
		},
	}
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		&fakeAttendanceSvc{},
		&fakeDirectorySvc{},
		trackingSvc,
	)

	rep, err := service.BuildCombinedReport(ctx, []string{"drsmith", "drjones"}, march)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 21, rep.WorkingDays)
	assert.Equal(t, "alice", rep.Rows[0].Name)
	assert.Equal(t, 18.0, rep.Rows[0].PresentDays)
	assert.Equal(t, 3.0, rep.Rows[0].AbsentDays)
	// Present can exceed working days; absence clamps at zero
	assert.Equal(t, 21.0, rep.Rows[1].PresentDays)
	assert.Equal(t, 0.0, rep.Rows[1].AbsentDays)
}

func TestReportService_BuildCombinedReport_AbsenceNeverNegative(t *testing.T) {
	ctx := context.Background()
	trackingSvc := &fakeTrackingSvc{
		submissions: map[string]*tracking.SubmissionRecord{
			"drsmith": {
				Users: []tracking.EmployeeEntry{
					{Username: "alice", MonthlyStatistics: tracking.SubmissionMetrics{TotalDays: 30}},
				},
			},
		},
	}
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		&fakeAttendanceSvc{},
		&fakeDirectorySvc{},
		trackingSvc,
	)

	rep, err := service.BuildCombinedReport(ctx, []string{"drsmith"}, march)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 0.0, rep.Rows[0].AbsentDays)
}

func TestReportService_BuildCombinedReport_NoSubmissions(t *testing.T) {
	ctx := context.Background()
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		&fakeAttendanceSvc{},
		&fakeDirectorySvc{},
		&fakeTrackingSvc{submissions: map[string]*tracking.SubmissionRecord{}},
	)

	_, err := service.BuildCombinedReport(ctx, []string{"drsmith", "drjones"}, march)

	assert.True(t, errors.Is(err, report.ErrNoSubmissionData))
}

func TestReportService_BuildLiveReport_SortedWithDistinctDates(t *testing.T) {
	ctx := context.Background()
	directorySvc := &fakeDirectorySvc{
		staff: map[string][]directory.StaffProfile{
			"drsmith": {
				{EmployeeNumber: "E002", Username: "zara"},
				{EmployeeNumber: "E001", Username: "alice"},
			},
		},
	}
	attendanceSvc := &fakeAttendanceSvc{
		records: map[string][]attendance.Record{
			// Two records on the same date count as one present day
			"E001": {attendanceRecord("E001", 1), attendanceRecord("E001", 1), attendanceRecord("E001", 2)},
			"E002": {attendanceRecord("E002", 1)},
		},
	}
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		attendanceSvc,
		directorySvc,
		&fakeTrackingSvc{},
	)

	rep, err := service.BuildLiveReport(ctx, "drsmith", march)

	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "alice", rep.Rows[0].Username)
	assert.Equal(t, 2, rep.Rows[0].PresentDays)
	assert.Equal(t, 19, rep.Rows[0].AbsentDays)
	assert.Equal(t, "zara", rep.Rows[1].Username)
	assert.Equal(t, 1, rep.Rows[1].PresentDays)
}

func TestReportService_BuildLiveReport_NoStaff(t *testing.T) {
	ctx := context.Background()
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		&fakeAttendanceSvc{},
		&fakeDirectorySvc{},
		&fakeTrackingSvc{},
	)

	_, err := service.BuildLiveReport(ctx, "nobody", march)

	assert.True(t, errors.Is(err, directory.ErrNoStaffFound))
}

func TestReportService_PISummary_EmptyStaff(t *testing.T) {
	ctx := context.Background()
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		&fakeAttendanceSvc{},
		&fakeDirectorySvc{},
		&fakeTrackingSvc{},
	)

	summary, err := service.PISummary(ctx, "nobody", march)

	require.NoError(t, err)
	assert.Empty(t, summary.Users)
}

func TestReportService_PIDetail_FieldTripsAndStatistics(t *testing.T) {
	ctx := context.Background()
	directorySvc := &fakeDirectorySvc{
		staff: map[string][]directory.StaffProfile{
			"drsmith": {
				{EmployeeNumber: "E001", Username: "alice", EmpClass: "RS"},
				{EmployeeNumber: "E002", Username: "bob", EmpClass: "RA"},
			},
		},
	}
	attendanceSvc := &fakeAttendanceSvc{
		records: map[string][]attendance.Record{
			"E001": {attendanceRecord("E001", 1), attendanceRecord("E001", 2)},
		},
		trips: map[string]bool{"E002": true},
	}
	service := newTestReportService(
		&fakeCalendarSvc{workingDays: 21},
		attendanceSvc,
		directorySvc,
		&fakeTrackingSvc{},
	)

	detail, err := service.PIDetail(ctx, "drsmith", march)

	require.NoError(t, err)
	assert.Equal(t, 2, detail.TotalUsers)
	assert.Equal(t, 2, detail.Users[0].MonthlyStatistics.FullDays)
	assert.False(t, detail.Users[0].HasActiveFieldTrip)
	assert.True(t, detail.Users[1].HasActiveFieldTrip)
	assert.Len(t, detail.Users[0].Attendances, 2)
}
