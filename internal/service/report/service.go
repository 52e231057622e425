package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/report"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

type ReportServiceImpl struct {
	calendarSvc   calendar.CalendarService
	attendanceSvc attendance.AttendanceService
	directorySvc  directory.DirectoryService
	trackingSvc   tracking.TrackingService
	now           func() time.Time
}

func NewReportService(
	calendarSvc calendar.CalendarService,
	attendanceSvc attendance.AttendanceService,
	directorySvc directory.DirectoryService,
	trackingSvc tracking.TrackingService,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		calendarSvc:   calendarSvc,
		attendanceSvc: attendanceSvc,
		directorySvc:  directorySvc,
		trackingSvc:   trackingSvc,
		now:           time.Now,
	}
}

// BuildCombinedReport implements report.ReportService. Present days come
// straight from the stored submission snapshots; the attendance store is not
// consulted.
func (s *ReportServiceImpl) BuildCombinedReport(ctx context.Context, piUsernames []string, period tracking.Period) (report.CombinedReport, error) {
	start, end := period.Bounds()

	workingDays, err := s.calendarSvc.WorkingDaysUpTo(ctx, start, end, s.now())
	if err != nil {
		return report.CombinedReport{}, fmt.Errorf("failed to compute working days: %w", err)
	}

	var entries []tracking.EmployeeEntry
	for _, pi := range piUsernames {
		submission, err := s.trackingSvc.Submission(ctx, pi, period)
		if err != nil {
			return report.CombinedReport{}, err
		}
		if submission == nil {
			// A PI that never submitted is an empty contribution, not an error
			continue
		}
		entries = append(entries, submission.Users...)
	}

	if len(entries) == 0 {
		return report.CombinedReport{}, report.ErrNoSubmissionData
	}

	rows := make([]report.CombinedRow, 0, len(entries))
	for _, entry := range entries {
		presentDays := float64(entry.MonthlyStatistics.TotalDays)
		absentDays := math.Max(0, float64(workingDays)-presentDays)
		rows = append(rows, report.CombinedRow{
			Name:        entry.Username,
			WorkingDays: workingDays,
			PresentDays: roundOneDecimal(presentDays),
			AbsentDays:  roundOneDecimal(absentDays),
		})
	}

	return report.CombinedReport{
		Period:      period,
		WorkingDays: workingDays,
		Rows:        rows,
	}, nil
}

// BuildLiveReport implements report.ReportService. Unlike the combined
// report it aggregates the attendance store directly, and present days are
// the distinct-date count.
func (s *ReportServiceImpl) BuildLiveReport(ctx context.Context, piUsername string, period tracking.Period) (report.LiveReport, error) {
	staff, err := s.directorySvc.StaffForPI(ctx, piUsername)
	if err != nil {
		return report.LiveReport{}, err
	}
	if len(staff) == 0 {
		return report.LiveReport{}, directory.ErrNoStaffFound
	}

	employeeNumbers := employeeNumbersOf(staff)
	start, end := period.Bounds()

	// The record fetch and the working-day count are independent reads
	var (
		byEmployee  map[string][]attendance.Record
		workingDays int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byEmployee, err = s.attendanceSvc.RecordsByEmployee(gctx, employeeNumbers, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		workingDays, err = s.calendarSvc.WorkingDaysUpTo(gctx, start, end, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return report.LiveReport{}, err
	}

	rows := make([]report.LiveRow, 0, len(staff))
	for _, profile := range staff {
		presentDays := attendance.DistinctPresentDays(byEmployee[profile.EmployeeNumber])
		rows = append(rows, report.LiveRow{
			Username:    profile.Username,
			WorkingDays: workingDays,
			PresentDays: presentDays,
			AbsentDays:  max(0, workingDays-presentDays),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Username < rows[j].Username
	})

	return report.LiveReport{
		PIUsername:  piUsername,
		Period:      period,
		WorkingDays: workingDays,
		Rows:        rows,
	}, nil
}

// PISummary implements report.ReportService.
func (s *ReportServiceImpl) PISummary(ctx context.Context, piUsername string, period tracking.Period) (report.PISummary, error) {
	staff, err := s.directorySvc.StaffForPI(ctx, piUsername)
	if err != nil {
		return report.PISummary{}, err
	}

	summary := report.PISummary{
		PIUsername: piUsername,
		Period:     period,
		Users:      []report.PISummaryUser{},
	}
	if len(staff) == 0 {
		return summary, nil
	}

	employeeNumbers := employeeNumbersOf(staff)
	start, end := period.Bounds()

	var (
		byEmployee  map[string][]attendance.Record
		workingDays int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byEmployee, err = s.attendanceSvc.RecordsByEmployee(gctx, employeeNumbers, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		workingDays, err = s.calendarSvc.WorkingDaysUpTo(gctx, start, end, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return report.PISummary{}, err
	}

	summary.WorkingDays = workingDays
	for _, profile := range staff {
		records := byEmployee[profile.EmployeeNumber]
		presentDays := attendance.DistinctPresentDays(records)
		summary.Users = append(summary.Users, report.PISummaryUser{
			Username:    profile.Username,
			EmployeeID:  profile.EmployeeNumber,
			WorkingDays: workingDays,
			PresentDays: presentDays,
			AbsentDays:  max(0, workingDays-presentDays),
			Attendances: recordViews(records),
		})
	}

	sort.Slice(summary.Users, func(i, j int) bool {
		return summary.Users[i].Username < summary.Users[j].Username
	})

	return summary, nil
}

// PIDetail implements report.ReportService.
func (s *ReportServiceImpl) PIDetail(ctx context.Context, piUsername string, period tracking.Period) (report.PIDetail, error) {
	staff, err := s.directorySvc.StaffForPI(ctx, piUsername)
	if err != nil {
		return report.PIDetail{}, err
	}

	detail := report.PIDetail{
		Period: period,
		Users:  []report.PIDetailUser{},
	}
	if len(staff) == 0 {
		return detail, nil
	}

	employeeNumbers := employeeNumbersOf(staff)
	start, end := period.Bounds()

	// Attendance records and field-trip flags are independent reads
	var (
		byEmployee map[string][]attendance.Record
		fieldTrips map[string]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byEmployee, err = s.attendanceSvc.RecordsByEmployee(gctx, employeeNumbers, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		fieldTrips, err = s.attendanceSvc.ActiveFieldTripsByEmployee(gctx, employeeNumbers)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.PIDetail{}, err
	}

	for _, profile := range staff {
		records := byEmployee[profile.EmployeeNumber]
		detail.Users = append(detail.Users, report.PIDetailUser{
			EmployeeNumber:     profile.EmployeeNumber,
			Username:           profile.Username,
			EmpClass:           profile.EmpClass,
			Projects:           profile.Projects,
			HasActiveFieldTrip: fieldTrips[profile.EmployeeNumber],
			MonthlyStatistics:  attendance.Statistics(records),
			Attendances:        recordViews(records),
		})
	}

	detail.TotalUsers = len(detail.Users)
	return detail, nil
}

func employeeNumbersOf(staff []directory.StaffProfile) []string {
	numbers := make([]string, 0, len(staff))
	for _, profile := range staff {
		numbers = append(numbers, profile.EmployeeNumber)
	}
	return numbers
}

func recordViews(records []attendance.Record) []attendance.RecordView {
	views := make([]attendance.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, recordView(rec))
	}
	return views
}

func recordView(rec attendance.Record) attendance.RecordView {
	view := attendance.RecordView{
		Date:           rec.Date.Format("2006-01-02"),
		CheckinTime:    rec.CheckinTime.Format(time.RFC3339),
		SessionType:    rec.SessionType,
		AttendanceType: rec.AttendanceType,
		IsFullDay:      rec.IsFullDay(),
		IsHalfDay:      rec.IsHalfDay(),
		IsCheckedOut:   rec.IsCheckedOut(),
	}
	if rec.CheckoutTime != nil {
		checkout := rec.CheckoutTime.Format(time.RFC3339)
		view.CheckoutTime = &checkout
	}

	view.Location = &attendance.LocationView{
		TakenLocation: rec.TakenLocation,
		Latitude:      rec.Latitude,
		Longitude:     rec.Longitude,
		County:        rec.County,
		State:         rec.State,
		Postcode:      rec.Postcode,
		Address:       recordAddress(rec),
	}

	if rec.PhotoURL != nil {
		view.Photo = &attendance.PhotoView{URL: *rec.PhotoURL}
	}
	if rec.AudioURL != nil {
		view.Audio = &attendance.AudioView{URL: *rec.AudioURL, Duration: rec.AudioDuration}
	}

	return view
}

// recordAddress prefers the stored address and otherwise assembles one from
// the geocoded parts.
func recordAddress(rec attendance.Record) *string {
	if rec.LocationAddress != nil && *rec.LocationAddress != "" {
		return rec.LocationAddress
	}

	var parts []string
	for _, part := range []*string{rec.County, rec.State, rec.Postcode} {
		if part != nil && *part != "" {
			parts = append(parts, *part)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	address := strings.Join(parts, ", ")
	return &address
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
