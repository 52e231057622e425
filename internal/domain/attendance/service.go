package attendance

import (
	"context"
	"time"
)

// AttendanceService aggregates raw records into per-employee summaries.
// All methods are read-only and fail atomically on store errors.
type AttendanceService interface {
	// Summarize fetches records for the employees in [start, end] and computes
	// submission-path MonthlyStatistics per employee number
	Summarize(ctx context.Context, employeeNumbers []string, start, end time.Time) (map[string]MonthlyStatistics, error)

	// RecordsByEmployee fetches records in [start, end] partitioned by
	// employee number, each partition ordered by date ascending
	RecordsByEmployee(ctx context.Context, employeeNumbers []string, start, end time.Time) (map[string][]Record, error)

	// ActiveFieldTripsByEmployee reports which employees have at least one
	// active field trip
	ActiveFieldTripsByEmployee(ctx context.Context, employeeNumbers []string) (map[string]bool, error)
}

// Statistics computes the submission-path summary over one employee's records.
// The counters overlap: a half-day record with no checkout increments both
// HalfDays and NotCheckedOut, and TotalDays sums all three.
func Statistics(records []Record) MonthlyStatistics {
	var stats MonthlyStatistics
	for _, r := range records {
		if r.IsFullDay() {
			stats.FullDays++
		}
		if r.IsHalfDay() {
			stats.HalfDays++
		}
		if !r.IsCheckedOut() {
			stats.NotCheckedOut++
		}
	}
	stats.TotalDays = stats.FullDays + stats.HalfDays + stats.NotCheckedOut
	return stats
}

// DistinctPresentDays counts the distinct calendar dates covered by records.
// This is the live-report present count; unlike TotalDays it deduplicates
// multiple records on the same date.
func DistinctPresentDays(records []Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Date.Format("2006-01-02")] = struct{}{}
	}
	return len(seen)
}
