package report

import (
	"context"

	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

// ReportService composes attendance data into tabular reports. Working-day
// totals always use the current-date-capped variant so an in-progress month
// never counts future weekdays as absence.
type ReportService interface {
	// BuildCombinedReport flattens the stored submissions of the given PIs.
	// PIs without a submission contribute nothing; only an empty flattened
	// list is an error.
	BuildCombinedReport(ctx context.Context, piUsernames []string, period tracking.Period) (CombinedReport, error)

	// BuildLiveReport aggregates one PI's staff directly from the attendance
	// store, bypassing submission state
	BuildLiveReport(ctx context.Context, piUsername string, period tracking.Period) (LiveReport, error)

	// PISummary is the HR live view of one PI: report numbers per employee
	// plus the raw records behind them
	PISummary(ctx context.Context, piUsername string, period tracking.Period) (PISummary, error)

	// PIDetail is the PI's own monthly view: profiles, statistics,
	// field-trip flags and full record detail
	PIDetail(ctx context.Context, piUsername string, period tracking.Period) (PIDetail, error)
}
