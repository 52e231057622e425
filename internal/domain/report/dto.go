package report

import (
	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

// CombinedRow is one employee line of the HR combined report, built from a
// stored submission snapshot. Present and absent days carry one decimal.
type CombinedRow struct {
	Name        string  `json:"name"`
	WorkingDays int     `json:"workingDays"`
	PresentDays float64 `json:"presentDays"`
	AbsentDays  float64 `json:"absentDays"`
}

// CombinedReport is the multi-PI report HR downloads for a period.
type CombinedReport struct {
	Period      tracking.Period `json:"period"`
	WorkingDays int             `json:"workingDays"`
	Rows        []CombinedRow   `json:"rows"`
}

// LiveRow is one employee line of the live single-PI report, aggregated from
// the attendance store directly instead of a submission.
type LiveRow struct {
	Username    string `json:"username"`
	WorkingDays int    `json:"workingDays"`
	PresentDays int    `json:"presentDays"`
	AbsentDays  int    `json:"absentDays"`
}

// LiveReport is the direct per-PI report that bypasses submission state.
type LiveReport struct {
	PIUsername  string          `json:"piUsername"`
	Period      tracking.Period `json:"period"`
	WorkingDays int             `json:"workingDays"`
	Rows        []LiveRow       `json:"rows"`
}

// PISummaryUser is one employee in the HR per-PI live view: report numbers
// plus the raw records behind them.
type PISummaryUser struct {
	Username    string                  `json:"username"`
	EmployeeID  string                  `json:"employeeId"`
	WorkingDays int                     `json:"workingDays"`
	PresentDays int                     `json:"presentDays"`
	AbsentDays  int                     `json:"absentDays"`
	Attendances []attendance.RecordView `json:"attendances"`
}

type PISummary struct {
	PIUsername  string          `json:"piUsername"`
	Period      tracking.Period `json:"period"`
	WorkingDays int             `json:"totalWorkingDays"`
	Users       []PISummaryUser `json:"users"`
}

// PIDetailUser is one employee in the PI's own monthly view: profile,
// submission-path statistics, field-trip flag and full record detail.
type PIDetailUser struct {
	EmployeeNumber     string                        `json:"employeeNumber"`
	Username           string                        `json:"username"`
	EmpClass           string                        `json:"empClass"`
	Projects           []directory.ProjectAssignment `json:"projects"`
	HasActiveFieldTrip bool                          `json:"hasActiveFieldTrip"`
	MonthlyStatistics  attendance.MonthlyStatistics  `json:"monthlyStatistics"`
	Attendances        []attendance.RecordView       `json:"attendances"`
}

type PIDetail struct {
	Period     tracking.Period `json:"period"`
	TotalUsers int             `json:"totalUsers"`
	Users      []PIDetailUser  `json:"users"`
}
