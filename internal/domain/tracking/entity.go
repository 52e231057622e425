package tracking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is the (month, year) unit over which requests, submissions and
// reports are scoped.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Key is the canonical "month-year" form used to key the state tables.
func (p Period) Key() string {
	return fmt.Sprintf("%d-%d", p.Month, p.Year)
}

// Bounds returns the first and last calendar date of the period.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// ParsePeriodKey parses a "month-year" key back into a Period.
func ParsePeriodKey(key string) (Period, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period key %q", key)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period key %q: %w", key, err)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period key %q: %w", key, err)
	}
	return Period{Month: month, Year: year}, nil
}

// Status is the derived submission state of one (PI, period) key.
type Status string

const (
	// StatusNone means HR has not requested data and nothing was submitted
	StatusNone Status = "none"
	// StatusRequested means an open HR request exists with no submission yet
	StatusRequested Status = "requested"
	// StatusPending means the PI submitted an empty staff list
	StatusPending Status = "pending"
	// StatusComplete means the PI submitted at least one employee entry
	StatusComplete Status = "complete"
)

// RequestRecord is one open HR data request for a (PI, period) key.
type RequestRecord struct {
	ID          string    `json:"id"`
	PIUsername  string    `json:"piUsername"`
	Period      Period    `json:"period"`
	RequestedAt time.Time `json:"requestedAt"`
}

// SubmissionRecord is the frozen snapshot a PI submitted for a (PI, period)
// key. It is never mutated, only overwritten wholesale by a resubmission.
type SubmissionRecord struct {
	PIUsername  string          `json:"piUsername"`
	Period      Period          `json:"period"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Users       []EmployeeEntry `json:"users"`
}

// EmployeeEntry is one employee's statistics inside a submission snapshot.
type EmployeeEntry struct {
	Username          string            `json:"username"`
	MonthlyStatistics SubmissionMetrics `json:"monthlyStatistics"`
}

// SubmissionMetrics carries the only number HR consumes from a snapshot.
type SubmissionMetrics struct {
	TotalDays int `json:"totalDays"`
}

// Derive computes the read-time status from the presence of a request and a
// submission for the same key. An open request wins over an older
// submission: re-requesting a period puts the PI back on the hook even
// though the prior snapshot stays retrievable until overwritten.
func Derive(hasRequest bool, submission *SubmissionRecord) Status {
	if hasRequest {
		return StatusRequested
	}
	if submission != nil {
		if len(submission.Users) > 0 {
			return StatusComplete
		}
		return StatusPending
	}
	return StatusNone
}
