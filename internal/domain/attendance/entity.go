package attendance

import (
	"time"
)

// Day-type classification of a record
const (
	TypeFullDay = "FULL_DAY"
	TypeHalfDay = "HALF_DAY"
)

// Record is one per-employee, per-date presence observation. Downstream
// aggregation assumes at most one record per employee per date.
type Record struct {
	ID             string
	EmployeeNumber string
	Date           time.Time
	CheckinTime    time.Time
	CheckoutTime   *time.Time
	SessionType    string
	AttendanceType string

	TakenLocation   *string
	Latitude        *float64
	Longitude       *float64
	County          *string
	State           *string
	Postcode        *string
	LocationAddress *string

	PhotoURL      *string
	AudioURL      *string
	AudioDuration *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldTrip marks an employee as currently on an off-site assignment.
type FieldTrip struct {
	ID             string
	EmployeeNumber string
	IsActive       bool
	StartDate      time.Time
	EndDate        *time.Time
}

func (r Record) IsFullDay() bool {
	return r.AttendanceType == TypeFullDay
}

func (r Record) IsHalfDay() bool {
	return r.AttendanceType == TypeHalfDay
}

func (r Record) IsCheckedOut() bool {
	return r.CheckoutTime != nil
}
