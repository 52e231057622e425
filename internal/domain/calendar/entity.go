package calendar

import (
	"time"
)

// Fact flags a single calendar date. A date with neither flag set (or with no
// row at all) counts as a working day.
type Fact struct {
	ID          string
	Date        time.Time
	Description *string
	IsHoliday   bool
	IsWeekend   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
