package tracking

import "errors"

// Tracking domain errors
var (
	ErrNoActiveRequest = errors.New("no active data request found from HR for this period")
)
