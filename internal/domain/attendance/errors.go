package attendance

import "errors"

// Attendance domain errors
var (
	ErrStoreUnavailable = errors.New("attendance store is unavailable")
)
