package directory

import "errors"

// Directory domain errors
var (
	ErrNoStaffFound     = errors.New("no staff found for this PI")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrStoreUnavailable = errors.New("staff directory is unavailable")
)
