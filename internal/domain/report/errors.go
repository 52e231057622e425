package report

import "errors"

// Report domain errors
var (
	ErrNoSubmissionData = errors.New("no data has been submitted for the selected criteria")
)
