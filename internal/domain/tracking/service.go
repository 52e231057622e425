package tracking

import (
	"context"
)

// TrackingService drives the request/submission state machine between HR and
// the PIs. All state is process-local and volatile; a restart clears it and
// HR simply re-requests.
type TrackingService interface {
	// RequestData opens (or refreshes) a data request for each PI in the list.
	// PIs are not validated against the directory here; unknown PIs surface
	// naturally as empty submissions later.
	RequestData(ctx context.Context, req RequestDataRequest) (int, error)

	// Submit builds a frozen snapshot of the PI's staff statistics for the
	// period and stores it, consuming the open request. Fails with
	// ErrNoActiveRequest when HR never asked for this period.
	Submit(ctx context.Context, piUsername string, period Period) error

	// StatusForAll derives the submission status of every PI in the
	// directory for the period
	StatusForAll(ctx context.Context, period Period) (map[string]PIStatus, error)

	// ListPendingForPI returns the periods with an open request for the PI,
	// the PI's notifications view
	ListPendingForPI(ctx context.Context, piUsername string) ([]Period, error)

	// Submission returns the stored snapshot for a key, nil when none exists
	Submission(ctx context.Context, piUsername string, period Period) (*SubmissionRecord, error)
}
