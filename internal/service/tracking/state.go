package tracking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
)

// StateTable owns the volatile request/submission maps keyed by
// (PI username, period). A single mutex guards both tables so a submit can
// store the snapshot and consume the request atomically. The raw maps are
// never handed out; callers only get the transition operations.
//
// Nothing here survives a restart. That is deliberate: requests and
// submissions are ephemeral and HR simply re-requests after a redeploy.
type StateTable struct {
	mu          sync.Mutex
	requests    map[string]map[string]tracking.RequestRecord
	submissions map[string]map[string]tracking.SubmissionRecord
	now         func() time.Time
}

func NewStateTable() *StateTable {
	return &StateTable{
		requests:    make(map[string]map[string]tracking.RequestRecord),
		submissions: make(map[string]map[string]tracking.SubmissionRecord),
		now:         time.Now,
	}
}

// OpenRequest creates or refreshes the request record for one key.
// Re-requesting the same key just moves the timestamp; last write wins.
func (t *StateTable) OpenRequest(piUsername string, period tracking.Period) tracking.RequestRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := tracking.RequestRecord{
		ID:          uuid.NewString(),
		PIUsername:  piUsername,
		Period:      period,
		RequestedAt: t.now(),
	}

	if t.requests[piUsername] == nil {
		t.requests[piUsername] = make(map[string]tracking.RequestRecord)
	}
	t.requests[piUsername][period.Key()] = rec
	return rec
}

// HasOpenRequest reports whether an unconsumed request exists for the key.
func (t *StateTable) HasOpenRequest(piUsername string, period tracking.Period) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.requests[piUsername][period.Key()]
	return ok
}

// RecordSubmission stores the snapshot and consumes the open request in one
// step. Returns false without storing anything when no request is open.
func (t *StateTable) RecordSubmission(piUsername string, period tracking.Period, users []tracking.EmployeeEntry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := period.Key()
	if _, ok := t.requests[piUsername][key]; !ok {
		return false
	}

	if t.submissions[piUsername] == nil {
		t.submissions[piUsername] = make(map[string]tracking.SubmissionRecord)
	}
	t.submissions[piUsername][key] = tracking.SubmissionRecord{
		PIUsername:  piUsername,
		Period:      period,
		SubmittedAt: t.now(),
		Users:       users,
	}
	delete(t.requests[piUsername], key)
	return true
}

// Submission returns a copy of the stored snapshot, nil when none exists.
func (t *StateTable) Submission(piUsername string, period tracking.Period) *tracking.SubmissionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.submissions[piUsername][period.Key()]
	if !ok {
		return nil
	}
	return &rec
}

// Status derives the state of one key from the presence of a request and a
// submission.
func (t *StateTable) Status(piUsername string, period tracking.Period) tracking.Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := period.Key()
	_, hasRequest := t.requests[piUsername][key]
	var submission *tracking.SubmissionRecord
	if rec, ok := t.submissions[piUsername][key]; ok {
		submission = &rec
	}
	return tracking.Derive(hasRequest, submission)
}

// OpenPeriods lists the periods with an unconsumed request for one PI.
func (t *StateTable) OpenPeriods(piUsername string) []tracking.Period {
	t.mu.Lock()
	defer t.mu.Unlock()

	periods := make([]tracking.Period, 0, len(t.requests[piUsername]))
	for _, rec := range t.requests[piUsername] {
		periods = append(periods, rec.Period)
	}
	return periods
}
