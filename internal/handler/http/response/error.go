package response

import (
	"errors"
	"net/http"

	"github.com/rndpresence/presence-backend-go/internal/domain/attendance"
	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/report"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
	"github.com/rndpresence/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNotAPrincipalInvestigator):
		Forbidden(w, "No staff registered under this account")
	case errors.Is(err, auth.ErrIdentityProviderOffline):
		ServiceUnavailable(w, "Identity provider is unreachable")

	// Directory domain errors
	case errors.Is(err, directory.ErrNoStaffFound):
		NotFound(w, "No staff found for this PI")
	case errors.Is(err, directory.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, directory.ErrStoreUnavailable):
		ServiceUnavailable(w, "Staff directory is unavailable")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrStoreUnavailable):
		ServiceUnavailable(w, "Attendance store is unavailable")

	// Tracking domain errors
	case errors.Is(err, tracking.ErrNoActiveRequest):
		Unauthorized(w, "No active data request found from HR for this period")

	// Report domain errors
	case errors.Is(err, report.ErrNoSubmissionData):
		NotFound(w, "No data has been submitted for the selected criteria")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
