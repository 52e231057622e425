package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetByEmployeeNumber(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	directorySvc directory.DirectoryService
}

func NewProfileHandler(directorySvc directory.DirectoryService) ProfileHandler {
	return &profileHandlerImpl{directorySvc: directorySvc}
}

// GetByEmployeeNumber implements ProfileHandler.
func (h *profileHandlerImpl) GetByEmployeeNumber(w http.ResponseWriter, r *http.Request) {
	employeeNumber := chi.URLParam(r, "employeeNumber")
	if employeeNumber == "" {
		response.BadRequest(w, "Employee number is required", nil)
		return
	}

	profile, err := h.directorySvc.ProfileByEmployeeNumber(r.Context(), employeeNumber)
	if err != nil {
		slog.Error("Failed to look up profile", "employeeNumber", employeeNumber, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update implements ProfileHandler. Profiles come from the staff directory
// view and cannot be edited here.
func (h *profileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	response.MethodNotAllowed(w, "Profiles are managed by the staff directory")
}
