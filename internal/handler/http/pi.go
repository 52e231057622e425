package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rndpresence/presence-backend-go/internal/domain/report"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/response"
)

type PIHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Notifications(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type piHandlerImpl struct {
	trackingSvc tracking.TrackingService
	reportSvc   report.ReportService
}

func NewPIHandler(trackingSvc tracking.TrackingService, reportSvc report.ReportService) PIHandler {
	return &piHandlerImpl{
		trackingSvc: trackingSvc,
		reportSvc:   reportSvc,
	}
}

// Attendance implements PIHandler.
func (h *piHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	period, ok := periodFromQuery(w, r, false)
	if !ok {
		return
	}

	detail, err := h.reportSvc.PIDetail(r.Context(), identity.Username, period)
	if err != nil {
		slog.Error("Failed to build PI attendance view", "pi", identity.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Notifications implements PIHandler.
func (h *piHandlerImpl) Notifications(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	pending, err := h.trackingSvc.ListPendingForPI(r.Context(), identity.Username)
	if err != nil {
		slog.Error("Failed to list pending requests", "pi", identity.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// Submit implements PIHandler.
func (h *piHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req tracking.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode submit body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.trackingSvc.Submit(r.Context(), identity.Username, req.Period()); err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Attendance data submitted for %d-%d", req.Month, req.Year)
	response.SuccessWithMessage(w, message, nil)
}
