package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/calendar"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/domain/report"
	"github.com/rndpresence/presence-backend-go/internal/domain/tracking"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/response"
	"github.com/rndpresence/presence-backend-go/internal/pkg/export"
)

type HRHandler interface {
	ListPIs(w http.ResponseWriter, r *http.Request)
	RequestData(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
	DownloadReportXLSX(w http.ResponseWriter, r *http.Request)
	PISummary(w http.ResponseWriter, r *http.Request)
	DownloadPIReport(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
}

type hrHandlerImpl struct {
	directorySvc directory.DirectoryService
	trackingSvc  tracking.TrackingService
	reportSvc    report.ReportService
	calendarSvc  calendar.CalendarService
}

func NewHRHandler(
	directorySvc directory.DirectoryService,
	trackingSvc tracking.TrackingService,
	reportSvc report.ReportService,
	calendarSvc calendar.CalendarService,
) HRHandler {
	return &hrHandlerImpl{
		directorySvc: directorySvc,
		trackingSvc:  trackingSvc,
		reportSvc:    reportSvc,
		calendarSvc:  calendarSvc,
	}
}

// ListPIs implements HRHandler.
func (h *hrHandlerImpl) ListPIs(w http.ResponseWriter, r *http.Request) {
	pis, err := h.directorySvc.AllPIs(r.Context())
	if err != nil {
		slog.Error("Failed to list PIs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pis)
}

// RequestData implements HRHandler.
func (h *hrHandlerImpl) RequestData(w http.ResponseWriter, r *http.Request) {
	var req tracking.RequestDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request-data body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	count, err := h.trackingSvc.RequestData(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Request sent to %d PIs for %s", count, req.Period().Key())
	response.SuccessWithMessage(w, message, nil)
}

// GetStatus implements HRHandler.
func (h *hrHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromQuery(w, r, true)
	if !ok {
		return
	}

	statuses, err := h.trackingSvc.StatusForAll(r.Context(), period)
	if err != nil {
		slog.Error("Failed to derive submission statuses", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statuses)
}

// DownloadReport implements HRHandler.
func (h *hrHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	piList, period, ok := reportQuery(w, r)
	if !ok {
		return
	}

	rep, err := h.reportSvc.BuildCombinedReport(r.Context(), piList, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fileName := combinedFileName(piList, period, "csv")
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	if err := export.WriteCombinedCSV(w, rep); err != nil {
		slog.Error("Failed to write combined CSV", "error", err)
	}
}

// DownloadReportXLSX implements HRHandler.
func (h *hrHandlerImpl) DownloadReportXLSX(w http.ResponseWriter, r *http.Request) {
	piList, period, ok := reportQuery(w, r)
	if !ok {
		return
	}

	rep, err := h.reportSvc.BuildCombinedReport(r.Context(), piList, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fileName := combinedFileName(piList, period, "xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	if err := export.WriteCombinedXLSX(w, rep); err != nil {
		slog.Error("Failed to write combined XLSX", "error", err)
	}
}

// PISummary implements HRHandler.
func (h *hrHandlerImpl) PISummary(w http.ResponseWriter, r *http.Request) {
	piUsername := chi.URLParam(r, "username")
	if piUsername == "" {
		response.BadRequest(w, "PI username is required", nil)
		return
	}

	period, ok := periodFromQuery(w, r, false)
	if !ok {
		return
	}

	summary, err := h.reportSvc.PISummary(r.Context(), piUsername, period)
	if err != nil {
		slog.Error("Failed to build PI summary", "pi", piUsername, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// DownloadPIReport implements HRHandler.
func (h *hrHandlerImpl) DownloadPIReport(w http.ResponseWriter, r *http.Request) {
	piUsername := chi.URLParam(r, "username")
	if piUsername == "" {
		response.BadRequest(w, "PI username is required", nil)
		return
	}

	period, ok := periodFromQuery(w, r, true)
	if !ok {
		return
	}

	rep, err := h.reportSvc.BuildLiveReport(r.Context(), piUsername, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	fileName := fmt.Sprintf("PI_%s_Report_%d_%d.csv", piUsername, period.Month, period.Year)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	if err := export.WriteLiveCSV(w, rep); err != nil {
		slog.Error("Failed to write PI CSV", "error", err)
	}
}

// AddHoliday implements HRHandler.
func (h *hrHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode holiday body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.calendarSvc.AddHoliday(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Holiday added: %s on %s", req.Description, req.Date)
	response.SuccessWithMessage(w, message, nil)
}

// periodFromQuery reads month/year query parameters. When required is false
// a missing pair falls back to the current month.
func periodFromQuery(w http.ResponseWriter, r *http.Request, required bool) (tracking.Period, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" || yearStr == "" {
		if required {
			response.BadRequest(w, "Month and year are required", nil)
			return tracking.Period{}, false
		}
		now := time.Now()
		return tracking.Period{Month: int(now.Month()), Year: now.Year()}, true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return tracking.Period{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return tracking.Period{}, false
	}

	return tracking.Period{Month: month, Year: year}, true
}

func reportQuery(w http.ResponseWriter, r *http.Request) ([]string, tracking.Period, bool) {
	piParam := r.URL.Query().Get("piUsernames")
	if piParam == "" {
		response.BadRequest(w, "Missing required parameters", nil)
		return nil, tracking.Period{}, false
	}

	period, ok := periodFromQuery(w, r, true)
	if !ok {
		return nil, tracking.Period{}, false
	}

	return strings.Split(piParam, ","), period, true
}

func combinedFileName(piList []string, period tracking.Period, ext string) string {
	if len(piList) > 1 {
		return fmt.Sprintf("Combined_Report_%d_%d.%s", period.Month, period.Year, ext)
	}
	return fmt.Sprintf("%s_Report_%d_%d.%s", piList[0], period.Month, period.Year, ext)
}
