package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	recordService record.RecordService
}

func NewReportHandler(recordService record.RecordService) ReportHandler {
	return &reportHandlerImpl{
		recordService: recordService,
	}
}

// Create implements ReportHandler.
func (h *reportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var req report.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode report request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recordService.CreateReport(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report created", created)
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var userID *string
	if v := r.URL.Query().Get("user_id"); v != "" {
		userID = &v
	}

	reports, err := h.recordService.ListReports(r.Context(), caller, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, reports, &response.Meta{TotalItems: int64(len(reports))})
}

// Get implements ReportHandler.
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	found, err := h.recordService.GetReport(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}
