package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	recordService record.RecordService
}

func NewAttendanceHandler(recordService record.RecordService) AttendanceHandler {
	return &attendanceHandlerImpl{
		recordService: recordService,
	}
}

// Get implements AttendanceHandler. With user_id it is a point lookup that
// answers null when no row exists; without it every row for the date is
// listed.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())
	query := r.URL.Query()
	date := query.Get("date")

	if userID := query.Get("user_id"); userID != "" {
		rec, err := h.recordService.GetAttendance(r.Context(), caller, userID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, rec)
		return
	}

	records, err := h.recordService.ListAttendanceByDate(r.Context(), caller, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, records, &response.Meta{TotalItems: int64(len(records))})
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.recordService.CreateAttendance(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", rec)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.recordService.CheckOut(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", rec)
}
