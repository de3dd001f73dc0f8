package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	recordService record.RecordService
}

func NewLeaveHandler(recordService record.RecordService) LeaveHandler {
	return &leaveHandlerImpl{
		recordService: recordService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode leave request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recordService.CreateLeaveRequest(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	var userID *string
	if v := r.URL.Query().Get("user_id"); v != "" {
		userID = &v
	}

	requests, err := h.recordService.ListLeaveRequests(r.Context(), caller, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, &response.Meta{TotalItems: int64(len(requests))})
}
