package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	recordService record.RecordService
}

func NewProfileHandler(recordService record.RecordService) ProfileHandler {
	return &profileHandlerImpl{
		recordService: recordService,
	}
}

// Create implements ProfileHandler.
func (h *profileHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req record.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode profile request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.recordService.CreateProfile(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create profile", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Profile created", profile)
}

// Get implements ProfileHandler.
func (h *profileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())

	profile, err := h.recordService.GetProfile(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// List implements ProfileHandler.
func (h *profileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.CallerFromContext(r.Context())
	ids := r.URL.Query()["id"]
	if len(ids) == 0 {
		response.BadRequest(w, "At least one id is required", map[string]string{"id": "id is required"})
		return
	}

	profiles, err := h.recordService.ListProfiles(r.Context(), caller, ids)
	if err != nil {
		slog.Error("Failed to list profiles", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, profiles, &response.Meta{TotalItems: int64(len(profiles))})
}
