package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce/internal/pkg/metrics"
)

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	credentialService credential.CredentialService
}

func NewAuthHandler(credentialService credential.CredentialService) AuthHandler {
	return &AuthHandlerImpl{
		credentialService: credentialService,
	}
}

// SignUp implements AuthHandler.
func (a *AuthHandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credential.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SignUp decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.credentialService.SignUp(r.Context(), req)
	metrics.RecordAuth("signup", err)
	if err != nil {
		slog.Error("SignUp service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Account registered", "user_id", resp.UserID)
	response.Created(w, "Account registered", resp)
}

// SignIn implements AuthHandler.
func (a *AuthHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credential.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.credentialService.SignIn(r.Context(), req)
	metrics.RecordAuth("signin", err)
	if err != nil {
		slog.Warn("SignIn failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed in", resp)
}

// SignOut implements AuthHandler.
func (a *AuthHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "missing session")
		return
	}

	err := a.credentialService.SignOut(r.Context(), sessionID)
	metrics.RecordAuth("signout", err)
	if err != nil {
		slog.Error("SignOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed out", nil)
}

// Session implements AuthHandler.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "missing session")
		return
	}
	response.Success(w, credential.SessionResponse{UserID: caller.UserID})
}
