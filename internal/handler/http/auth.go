package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	LoginHR(w http.ResponseWriter, r *http.Request)
	LoginPI(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// LoginHR implements AuthHandler.
func (h *authHandlerImpl) LoginHR(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.LoginHR(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "HR login successful", result)
}

// LoginPI implements AuthHandler.
func (h *authHandlerImpl) LoginPI(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.LoginPI(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PI login successful", result)
}
