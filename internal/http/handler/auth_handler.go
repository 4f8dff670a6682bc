package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/auth"
	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 401 {object} domain.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		case errors.Is(err, service.ErrAccountDisabled):
			respondWithError(w, http.StatusForbidden, "Account is disabled")
		default:
			h.logger.Error("login failed", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.UserDTO
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userCtx.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// API key callers carry a synthetic user id
			respondJSON(w, http.StatusOK, domain.UserDTO{
				ID:          userCtx.UserID.String(),
				Username:    userCtx.Username,
				DisplayName: userCtx.DisplayName,
				Role:        userCtx.Role,
			})
			return
		}
		h.logger.Error("failed to load user profile", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
