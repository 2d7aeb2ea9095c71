package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/thomas/portfolio-cms/internal/server/ratelimit"
	"github.com/thomas/portfolio-cms/internal/session"
	"github.com/thomas/portfolio-cms/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	guard      *session.Guard
	jwtService *JWTService
	limiter    *ratelimit.Limiter
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(guard *session.Guard, jwtService *JWTService, limiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		guard:      guard,
		jwtService: jwtService,
		limiter:    limiter,
	}
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success   bool          `json:"success"`
	Token     string        `json:"token"`
	User      *session.User `json:"user"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// SessionResponse reports the current session validity.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *session.User `json:"user,omitempty"`
	ExpiresAt     time.Time     `json:"expires_at,omitzero"`
}

// Login handles admin login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(extractClientID(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
		return
	}

	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result := h.guard.Login(req.Password)
	if !result.Success {
		// A missing secret is a deployment problem, not a bad credential.
		if errors.Is(result.Err, session.ErrNotConfigured) {
			writeError(w, http.StatusInternalServerError, result.Err.Error())
			return
		}
		writeError(w, http.StatusUnauthorized, result.Err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	state := h.guard.State()
	writeJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     token,
		User:      state.User,
		ExpiresAt: state.ExpiresAt,
	})
}

// Logout handles admin logout requests. Logout is unconditional and
// idempotent, matching the guard contract.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.guard.Logout()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session reports whether the admin session is currently valid. An expired
// session is logged out as a side effect of the check.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if !h.guard.Check() {
		writeJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	state := h.guard.State()
	writeJSON(w, http.StatusOK, SessionResponse{
		Authenticated: true,
		User:          state.User,
		ExpiresAt:     state.ExpiresAt,
	})
}

// extractValidationErrors extracts validation error messages from validator
// errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}

// writeJSON and writeError mirror the Server response helpers for handlers
// that are not Server methods.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
