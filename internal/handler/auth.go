package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"healthyideas/internal/auth"
	"healthyideas/internal/httputil"
	"healthyideas/internal/model"
	"healthyideas/internal/service"
	"healthyideas/internal/validation"
)

// AuthHandler groups account and session endpoints.
type AuthHandler struct {
	userService *service.UserService
	tokens      *auth.Manager
}

func NewAuthHandler(userService *service.UserService, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
	}
}

// Register handles POST /accounts
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		if errors.Is(err, model.ErrEmailExists) {
			httputil.WriteConflict(w, "Email already registered")
			return
		}
		log.Printf("[ERROR] Register handler: err=%v", err)
		httputil.WriteInternalError(w, "Registration failed")
		return
	}

	token, err := h.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] Register handler: issue token: user=%s err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Registration failed")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, model.AuthResponse{
		User:        user,
		AccessToken: token,
	})
}

// Login handles POST /sessions
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Invalid email or password")
			return
		}
		log.Printf("[ERROR] Login handler: err=%v", err)
		httputil.WriteInternalError(w, "Login failed")
		return
	}

	token, err := h.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] Login handler: issue token: user=%s err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Login failed")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.AuthResponse{
		User:        user,
		AccessToken: token,
	})
}

// Logout handles GET /sessions/current
// There is no server-side revocation; the endpoint confirms the
// credential is valid and the client discards the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
