package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"healthyideas/internal/httputil"
	"healthyideas/internal/model"
	"healthyideas/internal/service"
	"healthyideas/internal/transport/http/middleware"
	"healthyideas/internal/validation"
)

// ProfileHandler groups profile endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetByOwner handles GET /profiles?ownerId=
func (h *ProfileHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		httputil.WriteBadRequest(w, "ownerId is required")
		return
	}

	profile, err := h.profileService.GetByOwner(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			httputil.WriteNotFound(w, "Profile not found")
			return
		}
		log.Printf("[ERROR] Get profile handler: owner=%s err=%v", ownerID, err)
		httputil.WriteInternalError(w, "Failed to fetch profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// Create handles POST /profiles
// At most one profile per account; duplicates conflict.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.profileService.Create(r.Context(), identity.UserID, identity.Email, &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		if errors.Is(err, model.ErrProfileExists) {
			httputil.WriteConflict(w, "Profile already exists")
			return
		}
		log.Printf("[ERROR] Create profile handler: user=%s err=%v", identity.UserID, err)
		httputil.WriteInternalError(w, "Failed to create profile")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, profile)
}
