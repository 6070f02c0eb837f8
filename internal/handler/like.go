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

// LikeHandler groups like endpoints.
type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// List handles GET /likes?ideaId=
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	ideaID := r.URL.Query().Get("ideaId")
	if ideaID == "" {
		httputil.WriteBadRequest(w, "ideaId is required")
		return
	}

	likes, err := h.likeService.ListByIdea(r.Context(), ideaID)
	if err != nil {
		log.Printf("[ERROR] List likes handler: idea=%s err=%v", ideaID, err)
		httputil.WriteInternalError(w, "Failed to fetch likes")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likes)
}

// Create handles POST /likes
// One like per user per idea; duplicates conflict.
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	like, err := h.likeService.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		if errors.Is(err, model.ErrAlreadyLiked) {
			httputil.WriteConflict(w, "Already liked")
			return
		}
		log.Printf("[ERROR] Create like handler: user=%s idea=%s err=%v", identity.UserID, req.IdeaID, err)
		httputil.WriteInternalError(w, "Failed to create like")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, like)
}
