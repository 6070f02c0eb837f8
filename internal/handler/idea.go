package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthyideas/internal/httputil"
	"healthyideas/internal/model"
	"healthyideas/internal/service"
	"healthyideas/internal/transport/http/middleware"
	"healthyideas/internal/validation"
)

// IdeaHandler groups idea endpoints.
type IdeaHandler struct {
	ideaService *service.IdeaService
}

func NewIdeaHandler(ideaService *service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// Categories handles GET /categories
// Serves the static category catalog.
func (h *IdeaHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, model.Categories)
}

// List handles GET /ideas?category=&load=author
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	withAuthor := r.URL.Query().Get("load") == "author"

	ideas, err := h.ideaService.List(r.Context(), category, withAuthor)
	if err != nil {
		log.Printf("[ERROR] List ideas handler: category=%q err=%v", category, err)
		httputil.WriteInternalError(w, "Failed to fetch ideas")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ideas)
}

// GetByID handles GET /ideas/{id}?load=author
func (h *IdeaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "id")
	withAuthor := r.URL.Query().Get("load") == "author"

	idea, err := h.ideaService.GetByID(r.Context(), ideaID, withAuthor)
	if err != nil {
		if errors.Is(err, model.ErrIdeaNotFound) {
			httputil.WriteNotFound(w, "Idea not found")
			return
		}
		log.Printf("[ERROR] Get idea handler: idea=%s err=%v", ideaID, err)
		httputil.WriteInternalError(w, "Failed to fetch idea")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, idea)
}

// Create handles POST /ideas
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	idea, err := h.ideaService.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		log.Printf("[ERROR] Create idea handler: user=%s err=%v", identity.UserID, err)
		httputil.WriteInternalError(w, "Failed to create idea")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, idea)
}

// Update handles PATCH /ideas/{id}
// Only the owner may update; a missing idea is not found before any
// ownership verdict.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	ideaID := chi.URLParam(r, "id")

	var req model.IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	idea, err := h.ideaService.Update(r.Context(), ideaID, identity.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrIdeaNotFound):
			httputil.WriteNotFound(w, "Idea not found")
		case errors.Is(err, model.ErrNotIdeaOwner):
			httputil.WriteForbidden(w, "You can only update your own ideas")
		default:
			if ve, ok := validation.AsError(err); ok {
				httputil.WriteBadRequest(w, ve.Message)
				return
			}
			log.Printf("[ERROR] Update idea handler: user=%s idea=%s err=%v", identity.UserID, ideaID, err)
			httputil.WriteInternalError(w, "Failed to update idea")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, idea)
}

// Delete handles DELETE /ideas/{id}
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	ideaID := chi.URLParam(r, "id")

	err := h.ideaService.Delete(r.Context(), ideaID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrIdeaNotFound):
			httputil.WriteNotFound(w, "Idea not found")
		case errors.Is(err, model.ErrNotIdeaOwner):
			httputil.WriteForbidden(w, "You can only delete your own ideas")
		default:
			log.Printf("[ERROR] Delete idea handler: user=%s idea=%s err=%v", identity.UserID, ideaID, err)
			httputil.WriteInternalError(w, "Failed to delete idea")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Idea deleted successfully",
	})
}
