package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"healthyideas/internal/httputil"
	"healthyideas/internal/model"
	"healthyideas/internal/service"
	"healthyideas/internal/transport/http/middleware"
	"healthyideas/internal/validation"
)

// CommentHandler groups comment endpoints.
type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles GET /comments?ideaId=&page=&pageSize=
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ideaID := r.URL.Query().Get("ideaId")
	if ideaID == "" {
		httputil.WriteBadRequest(w, "ideaId is required")
		return
	}

	page := parsePositiveInt(r.URL.Query().Get("page"), model.DefaultCommentPage)
	pageSize := parsePositiveInt(r.URL.Query().Get("pageSize"), model.DefaultCommentPageSize)

	result, err := h.commentService.ListByIdea(r.Context(), ideaID, page, pageSize)
	if err != nil {
		log.Printf("[ERROR] List comments handler: idea=%s err=%v", ideaID, err)
		httputil.WriteInternalError(w, "Failed to fetch comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// Create handles POST /comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), identity.UserID, identity.Email, &req)
	if err != nil {
		if ve, ok := validation.AsError(err); ok {
			httputil.WriteBadRequest(w, ve.Message)
			return
		}
		log.Printf("[ERROR] Create comment handler: user=%s idea=%s err=%v", identity.UserID, req.IdeaID, err)
		httputil.WriteInternalError(w, "Failed to create comment")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// Delete handles DELETE /comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "id")

	err := h.commentService.Delete(r.Context(), commentID, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "You can only delete your own comments")
		default:
			log.Printf("[ERROR] Delete comment handler: user=%s comment=%s err=%v", identity.UserID, commentID, err)
			httputil.WriteInternalError(w, "Failed to delete comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Comment deleted successfully",
	})
}

// parsePositiveInt falls back to def on absent, malformed, or
// non-positive values.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
