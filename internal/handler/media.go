package handler

import (
	"errors"
	"log"
	"net/http"

	"healthyideas/internal/httputil"
	"healthyideas/internal/model"
	"healthyideas/internal/service"
	"healthyideas/internal/transport/http/middleware"
)

// MediaHandler exposes image upload for idea and profile pictures.
type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /media
// Accepts a multipart form with an "image" field, bounds the image,
// and returns the public URL for use in image_url / profile_picture.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(model.MaxImageSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteBadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	result, err := h.mediaService.UploadImage(r.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Image must be 5MB or smaller")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequestWithCode(w, model.CodeInvalidImageType, "Only JPEG, PNG, GIF, and WebP images are allowed")
		default:
			log.Printf("[ERROR] Upload media handler: user=%s err=%v", identity.UserID, err)
			httputil.WriteInternalError(w, "Failed to upload image")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, result)
}
