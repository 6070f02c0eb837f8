package handler

import (
	"log"
	"net/http"

	"healthyideas/internal/httputil"
	"healthyideas/internal/service"
)

// SeedHandler exposes the development seeding endpoint.
type SeedHandler struct {
	seedService *service.SeedService
}

func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed handles POST /dev/seed
// Populates an empty database with starter ideas; refuses when any
// ideas already exist.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Run(r.Context())
	if err != nil {
		log.Printf("[ERROR] Seed handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to seed database")
		return
	}

	status := http.StatusCreated
	if result.Skipped {
		status = http.StatusOK
	}
	httputil.WriteJSON(w, status, result)
}
