package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"healthyideas/internal/auth"
	"healthyideas/internal/handler"
	"healthyideas/internal/httputil"
	authmw "healthyideas/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	IdeaHandler    *handler.IdeaHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler
	ProfileHandler *handler.ProfileHandler
	MediaHandler   *handler.MediaHandler
	SeedHandler    *handler.SeedHandler
	Tokens         *auth.Manager
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Post("/accounts", cfg.AuthHandler.Register)
	r.Post("/sessions", cfg.AuthHandler.Login)

	r.Get("/categories", cfg.IdeaHandler.Categories)
	r.Get("/ideas", cfg.IdeaHandler.List)
	r.Get("/ideas/{id}", cfg.IdeaHandler.GetByID)
	r.Get("/comments", cfg.CommentHandler.List)
	r.Get("/likes", cfg.LikeHandler.List)
	r.Get("/profiles", cfg.ProfileHandler.GetByOwner)

	// Development seeding; no credentials because it only runs against
	// an empty catalog.
	r.Post("/dev/seed", cfg.SeedHandler.Seed)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(cfg.Tokens))

		r.Get("/sessions/current", cfg.AuthHandler.Logout)

		r.Post("/ideas", cfg.IdeaHandler.Create)
		r.Patch("/ideas/{id}", cfg.IdeaHandler.Update)
		r.Delete("/ideas/{id}", cfg.IdeaHandler.Delete)

		r.Post("/comments", cfg.CommentHandler.Create)
		r.Delete("/comments/{id}", cfg.CommentHandler.Delete)

		r.Post("/likes", cfg.LikeHandler.Create)

		r.Post("/profiles", cfg.ProfileHandler.Create)

		// Media uploads are only wired when object storage is configured
		if cfg.MediaHandler != nil {
			r.Post("/media", cfg.MediaHandler.Upload)
		}
	})

	return r
}
