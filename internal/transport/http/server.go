package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthyideas/internal/auth"
	"healthyideas/internal/config"
	"healthyideas/internal/database"
	"healthyideas/internal/handler"
	"healthyideas/internal/repository"
	"healthyideas/internal/service"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// 3. Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	userService := service.NewUserService(userRepo)
	ideaService := service.NewIdeaService(ideaRepo, userRepo)
	commentService := service.NewCommentService(commentRepo)
	likeService := service.NewLikeService(likeRepo)
	profileService := service.NewProfileService(profileRepo)
	seedService := service.NewSeedService(ideaRepo, userRepo)

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenMaxAge)*time.Second)

	var mediaHandler *handler.MediaHandler
	mediaService, err := service.NewMediaService(context.Background(), cfg)
	if err != nil {
		log.Printf("Media uploads disabled: %v", err)
	} else {
		mediaHandler = handler.NewMediaHandler(mediaService)
	}

	// 4. Build router
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, tokens),
		IdeaHandler:    handler.NewIdeaHandler(ideaService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		MediaHandler:   mediaHandler,
		SeedHandler:    handler.NewSeedHandler(seedService),
		Tokens:         tokens,
	})

	server := &stdhttp.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Start and wait for shutdown signal
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Printf("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
