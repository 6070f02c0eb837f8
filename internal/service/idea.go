package service

import (
	"context"
	"fmt"
	"log"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
	"healthyideas/internal/validation"
)

// IdeaService handles idea CRUD behind the ownership pipeline.
type IdeaService struct {
	repo     repository.IdeaRepository
	userRepo repository.UserRepository
}

func NewIdeaService(repo repository.IdeaRepository, userRepo repository.UserRepository) *IdeaService {
	return &IdeaService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// List returns ideas newest first, optionally filtered by category and
// with authors joined in.
func (s *IdeaService) List(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error) {
	return s.repo.List(ctx, category, withAuthor)
}

// GetByID retrieves a single idea, optionally with its author.
func (s *IdeaService) GetByID(ctx context.Context, ideaID string, withAuthor bool) (*model.Idea, error) {
	idea, err := s.repo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	if withAuthor {
		// Best effort: a missing author leaves the field empty rather
		// than failing the whole request.
		author, err := s.userRepo.GetByID(ctx, idea.OwnerID)
		if err == nil {
			idea.Author = &model.AuthorSummary{ID: author.ID, Email: author.Email}
		} else {
			log.Printf("[IdeaService] Failed to load author: idea=%s owner=%s err=%v", idea.ID, idea.OwnerID, err)
		}
	}

	return idea, nil
}

// Create validates the payload and persists a new idea for ownerID.
func (s *IdeaService) Create(ctx context.Context, ownerID string, req *model.IdeaRequest) (*model.Idea, error) {
	if err := validation.ValidateIdea(req); err != nil {
		return nil, err
	}

	idea := &model.Idea{
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		Description:    req.Description,
		ConciseContent: req.ConciseContent,
		Category:       req.Category,
		OwnerID:        ownerID,
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	return idea, nil
}

// Update replaces an idea's content. The checks are an ordered
// sequence: existence first (not found), then ownership (forbidden),
// then payload (bad request). The order is a contract; callers rely on
// a deleted idea reporting not found even for non-owners.
func (s *IdeaService) Update(ctx context.Context, ideaID, requesterID string, req *model.IdeaRequest) (*model.Idea, error) {
	idea, err := s.repo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	if idea.OwnerID != requesterID {
		return nil, model.ErrNotIdeaOwner
	}

	if err := validation.ValidateIdea(req); err != nil {
		return nil, err
	}

	idea.Title = req.Title
	idea.ImageURL = req.ImageURL
	idea.Description = req.Description
	idea.ConciseContent = req.ConciseContent
	idea.Category = req.Category

	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, err
	}

	return idea, nil
}

// Delete removes an idea. Same check order as Update. Comments and
// likes referencing the idea are intentionally left in place.
func (s *IdeaService) Delete(ctx context.Context, ideaID, requesterID string) error {
	idea, err := s.repo.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}

	if idea.OwnerID != requesterID {
		return model.ErrNotIdeaOwner
	}

	return s.repo.Delete(ctx, ideaID)
}
