package service

import (
	"context"
	"fmt"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
	"healthyideas/internal/validation"
)

// LikeService handles like creation and listing.
type LikeService struct {
	repo repository.LikeRepository
}

func NewLikeService(repo repository.LikeRepository) *LikeService {
	return &LikeService{repo: repo}
}

// ListByIdea returns all likes for an idea.
func (s *LikeService) ListByIdea(ctx context.Context, ideaID string) ([]model.Like, error) {
	return s.repo.ListByIdea(ctx, ideaID)
}

// Create records a like. The pre-check gives the common duplicate a
// fast answer, but two concurrent requests can both pass it; the
// database unique index is the arbiter and the repository reports the
// loser as model.ErrAlreadyLiked, which is surfaced unchanged.
func (s *LikeService) Create(ctx context.Context, ownerID string, req *model.CreateLikeRequest) (*model.Like, error) {
	if err := validation.ValidateLike(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByIdeaAndOwner(ctx, req.IdeaID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if exists {
		return nil, model.ErrAlreadyLiked
	}

	like := &model.Like{
		IdeaID:  req.IdeaID,
		OwnerID: ownerID,
	}

	if err := s.repo.Create(ctx, like); err != nil {
		return nil, err
	}

	return like, nil
}
