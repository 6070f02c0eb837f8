package service

import (
	"context"
	"fmt"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
	"healthyideas/internal/validation"
)

// ProfileService handles profile creation and lookup.
type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetByOwner retrieves the profile owned by an account.
func (s *ProfileService) GetByOwner(ctx context.Context, ownerID string) (*model.Profile, error) {
	return s.repo.GetByOwnerID(ctx, ownerID)
}

// Create validates the payload and persists the account's single
// profile. Payload validation runs before the uniqueness check; the
// unique index on owner_id settles concurrent creations and the
// repository reports the loser as model.ErrProfileExists.
func (s *ProfileService) Create(ctx context.Context, ownerID, email string, req *model.ProfileRequest) (*model.Profile, error) {
	if err := validation.ValidateProfile(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByOwnerID(ctx, ownerID); err == nil {
		return nil, model.ErrProfileExists
	} else if err != model.ErrProfileNotFound {
		return nil, fmt.Errorf("check profile: %w", err)
	}

	profile := &model.Profile{
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
		Gender:         req.Gender,
		Bio:            req.Bio,
		Years:          req.Years,
		More:           req.More,
		Email:          email,
		OwnerID:        ownerID,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
