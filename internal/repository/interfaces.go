package repository

import (
	"context"

	"healthyideas/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *model.Idea) error
	GetByID(ctx context.Context, id string) (*model.Idea, error)
	// List returns ideas newest first, optionally filtered by category
	// and optionally with the author summary joined in.
	List(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error)
	Update(ctx context.Context, idea *model.Idea) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	// ListByIdea returns comments for an idea newest first, using
	// offset/limit pagination.
	ListByIdea(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error)
	CountByIdea(ctx context.Context, ideaID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type LikeRepository interface {
	// Create inserts a like. A duplicate (idea, owner) pair returns
	// model.ErrAlreadyLiked, backed by the database unique index.
	Create(ctx context.Context, like *model.Like) error
	ListByIdea(ctx context.Context, ideaID string) ([]model.Like, error)
	ExistsByIdeaAndOwner(ctx context.Context, ideaID, ownerID string) (bool, error)
}

type ProfileRepository interface {
	// Create inserts a profile. A second profile for the same owner
	// returns model.ErrProfileExists, backed by the unique index.
	Create(ctx context.Context, profile *model.Profile) error
	GetByOwnerID(ctx context.Context, ownerID string) (*model.Profile, error)
}
