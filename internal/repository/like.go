package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"healthyideas/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. The unique index on (idea_id, owner_id)
// decides races between concurrent likes; the loser gets
// model.ErrAlreadyLiked.
func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	like.ID = uuid.NewString()

	query := `
		INSERT INTO likes (id, idea_id, owner_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query, like.ID, like.IdeaID, like.OwnerID).Scan(&like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// ListByIdea returns all likes for an idea.
func (r *likeRepository) ListByIdea(ctx context.Context, ideaID string) ([]model.Like, error) {
	query := `
		SELECT id, idea_id, owner_id, created_at
		FROM likes
		WHERE idea_id = $1
		ORDER BY created_at DESC, id DESC
	`

	likes := []model.Like{}
	if err := r.db.SelectContext(ctx, &likes, query, ideaID); err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return likes, nil
}

// ExistsByIdeaAndOwner checks for an existing (idea, owner) like.
func (r *likeRepository) ExistsByIdeaAndOwner(ctx context.Context, ideaID, ownerID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE idea_id = $1 AND owner_id = $2)`, ideaID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}
