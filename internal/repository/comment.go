package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"healthyideas/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment. The id is generated here.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = uuid.NewString()

	query := `
		INSERT INTO comments (id, idea_id, email, content, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.ID,
		comment.IdeaID,
		comment.Email,
		comment.Content,
		comment.OwnerID,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a single comment.
func (r *commentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	query := `
		SELECT id, idea_id, email, content, owner_id, created_at
		FROM comments
		WHERE id = $1
	`

	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// ListByIdea returns a page of comments for an idea, newest first.
func (r *commentRepository) ListByIdea(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error) {
	query := `
		SELECT id, idea_id, email, content, owner_id, created_at
		FROM comments
		WHERE idea_id = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3
	`

	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, ideaID, offset, limit); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// CountByIdea returns the total number of comments for an idea.
func (r *commentRepository) CountByIdea(ctx context.Context, ideaID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE idea_id = $1`, ideaID); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// Delete removes a comment.
func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
