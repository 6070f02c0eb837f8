package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"healthyideas/internal/model"
)

type ideaRepository struct {
	db *sqlx.DB
}

func NewIdeaRepository(db *sqlx.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

// Create inserts a new idea. The id is generated here.
func (r *ideaRepository) Create(ctx context.Context, idea *model.Idea) error {
	idea.ID = uuid.NewString()

	query := `
		INSERT INTO ideas (id, title, image_url, description, concise_content, category, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		idea.ID,
		idea.Title,
		idea.ImageURL,
		idea.Description,
		idea.ConciseContent,
		idea.Category,
		idea.OwnerID,
	).Scan(&idea.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert idea: %w", err)
	}

	return nil
}

// GetByID retrieves a single idea.
func (r *ideaRepository) GetByID(ctx context.Context, id string) (*model.Idea, error) {
	query := `
		SELECT id, title, image_url, description, concise_content, category, owner_id, created_at
		FROM ideas
		WHERE id = $1
	`

	var idea model.Idea
	err := r.db.GetContext(ctx, &idea, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return &idea, nil
}

// List returns ideas newest first. An empty category means all
// categories. With withAuthor the owner's id/email are joined in.
func (r *ideaRepository) List(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error) {
	if !withAuthor {
		query := `
			SELECT id, title, image_url, description, concise_content, category, owner_id, created_at
			FROM ideas
			WHERE ($1 = '' OR category = $1)
			ORDER BY created_at DESC, id DESC
		`
		ideas := []model.Idea{}
		if err := r.db.SelectContext(ctx, &ideas, query, category); err != nil {
			return nil, fmt.Errorf("failed to list ideas: %w", err)
		}
		return ideas, nil
	}

	query := `
		SELECT i.id, i.title, i.image_url, i.description, i.concise_content, i.category, i.owner_id, i.created_at,
		       u.id AS "author.id", u.email AS "author.email"
		FROM ideas i
		LEFT JOIN users u ON u.id = i.owner_id
		WHERE ($1 = '' OR i.category = $1)
		ORDER BY i.created_at DESC, i.id DESC
	`

	type ideaRow struct {
		ID             string         `db:"id"`
		Title          string         `db:"title"`
		ImageURL       string         `db:"image_url"`
		Description    string         `db:"description"`
		ConciseContent string         `db:"concise_content"`
		Category       string         `db:"category"`
		OwnerID        string         `db:"owner_id"`
		CreatedAt      time.Time      `db:"created_at"`
		AuthorID       sql.NullString `db:"author.id"`
		AuthorEmail    sql.NullString `db:"author.email"`
	}

	var rows []ideaRow
	if err := r.db.SelectContext(ctx, &rows, query, category); err != nil {
		return nil, fmt.Errorf("failed to list ideas with authors: %w", err)
	}

	ideas := make([]model.Idea, len(rows))
	for i, row := range rows {
		ideas[i] = model.Idea{
			ID:             row.ID,
			Title:          row.Title,
			ImageURL:       row.ImageURL,
			Description:    row.Description,
			ConciseContent: row.ConciseContent,
			Category:       row.Category,
			OwnerID:        row.OwnerID,
			CreatedAt:      row.CreatedAt,
		}
		if row.AuthorID.Valid {
			ideas[i].Author = &model.AuthorSummary{
				ID:    row.AuthorID.String,
				Email: row.AuthorEmail.String,
			}
		}
	}

	return ideas, nil
}

// Update replaces the mutable fields of an idea.
func (r *ideaRepository) Update(ctx context.Context, idea *model.Idea) error {
	query := `
		UPDATE ideas
		SET title = $1, image_url = $2, description = $3, concise_content = $4, category = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		idea.Title,
		idea.ImageURL,
		idea.Description,
		idea.ConciseContent,
		idea.Category,
		idea.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.ErrIdeaNotFound
	}

	return nil
}

// Delete removes an idea. Comments and likes referencing it are left
// in place; references are by identifier only.
func (r *ideaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return model.ErrIdeaNotFound
	}

	return nil
}

// Count returns the total number of ideas.
func (r *ideaRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ideas`); err != nil {
		return 0, fmt.Errorf("failed to count ideas: %w", err)
	}
	return count, nil
}
