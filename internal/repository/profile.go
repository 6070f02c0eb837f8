package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"healthyideas/internal/model"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a profile. The unique index on owner_id decides races
// between concurrent creations; the loser gets model.ErrProfileExists.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	profile.ID = uuid.NewString()

	query := `
		INSERT INTO profiles (id, username, profile_picture, gender, bio, years, more, email, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		profile.ID,
		profile.Username,
		profile.ProfilePicture,
		profile.Gender,
		profile.Bio,
		profile.Years,
		profile.More,
		profile.Email,
		profile.OwnerID,
	).Scan(&profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrProfileExists
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// GetByOwnerID retrieves the profile owned by an account.
func (r *profileRepository) GetByOwnerID(ctx context.Context, ownerID string) (*model.Profile, error) {
	query := `
		SELECT id, username, profile_picture, gender, bio, years, more, email, owner_id, created_at
		FROM profiles
		WHERE owner_id = $1
	`

	var profile model.Profile
	err := r.db.GetContext(ctx, &profile, query, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}
