package model

import (
	"errors"
	"time"
)

// Like marks that an account liked an idea. At most one like may exist
// per (idea, owner) pair; the database enforces this.
type Like struct {
	ID        string    `db:"id" json:"id"`
	IdeaID    string    `db:"idea_id" json:"idea_id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateLikeRequest is the request body for liking an idea.
type CreateLikeRequest struct {
	IdeaID string `json:"idea_id"`
}

// ErrAlreadyLiked is returned when the (idea, owner) pair already has a like.
var ErrAlreadyLiked = errors.New("already liked")
