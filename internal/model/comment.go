package model

import (
	"errors"
	"time"
)

// Comment belongs to exactly one idea. The author's email is
// denormalized from the token claims at creation time.
type Comment struct {
	ID        string    `db:"id" json:"id"`
	IdeaID    string    `db:"idea_id" json:"idea_id"`
	Email     string    `db:"email" json:"email"`
	Content   string    `db:"content" json:"content"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateCommentRequest is the request body for creating a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
	IdeaID  string `json:"idea_id"`
}

// CommentListResponse is the paginated comment list response.
type CommentListResponse struct {
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// Comment constraints
const (
	MinCommentLength = 5

	DefaultCommentPage     = 1
	DefaultCommentPageSize = 4
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the owner of this comment")
)
