package service

import (
	"context"
	"fmt"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
	"healthyideas/internal/validation"
)

// CommentService handles comment creation, deletion and listing.
type CommentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// ListByIdea returns one page of comments plus the totals the client
// needs to render pagination. Out-of-range values fall back to the
// defaults (page 1, page size 4).
func (s *CommentService) ListByIdea(ctx context.Context, ideaID string, page, pageSize int) (*model.CommentListResponse, error) {
	if page < 1 {
		page = model.DefaultCommentPage
	}
	if pageSize < 1 {
		pageSize = model.DefaultCommentPageSize
	}

	offset := (page - 1) * pageSize

	comments, err := s.repo.ListByIdea(ctx, ideaID, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	totalCount, err := s.repo.CountByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	return &model.CommentListResponse{
		Comments:   comments,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Create validates the payload and persists a comment. The author's
// email from the verified token is denormalized onto the comment.
func (s *CommentService) Create(ctx context.Context, ownerID, email string, req *model.CreateCommentRequest) (*model.Comment, error) {
	if err := validation.ValidateComment(req); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		IdeaID:  req.IdeaID,
		Email:   email,
		Content: req.Content,
		OwnerID: ownerID,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment. Existence is checked before ownership, so
// a deleted comment reports not found even for non-owners.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.OwnerID != requesterID {
		return model.ErrNotCommentOwner
	}

	return s.repo.Delete(ctx, commentID)
}
