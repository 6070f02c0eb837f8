package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthyideas/internal/model"
	"healthyideas/internal/validation"
)

// =============================================================================
// MOCK REPOSITORY
// =============================================================================

type mockCommentRepository struct {
	createFn      func(ctx context.Context, comment *model.Comment) error
	getByIDFn     func(ctx context.Context, id string) (*model.Comment, error)
	listByIdeaFn  func(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error)
	countByIdeaFn func(ctx context.Context, ideaID string) (int, error)
	deleteFn      func(ctx context.Context, id string) error

	deleteCalls int
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = "comment-1"
	comment.CreatedAt = time.Now()
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) ListByIdea(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error) {
	if m.listByIdeaFn != nil {
		return m.listByIdeaFn(ctx, ideaID, offset, limit)
	}
	return nil, nil
}

func (m *mockCommentRepository) CountByIdea(ctx context.Context, ideaID string) (int, error) {
	if m.countByIdeaFn != nil {
		return m.countByIdeaFn(ctx, ideaID)
	}
	return 0, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// fakeCommentStore backs pagination tests with a fixed slice.
func fakeCommentStore(total int) *mockCommentRepository {
	all := make([]model.Comment, total)
	for i := range all {
		all[i] = model.Comment{ID: "comment", IdeaID: "idea-1", Content: "nice idea!"}
	}
	return &mockCommentRepository{
		listByIdeaFn: func(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error) {
			if offset >= len(all) {
				return []model.Comment{}, nil
			}
			end := offset + limit
			if end > len(all) {
				end = len(all)
			}
			return all[offset:end], nil
		},
		countByIdeaFn: func(ctx context.Context, ideaID string) (int, error) {
			return len(all), nil
		},
	}
}

// =============================================================================
// PAGINATION TESTS
// =============================================================================

func TestCommentService_ListByIdea_Pagination(t *testing.T) {
	// 10 comments, page size 4: pages hold 4, 4, 2.
	svc := NewCommentService(fakeCommentStore(10))

	tests := []struct {
		page       int
		wantLen    int
		wantPages  int
		wantOnPage int
	}{
		{1, 4, 3, 1},
		{2, 4, 3, 2},
		{3, 2, 3, 3},
		{4, 0, 3, 4}, // past the end: empty page, same totals
	}

	for _, tt := range tests {
		result, err := svc.ListByIdea(context.Background(), "idea-1", tt.page, 4)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", tt.page, err)
		}
		if len(result.Comments) != tt.wantLen {
			t.Errorf("page %d: got %d comments, want %d", tt.page, len(result.Comments), tt.wantLen)
		}
		if result.TotalPages != tt.wantPages {
			t.Errorf("page %d: total_pages = %d, want %d", tt.page, result.TotalPages, tt.wantPages)
		}
		if result.TotalCount != 10 {
			t.Errorf("page %d: total_count = %d, want 10", tt.page, result.TotalCount)
		}
		if result.Page != tt.wantOnPage {
			t.Errorf("page %d: echoed page = %d", tt.page, result.Page)
		}
	}
}

func TestCommentService_ListByIdea_DefaultsOnBadInput(t *testing.T) {
	var gotOffset, gotLimit int
	mockRepo := &mockCommentRepository{
		listByIdeaFn: func(ctx context.Context, ideaID string, offset, limit int) ([]model.Comment, error) {
			gotOffset, gotLimit = offset, limit
			return []model.Comment{}, nil
		},
	}
	svc := NewCommentService(mockRepo)

	result, err := svc.ListByIdea(context.Background(), "idea-1", 0, -3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Page != model.DefaultCommentPage || result.PageSize != model.DefaultCommentPageSize {
		t.Errorf("page/pageSize = %d/%d, want defaults %d/%d",
			result.Page, result.PageSize, model.DefaultCommentPage, model.DefaultCommentPageSize)
	}
	if gotOffset != 0 || gotLimit != model.DefaultCommentPageSize {
		t.Errorf("repo got offset=%d limit=%d, want 0/%d", gotOffset, gotLimit, model.DefaultCommentPageSize)
	}
}

func TestCommentService_ListByIdea_EmptyIdea(t *testing.T) {
	svc := NewCommentService(fakeCommentStore(0))

	result, err := svc.ListByIdea(context.Background(), "idea-1", 1, 4)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.TotalCount != 0 || result.TotalPages != 0 {
		t.Errorf("totals = %d/%d, want 0/0 for an uncommented idea", result.TotalCount, result.TotalPages)
	}
}

// =============================================================================
// CREATE TESTS
// =============================================================================

func TestCommentService_Create_DenormalizesEmail(t *testing.T) {
	mockRepo := &mockCommentRepository{}
	svc := NewCommentService(mockRepo)

	comment, err := svc.Create(context.Background(), "user-1", "anna@example.com", &model.CreateCommentRequest{
		Content: "love this idea",
		IdeaID:  "idea-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if comment.Email != "anna@example.com" {
		t.Errorf("email = %q, want the token email copied onto the comment", comment.Email)
	}
	if comment.OwnerID != "user-1" {
		t.Errorf("owner = %q, want the requester", comment.OwnerID)
	}
	if comment.IdeaID != "idea-1" {
		t.Errorf("idea = %q, want %q", comment.IdeaID, "idea-1")
	}
}

func TestCommentService_Create_ValidationErrors(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{})

	_, err := svc.Create(context.Background(), "user-1", "a@example.com", &model.CreateCommentRequest{
		Content: "hey",
		IdeaID:  "idea-1",
	})
	ve, ok := validation.AsError(err)
	if !ok || ve.Message != "Comment must be at least 5 characters" {
		t.Errorf("error = %v, want comment length message", err)
	}

	_, err = svc.Create(context.Background(), "user-1", "a@example.com", &model.CreateCommentRequest{
		Content: "long enough content",
	})
	ve, ok = validation.AsError(err)
	if !ok || ve.Message != "ideaId is required" {
		t.Errorf("error = %v, want %q", err, "ideaId is required")
	}
}

// =============================================================================
// DELETE TESTS
// =============================================================================

func TestCommentService_Delete_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{})

	err := svc.Delete(context.Background(), "gone", "anyone")
	if !errors.Is(err, model.ErrCommentNotFound) {
		t.Errorf("error = %v, want ErrCommentNotFound", err)
	}
}

func TestCommentService_Delete_Forbidden(t *testing.T) {
	mockRepo := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Comment, error) {
			return &model.Comment{ID: id, OwnerID: "owner-1"}, nil
		},
	}
	svc := NewCommentService(mockRepo)

	err := svc.Delete(context.Background(), "comment-1", "intruder")
	if !errors.Is(err, model.ErrNotCommentOwner) {
		t.Errorf("error = %v, want ErrNotCommentOwner", err)
	}
	if mockRepo.deleteCalls != 0 {
		t.Error("Delete should not reach the store for a non-owner")
	}
}

func TestCommentService_Delete_Success(t *testing.T) {
	mockRepo := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Comment, error) {
			return &model.Comment{ID: id, OwnerID: "owner-1"}, nil
		},
	}
	svc := NewCommentService(mockRepo)

	if err := svc.Delete(context.Background(), "comment-1", "owner-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mockRepo.deleteCalls != 1 {
		t.Errorf("Delete called %d times, want 1", mockRepo.deleteCalls)
	}
}
