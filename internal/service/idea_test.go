package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"healthyideas/internal/model"
	"healthyideas/internal/validation"
)

// =============================================================================
// MOCK REPOSITORY
// =============================================================================

type mockIdeaRepository struct {
	createFn  func(ctx context.Context, idea *model.Idea) error
	getByIDFn func(ctx context.Context, id string) (*model.Idea, error)
	listFn    func(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error)
	updateFn  func(ctx context.Context, idea *model.Idea) error
	deleteFn  func(ctx context.Context, id string) error
	countFn   func(ctx context.Context) (int, error)

	updateCalls int
	deleteCalls int
}

func (m *mockIdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	if m.createFn != nil {
		return m.createFn(ctx, idea)
	}
	idea.ID = "idea-1"
	idea.CreatedAt = time.Now()
	return nil
}

func (m *mockIdeaRepository) GetByID(ctx context.Context, id string) (*model.Idea, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrIdeaNotFound
}

func (m *mockIdeaRepository) List(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error) {
	if m.listFn != nil {
		return m.listFn(ctx, category, withAuthor)
	}
	return nil, nil
}

func (m *mockIdeaRepository) Update(ctx context.Context, idea *model.Idea) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, idea)
	}
	return nil
}

func (m *mockIdeaRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockIdeaRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func validIdeaReq() *model.IdeaRequest {
	return &model.IdeaRequest{
		Title:          "Morning stretching routine",
		ImageURL:       "https://example.com/stretch.jpg",
		Description:    strings.Repeat("Stretch slowly and breathe. ", 3),
		ConciseContent: "Stretch every morning.",
		Category:       model.CategoryWorkout,
	}
}

func storedIdea(owner string) *model.Idea {
	return &model.Idea{
		ID:             "idea-1",
		Title:          "Old title",
		ImageURL:       "https://example.com/old.jpg",
		Description:    strings.Repeat("Old description padding here. ", 2),
		ConciseContent: "Old concise.",
		Category:       model.CategoryFood,
		OwnerID:        owner,
	}
}

// =============================================================================
// CREATE TESTS
// =============================================================================

func TestIdeaService_Create_Success(t *testing.T) {
	mockRepo := &mockIdeaRepository{}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	idea, err := svc.Create(context.Background(), "user-1", validIdeaReq())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if idea.OwnerID != "user-1" {
		t.Errorf("owner = %q, want the requester", idea.OwnerID)
	}
	if idea.ID == "" {
		t.Error("expected repository-assigned ID")
	}
}

func TestIdeaService_Create_InvalidPayload(t *testing.T) {
	created := false
	mockRepo := &mockIdeaRepository{
		createFn: func(ctx context.Context, idea *model.Idea) error {
			created = true
			return nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	req := validIdeaReq()
	req.Category = "sleep"

	_, err := svc.Create(context.Background(), "user-1", req)
	ve, ok := validation.AsError(err)
	if !ok || ve.Message != "Please select a valid category" {
		t.Errorf("error = %v, want category validation message", err)
	}
	if created {
		t.Error("nothing should be persisted for an invalid payload")
	}
}

// =============================================================================
// UPDATE TESTS: CHECK ORDER IS A CONTRACT
// =============================================================================
//
// Existence first, then ownership, then payload. A missing idea must be
// not found even when the requester would also fail the ownership or
// validation checks.

func TestIdeaService_Update_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewIdeaService(&mockIdeaRepository{}, &mockUserRepository{})

	// Not the owner AND invalid payload AND no such idea: not found wins.
	_, err := svc.Update(context.Background(), "gone", "someone-else", &model.IdeaRequest{})
	if !errors.Is(err, model.ErrIdeaNotFound) {
		t.Errorf("error = %v, want ErrIdeaNotFound", err)
	}
}

func TestIdeaService_Update_ForbiddenBeforeValidation(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	// Invalid payload from a non-owner: the ownership verdict comes first.
	_, err := svc.Update(context.Background(), "idea-1", "intruder", &model.IdeaRequest{})
	if !errors.Is(err, model.ErrNotIdeaOwner) {
		t.Errorf("error = %v, want ErrNotIdeaOwner", err)
	}
}

func TestIdeaService_Update_OwnerWithInvalidPayload(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	req := validIdeaReq()
	req.Title = "ab"

	_, err := svc.Update(context.Background(), "idea-1", "owner-1", req)
	ve, ok := validation.AsError(err)
	if !ok || ve.Message != "Title must be at least 3 characters" {
		t.Errorf("error = %v, want title validation message", err)
	}
	if mockRepo.updateCalls != 0 {
		t.Error("Update should not be called for an invalid payload")
	}
}

func TestIdeaService_Update_Success(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	req := validIdeaReq()
	idea, err := svc.Update(context.Background(), "idea-1", "owner-1", req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if idea.Title != req.Title || idea.Category != req.Category {
		t.Error("update did not replace the document content")
	}
	if idea.OwnerID != "owner-1" {
		t.Errorf("owner = %q, ownership must not change on update", idea.OwnerID)
	}
	if mockRepo.updateCalls != 1 {
		t.Errorf("Update called %d times, want 1", mockRepo.updateCalls)
	}
}

// =============================================================================
// DELETE TESTS
// =============================================================================

func TestIdeaService_Delete_Success(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	if err := svc.Delete(context.Background(), "idea-1", "owner-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mockRepo.deleteCalls != 1 {
		t.Errorf("Delete called %d times, want 1", mockRepo.deleteCalls)
	}
}

func TestIdeaService_Delete_Forbidden(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	err := svc.Delete(context.Background(), "idea-1", "intruder")
	if !errors.Is(err, model.ErrNotIdeaOwner) {
		t.Errorf("error = %v, want ErrNotIdeaOwner", err)
	}
	if mockRepo.deleteCalls != 0 {
		t.Error("Delete should not reach the store for a non-owner")
	}
}

// Deleting the same idea twice: the second attempt is not found, never
// forbidden, even for the owner.
func TestIdeaService_Delete_Twice(t *testing.T) {
	deleted := false
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			if deleted {
				return nil, model.ErrIdeaNotFound
			}
			return storedIdea("owner-1"), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	if err := svc.Delete(context.Background(), "idea-1", "owner-1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	err := svc.Delete(context.Background(), "idea-1", "owner-1")
	if !errors.Is(err, model.ErrIdeaNotFound) {
		t.Errorf("second delete error = %v, want ErrIdeaNotFound", err)
	}
}

// =============================================================================
// READ TESTS
// =============================================================================

func TestIdeaService_GetByID_WithAuthor(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	mockUsers := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: "owner-1", Email: "owner@example.com"}, nil
		},
	}
	svc := NewIdeaService(mockRepo, mockUsers)

	idea, err := svc.GetByID(context.Background(), "idea-1", true)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if idea.Author == nil || idea.Author.Email != "owner@example.com" {
		t.Errorf("author = %+v, want the owner's summary", idea.Author)
	}
}

// A vanished author degrades to an idea without the join, not an error.
func TestIdeaService_GetByID_MissingAuthorIsNotFatal(t *testing.T) {
	mockRepo := &mockIdeaRepository{
		getByIDFn: func(ctx context.Context, id string) (*model.Idea, error) {
			return storedIdea("owner-1"), nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	idea, err := svc.GetByID(context.Background(), "idea-1", true)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if idea.Author != nil {
		t.Errorf("author = %+v, want nil when the account is gone", idea.Author)
	}
}

func TestIdeaService_List_PassesFilterThrough(t *testing.T) {
	var gotCategory string
	var gotWithAuthor bool
	mockRepo := &mockIdeaRepository{
		listFn: func(ctx context.Context, category string, withAuthor bool) ([]model.Idea, error) {
			gotCategory = category
			gotWithAuthor = withAuthor
			return []model.Idea{}, nil
		},
	}
	svc := NewIdeaService(mockRepo, &mockUserRepository{})

	if _, err := svc.List(context.Background(), model.CategoryFood, true); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotCategory != model.CategoryFood || !gotWithAuthor {
		t.Errorf("repo got (%q, %v), want (%q, true)", gotCategory, gotWithAuthor, model.CategoryFood)
	}
}
