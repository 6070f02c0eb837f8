package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
	"healthyideas/internal/validation"
)

// UserService handles account registration and login.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. Emails are stored lowercased so the
// uniqueness constraint is case-insensitive in practice.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.ValidateRegister(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          req.Email,
		PasswordHashed: string(hashedPassword),
	}

	// The pre-check above races with concurrent registrations; the
	// unique index on email is the arbiter and surfaces here.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates an account with email and password. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves an account by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}
