package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates the account and returns a signed bearer token. Duplicate
// email is reported before duplicate username; the unique constraints on the
// users table remain the guarantee under concurrent registration.
func (u *authUsecase) Register(ctx context.Context, user *domain.User) (string, error) {
	if _, err := u.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return "", apperror.Conflict("Email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := u.userRepo.GetByUsername(ctx, user.Username); err == nil {
		return "", apperror.Conflict("Username already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = uuid.NewString()
	user.Password = hash

	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return u.tokens.Issue(user.ID)
}

// Login verifies credentials and returns the user with a fresh token. Unknown
// email and wrong password produce the same error so the response does not
// reveal which part failed.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
