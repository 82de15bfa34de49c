package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"
)

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("Should reject duplicate email before touching username", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens())

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), &domain.User{
			Email:    "taken@example.com",
			Username: "newuser",
			Password: "password123",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
		mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject duplicate username", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens())

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", mock.Anything, "taken").
			Return(&domain.User{ID: "u1", Username: "taken"}, nil)

		_, err := uc.Register(context.Background(), &domain.User{
			Email:    "new@example.com",
			Username: "taken",
			Password: "password123",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Username already taken")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should hash the password and issue a token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", mock.Anything, "newuser").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user := &domain.User{
			Email:    "new@example.com",
			Username: "newuser",
			Password: "password123",
		}
		token, err := uc.Register(context.Background(), user)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "password123", user.Password)
		assert.True(t, auth.CheckPassword("password123", user.Password))

		userID, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := auth.HashPassword("correct-horse")

	t.Run("Should return the user and a valid token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", mock.Anything, "me@example.com").
			Return(&domain.User{ID: "u1", Email: "me@example.com", Password: hash}, nil)

		user, token, err := uc.Login(context.Background(), "me@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		userID, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("Unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokens())

		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "me@example.com").
			Return(&domain.User{ID: "u1", Password: hash}, nil)

		_, _, errUnknown := uc.Login(context.Background(), "nobody@example.com", "whatever")
		_, _, errWrongPw := uc.Login(context.Background(), "me@example.com", "wrong")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())

		var appErr *apperror.AppError
		assert.ErrorAs(t, errUnknown, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}
