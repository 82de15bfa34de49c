package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
)

func TestProfilePolicy(t *testing.T) {
	t.Run("Anonymous own-profile lookup is 401", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockUserRepo), new(MockUploader))

		_, err := uc.GetOwn(context.Background())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Username lookup works without a token", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, mockUsers, new(MockUploader))

		mockUsers.On("GetByUsername", mock.Anything, "jdoe").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.Profile{ID: "pr1", UserID: "user1", Name: "Jane Doe"}, nil)

		profile, err := uc.GetByUsername(context.Background(), "jdoe")
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.Name)
	})

	t.Run("Second create is rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, mockUsers, new(MockUploader))

		mockUsers.On("GetByID", mock.Anything, "user1").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.Profile{ID: "pr1", UserID: "user1"}, nil)

		_, err := uc.Create(authedCtx("user1"), &domain.Profile{Name: "Jane"}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Profile already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Update keeps the stored photo when no file arrives", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockUsers := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewProfileUsecase(mockRepo, mockUsers, mockUploader)

		photo := "https://cdn.example.com/jdoe/profile/me.png"
		mockUsers.On("GetByID", mock.Anything, "user1").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.Profile{ID: "pr1", UserID: "user1", ProfilePhoto: &photo}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		updated, err := uc.Update(authedCtx("user1"), &domain.Profile{Name: "Jane", Role: "Engineer"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, &photo, updated.ProfilePhoto)
		mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
