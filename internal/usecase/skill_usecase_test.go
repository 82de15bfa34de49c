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

func TestSkillAnonymousPolicy(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(mockRepo, new(MockUserRepo), new(MockUploader))

	t.Run("Anonymous list is empty, not an error", func(t *testing.T) {
		skills, err := uc.List(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, skills)
		mockRepo.AssertNotCalled(t, "FetchByUser", mock.Anything, mock.Anything)
	})

	t.Run("Anonymous detail is 404", func(t *testing.T) {
		_, err := uc.Get(context.Background(), "some-id")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestSkillOwnership(t *testing.T) {
	t.Run("Someone else's skill looks missing", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo, new(MockUserRepo), new(MockUploader))

		// The repository scopes the lookup by owner, so a foreign row is a miss.
		mockRepo.On("GetByOwner", mock.Anything, "their-skill", "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.Get(authedCtx("user1"), "their-skill")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Contains(t, err.Error(), "Skill not found")
	})

	t.Run("Delete of a foreign skill is 404", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockRepo, new(MockUserRepo), new(MockUploader))

		mockRepo.On("Delete", mock.Anything, "their-skill", "user1").Return(domain.ErrNotFound)

		err := uc.Delete(authedCtx("user1"), "their-skill")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestSkillCreate(t *testing.T) {
	t.Run("Uploads the icon under the caller's skills folder", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockUsers := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewSkillUsecase(mockRepo, mockUsers, mockUploader)

		mockUsers.On("GetByID", mock.Anything, "user1").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockUploader.On("Upload", mock.Anything, []byte("png-bytes"), "go.png", "jdoe", "skills").
			Return(&domain.UploadedFile{URL: "https://cdn.example.com/jdoe/skills/go.png"}, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Skill")).Return(nil)

		skill, err := uc.Create(authedCtx("user1"), "Go", domain.FileUpload{Name: "go.png", Data: []byte("png-bytes")})
		assert.NoError(t, err)
		assert.Equal(t, "Go", skill.Name)
		assert.Equal(t, "user1", skill.UserID)
		assert.Equal(t, "https://cdn.example.com/jdoe/skills/go.png", skill.Icon)
		assert.NotEmpty(t, skill.ID)
	})

	t.Run("Update keeps the current icon when no file arrives", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockUsers := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewSkillUsecase(mockRepo, mockUsers, mockUploader)

		mockUsers.On("GetByID", mock.Anything, "user1").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockRepo.On("GetByOwner", mock.Anything, "s1", "user1").
			Return(&domain.Skill{ID: "s1", UserID: "user1", Name: "Go", Icon: "old-url"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Skill")).Return(nil)

		skill, err := uc.Update(authedCtx("user1"), "s1", "Golang", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Golang", skill.Name)
		assert.Equal(t, "old-url", skill.Icon)
		mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
