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

func TestExperienceAnonymousPolicy(t *testing.T) {
	mockRepo := new(MockExperienceRepo)
	mockUsers := new(MockUserRepo)
	uc := usecase.NewExperienceUsecase(mockRepo, mockUsers)

	t.Run("Anonymous list is empty", func(t *testing.T) {
		entries, err := uc.List(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Username route bypasses auth entirely", func(t *testing.T) {
		mockUsers.On("GetByUsername", mock.Anything, "jdoe").
			Return(&domain.User{ID: "user1", Username: "jdoe"}, nil)
		mockRepo.On("FetchByUser", mock.Anything, "user1").
			Return([]domain.Experience{{ID: "e1", UserID: "user1", CompanyName: "Acme"}}, nil)

		entries, err := uc.ListByUsername(context.Background(), "jdoe")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Acme", entries[0].CompanyName)
	})

	t.Run("Unknown username is 404", func(t *testing.T) {
		mockUsers.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ListByUsername(context.Background(), "ghost")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestExperienceYearOrdering(t *testing.T) {
	mockRepo := new(MockExperienceRepo)
	uc := usecase.NewExperienceUsecase(mockRepo, new(MockUserRepo))

	t.Run("End year before start year is accepted as-is", func(t *testing.T) {
		endYear := 1990
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Experience"), mock.Anything).Return(nil)
		mockRepo.On("GetByOwner", mock.Anything, mock.Anything, "user1").
			Return(&domain.Experience{ID: "e0", UserID: "user1", StartYear: 2000, EndYear: &endYear}, nil).Once()

		created, err := uc.Create(authedCtx("user1"), &domain.Experience{
			StartYear:   2000,
			EndYear:     &endYear,
			CompanyName: "Acme",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, 1990, *created.EndYear)
		mockRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Experience"), mock.Anything)
	})

	t.Run("Nil end year means currently employed", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Experience"), []string{}).Return(nil)
		mockRepo.On("GetByOwner", mock.Anything, mock.Anything, "user1").
			Return(&domain.Experience{ID: "e1", UserID: "user1", StartYear: 2021}, nil)

		created, err := uc.Create(authedCtx("user1"), &domain.Experience{
			StartYear:   2021,
			CompanyName: "Acme",
		}, []string{})
		assert.NoError(t, err)
		assert.Nil(t, created.EndYear)
	})
}

func TestExperienceTagReplacement(t *testing.T) {
	t.Run("Update hands the full replacement set to the repository", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, new(MockUserRepo))

		var captured []string
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Experience"), mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).([]string)
			}).
			Return(nil)
		mockRepo.On("GetByOwner", mock.Anything, "e1", "user1").
			Return(&domain.Experience{ID: "e1", UserID: "user1", StartYear: 2020}, nil)

		_, err := uc.Update(authedCtx("user1"), "e1", &domain.Experience{
			StartYear:   2020,
			CompanyName: "Acme",
		}, []string{"skill-a", "skill-b"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"skill-a", "skill-b"}, captured)
	})

	t.Run("Empty set clears all tags", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, new(MockUserRepo))

		var captured []string
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Experience"), mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).([]string)
			}).
			Return(nil)
		mockRepo.On("GetByOwner", mock.Anything, "e1", "user1").
			Return(&domain.Experience{ID: "e1", UserID: "user1", StartYear: 2020, Skills: []domain.Skill{}}, nil)

		_, err := uc.Update(authedCtx("user1"), "e1", &domain.Experience{
			StartYear:   2020,
			CompanyName: "Acme",
		}, []string{})
		assert.NoError(t, err)
		assert.Empty(t, captured)
	})

	t.Run("Update of a foreign entry is 404", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, new(MockUserRepo))

		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Experience"), mock.Anything).
			Return(domain.ErrNotFound)

		_, err := uc.Update(authedCtx("user1"), "foreign", &domain.Experience{StartYear: 2020}, nil)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
