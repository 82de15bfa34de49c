package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type experienceUsecase struct {
	expRepo  domain.ExperienceRepository
	userRepo domain.UserRepository
}

// NewExperienceUsecase creates a new instance of ExperienceUsecase.
func NewExperienceUsecase(expRepo domain.ExperienceRepository, userRepo domain.UserRepository) domain.ExperienceUsecase {
	return &experienceUsecase{
		expRepo:  expRepo,
		userRepo: userRepo,
	}
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.Experience, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return []domain.Experience{}, nil
	}
	return u.expRepo.FetchByUser(ctx, callerID)
}

// ListByUsername serves the public portfolio page for any user, no token
// required.
func (u *experienceUsecase) ListByUsername(ctx context.Context, username string) ([]domain.Experience, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u.expRepo.FetchByUser(ctx, user.ID)
}

func (u *experienceUsecase) Get(ctx context.Context, id string) (*domain.Experience, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Experience not found")
	}
	exp, err := u.expRepo.GetByOwner(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience not found")
		}
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) Create(ctx context.Context, exp *domain.Experience, skillIDs []string) (*domain.Experience, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	exp.ID = uuid.NewString()
	exp.UserID = callerID
	if err := u.expRepo.Create(ctx, exp, skillIDs); err != nil {
		return nil, err
	}
	return u.Get(ctx, exp.ID)
}

func (u *experienceUsecase) Update(ctx context.Context, id string, exp *domain.Experience, skillIDs []string) (*domain.Experience, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Experience not found")
	}
	exp.ID = id
	exp.UserID = callerID
	if err := u.expRepo.Update(ctx, exp, skillIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experience not found")
		}
		return nil, err
	}
	return u.Get(ctx, id)
}

func (u *experienceUsecase) Delete(ctx context.Context, id string) error {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return apperror.NotFound("Experience not found")
	}
	if err := u.expRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience not found")
		}
		return err
	}
	return nil
}
