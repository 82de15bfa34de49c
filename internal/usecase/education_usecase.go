package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type educationUsecase struct {
	eduRepo  domain.EducationRepository
	userRepo domain.UserRepository
}

// NewEducationUsecase creates a new instance of EducationUsecase.
func NewEducationUsecase(eduRepo domain.EducationRepository, userRepo domain.UserRepository) domain.EducationUsecase {
	return &educationUsecase{
		eduRepo:  eduRepo,
		userRepo: userRepo,
	}
}

func (u *educationUsecase) List(ctx context.Context) ([]domain.Education, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return []domain.Education{}, nil
	}
	return u.eduRepo.FetchByUser(ctx, callerID)
}

func (u *educationUsecase) ListByUsername(ctx context.Context, username string) ([]domain.Education, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u.eduRepo.FetchByUser(ctx, user.ID)
}

func (u *educationUsecase) Get(ctx context.Context, id string) (*domain.Education, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Education not found")
	}
	edu, err := u.eduRepo.GetByOwner(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education not found")
		}
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) Create(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	edu.ID = uuid.NewString()
	edu.UserID = callerID
	if err := u.eduRepo.Create(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) Update(ctx context.Context, id string, edu *domain.Education) (*domain.Education, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Education not found")
	}
	edu.ID = id
	edu.UserID = callerID
	if err := u.eduRepo.Update(ctx, edu); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education not found")
		}
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id string) error {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return apperror.NotFound("Education not found")
	}
	if err := u.eduRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education not found")
		}
		return err
	}
	return nil
}
