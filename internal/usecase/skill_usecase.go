package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
	uploader  domain.Uploader
}

// NewSkillUsecase creates a new instance of SkillUsecase.
func NewSkillUsecase(skillRepo domain.SkillRepository, userRepo domain.UserRepository, uploader domain.Uploader) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		uploader:  uploader,
	}
}

// List returns the caller's skills. Anonymous requests get an empty list
// rather than an error.
func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return []domain.Skill{}, nil
	}
	return u.skillRepo.FetchByUser(ctx, callerID)
}

// Get returns the caller's skill by id. A skill owned by someone else is
// indistinguishable from one that does not exist.
func (u *skillUsecase) Get(ctx context.Context, id string) (*domain.Skill, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Skill not found")
	}
	skill, err := u.skillRepo.GetByOwner(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Create(ctx context.Context, name string, icon domain.FileUpload) (*domain.Skill, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	uploaded, err := u.uploader.Upload(ctx, icon.Data, icon.Name, caller.Username, "skills")
	if err != nil {
		return nil, err
	}

	skill := &domain.Skill{
		ID:     uuid.NewString(),
		UserID: caller.ID,
		Name:   name,
		Icon:   uploaded.URL,
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Update(ctx context.Context, id, name string, icon *domain.FileUpload) (*domain.Skill, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	skill, err := u.skillRepo.GetByOwner(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}

	skill.Name = name
	if icon != nil {
		uploaded, err := u.uploader.Upload(ctx, icon.Data, icon.Name, caller.Username, "skills")
		if err != nil {
			return nil, err
		}
		skill.Icon = uploaded.URL
	}

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id string) error {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return apperror.NotFound("Skill not found")
	}
	if err := u.skillRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return err
	}
	return nil
}

func (u *skillUsecase) caller(ctx context.Context) (*domain.User, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	user, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Authentication required")
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}
	return user, nil
}
