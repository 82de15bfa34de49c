package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	uploader    domain.Uploader
}

// NewProfileUsecase creates a new instance of ProfileUsecase.
func NewProfileUsecase(profileRepo domain.ProfileRepository, userRepo domain.UserRepository, uploader domain.Uploader) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}
}

func (u *profileUsecase) GetOwn(ctx context.Context) (*domain.Profile, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	profile, err := u.profileRepo.GetByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	profile, err := u.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) Create(ctx context.Context, profile *domain.Profile, photo *domain.FileUpload) (*domain.Profile, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := u.profileRepo.GetByUserID(ctx, caller.ID); err == nil {
		return nil, apperror.Conflict("Profile already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	profile.ID = uuid.NewString()
	profile.UserID = caller.ID
	if profile.SocialMedias == nil {
		profile.SocialMedias = []string{}
	}

	if photo != nil {
		uploaded, err := u.uploader.Upload(ctx, photo.Data, photo.Name, caller.Username, "users")
		if err != nil {
			return nil, err
		}
		profile.ProfilePhoto = &uploaded.URL
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) Update(ctx context.Context, profile *domain.Profile, photo *domain.FileUpload) (*domain.Profile, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.profileRepo.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}

	profile.UserID = caller.ID
	if profile.SocialMedias == nil {
		profile.SocialMedias = []string{}
	}
	// The photo only changes when a new file arrives.
	profile.ProfilePhoto = existing.ProfilePhoto
	if photo != nil {
		uploaded, err := u.uploader.Upload(ctx, photo.Data, photo.Name, caller.Username, "users")
		if err != nil {
			return nil, err
		}
		profile.ProfilePhoto = &uploaded.URL
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) caller(ctx context.Context) (*domain.User, error) {
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
