package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type uploadUsecase struct {
	userRepo domain.UserRepository
	uploader domain.Uploader
}

// NewUploadUsecase creates a new instance of UploadUsecase.
func NewUploadUsecase(userRepo domain.UserRepository, uploader domain.Uploader) domain.UploadUsecase {
	return &uploadUsecase{
		userRepo: userRepo,
		uploader: uploader,
	}
}

// UploadImage pushes a standalone image to the caller's uploads folder.
func (u *uploadUsecase) UploadImage(ctx context.Context, file domain.FileUpload) (*domain.UploadedFile, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	caller, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Authentication required")
		}
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	return u.uploader.Upload(ctx, file.Data, file.Name, caller.Username, "uploads")
}
