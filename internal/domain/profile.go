package domain

import (
	"context"
	"time"
)

// Profile is the public-facing portfolio record, at most one per user.
type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Description  string    `json:"description"`
	SocialMedias []string  `json:"socialMedias"`
	ProfilePhoto *string   `json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	Create(ctx context.Context, profile *Profile, photo *FileUpload) (*Profile, error)
	Update(ctx context.Context, profile *Profile, photo *FileUpload) (*Profile, error)
}
