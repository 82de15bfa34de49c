package domain

import (
	"context"
	"time"
)

type Education struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Year            string    `json:"year"` // free-text range, e.g. "2001-2008"
	InstitutionName string    `json:"institutionName"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type EducationRepository interface {
	FetchByUser(ctx context.Context, userID string) ([]Education, error)
	GetByOwner(ctx context.Context, id, userID string) (*Education, error)
	Create(ctx context.Context, edu *Education) error
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id, userID string) error
}

type EducationUsecase interface {
	List(ctx context.Context) ([]Education, error)
	ListByUsername(ctx context.Context, username string) ([]Education, error)
	Get(ctx context.Context, id string) (*Education, error)
	Create(ctx context.Context, edu *Education) (*Education, error)
	Update(ctx context.Context, id string, edu *Education) (*Education, error)
	Delete(ctx context.Context, id string) error
}
