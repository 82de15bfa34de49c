package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	StartYear   int       `json:"startYear"`
	EndYear     *int      `json:"endYear"` // nil means currently employed
	CompanyName string    `json:"companyName"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Skills      []Skill   `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ExperienceRepository interface {
	// FetchByUser returns the user's experience rows joined with their tag sets.
	FetchByUser(ctx context.Context, userID string) ([]Experience, error)
	GetByOwner(ctx context.Context, id, userID string) (*Experience, error)
	// Create inserts the row and one junction row per skill id, in one transaction.
	Create(ctx context.Context, exp *Experience, skillIDs []string) error
	// Update overwrites the mutable fields and replaces the tag set (delete
	// all junction rows for the parent, insert the supplied set), in one
	// transaction scoped to the parent.
	Update(ctx context.Context, exp *Experience, skillIDs []string) error
	Delete(ctx context.Context, id, userID string) error
}

type ExperienceUsecase interface {
	List(ctx context.Context) ([]Experience, error)
	ListByUsername(ctx context.Context, username string) ([]Experience, error)
	Get(ctx context.Context, id string) (*Experience, error)
	Create(ctx context.Context, exp *Experience, skillIDs []string) (*Experience, error)
	Update(ctx context.Context, id string, exp *Experience, skillIDs []string) (*Experience, error)
	Delete(ctx context.Context, id string) error
}
