package domain

import (
	"context"
	"time"
)

type Skill struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SkillRepository interface {
	FetchByUser(ctx context.Context, userID string) ([]Skill, error)
	// GetByOwner returns the skill only when it exists AND belongs to userID.
	GetByOwner(ctx context.Context, id, userID string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id, userID string) error
}

type SkillUsecase interface {
	List(ctx context.Context) ([]Skill, error)
	Get(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, name string, icon FileUpload) (*Skill, error)
	Update(ctx context.Context, id, name string, icon *FileUpload) (*Skill, error)
	Delete(ctx context.Context, id string) error
}
