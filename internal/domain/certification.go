package domain

import (
	"context"
	"time"
)

type Certification struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuingOrganization"`
	Year                int       `json:"year"`
	Description         string    `json:"description"`
	CertificateLink     *string   `json:"certificateLink"`
	Skills              []Skill   `json:"skills"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CertificationRepository interface {
	FetchByUser(ctx context.Context, userID string) ([]Certification, error)
	GetByOwner(ctx context.Context, id, userID string) (*Certification, error)
	Create(ctx context.Context, cert *Certification, skillIDs []string) error
	Update(ctx context.Context, cert *Certification, skillIDs []string) error
	Delete(ctx context.Context, id, userID string) error
}

type CertificationUsecase interface {
	List(ctx context.Context) ([]Certification, error)
	Get(ctx context.Context, id string) (*Certification, error)
	Create(ctx context.Context, cert *Certification, skillIDs []string) (*Certification, error)
	Update(ctx context.Context, id string, cert *Certification, skillIDs []string) (*Certification, error)
	Delete(ctx context.Context, id string) error
}
