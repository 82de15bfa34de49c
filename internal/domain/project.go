package domain

import (
	"context"
	"time"
)

// Project is a Medium-style article with a globally unique slug.
type Project struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Content       string     `json:"content"` // rich text / markdown
	CoverImage    *string    `json:"coverImage"`
	ContentImages []string   `json:"contentImages"`
	Published     bool       `json:"published"`
	Highlighted   bool       `json:"highlighted"`
	PublishedAt   *time.Time `json:"publishedAt"`
	Skills        []Skill    `json:"skills"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ProjectRepository interface {
	FetchByUser(ctx context.Context, userID string) ([]Project, error)
	GetByOwner(ctx context.Context, id, userID string) (*Project, error)
	GetBySlugOwner(ctx context.Context, slug, userID string) (*Project, error)
	Create(ctx context.Context, project *Project, skillIDs []string) error
	Update(ctx context.Context, project *Project, skillIDs []string) error
	Delete(ctx context.Context, id, userID string) error
}

// ProjectInput carries the write payload for create/update, including the
// optional cover image and up to ten content images that replace the
// {{IMAGE_n}} placeholders inside Content.
type ProjectInput struct {
	Project       *Project
	SkillIDs      []string
	CoverImage    *FileUpload
	ContentImages []FileUpload
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]Project, error)
	ListByUsername(ctx context.Context, username string) ([]Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	GetByUsernameSlug(ctx context.Context, username, slug string) (*Project, error)
	Create(ctx context.Context, input ProjectInput) (*Project, error)
	Update(ctx context.Context, id string, input ProjectInput) (*Project, error)
	Delete(ctx context.Context, id string) error
}
