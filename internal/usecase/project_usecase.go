package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	userRepo    domain.UserRepository
	uploader    domain.Uploader
}

// NewProjectUsecase creates a new instance of ProjectUsecase.
func NewProjectUsecase(projectRepo domain.ProjectRepository, userRepo domain.UserRepository, uploader domain.Uploader) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}
}

func (u *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return []domain.Project{}, nil
	}
	return u.projectRepo.FetchByUser(ctx, callerID)
}

func (u *projectUsecase) ListByUsername(ctx context.Context, username string) ([]domain.Project, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return u.projectRepo.FetchByUser(ctx, user.ID)
}

func (u *projectUsecase) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Project not found")
	}
	return u.getBySlugFor(ctx, slug, callerID)
}

func (u *projectUsecase) GetByUsernameSlug(ctx context.Context, username, slug string) (*domain.Project, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	return u.getBySlugFor(ctx, slug, user.ID)
}

func (u *projectUsecase) Create(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	project := input.Project
	project.ID = uuid.NewString()
	project.UserID = caller.ID
	project.ContentImages = []string{}
	if project.Published && project.PublishedAt == nil {
		now := time.Now()
		project.PublishedAt = &now
	}

	if err := u.applyUploads(ctx, project, caller.Username, input); err != nil {
		return nil, err
	}

	if err := u.projectRepo.Create(ctx, project, input.SkillIDs); err != nil {
		return nil, err
	}
	return u.projectRepo.GetByOwner(ctx, project.ID, caller.ID)
}

func (u *projectUsecase) Update(ctx context.Context, id string, input domain.ProjectInput) (*domain.Project, error) {
	caller, err := u.caller(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := u.projectRepo.GetByOwner(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}

	project := input.Project
	project.ID = id
	project.UserID = caller.ID
	// Stored images survive unless new files arrive.
	project.CoverImage = existing.CoverImage
	project.ContentImages = existing.ContentImages
	if project.Published && project.PublishedAt == nil {
		project.PublishedAt = existing.PublishedAt
		if project.PublishedAt == nil {
			now := time.Now()
			project.PublishedAt = &now
		}
	}

	if err := u.applyUploads(ctx, project, caller.Username, input); err != nil {
		return nil, err
	}

	if err := u.projectRepo.Update(ctx, project, input.SkillIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	return u.projectRepo.GetByOwner(ctx, id, caller.ID)
}

func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return apperror.NotFound("Project not found")
	}
	if err := u.projectRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return err
	}
	return nil
}

// applyUploads pushes the cover image and content images to storage. Each
// content image URL replaces its {{IMAGE_n}} placeholder in the content body,
// n counted from zero in upload order.
func (u *projectUsecase) applyUploads(ctx context.Context, project *domain.Project, username string, input domain.ProjectInput) error {
	if input.CoverImage != nil {
		uploaded, err := u.uploader.Upload(ctx, input.CoverImage.Data, input.CoverImage.Name, username, "projects")
		if err != nil {
			return err
		}
		project.CoverImage = &uploaded.URL
	}

	if len(input.ContentImages) == 0 {
		return nil
	}

	urls := make([]string, 0, len(input.ContentImages))
	for i, img := range input.ContentImages {
		uploaded, err := u.uploader.Upload(ctx, img.Data, img.Name, username, "projects")
		if err != nil {
			return err
		}
		urls = append(urls, uploaded.URL)
		placeholder := fmt.Sprintf("{{IMAGE_%d}}", i)
		project.Content = strings.ReplaceAll(project.Content, placeholder, uploaded.URL)
	}
	project.ContentImages = urls
	return nil
}

func (u *projectUsecase) getBySlugFor(ctx context.Context, slug, userID string) (*domain.Project, error) {
	project, err := u.projectRepo.GetBySlugOwner(ctx, slug, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) caller(ctx context.Context) (*domain.User, error) {
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
