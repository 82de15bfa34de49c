package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type projectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, user_id, title, slug, description, content, cover_image, content_images,
	published, highlighted, published_at, created_at, updated_at`

func (r *projectRepository) scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Slug, &p.Description, &p.Content,
		&p.CoverImage, pq.Array(&p.ContentImages), &p.Published, &p.Highlighted,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p.ContentImages == nil {
		p.ContentImages = []string{}
	}
	p.Skills = []domain.Skill{}
	return &p, nil
}

func (r *projectRepository) attachSkills(ctx context.Context, projects []*domain.Project) error {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	skillsByParent, err := fetchSkillsForParents(ctx, r.db, "project_skills", "project_id", ids)
	if err != nil {
		return err
	}
	for _, p := range projects {
		if linked, ok := skillsByParent[p.ID]; ok {
			p.Skills = linked
		}
	}
	return nil
}

func (r *projectRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`, projectColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSkills(ctx, projects); err != nil {
		return nil, err
	}

	result := make([]domain.Project, len(projects))
	for i, p := range projects {
		result[i] = *p
	}
	return result, nil
}

func (r *projectRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1 AND user_id = $2`, projectColumns)

	p, err := r.scanProject(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	if err := r.attachSkills(ctx, []*domain.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) GetBySlugOwner(ctx context.Context, slug, userID string) (*domain.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE slug = $1 AND user_id = $2`, projectColumns)

	p, err := r.scanProject(r.db.QueryRow(ctx, query, slug, userID))
	if err != nil {
		return nil, err
	}
	if err := r.attachSkills(ctx, []*domain.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO projects (id, user_id, title, slug, description, content, cover_image,
				content_images, published, highlighted, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			project.ID,
			project.UserID,
			project.Title,
			project.Slug,
			project.Description,
			project.Content,
			project.CoverImage,
			pq.Array(project.ContentImages),
			project.Published,
			project.Highlighted,
			project.PublishedAt,
		).Scan(&project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperror.Conflict("A project with this slug already exists")
			}
			return fmt.Errorf("failed to create project: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "project_skills", "project_id", project.ID, skillIDs)
	})
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE projects
			SET title = $1, slug = $2, description = $3, content = $4, cover_image = $5,
				content_images = $6, published = $7, highlighted = $8, published_at = $9, updated_at = now()
			WHERE id = $10 AND user_id = $11
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			project.Title,
			project.Slug,
			project.Description,
			project.Content,
			project.CoverImage,
			pq.Array(project.ContentImages),
			project.Published,
			project.Highlighted,
			project.PublishedAt,
			project.ID,
			project.UserID,
		).Scan(&project.CreatedAt, &project.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperror.Conflict("A project with this slug already exists")
			}
			return fmt.Errorf("failed to update project: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "project_skills", "project_id", project.ID, skillIDs)
	})
}

func (r *projectRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
