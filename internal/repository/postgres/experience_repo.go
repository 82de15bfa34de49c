package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type experienceRepository struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new instance of ExperienceRepository.
func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Experience, error) {
	query := `
		SELECT id, user_id, start_year, end_year, company_name, description, location, created_at, updated_at
		FROM experience
		WHERE user_id = $1
		ORDER BY start_year DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	ids := []string{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.StartYear, &e.EndYear, &e.CompanyName,
			&e.Description, &e.Location, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.Skills = []domain.Skill{}
		experiences = append(experiences, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillsByParent, err := fetchSkillsForParents(ctx, r.db, "experience_skills", "experience_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range experiences {
		if linked, ok := skillsByParent[experiences[i].ID]; ok {
			experiences[i].Skills = linked
		}
	}
	return experiences, nil
}

func (r *experienceRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.Experience, error) {
	query := `
		SELECT id, user_id, start_year, end_year, company_name, description, location, created_at, updated_at
		FROM experience
		WHERE id = $1 AND user_id = $2`

	var e domain.Experience
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.StartYear, &e.EndYear, &e.CompanyName,
		&e.Description, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	e.Skills = []domain.Skill{}
	skillsByParent, err := fetchSkillsForParents(ctx, r.db, "experience_skills", "experience_id", []string{e.ID})
	if err != nil {
		return nil, err
	}
	if linked, ok := skillsByParent[e.ID]; ok {
		e.Skills = linked
	}
	return &e, nil
}

func (r *experienceRepository) Create(ctx context.Context, exp *domain.Experience, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO experience (id, user_id, start_year, end_year, company_name, description, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			exp.ID,
			exp.UserID,
			exp.StartYear,
			exp.EndYear,
			exp.CompanyName,
			exp.Description,
			exp.Location,
		).Scan(&exp.CreatedAt, &exp.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create experience: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "experience_skills", "experience_id", exp.ID, skillIDs)
	})
}

func (r *experienceRepository) Update(ctx context.Context, exp *domain.Experience, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE experience
			SET start_year = $1, end_year = $2, company_name = $3, description = $4, location = $5, updated_at = now()
			WHERE id = $6 AND user_id = $7
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			exp.StartYear,
			exp.EndYear,
			exp.CompanyName,
			exp.Description,
			exp.Location,
			exp.ID,
			exp.UserID,
		).Scan(&exp.CreatedAt, &exp.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to update experience: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "experience_skills", "experience_id", exp.ID, skillIDs)
	})
}

func (r *experienceRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
