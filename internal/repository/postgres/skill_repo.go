package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type skillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new instance of SkillRepository.
func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Skill, error) {
	query := `
		SELECT id, user_id, name, icon, created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.Skill, error) {
	query := `
		SELECT id, user_id, name, icon, created_at, updated_at
		FROM skills
		WHERE id = $1 AND user_id = $2`

	var s domain.Skill
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Icon, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &s, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (id, user_id, name, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		skill.ID,
		skill.UserID,
		skill.Name,
		skill.Icon,
	).Scan(&skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
		UPDATE skills
		SET name = $1, icon = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		skill.Name,
		skill.Icon,
		skill.ID,
		skill.UserID,
	).Scan(&skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
