package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type educationRepository struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new instance of EducationRepository.
func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Education, error) {
	query := `
		SELECT id, user_id, year, institution_name, description, created_at, updated_at
		FROM education
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	defer rows.Close()

	entries := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Year, &e.InstitutionName, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *educationRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.Education, error) {
	query := `
		SELECT id, user_id, year, institution_name, description, created_at, updated_at
		FROM education
		WHERE id = $1 AND user_id = $2`

	var e domain.Education
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.Year, &e.InstitutionName, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return &e, nil
}

func (r *educationRepository) Create(ctx context.Context, edu *domain.Education) error {
	query := `
		INSERT INTO education (id, user_id, year, institution_name, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		edu.ID,
		edu.UserID,
		edu.Year,
		edu.InstitutionName,
		edu.Description,
	).Scan(&edu.CreatedAt, &edu.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	return nil
}

func (r *educationRepository) Update(ctx context.Context, edu *domain.Education) error {
	query := `
		UPDATE education
		SET year = $1, institution_name = $2, description = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		edu.Year,
		edu.InstitutionName,
		edu.Description,
		edu.ID,
		edu.UserID,
	).Scan(&edu.CreatedAt, &edu.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update education: %w", err)
	}
	return nil
}

func (r *educationRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
