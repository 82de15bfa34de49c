package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-portfolio-backend/internal/domain"
)

type profileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, name, role, description, social_medias, profile_photo, created_at, updated_at
		FROM user_details
		WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Role,
		&p.Description,
		pq.Array(&p.SocialMedias),
		&p.ProfilePhoto,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p.SocialMedias == nil {
		p.SocialMedias = []string{}
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO user_details (id, user_id, name, role, description, social_medias, profile_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.Role,
		profile.Description,
		pq.Array(profile.SocialMedias),
		profile.ProfilePhoto,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE user_details
		SET name = $1, role = $2, description = $3, social_medias = $4, profile_photo = $5, updated_at = now()
		WHERE user_id = $6
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.Name,
		profile.Role,
		profile.Description,
		pq.Array(profile.SocialMedias),
		profile.ProfilePhoto,
		profile.UserID,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
