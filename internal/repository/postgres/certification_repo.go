package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type certificationRepository struct {
	db *pgxpool.Pool
}

// NewCertificationRepository creates a new instance of CertificationRepository.
func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepository{db: db}
}

func (r *certificationRepository) FetchByUser(ctx context.Context, userID string) ([]domain.Certification, error) {
	query := `
		SELECT id, user_id, name, issuing_organization, year, description, certificate_link, created_at, updated_at
		FROM certifications
		WHERE user_id = $1
		ORDER BY year DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}
	defer rows.Close()

	certs := []domain.Certification{}
	ids := []string{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization, &c.Year,
			&c.Description, &c.CertificateLink, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		c.Skills = []domain.Skill{}
		certs = append(certs, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillsByParent, err := fetchSkillsForParents(ctx, r.db, "certification_skills", "certification_id", ids)
	if err != nil {
		return nil, err
	}
	for i := range certs {
		if linked, ok := skillsByParent[certs[i].ID]; ok {
			certs[i].Skills = linked
		}
	}
	return certs, nil
}

func (r *certificationRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.Certification, error) {
	query := `
		SELECT id, user_id, name, issuing_organization, year, description, certificate_link, created_at, updated_at
		FROM certifications
		WHERE id = $1 AND user_id = $2`

	var c domain.Certification
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization, &c.Year,
		&c.Description, &c.CertificateLink, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}

	c.Skills = []domain.Skill{}
	skillsByParent, err := fetchSkillsForParents(ctx, r.db, "certification_skills", "certification_id", []string{c.ID})
	if err != nil {
		return nil, err
	}
	if linked, ok := skillsByParent[c.ID]; ok {
		c.Skills = linked
	}
	return &c, nil
}

func (r *certificationRepository) Create(ctx context.Context, cert *domain.Certification, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO certifications (id, user_id, name, issuing_organization, year, description, certificate_link)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			cert.ID,
			cert.UserID,
			cert.Name,
			cert.IssuingOrganization,
			cert.Year,
			cert.Description,
			cert.CertificateLink,
		).Scan(&cert.CreatedAt, &cert.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create certification: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "certification_skills", "certification_id", cert.ID, skillIDs)
	})
}

func (r *certificationRepository) Update(ctx context.Context, cert *domain.Certification, skillIDs []string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE certifications
			SET name = $1, issuing_organization = $2, year = $3, description = $4, certificate_link = $5, updated_at = now()
			WHERE id = $6 AND user_id = $7
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			cert.Name,
			cert.IssuingOrganization,
			cert.Year,
			cert.Description,
			cert.CertificateLink,
			cert.ID,
			cert.UserID,
		).Scan(&cert.CreatedAt, &cert.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to update certification: %w", err)
		}
		return replaceSkillLinks(ctx, tx, "certification_skills", "certification_id", cert.ID, skillIDs)
	})
}

func (r *certificationRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
