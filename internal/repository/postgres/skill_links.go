package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// replaceSkillLinks swaps the full tag set of a parent row inside the caller's
// transaction. An empty skillIDs slice clears all links.
func replaceSkillLinks(ctx context.Context, tx pgx.Tx, table, parentColumn, parentID string, skillIDs []string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, parentColumn)
	if _, err := tx.Exec(ctx, deleteQuery, parentID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, parentColumn)
	for _, skillID := range skillIDs {
		if _, err := tx.Exec(ctx, insertQuery, parentID, skillID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperror.BadRequest(fmt.Sprintf("Skill %s does not exist", skillID))
			}
			return fmt.Errorf("failed to link skill: %w", err)
		}
	}
	return nil
}

// fetchSkillsForParents loads the tagged skills for a batch of parent rows in
// one query and returns them grouped by parent id.
func fetchSkillsForParents(ctx context.Context, q querier, table, parentColumn string, parentIDs []string) (map[string][]domain.Skill, error) {
	result := make(map[string][]domain.Skill, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT j.%s, s.id, s.user_id, s.name, s.icon, s.created_at, s.updated_at
		FROM %s j
		JOIN skills s ON s.id = j.skill_id
		WHERE j.%s = ANY($1::uuid[])
		ORDER BY s.name`, parentColumn, table, parentColumn)

	rows, err := q.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch linked skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var parentID string
		var s domain.Skill
		if err := rows.Scan(&parentID, &s.ID, &s.UserID, &s.Name, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan linked skill: %w", err)
		}
		result[parentID] = append(result[parentID], s)
	}
	return result, rows.Err()
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
