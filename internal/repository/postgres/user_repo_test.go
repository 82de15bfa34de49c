package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/pkg/apperror"
)

func TestUserConflictError(t *testing.T) {
	t.Run("Username constraint yields the username message", func(t *testing.T) {
		err := userConflictError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Username already taken", appErr.Message)
	})

	t.Run("Email constraint yields the email message", func(t *testing.T) {
		err := userConflictError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Email already registered", appErr.Message)
	})
}
