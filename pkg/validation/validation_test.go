package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,username"`
	Password string `validate:"required,min=8"`
}

type projectPayload struct {
	Slug string `validate:"required,slug"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	assert.NoError(t, RegisterCustomValidators(v))
	return v
}

func TestUsernameValidator(t *testing.T) {
	v := newValidator(t)

	valid := registerPayload{Email: "a@b.com", Username: "jane_doe42", Password: "longenough"}
	assert.NoError(t, v.Struct(valid))

	invalid := valid
	invalid.Username = "jane doe!"
	assert.Error(t, v.Struct(invalid))
}

func TestSlugValidator(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(projectPayload{Slug: "my-first-project"}))
	assert.Error(t, v.Struct(projectPayload{Slug: "My First Project"}))
	assert.Error(t, v.Struct(projectPayload{Slug: "under_scores"}))
}

func TestFormatValidationErrorsReportsEveryViolation(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(registerPayload{Email: "not-an-email", Username: "x", Password: "short"})
	assert.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.Len(t, messages, 3)
}
