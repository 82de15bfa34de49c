package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

func setupErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	r.GET("/missing", func(c *gin.Context) {
		c.Error(apperror.NotFound("Project not found"))
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	return r
}

func TestErrorHandler(t *testing.T) {
	r := setupErrorRouter()

	t.Run("AppError body carries the error field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Project not found", body["message"])
		assert.Equal(t, "Project not found", body["error"])
	})

	t.Run("Unexpected error is a generic 500 with the error field set", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		assert.NotEmpty(t, body["error"])
	})
}
