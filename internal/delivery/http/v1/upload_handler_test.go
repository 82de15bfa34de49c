package v1_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
)

type stubUploadUsecase struct{}

func (stubUploadUsecase) UploadImage(_ context.Context, file domain.FileUpload) (*domain.UploadedFile, error) {
	return &domain.UploadedFile{Name: file.Name, URL: "https://cdn.example.com/" + file.Name}, nil
}

// Minimal PNG header so content type sniffing sees an image.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func imageForm(t *testing.T, field, name string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, name)
	assert.NoError(t, err)
	_, err = part.Write(pngMagic)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewUploadHandler(r.Group(""), stubUploadUsecase{})

	t.Run("Successful upload responds 200", func(t *testing.T) {
		body, contentType := imageForm(t, "image", "avatar.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "File uploaded")
	})

	t.Run("Missing file responds 400", func(t *testing.T) {
		body, contentType := imageForm(t, "wrong-field", "avatar.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file uploaded")
	})
}
