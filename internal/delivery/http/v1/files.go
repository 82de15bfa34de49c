package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// maxUploadSize caps every uploaded file at 10 MiB.
const maxUploadSize = 10 << 20

// readImageFile loads a multipart file into memory, enforcing the size cap
// and rejecting anything whose sniffed content type is not an image. The
// check runs before any storage call so bad files never leave the process.
func readImageFile(header *multipart.FileHeader) (*domain.FileUpload, error) {
	if header.Size > maxUploadSize {
		return nil, apperror.BadRequest("File too large (max 10MB)")
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperror.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, apperror.BadRequest("Unable to read uploaded file")
	}
	if len(data) > maxUploadSize {
		return nil, apperror.BadRequest("File too large (max 10MB)")
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, apperror.BadRequest("Only image files are allowed")
	}

	return &domain.FileUpload{
		Name: header.Filename,
		Data: data,
	}, nil
}

// optionalImageFile returns the named form file if present, nil otherwise.
func optionalImageFile(form *multipart.Form, field string) (*domain.FileUpload, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return readImageFile(headers[0])
}
