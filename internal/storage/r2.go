package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"path"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// mimeTypes is the fixed extension to content-type table. Unknown extensions
// fall back to application/octet-stream.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".ico":  "image/x-icon",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".ogg":  "video/ogg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
}

var (
	whitespacePattern   = regexp.MustCompile(`\s+`)
	invalidCharsPattern = regexp.MustCompile(`[^\w\-.]`)
	repeatedHyphens     = regexp.MustCompile(`-+`)
)

// R2Uploader pushes objects to a Cloudflare R2 bucket. The client handle is
// built once at startup and is immutable afterwards, so it is safe to share
// across request goroutines.
type R2Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Uploader initializes the R2 client using static credentials and the
// account-scoped custom endpoint.
func NewR2Uploader(accountID, accessKey, secretKey, bucket, publicURL string) *R2Uploader {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      "auto",
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")

	return &R2Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload puts the blob at {username}/{subFolder}/{sanitized-filename} and
// returns its public URL. Failures are request-fatal; nothing is retried.
func (u *R2Uploader) Upload(ctx context.Context, data []byte, fileName, username, subFolder string) (*domain.UploadedFile, error) {
	sanitized := SanitizeFileName(fileName)
	folderPath := username
	if subFolder != "" {
		folderPath = username + "/" + subFolder
	}
	filePath := folderPath + "/" + sanitized

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(filePath),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentTypeFor(fileName)),
	})
	if err != nil {
		return nil, apperror.Upload(fmt.Errorf("r2 put %q: %w", filePath, err))
	}

	return &domain.UploadedFile{
		FileID:   EncodeFileID(filePath),
		Name:     sanitized,
		URL:      u.publicURL + "/" + filePath,
		FilePath: filePath,
		Size:     int64(len(data)),
	}, nil
}

// SanitizeFileName lower-cases the name, replaces whitespace with hyphens,
// strips everything outside [A-Za-z0-9_.-] and collapses repeated hyphens.
func SanitizeFileName(fileName string) string {
	s := whitespacePattern.ReplaceAllString(fileName, "-")
	s = invalidCharsPattern.ReplaceAllString(s, "")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// ContentTypeFor derives the content type from the file extension.
func ContentTypeFor(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ct, ok := mimeTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// EncodeFileID produces the reversible display id for a key path.
func EncodeFileID(filePath string) string {
	return base64.StdEncoding.EncodeToString([]byte(filePath))
}
