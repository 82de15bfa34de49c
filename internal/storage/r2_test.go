package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Photo.PNG", "my-photo.png"},
		{"résumé (final).pdf", "rsum-final.pdf"},
		{"a   b---c.jpg", "a-b-c.jpg"},
		{"already-clean.webp", "already-clean.webp"},
		{"weird*chars?.png", "weirdchars.png"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFileName(tc.in), "input %q", tc.in)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("photo.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("photo.JPEG"))
	assert.Equal(t, "image/png", ContentTypeFor("icon.png"))
	assert.Equal(t, "image/svg+xml", ContentTypeFor("logo.svg"))
	assert.Equal(t, "video/mp4", ContentTypeFor("clip.mp4"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("archive.zip"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("no-extension"))
}

func TestEncodeFileID(t *testing.T) {
	id := EncodeFileID("jdoe/skills/go.png")

	decoded, err := base64.StdEncoding.DecodeString(id)
	assert.NoError(t, err)
	assert.Equal(t, "jdoe/skills/go.png", string(decoded))
}
