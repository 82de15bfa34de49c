package domain

import "context"

// FileUpload is an in-memory file received from a multipart request.
type FileUpload struct {
	Name string
	Data []byte
}

// UploadedFile describes an object pushed to the storage backend.
// FileID is a reversible encoding of the key path, kept for display only.
type UploadedFile struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
	Size     int64  `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Uploader pushes binary blobs to object storage under
// {username}/{subFolder}/{sanitized-filename}.
type Uploader interface {
	Upload(ctx context.Context, data []byte, fileName, username, subFolder string) (*UploadedFile, error)
}

type UploadUsecase interface {
	UploadImage(ctx context.Context, file FileUpload) (*UploadedFile, error)
}
