package storage

import "context"

// UploadResult describes where an uploaded image landed.
type UploadResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// ImageUploader stores post images as opaque blobs under generated keys.
// Implementations: S3Uploader for production, LocalUploader for development
// and tests.
type ImageUploader interface {
	UploadImage(ctx context.Context, data []byte, originalFilename string) (*UploadResult, error)
}

var (
	_ ImageUploader = (*S3Uploader)(nil)
	_ ImageUploader = (*LocalUploader)(nil)
)
