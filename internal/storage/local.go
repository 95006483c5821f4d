package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalUploader writes images under a directory on disk. Used in development
// and tests when no S3 bucket is configured.
type LocalUploader struct {
	dir string
}

// NewLocalUploader creates the upload directory if needed.
func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(filepath.Join(dir, "posts"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

// UploadImage writes the image under the same posts/ key scheme S3 uses.
func (u *LocalUploader) UploadImage(ctx context.Context, data []byte, originalFilename string) (*UploadResult, error) {
	key := generateImageKey(originalFilename)

	path := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &UploadResult{
		Key:  key,
		URL:  "/media/" + key,
		Size: int64(len(data)),
	}, nil
}
