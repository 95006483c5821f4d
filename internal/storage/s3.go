package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores post images in an S3 bucket and serves them through a
// CDN base URL.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

// NewS3Uploader creates a new S3 uploader.
func NewS3Uploader(region, bucket, baseURL string) (*S3Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		region:  region,
		baseURL: baseURL,
	}, nil
}

// CheckBucketAccess verifies the configured bucket is reachable.
func (u *S3Uploader) CheckBucketAccess(ctx context.Context) error {
	_, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", u.bucket, err)
	}
	return nil
}

// UploadImage uploads an image under a generated posts/ key.
func (u *S3Uploader) UploadImage(ctx context.Context, data []byte, originalFilename string) (*UploadResult, error) {
	key := generateImageKey(originalFilename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentTypeFor(filepath.Ext(key))),
		CacheControl: aws.String("max-age=3600"),
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"upload-timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(u.baseURL, "/"), key)

	return &UploadResult{
		Key:  key,
		URL:  publicURL,
		Size: int64(len(data)),
	}, nil
}

// generateImageKey builds the opaque blob key for a post image.
func generateImageKey(originalFilename string) string {
	extension := strings.ToLower(filepath.Ext(originalFilename))
	if extension == "" {
		extension = ".jpg"
	}
	return fmt.Sprintf("posts/%s%s", uuid.New().String(), extension)
}

func contentTypeFor(extension string) string {
	switch strings.ToLower(extension) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
