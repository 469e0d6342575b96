package sink

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gridbrief/common"
)

// S3Uploader pushes the generated dataset artifacts to an S3 bucket.
type S3Uploader struct {
	client *common.S3
	bucket string
	prefix string
}

func NewS3Uploader(client *common.S3, bucket, prefix string) *S3Uploader {
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix}
}

// Upload writes the local artifact at path to bucket/prefix+name.
func (u *S3Uploader) Upload(ctx context.Context, path, name, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open artifact %s: %w", path, err)
	}
	defer f.Close()

	return u.client.Put(ctx, u.bucket, u.prefix+name, f, contentType, "public, max-age=300")
}
