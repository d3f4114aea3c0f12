package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/gcottrell13/cs430-project3/pkg/config"
	"github.com/gcottrell13/cs430-project3/pkg/core"
	"github.com/gcottrell13/cs430-project3/pkg/renderer"
)

const UploadTimeout = 10 * time.Second

var ErrUploadDisabled = errors.New("S3 upload is not configured")

// Uploader puts rendered images into an S3-compatible bucket
type Uploader struct {
	client  s3iface.S3API
	bucket  string
	timeout time.Duration
	logger  core.Logger
}

// NewUploader creates an uploader for the configured bucket
func NewUploader(cfg config.S3Config, logger core.Logger) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrUploadDisabled
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewUploaderWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewUploaderWithClient wraps an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, bucket string, logger core.Logger) *Uploader {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Uploader{
		client:  client,
		bucket:  bucket,
		timeout: UploadTimeout,
		logger:  logger,
	}
}

// Upload stores data under key
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return nil
}

// UploadFrame encodes the frame in format and uploads it under key
func (u *Uploader) UploadFrame(ctx context.Context, key string, frame *renderer.Frame, format string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, frame, format); err != nil {
		return err
	}
	return u.Upload(ctx, key, buf.Bytes(), ContentType(format))
}
