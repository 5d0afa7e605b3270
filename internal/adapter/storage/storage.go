// Package storage uploads media files to an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/weeklycontents/backend/internal/domain"
)

// Options configures the connection to the object store.
type Options struct {
	// Endpoint overrides the S3 endpoint, e.g. for R2 or MinIO.
	Endpoint      string
	Region        string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes uploaded files to a bucket and returns their public URLs.
type Uploader struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	log           *slog.Logger
}

func New(ctx context.Context, opts Options, logger *slog.Logger) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return newWithClient(client, opts, logger), nil
}

func newWithClient(client objectPutter, opts Options, logger *slog.Logger) *Uploader {
	return &Uploader{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		log:           logger.With("adapter", "storage"),
	}
}

// Upload stores the file under a freshly generated key derived from its
// declared content type and returns the public URL of the object.
// Content types other than png/jpeg/jpg are rejected.
func (u *Uploader) Upload(ctx context.Context, contentType string, body io.Reader) (domain.URL, error) {
	key, err := objectKey(contentType)
	if err != nil {
		return "", err
	}

	u.log.DebugContext(ctx, "storage upload", slog.String("key", key), slog.String("content_type", contentType))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object: %w", err)
	}

	url := domain.URL(u.publicBaseURL + "/" + key)
	u.log.InfoContext(ctx, "storage upload done", slog.String("url", url.String()))
	return url, nil
}

// objectKey derives the bucket key from the declared content type. Both jpeg
// variants are normalized to a .jpg suffix.
func objectKey(contentType string) (string, error) {
	switch contentType {
	case "image/png":
		return "image/" + uuid.New().String() + ".png", nil
	case "image/jpeg", "image/jpg":
		return "image/" + uuid.New().String() + ".jpg", nil
	default:
		return "", fmt.Errorf("storage: content type %q: %w", contentType, domain.ErrUnsupportedMedia)
	}
}
