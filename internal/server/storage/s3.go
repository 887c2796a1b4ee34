// Package storage fronts the S3-compatible object store used for photo
// attachments: upload bytes under a generated key, hand back a public URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pairspace/loveos/internal/common"
)

// Seams for testing the AWS SDK wiring.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

type Settings struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// Uploader implements the binary storage collaborator over an S3-compatible
// backend (MinIO in development).
type Uploader struct {
	settings Settings
}

func NewUploader(settings Settings) *Uploader {
	return &Uploader{settings: settings}
}

// MakeStorageKey builds a date-partitioned object key that keeps the original
// file extension so public URLs stay recognizable to browsers.
func MakeStorageKey(name string) string {
	d := time.Now()
	ext := path.Ext(name)
	return fmt.Sprintf("photos/%d/%02d/%02d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (u *Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.settings.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.settings.RootUser,
			u.settings.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.settings.BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Upload stores data under a fresh key and returns the object's public URL.
// Failures are wrapped in common.ErrStorageUpload so callers can report them
// distinctly from table-store write failures.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}

	key := MakeStorageKey(name)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.settings.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}

	return u.PublicURL(key), nil
}

// PublicURL builds the path-style URL for a stored object.
func (u *Uploader) PublicURL(key string) string {
	base := strings.TrimSuffix(u.settings.BaseEndpoint, "/")
	return base + "/" + u.settings.Bucket + "/" + escapeKey(key)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
