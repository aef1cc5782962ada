package filestorage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional, e.g. MinIO
	PathStyle bool
}

// S3FileStorage keeps documents in one bucket of an S3-compatible service.
// Credentials come from the default AWS chain.
type S3FileStorage struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

func NewS3FileStorage(ctx context.Context, cfg S3Config) (*S3FileStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "ap-northeast-2"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3FileStorage(client, cfg.Bucket), nil
}

func newS3FileStorage(client *s3.Client, bucket string) *S3FileStorage {
	return &S3FileStorage{client: client, bucket: bucket, now: time.Now}
}

func (s *S3FileStorage) Save(ctx context.Context, file io.Reader, originalFileName, prefix, contentType string) (string, error) {
	key := objectPath(s.now(), originalFileName, prefix)

	body, ok := file.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(data)
	}

	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: body}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func (s *S3FileStorage) Open(ctx context.Context, filePath string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &filePath})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", filePath, err)
	}
	return out.Body, nil
}

func (s *S3FileStorage) Delete(ctx context.Context, filePath string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &filePath}); err != nil {
		return fmt.Errorf("delete %s: %w", filePath, err)
	}
	return nil
}
