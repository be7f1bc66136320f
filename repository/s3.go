package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Blobs stores files as objects under a key prefix in one bucket.
type S3Blobs struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Blobs(ctx context.Context, region, bucket, prefix string) (*S3Blobs, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for s3: %w", err)
	}
	return &S3Blobs{client: s3.NewFromConfig(cfg), bucket: bucket, prefix: prefix}, nil
}

func (s *S3Blobs) key(id string) string {
	return s.prefix + id
}

func (s *S3Blobs) Put(ctx context.Context, data []byte, name, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	id := uuid.NewString()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(id)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{"filename": name},
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return id, nil
}

func (s *S3Blobs) Get(ctx context.Context, id string) ([]byte, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		var missing *s3types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", err
	}
	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = defaultContentType
	}
	return data, contentType, nil
}

// Delete is idempotent on S3: removing a missing key succeeds.
func (s *S3Blobs) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	return err
}
