// Package storage issues presigned URLs for profile pictures and study
// material files. Uploads go straight from the browser to the object store;
// this server only hands out keys and URLs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/config"
)

// test seams around the AWS SDK constructors
var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
)

// UploadService wraps an S3-compatible backend (MinIO in development).
type UploadService struct {
	config *config.Config
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{config: cfg}
}

func (s *UploadService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3 config error: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignPut returns a fresh storage key under the given prefix and a
// presigned PUT URL valid for 15 minutes.
func (s *UploadService) PresignPut(ctx context.Context, prefix string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("%s/%s", prefix, uuid.NewString())

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("presign error: %w", err)
	}

	return key, req.URL, nil
}

// PresignGet returns a presigned GET URL for an existing storage key.
func (s *UploadService) PresignGet(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presign error: %w", err)
	}

	return req.URL, nil
}
