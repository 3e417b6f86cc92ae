package storage

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/videoforge/backend/config"
)

// S3Storage implements ObjectStorage over one bucket; segments map to key
// prefixes ("uploads/...", "scripts/...").
type S3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage builds the S3 client from application configuration. A custom
// endpoint supports MinIO-style deployments.
func NewS3Storage(ctx context.Context, cfg appconfig.AppConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client, bucket: cfg.S3Bucket}, nil
}

// ListFiles returns files under the segment prefix, names relative to it.
func (s *S3Storage) ListFiles(ctx context.Context, segment string, maxKeys int32) ([]FileInfo, error) {
	prefix := segment + "/"
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(maxKeys),
	})
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
		if name == "" {
			continue
		}
		files = append(files, FileInfo{
			Filename: name,
			Size:     aws.ToInt64(obj.Size),
		})
	}
	return files, nil
}

// DeleteFile removes one object from the segment.
func (s *S3Storage) DeleteFile(ctx context.Context, segment, filename string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(segment + "/" + filename),
	})
	return err
}
