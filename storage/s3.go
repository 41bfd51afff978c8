package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MayoSR/cornell-student-housing-backend/config"
)

// S3Store keeps artifacts in an S3-compatible bucket, one object per key.
type S3Store struct {
	client *minio.Client
	bucket string
}

func NewS3Store(cfg config.Config) (*S3Store, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, &ArtifactError{Op: "init", Key: cfg.S3Endpoint, Err: err}
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return nil, &ArtifactError{Op: "init", Key: cfg.S3Bucket, Err: err}
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.S3Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, &ArtifactError{Op: "init", Key: cfg.S3Bucket, Err: err}
		}
	}

	return &S3Store{client: client, bucket: cfg.S3Bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return &ArtifactError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &ArtifactError{Op: "get", Key: key, Err: err}
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, &ArtifactError{Op: "get", Key: key, Err: ErrNotFound}
		}
		return nil, &ArtifactError{Op: "get", Key: key, Err: err}
	}
	return b, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	// RemoveObject succeeds for absent keys, so probe first: a missing
	// artifact has to be reported, not masked.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return &ArtifactError{Op: "delete", Key: key, Err: ErrNotFound}
		}
		return &ArtifactError{Op: "delete", Key: key, Err: err}
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return &ArtifactError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, &ArtifactError{Op: "list", Key: prefix, Err: obj.Err}
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (s *S3Store) Clear(ctx context.Context) error {
	keys, err := s.List(ctx, "")
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return &ArtifactError{Op: "clear", Key: key, Err: err}
		}
	}
	return nil
}
