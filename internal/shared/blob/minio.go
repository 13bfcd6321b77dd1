package blob

import (
	"context"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/blob_store_mock.go -package=mock . Store

// Store mengabstraksi object storage untuk isi file; metadata tetap
// di Postgres.
type Store interface {
	Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, objectName string) (io.ReadCloser, error)
	Remove(ctx context.Context, objectName string) error
}

type minioStore struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseTLS    bool
}

func MinioConfigFromEnv() MinioConfig {
	return MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseTLS:    os.Getenv("MINIO_USE_TLS") == "true",
	}
}

func NewMinioStore(cfg MinioConfig, logger ...*zap.Logger) (Store, error) {
	l := zap.L().Named("blob.minio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("blob.minio")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseTLS,
	})
	if err != nil {
		return nil, err
	}

	return &minioStore{client: client, bucket: cfg.Bucket, logger: l}, nil
}

func (s *minioStore) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("put object failed", zap.String("object", objectName), zap.Error(err))
	}
	return err
}

func (s *minioStore) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Error("get object failed", zap.String("object", objectName), zap.Error(err))
		return nil, err
	}
	return obj, nil
}

func (s *minioStore) Remove(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.Error("remove object failed", zap.String("object", objectName), zap.Error(err))
	}
	return err
}
