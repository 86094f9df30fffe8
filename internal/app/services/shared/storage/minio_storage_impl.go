package storage

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectKey string) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectKey, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return exceptions.ErrMinioUpload(err)
	}

	return nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectKey string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectKey, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresign(err)
	}

	return presignedURL.String(), nil
}
