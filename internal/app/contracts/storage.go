package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectKey string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, objectKey string, expiryTime time.Duration) (string, error)
}
