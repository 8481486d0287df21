package storage

import (
	"context"
	"io"
)

// UploadedMedia identifies an uploaded asset.
type UploadedMedia struct {
	PublicID string
	URL      string
}

// StorageService defines the media operations used for shop images.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, destFolder string) (*UploadedMedia, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}
