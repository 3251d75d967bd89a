// File: services/storage/interface.go
package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult carries the identifiers returned for a stored file.
type UploadResult struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureUrl"`
}

// StorageService defines the interface for file storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}
