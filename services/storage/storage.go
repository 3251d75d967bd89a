// File: services/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadFile streams a file to Cloudinary into the specified folder and
// returns the permanent identifier together with its delivery URL.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, file io.Reader, filename, destFolder string) (*UploadResult, error) {
	publicID := strings.TrimSuffix(filename, filepath.Ext(filename))
	uploadParams := uploader.UploadParams{
		Folder:         destFolder,
		PublicID:       publicID,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		ResourceType:   "auto",
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &UploadResult{
		PublicID:  result.PublicID,
		SecureURL: result.SecureURL,
	}, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}

// deliveryVersion matches the "v<digits>" path segment of a Cloudinary
// delivery URL.
var deliveryVersion = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL derives the public ID from a Cloudinary delivery URL, for
// example ".../image/upload/v1712/appointments/receipts/gcash-01.jpg" yields
// "appointments/receipts/gcash-01". Returns "" when the URL does not look
// like a delivery URL.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx+1 >= len(parts) {
		return ""
	}
	rest := parts[uploadIdx+1:]
	if deliveryVersion.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return ""
	}
	publicID := strings.Join(rest, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}
