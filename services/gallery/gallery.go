// File: services/gallery/gallery.go
package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	galleryRepo "swatbarber/database/repository/gallery"
	"swatbarber/models"
	"swatbarber/utils"
)

var (
	ErrInvalidImageURL  = errors.New("invalid image url")
	ErrInvalidImageType = errors.New("invalid image type")
	ErrImageNotFound    = errors.New("gallery image not found")
)

// imageURLPattern accepts http(s) URLs pointing at common image formats,
// with an optional query string.
var imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)(\?.*)?$`)

// GalleryService manages the public gallery content.
type GalleryService interface {
	AddByURL(ctx context.Context, imageURL, imageType, title, description string) (*models.GalleryImage, error)
	List(ctx context.Context) ([]models.GalleryImage, error)
	ListByType(ctx context.Context, imageType string) ([]models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	ClearType(ctx context.Context, imageType string) (int64, error)
	ClearAll(ctx context.Context) (int64, error)
}

// DefaultGalleryService implements GalleryService over the gallery repository.
type DefaultGalleryService struct {
	Repo galleryRepo.GalleryRepository
}

// AddByURL validates and stores one externally hosted image.
func (s *DefaultGalleryService) AddByURL(ctx context.Context, imageURL, imageType, title, description string) (*models.GalleryImage, error) {
	imageURL = strings.TrimSpace(imageURL)
	if !imageURLPattern.MatchString(imageURL) {
		return nil, ErrInvalidImageURL
	}
	if !models.IsValidImageType(imageType) {
		return nil, ErrInvalidImageType
	}

	filename := filenameFromURL(imageURL)
	if title == "" {
		title = fmt.Sprintf("%s - %s", capitalize(imageType), filename)
	}

	img, err := s.Repo.Create(ctx, models.GalleryImage{
		Filename:    filename,
		ImageType:   imageType,
		StoragePath: imageURL,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("gallery image added",
		zap.String("id", img.ID),
		zap.String("type", img.ImageType))
	return img, nil
}

func (s *DefaultGalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultGalleryService) ListByType(ctx context.Context, imageType string) ([]models.GalleryImage, error) {
	if !models.IsValidImageType(imageType) {
		return nil, ErrInvalidImageType
	}
	return s.Repo.GetByType(ctx, imageType)
}

func (s *DefaultGalleryService) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrImageNotFound
	}
	return err
}

func (s *DefaultGalleryService) ClearType(ctx context.Context, imageType string) (int64, error) {
	if !models.IsValidImageType(imageType) {
		return 0, ErrInvalidImageType
	}
	return s.Repo.DeleteByType(ctx, imageType)
}

func (s *DefaultGalleryService) ClearAll(ctx context.Context) (int64, error) {
	return s.Repo.DeleteAll(ctx)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// filenameFromURL extracts the last path segment of an image URL, falling
// back to "image" when the path cannot be parsed.
func filenameFromURL(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil || u.Path == "" {
		return "image"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "image"
	}
	return name
}
