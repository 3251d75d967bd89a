// File: database/repository/gallery/interface.go
package galleryRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"swatbarber/database"
	"swatbarber/models"
)

// GalleryRepository is the persistence contract for gallery image records.
type GalleryRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, img models.GalleryImage) (*models.GalleryImage, error)
	GetAll(ctx context.Context) ([]models.GalleryImage, error)
	GetByType(ctx context.Context, imageType string) ([]models.GalleryImage, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByType(ctx context.Context, imageType string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type mongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo constructs a new MongoDB GalleryRepository.
func NewMongoGalleryRepo() GalleryRepository {
	return &mongoGalleryRepo{
		coll: database.DB().Collection("gallery_images"),
	}
}
