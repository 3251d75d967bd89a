// File: database/repository/gallery/crud.go
package galleryRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swatbarber/models"
)

func (r *mongoGalleryRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "imageType", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("type_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create gallery indexes: %w", err)
	}
	return nil
}

func (r *mongoGalleryRepo) Create(ctx context.Context, img models.GalleryImage) (*models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to insert gallery image: %w", err)
	}
	return &img, nil
}

func (r *mongoGalleryRepo) GetAll(ctx context.Context) ([]models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("error decoding gallery images: %w", err)
	}
	return images, nil
}

func (r *mongoGalleryRepo) GetByType(ctx context.Context, imageType string) ([]models.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"imageType": imageType}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s gallery images: %w", imageType, err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("error decoding gallery images: %w", err)
	}
	return images, nil
}

func (r *mongoGalleryRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGalleryRepo) DeleteByType(ctx context.Context, imageType string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"imageType": imageType})
	if err != nil {
		return 0, fmt.Errorf("failed to clear %s gallery images: %w", imageType, err)
	}
	return res.DeletedCount, nil
}

func (r *mongoGalleryRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear gallery: %w", err)
	}
	return res.DeletedCount, nil
}
