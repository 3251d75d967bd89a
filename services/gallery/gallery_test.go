package gallery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"swatbarber/models"
)

type mockGalleryRepo struct {
	images map[string]models.GalleryImage
	nextID int
}

func newMockGalleryRepo() *mockGalleryRepo {
	return &mockGalleryRepo{images: make(map[string]models.GalleryImage)}
}

func (m *mockGalleryRepo) EnsureIndexes() error { return nil }

func (m *mockGalleryRepo) Create(_ context.Context, img models.GalleryImage) (*models.GalleryImage, error) {
	if img.ID == "" {
		m.nextID++
		img.ID = fmt.Sprintf("img-%d", m.nextID)
	}
	m.images[img.ID] = img
	return &img, nil
}

func (m *mockGalleryRepo) GetAll(_ context.Context) ([]models.GalleryImage, error) {
	var out []models.GalleryImage
	for _, img := range m.images {
		out = append(out, img)
	}
	return out, nil
}

func (m *mockGalleryRepo) GetByType(_ context.Context, imageType string) ([]models.GalleryImage, error) {
	var out []models.GalleryImage
	for _, img := range m.images {
		if img.ImageType == imageType {
			out = append(out, img)
		}
	}
	return out, nil
}

func (m *mockGalleryRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := m.images[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.images, id)
	return nil
}

func (m *mockGalleryRepo) DeleteByType(_ context.Context, imageType string) (int64, error) {
	var n int64
	for id, img := range m.images {
		if img.ImageType == imageType {
			delete(m.images, id)
			n++
		}
	}
	return n, nil
}

func (m *mockGalleryRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.images))
	m.images = make(map[string]models.GalleryImage)
	return n, nil
}

func setupGalleryService() (*DefaultGalleryService, *mockGalleryRepo) {
	repo := newMockGalleryRepo()
	return &DefaultGalleryService{Repo: repo}, repo
}

func TestAddByURL(t *testing.T) {
	svc, _ := setupGalleryService()
	ctx := context.Background()

	img, err := svc.AddByURL(ctx, "https://cdn.example.com/cuts/fade-01.jpg", models.ImageTypeBefore, "", "")
	if err != nil {
		t.Fatalf("AddByURL failed: %v", err)
	}
	if img.Filename != "fade-01.jpg" {
		t.Errorf("filename = %q, want fade-01.jpg", img.Filename)
	}
	if img.Title != "Before - fade-01.jpg" {
		t.Errorf("default title = %q", img.Title)
	}
	if img.StoragePath != "https://cdn.example.com/cuts/fade-01.jpg" {
		t.Errorf("storage path = %q", img.StoragePath)
	}
}

func TestAddByURL_ExplicitTitle(t *testing.T) {
	svc, _ := setupGalleryService()

	img, err := svc.AddByURL(context.Background(), "https://cdn.example.com/a.png?v=2", models.ImageTypeAbout, "The Shop", "our chairs")
	if err != nil {
		t.Fatalf("AddByURL failed: %v", err)
	}
	if img.Title != "The Shop" || img.Description != "our chairs" {
		t.Errorf("explicit title/description not kept: %+v", img)
	}
}

func TestAddByURL_RejectsBadInput(t *testing.T) {
	svc, _ := setupGalleryService()
	ctx := context.Background()

	badURLs := []string{
		"ftp://example.com/a.jpg",
		"https://example.com/a.exe",
		"not a url",
		"https://example.com/noextension",
	}
	for _, u := range badURLs {
		if _, err := svc.AddByURL(ctx, u, models.ImageTypeBefore, "", ""); !errors.Is(err, ErrInvalidImageURL) {
			t.Errorf("url %q: expected ErrInvalidImageURL, got %v", u, err)
		}
	}

	if _, err := svc.AddByURL(ctx, "https://example.com/a.jpg", "poster", "", ""); !errors.Is(err, ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got %v", err)
	}
}

func TestListByType(t *testing.T) {
	svc, _ := setupGalleryService()
	ctx := context.Background()
	svc.AddByURL(ctx, "https://example.com/1.jpg", models.ImageTypeBefore, "", "")
	svc.AddByURL(ctx, "https://example.com/2.jpg", models.ImageTypeAfter, "", "")

	after, err := svc.ListByType(ctx, models.ImageTypeAfter)
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(after) != 1 || after[0].ImageType != models.ImageTypeAfter {
		t.Fatalf("unexpected section contents: %+v", after)
	}

	if _, err := svc.ListByType(ctx, "poster"); !errors.Is(err, ErrInvalidImageType) {
		t.Fatalf("expected ErrInvalidImageType, got %v", err)
	}
}

func TestDeleteAndClear(t *testing.T) {
	svc, repo := setupGalleryService()
	ctx := context.Background()
	img, _ := svc.AddByURL(ctx, "https://example.com/1.jpg", models.ImageTypeBefore, "", "")
	svc.AddByURL(ctx, "https://example.com/2.jpg", models.ImageTypeBefore, "", "")
	svc.AddByURL(ctx, "https://example.com/3.jpg", models.ImageTypeAbout, "", "")

	if err := svc.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, img.ID); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}

	deleted, err := svc.ClearType(ctx, models.ImageTypeBefore)
	if err != nil {
		t.Fatalf("ClearType failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("ClearType deleted %d, want 1", deleted)
	}

	deleted, err = svc.ClearAll(ctx)
	if err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if deleted != 1 || len(repo.images) != 0 {
		t.Fatalf("ClearAll deleted %d, %d remain", deleted, len(repo.images))
	}
}

func TestFilenameFromURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://cdn.example.com/cuts/fade-01.jpg", "fade-01.jpg"},
		{"https://cdn.example.com/a.png?v=2", "a.png"},
		{"https://cdn.example.com/", "image"},
	}
	for _, c := range cases {
		if got := filenameFromURL(c.in); got != c.want {
			t.Errorf("filenameFromURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
