package models

import "time"

// Gallery image types.
const (
	ImageTypeBefore = "before"
	ImageTypeAfter  = "after"
	ImageTypeAbout  = "about"
)

// ValidImageTypes lists the accepted gallery image types.
var ValidImageTypes = []string{ImageTypeBefore, ImageTypeAfter, ImageTypeAbout}

// GalleryImage is a piece of site content managed through the developer
// dashboard. StoragePath holds the publicly resolvable image URL.
type GalleryImage struct {
	ID          string    `bson:"id" json:"id"`
	Filename    string    `bson:"filename" json:"filename"`
	ImageType   string    `bson:"imageType" json:"imageType"`
	StoragePath string    `bson:"storagePath" json:"storagePath"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidImageType reports whether t is one of the gallery image types.
func IsValidImageType(t string) bool {
	for _, v := range ValidImageTypes {
		if t == v {
			return true
		}
	}
	return false
}
