// File: handlers/gallery.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swatbarber/services/gallery"
	"swatbarber/utils"
)

// GalleryHandler exposes the public gallery reads and the gated mutations.
type GalleryHandler struct {
	GallerySvc gallery.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler instance.
func NewGalleryHandler(svc gallery.GalleryService) *GalleryHandler {
	return &GalleryHandler{GallerySvc: svc}
}

// List returns every gallery image, or one section when type is given.
func (h *GalleryHandler) List(c *gin.Context) {
	if imageType := c.Query("type"); imageType != "" {
		images, err := h.GallerySvc.ListByType(c.Request.Context(), imageType)
		if err != nil {
			respondGalleryError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": images})
		return
	}

	images, err := h.GallerySvc.List(c.Request.Context())
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// Add stores a new externally hosted image.
func (h *GalleryHandler) Add(c *gin.Context) {
	var input struct {
		URL         string `json:"url" binding:"required"`
		Type        string `json:"type" binding:"required"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	img, err := h.GallerySvc.AddByURL(c.Request.Context(), input.URL, input.Type, input.Title, input.Description)
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// Delete removes one gallery image.
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.GallerySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}

// Clear wipes one section, or the whole gallery when no type is given.
func (h *GalleryHandler) Clear(c *gin.Context) {
	var (
		deleted int64
		err     error
	)
	if imageType := c.Query("type"); imageType != "" {
		deleted, err = h.GallerySvc.ClearType(c.Request.Context(), imageType)
	} else {
		deleted, err = h.GallerySvc.ClearAll(c.Request.Context())
	}
	if err != nil {
		respondGalleryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery cleared", "deletedCount": deleted})
}

func respondGalleryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gallery.ErrInvalidImageURL), errors.Is(err, gallery.ErrInvalidImageType):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, gallery.ErrImageNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "gallery operation failed", err.Error())
	}
}
