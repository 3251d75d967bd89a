// File: handlers/storage.go
package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swatbarber/models"
	"swatbarber/services/admin"
	"swatbarber/services/storage"
	"swatbarber/utils"
)

// maxUploadBytes caps appointment file uploads at 5 MB.
const maxUploadBytes = 5 << 20

// allowedUploadExts defines permitted file extensions per upload kind.
var allowedUploadExts = map[string]map[string]bool{
	"receipt": {".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".pdf": true},
	"notes":   {".pdf": true, ".doc": true, ".docx": true, ".txt": true},
}

// StorageHandler handles appointment file uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	AdminSvc   admin.AdminService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(storageSvc storage.StorageService, adminSvc admin.AdminService) *StorageHandler {
	return &StorageHandler{
		StorageSvc: storageSvc,
		AdminSvc:   adminSvc,
	}
}

// Upload attaches a receipt or notes file to an appointment. The stored
// delivery URL is persisted on the appointment record; a file it replaces is
// destroyed in Cloudinary.
func (h *StorageHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	allowed, ok := allowedUploadExts[kind]
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid upload kind; allowed values are 'receipt' and 'notes'", "")
		return
	}

	appt, err := h.AdminSvc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAdminError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "file exceeds the 5MB limit", "")
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowed[ext] {
		utils.JSONError(c, http.StatusBadRequest, "file type not allowed for "+kind+" uploads", "")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	destFolder := "appointments/notes"
	if kind == "receipt" {
		destFolder = "appointments/receipts"
	}
	result, err := h.StorageSvc.UploadFile(c.Request.Context(), file, fileHeader.Filename, destFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	upd := models.AppointmentFileUpdate{}
	previousURL := ""
	if kind == "receipt" {
		previousURL = appt.ReceiptURL
		upd.ReceiptURL = &result.SecureURL
	} else {
		previousURL = appt.NotesURL
		upd.NotesURL = &result.SecureURL
	}
	if err := h.AdminSvc.UpdateFiles(c.Request.Context(), appt.ID, upd); err != nil {
		respondAdminError(c, err)
		return
	}

	// The record now points at the new file; the replaced one is orphaned
	// and can go. A failed destroy only leaves a dangling asset behind.
	if publicID := storage.PublicIDFromURL(previousURL); publicID != "" {
		if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
			utils.GetLogger().Warn("storage: failed to destroy replaced file",
				zap.String("appointmentId", appt.ID),
				zap.String("publicId", publicID),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicId":    result.PublicID,
		"downloadURL": result.SecureURL,
	})
}

// UpdateNotes persists free-text notes on an appointment.
func (h *StorageHandler) UpdateNotes(c *gin.Context) {
	var input struct {
		Notes string `json:"notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	upd := models.AppointmentFileUpdate{Notes: &input.Notes}
	if err := h.AdminSvc.UpdateFiles(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment notes updated"})
}
