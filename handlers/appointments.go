// File: handlers/appointments.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swatbarber/services/admin"
	"swatbarber/utils"
)

// AppointmentHandler exposes the authenticated dashboard operations.
type AppointmentHandler struct {
	AdminSvc admin.AdminService
}

// NewAppointmentHandler creates a new AppointmentHandler instance.
func NewAppointmentHandler(svc admin.AdminService) *AppointmentHandler {
	return &AppointmentHandler{AdminSvc: svc}
}

// callerIdentity reads the principal placed on the context by the auth
// middleware. Admin and developer roles see every barber's data.
func callerIdentity(c *gin.Context) (role, subject string) {
	return c.GetString("role"), c.GetString("subject")
}

// List returns the caller's appointments, scoped by role.
func (h *AppointmentHandler) List(c *gin.Context) {
	role, subject := callerIdentity(c)
	appointments, err := h.AdminSvc.ListAppointments(c.Request.Context(), role, subject)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Dashboard returns one filtered dashboard tab with counters.
func (h *AppointmentHandler) Dashboard(c *gin.Context) {
	role, subject := callerIdentity(c)
	filter := c.DefaultQuery("filter", "all")

	view, err := h.AdminSvc.Dashboard(c.Request.Context(), role, subject, filter)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus transitions one appointment between statuses.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.AdminSvc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment status updated"})
}

// Delete removes a booking and its duration-block siblings.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	deleted, err := h.AdminSvc.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted", "deletedCount": deleted})
}

// Clear wipes the caller's appointment list. Admins clear everything,
// barbers only their own.
func (h *AppointmentHandler) Clear(c *gin.Context) {
	role, subject := callerIdentity(c)
	deleted, err := h.AdminSvc.ClearAppointments(c.Request.Context(), role, subject)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointments cleared", "deletedCount": deleted})
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrAppointmentNotFound), errors.Is(err, admin.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, admin.ErrInvalidStatus),
		errors.Is(err, admin.ErrUnknownBarber),
		errors.Is(err, admin.ErrInvalidSlot):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, admin.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
	}
}
