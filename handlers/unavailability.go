// File: handlers/unavailability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swatbarber/models"
	"swatbarber/services/admin"
	"swatbarber/utils"
)

// UnavailabilityHandler manages barber time-off records.
type UnavailabilityHandler struct {
	AdminSvc admin.AdminService
}

// NewUnavailabilityHandler creates a new UnavailabilityHandler instance.
func NewUnavailabilityHandler(svc admin.AdminService) *UnavailabilityHandler {
	return &UnavailabilityHandler{AdminSvc: svc}
}

// targetBarber resolves which barber a request operates on. Barbers may only
// touch their own calendar; admins name any barber via the query parameter.
func targetBarber(c *gin.Context) string {
	role, subject := callerIdentity(c)
	if role == admin.RoleBarber {
		return subject
	}
	if b := c.Query("barber"); b != "" {
		return b
	}
	return subject
}

// Mark records unavailability: either a whole day or a set of slot labels.
func (h *UnavailabilityHandler) Mark(c *gin.Context) {
	var input struct {
		Barber   string   `json:"barber"`
		Date     string   `json:"date" binding:"required"`
		Times    []string `json:"times"`
		WholeDay bool     `json:"wholeDay"`
		Reason   string   `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	role, subject := callerIdentity(c)
	barber := input.Barber
	if role == admin.RoleBarber || barber == "" {
		barber = subject
	}

	if input.WholeDay {
		slot, err := h.AdminSvc.MarkWholeDay(c.Request.Context(), barber, input.Date, input.Reason)
		if err != nil {
			respondAdminError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "whole day marked unavailable", "slot": slot})
		return
	}

	if len(input.Times) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "times are required unless wholeDay is set", "")
		return
	}
	slots, err := h.AdminSvc.MarkTimeSlots(c.Request.Context(), barber, input.Date, input.Times, input.Reason)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "time slots marked unavailable", "slots": slots})
}

// List returns upcoming unavailability for the target barber, optionally
// narrowed to one date.
func (h *UnavailabilityHandler) List(c *gin.Context) {
	barber := targetBarber(c)
	if barber == "" {
		utils.JSONError(c, http.StatusBadRequest, "barber is required", "")
		return
	}

	var (
		slots []models.UnavailabilitySlot
		err   error
	)
	if date := c.Query("date"); date != "" {
		slots, err = h.AdminSvc.ListUnavailabilityForDate(c.Request.Context(), barber, date)
	} else {
		slots, err = h.AdminSvc.ListUnavailability(c.Request.Context(), barber)
	}
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// Remove deletes one unavailability record.
func (h *UnavailabilityHandler) Remove(c *gin.Context) {
	if err := h.AdminSvc.RemoveUnavailability(c.Request.Context(), c.Param("id")); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unavailability removed"})
}
