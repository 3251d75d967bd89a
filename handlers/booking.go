// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swatbarber/models"
	"swatbarber/services/booking"
	"swatbarber/utils"
)

// BookingHandler exposes the booking wizard and the availability endpoints.
type BookingHandler struct {
	Availability booking.AvailabilityService
	Sessions     booking.SessionService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc *booking.DefaultBookingService) *BookingHandler {
	return &BookingHandler{
		Availability: svc,
		Sessions:     svc,
	}
}

// GetAvailability returns the per-slot status for a barber on a date.
// The optional duration query narrows the grid to starts that fit the service.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	barber := c.Query("barber")
	date := c.Query("date")
	if barber == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "barber and date are required", "")
		return
	}

	duration := 0
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "")
			return
		}
		duration = parsed
	} else if serviceID := c.Query("serviceId"); serviceID != "" {
		svc, ok := models.GetServiceByID(serviceID)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown service", "")
			return
		}
		duration = svc.Duration
	}

	resp, err := h.Availability.AvailableSlots(c.Request.Context(), barber, date, duration)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartSession creates a new empty wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Sessions.Start(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectBarber records the chosen barber on the session.
func (h *BookingHandler) SelectBarber(c *gin.Context) {
	var input struct {
		Barber string `json:"barber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.SelectBarber(c.Request.Context(), c.Param("sessionID"), input.Barber)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectService records the chosen service on the session.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDateTime records the chosen slot after re-checking availability.
func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.SelectDateTime(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetCustomer records the customer contact details on the session.
func (h *BookingHandler) SetCustomer(c *gin.Context) {
	var input models.CustomerInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.SetCustomer(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm finalizes the booking and returns the receipt.
func (h *BookingHandler) Confirm(c *gin.Context) {
	receipt, err := h.Sessions.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CancelSession abandons the wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrUnknownBarber),
		errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrInvalidStep),
		errors.Is(err, booking.ErrIncompleteBooking):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrDayUnavailable),
		errors.Is(err, booking.ErrPastTime),
		errors.Is(err, booking.ErrDurationConflict),
		errors.Is(err, booking.ErrOutsideWindow):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
