// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swatbarber/models"
)

// GetBarbers returns the static shop roster.
func GetBarbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"barbers": models.Barbers})
}

// GetServices returns the price list, including the Korean Perm variants.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":          models.Services,
		"koreanPermOptions": models.KoreanPermOptions,
		"priorityFee":       models.PriorityFee,
	})
}

// GetTimeSlots returns the bookable slot grid.
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timeSlots":         models.TimeSlots,
		"slotMinutes":       models.SlotMinutes,
		"bookingWindowDays": models.BookingWindowDays,
	})
}
