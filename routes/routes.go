// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"swatbarber/handlers"
	"swatbarber/middleware"
	"swatbarber/services/admin"
)

// RegisterCatalogRoutes registers the public catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/barbers", handlers.GetBarbers)
		api.GET("/services", handlers.GetServices)
		api.GET("/timeslots", handlers.GetTimeSlots)
	}
}

// RegisterBookingRoutes sets up the public booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/availability", hb.Booking.GetAvailability)
		api.POST("/session", hb.Booking.StartSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PUT("/session/:sessionID/barber", hb.Booking.SelectBarber)
		api.PUT("/session/:sessionID/service", hb.Booking.SelectService)
		api.PUT("/session/:sessionID/datetime", hb.Booking.SelectDateTime)
		api.PUT("/session/:sessionID/customer", hb.Booking.SetCustomer)
		api.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterAppointmentRoutes sets up the authenticated dashboard endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthSvc, admin.RoleBarber, admin.RoleAdmin))
		api.GET("", hb.Appointments.List)
		api.GET("/dashboard", hb.Appointments.Dashboard)
		api.PATCH("/:id/status", hb.Appointments.UpdateStatus)
		api.PATCH("/:id/notes", hb.Storage.UpdateNotes)
		api.POST("/:id/files/:kind", hb.Storage.Upload)
		api.DELETE("/:id", hb.Appointments.Delete)
		api.DELETE("", hb.Appointments.Clear)
	}
}

// RegisterUnavailabilityRoutes sets up barber time-off management.
func RegisterUnavailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/unavailability")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthSvc, admin.RoleBarber, admin.RoleAdmin))
		api.POST("", hb.Unavailability.Mark)
		api.GET("", hb.Unavailability.List)
		api.DELETE("/:id", hb.Unavailability.Remove)
	}
}

// RegisterGalleryRoutes sets up public gallery reads and gated mutations.
func RegisterGalleryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/gallery")
	{
		api.GET("", hb.Gallery.List)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.AuthSvc, admin.RoleDeveloper))
		protected.POST("", hb.Gallery.Add)
		protected.DELETE("/:id", hb.Gallery.Delete)
		protected.DELETE("", hb.Gallery.Clear)
	}
}

// RegisterAuthRoutes sets up login, logout and session inspection.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/developer-login", hb.Auth.DeveloperLogin)

		api.GET("/session", middleware.AuthMiddleware(hb.AuthSvc), hb.Auth.Session)
		api.POST("/logout", middleware.AuthMiddleware(hb.AuthSvc), hb.Auth.Logout)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SWAT Barber API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterUnavailabilityRoutes(r, hb)
	RegisterGalleryRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
}
