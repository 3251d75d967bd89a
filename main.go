// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"swatbarber/config"
	"swatbarber/cron"
	"swatbarber/database"
	appointmentRepoPkg "swatbarber/database/repository/appointment"
	galleryRepoPkg "swatbarber/database/repository/gallery"
	unavailabilityRepoPkg "swatbarber/database/repository/unavailability"
	"swatbarber/handlers"
	"swatbarber/routes"
	"swatbarber/services/admin"
	"swatbarber/services/auth"
	"swatbarber/services/booking"
	"swatbarber/services/gallery"
	"swatbarber/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitSessionCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	unavailRepo := unavailabilityRepoPkg.NewMongoUnavailabilityRepo()
	galRepo := galleryRepoPkg.NewMongoGalleryRepo()

	for name, ensure := range map[string]func() error{
		"appointments":   apptRepo.EnsureIndexes,
		"unavailability": unavailRepo.EnsureIndexes,
		"gallery":        galRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilityCache := booking.NewRedisStore(utils.GetCacheClient())
	bookingService := &booking.DefaultBookingService{
		ApptRepo:    apptRepo,
		UnavailRepo: unavailRepo,
		Sessions:    booking.NewRedisStore(utils.GetSessionCacheClient()),
		Cache:       availabilityCache,
	}
	adminService := &admin.DefaultAdminService{
		ApptRepo:    apptRepo,
		UnavailRepo: unavailRepo,
		Cache:       availabilityCache,
	}
	galleryService := &gallery.DefaultGalleryService{
		Repo: galRepo,
	}
	authService, err := auth.NewDefaultAuthService(utils.GetAuthCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth service: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthSvc:        authService,
		Booking:        handlers.NewBookingHandler(bookingService),
		Appointments:   handlers.NewAppointmentHandler(adminService),
		Unavailability: handlers.NewUnavailabilityHandler(adminService),
		Gallery:        handlers.NewGalleryHandler(galleryService),
		Auth:           handlers.NewAuthHandler(authService),
		Storage:        handlers.NewStorageHandler(cloudinaryStorageService, adminService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	housekeeper := cron.InitHousekeepingWorker(unavailRepo)
	defer housekeeper.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
