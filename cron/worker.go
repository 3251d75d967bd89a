// File: cron/worker.go
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	unavailabilityRepo "swatbarber/database/repository/unavailability"
	"swatbarber/utils"
)

// InitHousekeepingWorker starts the nightly job that purges unavailability
// records whose date has passed. Returns the scheduler so callers can stop
// it on shutdown.
func InitHousekeepingWorker(unavailRepo unavailabilityRepo.UnavailabilityRepository) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc("5 0 * * *", func() {
		purgeExpiredUnavailability(unavailRepo)
	})
	if err != nil {
		logger.Error("failed to schedule unavailability purge", zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("housekeeping worker started")

	// Catch up on anything that expired while the server was down.
	go purgeExpiredUnavailability(unavailRepo)

	return c
}

func purgeExpiredUnavailability(unavailRepo unavailabilityRepo.UnavailabilityRepository) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().Format("2006-01-02")
	deleted, err := unavailRepo.DeleteBefore(ctx, today)
	if err != nil {
		logger.Error("unavailability purge failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		logger.Info("purged expired unavailability", zap.Int64("deleted", deleted))
	}
}
