package main

import (
	"time"

	"go.uber.org/zap"
)

// trackExpiredTokensScheduleHandler() is a cronjob method that sets a cronJob to run at
// midnight every day to clean out authentication tokens that are past their expiry.
func (app *application) trackExpiredTokensScheduleHandler() {
	app.logger.Info("Starting the expired token tracking handler..", zap.String("time", time.Now().String()))
	trackingInterval := "0 0 * * *"

	_, err := app.config.scheduler.trackExpiredTokensCron.AddFunc(trackingInterval, app.trackExpiredTokens)
	if err != nil {
		app.logger.Error("Error adding [trackExpiredTokens] to scheduler", zap.Error(err))
	}
	// Run the cleanup first before starting the cron
	app.trackExpiredTokens()
	// start the cron scheduler
	app.config.scheduler.trackExpiredTokensCron.Start()
}

// trackExpiredTokens() is the method called by the cronjob to delete all expired
// authentication tokens from the database.
func (app *application) trackExpiredTokens() {
	app.logger.Info("Tracking expired tokens", zap.String("time", time.Now().String()))
	deleted, err := app.models.Tokens.DeleteAllExpired()
	if err != nil {
		app.logger.Error("Error deleting expired tokens", zap.Error(err))
		return
	}
	if deleted > 0 {
		app.logger.Info("Deleted expired tokens", zap.Int64("count", deleted))
	}
}
