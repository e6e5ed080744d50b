package utils

import (
	"fmt"
	"log"
	"time"

	"menucard/config"
	"menucard/database"
	"menucard/models"

	"github.com/robfig/cron/v3"
)

// logJanitor logs janitor events with timestamp
func logJanitor(message string) {
	log.Printf("[OTP-JANITOR %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredOtps hard-deletes OTP rows older than the configured TTL.
func purgeExpiredOtps() {
	cutoff := time.Now().Add(-config.AppConfig.OtpTTL)

	result := database.Database.Db.
		Where("created_at <= ?", cutoff).
		Delete(&models.OTP{})
	if result.Error != nil {
		logJanitor("Error purging expired OTPs: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logJanitor(fmt.Sprintf("Purged %d expired OTP records", result.RowsAffected))
	}
}

// InitializeOtpJanitor starts the sweep that enforces the OTP TTL at the
// store level. Reads filter on created_at anyway; the sweep keeps the
// table from accumulating dead rows.
func InitializeOtpJanitor() *cron.Cron {
	c := cron.New()

	c.AddFunc("* * * * *", purgeExpiredOtps)
	c.Start()

	logJanitor("OTP janitor started - runs every minute")
	return c
}
