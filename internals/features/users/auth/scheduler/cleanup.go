package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "learnhub_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler prunes expired blacklist entries and refresh
// tokens once an hour.
func StartTokenCleanupScheduler(db *gorm.DB) {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			now := time.Now()
			if err := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{}).Error; err != nil {
				log.Printf("[WARN] blacklist cleanup: %v", err)
			}
			if err := db.
				Where("expires_at < ?", now).
				Delete(&authModel.RefreshToken{}).Error; err != nil {
				log.Printf("[WARN] refresh token cleanup: %v", err)
			}
		}
	}()
}
