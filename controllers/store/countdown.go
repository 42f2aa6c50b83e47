package storeControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /promo/countdown
//
// Today's offer runs until 23:59:59 local time; this reports the time
// left so the storefront can tick its own clock between refreshes.
func PromoCountdown() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

		diff := endOfDay.Sub(now)
		if diff <= 0 {
			c.JSON(http.StatusOK, gin.H{"expired": true, "hours": 0, "minutes": 0, "seconds": 0})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"expired": false,
			"hours":   int(diff.Hours()) % 24,
			"minutes": int(diff.Minutes()) % 60,
			"seconds": int(diff.Seconds()) % 60,
		})
	}
}
