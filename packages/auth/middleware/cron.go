package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CronSecret rejects requests whose Authorization header is not
// "Bearer <secret>". An empty secret rejects everything.
func CronSecret(secret string) gin.HandlerFunc {
	expected := []byte("Bearer " + secret)

	return func(c *gin.Context) {
		slog.Debug("sync phase", "phase", "authenticating", "path", c.FullPath())

		got := []byte(c.GetHeader("Authorization"))
		if secret == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
			slog.Warn("cron request rejected", "path", c.FullPath(), "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
