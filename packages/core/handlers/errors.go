package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/services"
)

// statusFor maps service errors to HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrRecruitNotFound),
		errors.Is(err, services.ErrProspectNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrHistoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrUnsupportedSource),
		errors.Is(err, services.ErrNoExternalIDs):
		return http.StatusBadRequest
	case errors.Is(err, fetch.ErrNotAvailable),
		errors.Is(err, services.ErrBadRankingsResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Internal errors are logged and
// replaced by fallback so storage details stay out of responses.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(fallback, "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}
