package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type DiscoveryHandler struct {
	discoveryService *services.DiscoveryService
}

func NewDiscoveryHandler(discoveryService *services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
	}
}

// GetDiscovery returns trend-annotated recruits and the derived views
// @Summary Discovery views
// @Description Undervalued, rising by UTR, rising by ranking and under-contacted recruits
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DiscoveryResponse
// @Failure 500 {object} map[string]string
// @Router /api/discovery [get]
func (h *DiscoveryHandler) GetDiscovery(c *gin.Context) {
	data, err := h.discoveryService.GetDiscovery()
	if err != nil {
		respondError(c, err, "Failed to build discovery views")
		return
	}

	c.JSON(http.StatusOK, models.DiscoveryResponse{
		Success: true,
		Data:    *data,
	})
}
