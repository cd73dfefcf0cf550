package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/services"
)

type SyncHandler struct {
	rankingSyncService *services.RankingSyncService
	itfSyncService     *services.ITFSyncService
}

func NewSyncHandler(rankingSyncService *services.RankingSyncService, itfSyncService *services.ITFSyncService) *SyncHandler {
	return &SyncHandler{
		rankingSyncService: rankingSyncService,
		itfSyncService:     itfSyncService,
	}
}

// SyncRankings refreshes tracked recruits and scans the class lists
// @Summary Sync tennisrecruiting rankings
// @Description Per-recruit failures are reported in details; the run always returns a summary
// @Tags cron
// @Security CronSecret
// @Produce json
// @Success 200 {object} models.RankingSyncResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cron/sync-rankings [get]
func (h *SyncHandler) SyncRankings(c *gin.Context) {
	resp, err := h.rankingSyncService.Run(c.Request.Context())
	if err != nil {
		respondError(c, err, "Ranking sync failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SyncITF reconciles the ITF junior ranking
// @Summary Sync ITF rankings
// @Tags cron
// @Security CronSecret
// @Produce json
// @Success 200 {object} models.ProspectImportResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/cron/sync-itf [get]
func (h *SyncHandler) SyncITF(c *gin.Context) {
	resp, err := h.itfSyncService.Run(c.Request.Context())
	if err != nil {
		respondError(c, err, "ITF sync failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}
