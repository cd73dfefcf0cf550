package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// AddUTR records a UTR point and sets the recruit's current rating
// @Summary Add UTR history point
// @Description A second point for the same recruit and day is ignored
// @Tags history
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUTRHistoryRequest true "Rating point"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/utr-history [post]
func (h *HistoryHandler) AddUTR(c *gin.Context) {
	var req models.CreateUTRHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	point, err := h.historyService.AddUTR(req)
	if err != nil {
		respondError(c, err, "Failed to record UTR")
		return
	}

	respondData(c, http.StatusCreated, point)
}

// DeleteUTR removes one UTR history point
// @Summary Delete UTR history point
// @Tags history
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/utr-history/{id} [delete]
func (h *HistoryHandler) DeleteUTR(c *gin.Context) {
	if err := h.historyService.DeleteUTR(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete UTR entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddRanking records a national ranking point
// @Summary Add ranking history point
// @Tags history
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRankingHistoryRequest true "Ranking point"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/ranking-history [post]
func (h *HistoryHandler) AddRanking(c *gin.Context) {
	var req models.CreateRankingHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	point, err := h.historyService.AddRanking(req)
	if err != nil {
		respondError(c, err, "Failed to record ranking")
		return
	}

	respondData(c, http.StatusCreated, point)
}

// DeleteRanking removes one ranking history point
// @Summary Delete ranking history point
// @Tags history
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/ranking-history/{id} [delete]
func (h *HistoryHandler) DeleteRanking(c *gin.Context) {
	if err := h.historyService.DeleteRanking(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete ranking entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
