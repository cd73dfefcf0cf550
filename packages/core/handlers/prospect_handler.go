package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type ProspectHandler struct {
	prospectService *services.ProspectService
	itfSyncService  *services.ITFSyncService
}

func NewProspectHandler(prospectService *services.ProspectService, itfSyncService *services.ITFSyncService) *ProspectHandler {
	return &ProspectHandler{
		prospectService: prospectService,
		itfSyncService:  itfSyncService,
	}
}

// GetProspects lists scouting prospects
// @Summary List prospects
// @Description Prospects by current rank, optionally filtered by source and rising flag
// @Tags prospects
// @Security BearerAuth
// @Produce json
// @Param source query string false "itf or tennisrecruiting"
// @Param rising query bool false "Only rising (or only non-rising) prospects"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/prospects [get]
func (h *ProspectHandler) GetProspects(c *gin.Context) {
	var filter services.ProspectFilter

	if source := c.Query("source"); source != "" {
		filter.Source = models.Source(source)
		if !filter.Source.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source parameter"})
			return
		}
	}
	if risingStr := c.Query("rising"); risingStr != "" {
		rising, err := strconv.ParseBool(risingStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rising parameter"})
			return
		}
		filter.Rising = &rising
	}

	prospects, err := h.prospectService.GetProspects(filter)
	if err != nil {
		respondError(c, err, "Failed to retrieve prospects")
		return
	}

	respondData(c, http.StatusOK, prospects)
}

// DeleteProspect dismisses a prospect
// @Summary Delete prospect
// @Tags prospects
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/prospects/{id} [delete]
func (h *ProspectHandler) DeleteProspect(c *gin.Context) {
	if err := h.prospectService.DeleteProspect(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete prospect")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PromoteProspect turns a prospect into a tracked recruit
// @Summary Promote prospect
// @Tags prospects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Prospect ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/prospects/{id}/promote [post]
func (h *ProspectHandler) PromoteProspect(c *gin.Context) {
	recruit, err := h.prospectService.PromoteProspect(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to promote prospect")
		return
	}

	respondData(c, http.StatusCreated, recruit)
}

// ImportProspects reconciles ITF players captured in the browser
// @Summary Import ITF prospects
// @Description Eligibility is filtered again server-side before reconciling
// @Tags prospects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ImportProspectsRequest true "ITF ranking players"
// @Success 200 {object} models.ProspectImportResponse
// @Failure 400 {object} map[string]string
// @Router /api/prospects/import [post]
func (h *ProspectHandler) ImportProspects(c *gin.Context) {
	var req models.ImportProspectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.itfSyncService.Import(req.Players)
	if err != nil {
		respondError(c, err, "Failed to import prospects")
		return
	}

	c.JSON(http.StatusOK, resp)
}
