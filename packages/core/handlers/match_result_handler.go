package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type MatchResultHandler struct {
	matchResultService *services.MatchResultService
}

func NewMatchResultHandler(matchResultService *services.MatchResultService) *MatchResultHandler {
	return &MatchResultHandler{
		matchResultService: matchResultService,
	}
}

// GetMatchResults lists a recruit's stored matches, latest first
// @Summary List match results
// @Tags match-results
// @Security BearerAuth
// @Produce json
// @Param recruit_id query string true "Recruit ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/match-results [get]
func (h *MatchResultHandler) GetMatchResults(c *gin.Context) {
	recruitID := c.Query("recruit_id")
	if recruitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recruit_id is required"})
		return
	}

	results, err := h.matchResultService.GetMatchResults(recruitID)
	if err != nil {
		respondError(c, err, "Failed to retrieve match results")
		return
	}

	respondData(c, http.StatusOK, results)
}

// IngestMatchResults fetches or parses a recruit's activity
// @Summary Ingest match results
// @Description With html and source the markup is parsed as supplied, otherwise both sources are fetched. Duplicates are dropped.
// @Tags match-results
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.IngestMatchResultsRequest true "Recruit and optional markup"
// @Success 200 {object} models.IngestMatchResultsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/match-results [post]
func (h *MatchResultHandler) IngestMatchResults(c *gin.Context) {
	var req models.IngestMatchResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.matchResultService.Ingest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to ingest match results")
		return
	}

	c.JSON(http.StatusOK, resp)
}
