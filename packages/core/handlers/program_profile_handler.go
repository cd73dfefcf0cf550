package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type ProgramProfileHandler struct {
	profileService *services.ProgramProfileService
}

func NewProgramProfileHandler(profileService *services.ProgramProfileService) *ProgramProfileHandler {
	return &ProgramProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the program profile
// @Summary Get program profile
// @Tags program-profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/program-profile [get]
func (h *ProgramProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondError(c, err, "Failed to retrieve program profile")
		return
	}

	respondData(c, http.StatusOK, profile)
}

// UpdateProfile changes the target range or criteria
// @Summary Update program profile
// @Tags program-profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProgramProfileRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/program-profile [patch]
func (h *ProgramProfileHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProgramProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.TargetRankingMin != nil && req.TargetRankingMax != nil && *req.TargetRankingMin > *req.TargetRankingMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_ranking_min must not exceed target_ranking_max"})
		return
	}

	profile, err := h.profileService.UpdateProfile(req)
	if err != nil {
		respondError(c, err, "Failed to update program profile")
		return
	}

	respondData(c, http.StatusOK, profile)
}

// CalculateFit scores a recruit against the profile criteria
// @Summary Calculate fit score
// @Description Scores are 0-10 per criterion; the weighted result is stored on the recruit
// @Tags program-profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CalculateFitRequest true "Criterion scores"
// @Success 200 {object} models.CalculateFitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/calculate-fit [post]
func (h *ProgramProfileHandler) CalculateFit(c *gin.Context) {
	var req models.CalculateFitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	for key, score := range req.Scores {
		if score < 0 || score > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "score for " + key + " must be between 0 and 10"})
			return
		}
	}

	resp, err := h.profileService.CalculateFit(req)
	if err != nil {
		respondError(c, err, "Failed to calculate fit score")
		return
	}

	c.JSON(http.StatusOK, resp)
}
