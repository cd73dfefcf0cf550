package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type RecruitHandler struct {
	recruitService *services.RecruitService
}

func NewRecruitHandler(recruitService *services.RecruitService) *RecruitHandler {
	return &RecruitHandler{
		recruitService: recruitService,
	}
}

// GetRecruits lists every recruit
// @Summary List recruits
// @Description All recruits, best national ranking first, unranked last
// @Tags recruits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/recruits [get]
func (h *RecruitHandler) GetRecruits(c *gin.Context) {
	recruits, err := h.recruitService.GetRecruits()
	if err != nil {
		respondError(c, err, "Failed to retrieve recruits")
		return
	}

	respondData(c, http.StatusOK, recruits)
}

// GetRecruit retrieves a recruit with both history series
// @Summary Get recruit
// @Tags recruits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recruit ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/recruits/{id} [get]
func (h *RecruitHandler) GetRecruit(c *gin.Context) {
	recruit, err := h.recruitService.GetRecruitByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve recruit")
		return
	}

	respondData(c, http.StatusOK, recruit)
}

// CreateRecruit adds a recruit from the manual form or the browser extension
// @Summary Create recruit
// @Tags recruits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRecruitRequest true "Recruit"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/recruits [post]
func (h *RecruitHandler) CreateRecruit(c *gin.Context) {
	var req models.CreateRecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recruit, err := h.recruitService.CreateRecruit(req)
	if err != nil {
		respondError(c, err, "Failed to create recruit")
		return
	}

	respondData(c, http.StatusCreated, recruit)
}

// UpdateRecruit applies a partial update
// @Summary Update recruit
// @Tags recruits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Recruit ID"
// @Param request body models.UpdateRecruitRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recruits/{id} [patch]
func (h *RecruitHandler) UpdateRecruit(c *gin.Context) {
	var req models.UpdateRecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recruit, err := h.recruitService.UpdateRecruit(c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update recruit")
		return
	}

	respondData(c, http.StatusOK, recruit)
}

// DeleteRecruit removes a recruit and everything it owns
// @Summary Delete recruit
// @Tags recruits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recruit ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/recruits/{id} [delete]
func (h *RecruitHandler) DeleteRecruit(c *gin.Context) {
	if err := h.recruitService.DeleteRecruit(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete recruit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
