package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

type InteractionHandler struct {
	interactionService *services.InteractionService
	exportService      *services.ExportService
}

func NewInteractionHandler(interactionService *services.InteractionService, exportService *services.ExportService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		exportService:      exportService,
	}
}

// LogInteraction records a contact with a recruit
// @Summary Log interaction
// @Description Stores the contact and sets the recruit's last_contacted
// @Tags interactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateInteractionRequest true "Interaction"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/interactions [post]
func (h *InteractionHandler) LogInteraction(c *gin.Context) {
	var req models.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	interaction, err := h.interactionService.LogInteraction(req)
	if err != nil {
		respondError(c, err, "Failed to log interaction")
		return
	}

	respondData(c, http.StatusCreated, interaction)
}

// GetInteractions lists a recruit's contacts, newest first
// @Summary List interactions
// @Tags interactions
// @Security BearerAuth
// @Produce json
// @Param recruit_id query string true "Recruit ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/interactions [get]
func (h *InteractionHandler) GetInteractions(c *gin.Context) {
	recruitID := c.Query("recruit_id")
	if recruitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recruit_id is required"})
		return
	}

	interactions, err := h.interactionService.GetInteractionsByRecruit(recruitID)
	if err != nil {
		respondError(c, err, "Failed to retrieve interactions")
		return
	}

	respondData(c, http.StatusOK, interactions)
}

// ExportARMS downloads the contact log in ARMS CSV layout
// @Summary ARMS export
// @Tags interactions
// @Security BearerAuth
// @Produce text/csv
// @Param recruit_id query string false "Recruit ID, or all"
// @Success 200 {string} string "CSV"
// @Router /api/exports/arms [get]
func (h *InteractionHandler) ExportARMS(c *gin.Context) {
	recruitID := c.DefaultQuery("recruit_id", "all")

	var buf bytes.Buffer
	if err := h.exportService.WriteARMS(&buf, recruitID); err != nil {
		respondError(c, err, "Failed to export interactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "arms-export.csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
