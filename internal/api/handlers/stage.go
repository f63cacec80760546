package handlers

import (
	"net/http"

	"location-production-backend/internal/database/models"
	"location-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for stage lifecycle operations
type StageHandler struct {
	stageService service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(stageService service.StageServiceInterface) *StageHandler {
	return &StageHandler{
		stageService: stageService,
	}
}

// UpdateStageStatusRequest is the body of a status change
type UpdateStageStatusRequest struct {
	Status    models.StageStatus `json:"status" binding:"required"`
	Notes     string             `json:"notes,omitempty"`
	ChangedBy string             `json:"changed_by,omitempty"`
}

// CreateStage handles POST /stages
// @Summary Create a stage
// @Description Create a pending stage for a rental and refresh the rental completion
// @Tags stages
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Acting user"
// @Param stage body service.CreateStageRequest true "Stage data"
// @Success 201 {object} service.StageResponse "Stage created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stages [post]
func (h *StageHandler) CreateStage(c *gin.Context) {
	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.CreatedBy = actingUser(c, req.CreatedBy)

	stage, err := h.stageService.CreateStage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stage)
}

// GetStage handles GET /stages/:id
// @Summary Get a stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} service.StageResponse
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Router /stages/{id} [get]
func (h *StageHandler) GetStage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stage, err := h.stageService.GetStage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stage)
}

// UpdateStage handles PATCH /stages/:id
// @Summary Update a stage
// @Description Apply a partial update. Status or completion changes are recorded in the stage history.
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param X-User-ID header string false "Acting user"
// @Param stage body service.UpdateStageRequest true "Fields to change"
// @Success 200 {object} service.StageResponse
// @Failure 400 {object} ErrorResponse "Invalid request or transition"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stages/{id} [patch]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ChangedBy = actingUser(c, req.ChangedBy)

	stage, err := h.stageService.UpdateStage(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stage)
}

// UpdateStageStatus handles PUT /stages/:id/status
// @Summary Change a stage status
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param X-User-ID header string false "Acting user"
// @Param status body UpdateStageStatusRequest true "New status"
// @Success 200 {object} service.StageResponse
// @Failure 400 {object} ErrorResponse "Invalid request or transition"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Router /stages/{id}/status [put]
func (h *StageHandler) UpdateStageStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	stage, err := h.stageService.UpdateStageStatus(c.Request.Context(), id, req.Status, actingUser(c, req.ChangedBy), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stage)
}

// DeleteStage handles DELETE /stages/:id
// @Summary Delete a stage
// @Description Delete a stage and refresh the rental completion. History is kept.
// @Tags stages
// @Param id path string true "Stage ID"
// @Success 204 "Stage deleted"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Router /stages/{id} [delete]
func (h *StageHandler) DeleteStage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.stageService.DeleteStage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "stage not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStageHistory handles GET /stages/:id/history
// @Summary Get the history of a stage
// @Description Newest entry first. Still available after the stage is deleted.
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {array} service.StageHistoryResponse
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Router /stages/{id}/history [get]
func (h *StageHandler) GetStageHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.stageService.GetStageHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
