package handlers

import (
	"net/http"
	"strconv"

	"location-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RentalHandler handles HTTP requests scoped to one rental
type RentalHandler struct {
	rentalService   service.RentalServiceInterface
	stageService    service.StageServiceInterface
	calendarService service.CalendarSyncServiceInterface
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalService service.RentalServiceInterface, stageService service.StageServiceInterface, calendarService service.CalendarSyncServiceInterface) *RentalHandler {
	return &RentalHandler{
		rentalService:   rentalService,
		stageService:    stageService,
		calendarService: calendarService,
	}
}

// CreateRental handles POST /rentals
// @Summary Create a rental
// @Description Create a rental, optionally with the default stages, and generate its calendar events
// @Tags rentals
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Acting user"
// @Param rental body service.CreateRentalRequest true "Rental data"
// @Success 201 {object} service.RentalResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project or location not found"
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req service.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.CreatedBy = actingUser(c, req.CreatedBy)

	rental, err := h.rentalService.CreateRental(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// GetRental handles GET /rentals/:id
// @Summary Get a rental
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} service.RentalResponse
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rental, err := h.rentalService.GetRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// DeleteRental handles DELETE /rentals/:id
// @Summary Delete a rental with its stages and events
// @Tags rentals
// @Param id path string true "Rental ID"
// @Success 204 "Rental deleted"
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id} [delete]
func (h *RentalHandler) DeleteRental(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.rentalService.DeleteRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "rental not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateProductionDates handles PATCH /rentals/:id/dates
// @Summary Change a rental's production dates
// @Description Patch the rental range and production dates, then regenerate the calendar events
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param X-User-ID header string false "Acting user"
// @Param dates body service.UpdateProductionDatesRequest true "Dates to change"
// @Success 200 {object} service.RentalResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/dates [patch]
func (h *RentalHandler) UpdateProductionDates(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductionDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ChangedBy = actingUser(c, req.ChangedBy)

	rental, err := h.rentalService.UpdateProductionDates(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// GetProgress handles GET /rentals/:id/progress
// @Summary Get a rental's progress summary
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} service.RentalProgressResponse
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/progress [get]
func (h *RentalHandler) GetProgress(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.stageService.GetRentalProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// RecomputeProgress handles POST /rentals/:id/progress/recompute
// @Summary Recompute a rental's stored completion percentage
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/progress/recompute [post]
func (h *RentalHandler) RecomputeProgress(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	completion, err := h.stageService.RecomputeRentalProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rental_id": id, "completion_percentage": completion})
}

// ListStages handles GET /rentals/:id/stages
// @Summary List a rental's stages in lifecycle order
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {array} service.StageResponse
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/stages [get]
func (h *RentalHandler) ListStages(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stages, err := h.stageService.ListStagesByRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stages)
}

// CreateDefaultStages handles POST /rentals/:id/stages/defaults
// @Summary Create the default stage set for a rental
// @Description Stage types the rental already has are skipped
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Param X-User-ID header string false "Acting user"
// @Success 201 {array} service.StageResponse
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/stages/defaults [post]
func (h *RentalHandler) CreateDefaultStages(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stages, err := h.stageService.CreateDefaultStages(c.Request.Context(), id, actingUser(c, ""))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stages)
}

// GetHistory handles GET /rentals/:id/history
// @Summary Get the stage history feed of a rental
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.StageHistoryListResponse
// @Router /rentals/{id}/history [get]
func (h *RentalHandler) GetHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	history, err := h.stageService.GetRentalHistory(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// ListEvents handles GET /rentals/:id/events
// @Summary List a rental's calendar events
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {array} service.CalendarEventResponse
// @Router /rentals/{id}/events [get]
func (h *RentalHandler) ListEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.calendarService.ListEventsByRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// RegenerateEvents handles POST /rentals/:id/events/regenerate
// @Summary Regenerate a rental's calendar events from its dates
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {array} service.CalendarEventResponse
// @Failure 404 {object} ErrorResponse "Rental not found"
// @Router /rentals/{id}/events/regenerate [post]
func (h *RentalHandler) RegenerateEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	events, err := h.calendarService.RegenerateEventsForRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// DeleteEvents handles DELETE /rentals/:id/events
// @Summary Delete a rental's calendar events
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} map[string]interface{}
// @Router /rentals/{id}/events [delete]
func (h *RentalHandler) DeleteEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.calendarService.DeleteEvents(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
