package handlers

import (
	"net/http"
	"time"

	"location-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar events
type CalendarHandler struct {
	calendarService service.CalendarSyncServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarSyncServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// ListEvents handles GET /calendar/events?from=YYYY-MM-DD&to=YYYY-MM-DD
// @Summary List calendar events overlapping a date range
// @Tags calendar
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} service.CalendarEventResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must be a date (YYYY-MM-DD)", Field: "from"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must be a date (YYYY-MM-DD)", Field: "to"})
		return
	}

	events, err := h.calendarService.ListEventsInRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// MoveEvent handles PATCH /calendar/events/:id
// @Summary Move a calendar event
// @Description Move an event to new dates. Dates of a linked rental follow and its events are regenerated.
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param X-User-ID header string false "Acting user"
// @Param move body service.MoveEventRequest true "New dates"
// @Success 200 {object} service.CalendarEventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /calendar/events/{id} [patch]
func (h *CalendarHandler) MoveEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.MoveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ChangedBy = actingUser(c, req.ChangedBy)

	event, err := h.calendarService.MoveEvent(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
