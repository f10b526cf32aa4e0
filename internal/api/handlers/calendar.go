package handlers

import (
	"bytes"
	"net/http"
	"time"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar events
type CalendarHandler struct {
	eventService service.EventServiceInterface
	catalog      *catalog.Catalog
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(eventService service.EventServiceInterface, cat *catalog.Catalog) *CalendarHandler {
	return &CalendarHandler{
		eventService: eventService,
		catalog:      cat,
	}
}

// CatalogResponse lists the event types and role identities the calendar accepts
type CatalogResponse struct {
	DefaultEventType string                  `json:"default_event_type"`
	EventTypes       []catalog.EventTypeInfo `json:"event_types"`
	Supervisors      []string                `json:"supervisors"`
	StaffMembers     []string                `json:"staff_members"`
}

// month returns the month query parameter, defaulting to the current month
func month(c *gin.Context) string {
	if m := c.Query("month"); m != "" {
		return m
	}
	return time.Now().Format("2006-01")
}

// GetCatalog returns the closed lists used by the calendar
// @Summary Get calendar catalog
// @Description Event types with their display metadata, supervisor identities and staff identities
// @Tags calendar
// @Produce json
// @Success 200 {object} CatalogResponse
// @Security BearerAuth
// @Router /calendar/catalog [get]
func (h *CalendarHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		DefaultEventType: h.catalog.DefaultEventType(),
		EventTypes:       h.catalog.EventTypes(),
		Supervisors:      h.catalog.Supervisors(),
		StaffMembers:     h.catalog.StaffMembers(),
	})
}

// ListEvents returns the events of a month
// @Summary List events of a month
// @Description Events of a YYYY-MM month ordered by date, each with its assigned members
// @Tags calendar
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {array} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListMonth(c, month(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetMonthGrid returns a month laid out in weeks
// @Summary Get month grid
// @Description Sunday-first weeks of the month, each day with its events and distinct supervisors
// @Tags calendar
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} service.MonthGridResponse
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /calendar/month [get]
func (h *CalendarHandler) GetMonthGrid(c *gin.Context) {
	grid, err := h.eventService.MonthGrid(c, month(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// ExportICS streams a month as an iCalendar file
// @Summary Export month as iCalendar
// @Description All-day VEVENTs for every event of the month. The token may be passed as a query parameter.
// @Tags calendar
// @Produce text/calendar
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {string} string "iCalendar feed"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /calendar/export.ics [get]
func (h *CalendarHandler) ExportICS(c *gin.Context) {
	m := month(c)
	var buf bytes.Buffer
	if err := h.eventService.ExportMonth(c, m, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendario-`+m+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// GetEvent retrieves an event by ID
// @Summary Get event by ID
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [get]
func (h *CalendarHandler) GetEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "event")
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event
// @Summary Create event
// @Description Create an event with its members. An empty event type uses the catalog default.
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body service.EventRequest true "Event data"
// @Success 201 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.eventService.CreateEvent(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// CreateRecurringEvents creates one event per RRULE occurrence
// @Summary Create recurring events
// @Description Expand an RRULE from the start date (at most 120 occurrences within one year) and create one event per occurrence
// @Tags calendar
// @Accept json
// @Produce json
// @Param event body service.RecurringEventRequest true "Template event and RRULE"
// @Success 201 {array} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request or rule"
// @Security BearerAuth
// @Router /calendar/events/recurring [post]
func (h *CalendarHandler) CreateRecurringEvents(c *gin.Context) {
	var req service.RecurringEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	events, err := h.eventService.CreateRecurring(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, events)
}

// UpdateEvent replaces an event
// @Summary Replace event
// @Description Overwrite the fields and the whole member set of an event
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.EventRequest true "Event data"
// @Success 200 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "event")
	if !ok {
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.eventService.ReplaceEvent(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event
// @Summary Delete event
// @Tags calendar
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Event deleted"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "event")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
