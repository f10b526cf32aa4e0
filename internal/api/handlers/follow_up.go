package handlers

import (
	"net/http"
	"strconv"

	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowUpHandler handles HTTP requests for evangelism follow-ups
type FollowUpHandler struct {
	followUpService service.FollowUpServiceInterface
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(followUpService service.FollowUpServiceInterface) *FollowUpHandler {
	return &FollowUpHandler{followUpService: followUpService}
}

// FollowUpListResponse is a page of follow-ups
type FollowUpListResponse struct {
	FollowUps []service.FollowUpResponse `json:"follow_ups"`
	Total     int64                      `json:"total"`
	Limit     int                        `json:"limit"`
	Offset    int                        `json:"offset"`
}

// ListFollowUps returns a page of follow-ups, newest first
// @Summary List follow-ups
// @Tags follow-ups
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} FollowUpListResponse
// @Security BearerAuth
// @Router /follow-ups [get]
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	followUps, total, err := h.followUpService.ListFollowUps(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FollowUpListResponse{
		FollowUps: followUps,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// CreateFollowUp records a new contact
// @Summary Create follow-up
// @Tags follow-ups
// @Accept json
// @Produce json
// @Param followUp body service.CreateFollowUpRequest true "Follow-up data"
// @Success 201 {object} service.FollowUpResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /follow-ups [post]
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	var req service.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	followUp, err := h.followUpService.CreateFollowUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, followUp)
}

// UpdateStatus changes the status of a follow-up
// @Summary Update follow-up status
// @Tags follow-ups
// @Accept json
// @Produce json
// @Param id path string true "Follow-up ID (UUID)"
// @Param body body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.FollowUpResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Follow-up not found"
// @Security BearerAuth
// @Router /follow-ups/{id}/status [put]
func (h *FollowUpHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "follow-up")
	if !ok {
		return
	}
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	followUp, err := h.followUpService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followUp)
}

// DeleteFollowUp removes a follow-up
// @Summary Delete follow-up
// @Tags follow-ups
// @Param id path string true "Follow-up ID (UUID)"
// @Success 204 "Follow-up deleted"
// @Failure 404 {object} ErrorResponse "Follow-up not found"
// @Security BearerAuth
// @Router /follow-ups/{id} [delete]
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "follow-up")
	if !ok {
		return
	}
	if err := h.followUpService.DeleteFollowUp(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
