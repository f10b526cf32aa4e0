package handlers

import (
	"net/http"

	"ministry-portal-backend/internal/auth"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for ministry activities
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities returns all activities with their updates
// @Summary List activities
// @Tags activities
// @Produce json
// @Success 200 {array} service.ActivityResponse
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activityService.ListActivities()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivity creates an activity
// @Summary Create activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Responsible member not found"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.activityService.CreateActivity(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// UpdateStatus changes the status of an activity
// @Summary Update activity status
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param body body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.ActivityResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/status [put]
func (h *ActivityHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "activity")
	if !ok {
		return
	}
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.activityService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes an activity and its updates
// @Summary Delete activity
// @Tags activities
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Activity deleted"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "activity")
	if !ok {
		return
	}
	if err := h.activityService.DeleteActivity(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddUpdate posts a progress note authored by the caller
// @Summary Add activity update
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param body body service.CreateActivityUpdateRequest true "Update"
// @Success 201 {object} service.ActivityUpdateResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/updates [post]
func (h *ActivityHandler) AddUpdate(c *gin.Context) {
	authorID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	id, ok := parseIDParam(c, "id", "activity")
	if !ok {
		return
	}
	var req service.CreateActivityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update, err := h.activityService.AddUpdate(id, authorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}
