package handlers

import (
	"net/http"

	"ministry-portal-backend/internal/auth"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/scheduling"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftHandler exposes server-side event editing sessions
type DraftHandler struct {
	draftService service.DraftServiceInterface
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService service.DraftServiceInterface) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// SetDateRequest moves a draft to another day
type SetDateRequest struct {
	Date string `json:"date" binding:"required" example:"2024-03-10"`
}

// SetEventTypeRequest changes the event type of a draft
type SetEventTypeRequest struct {
	EventType string `json:"event_type" binding:"required" example:"GROUPS"`
}

// ProposeRoleRequest proposes a supervisor or staff value; empty clears it
type ProposeRoleRequest struct {
	Value string `json:"value" example:"RMenjivar"`
}

// ResolveConflictRequest answers a pending conflict
type ResolveConflictRequest struct {
	Action scheduling.Resolution `json:"action" binding:"required" example:"remove"`
}

// ExceptionModeRequest switches conflict checking off or on
type ExceptionModeRequest struct {
	Enabled bool `json:"enabled"`
}

// caller resolves the authenticated user and the draft id of the request
func (h *DraftHandler) caller(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return uuid.Nil, uuid.Nil, false
	}
	draftID, ok := parseIDParam(c, "id", "draft")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, draftID, true
}

// OpenDraft starts an editing session
// @Summary Open draft
// @Description Open a create session for a date or an edit session for an existing event
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft body service.OpenDraftRequest true "Date or event to edit"
// @Success 201 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /calendar/drafts [post]
func (h *DraftHandler) OpenDraft(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	var req service.OpenDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.draftService.Open(c, ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns the current state of a session
// @Summary Get draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} service.DraftResponse
// @Failure 403 {object} ErrorResponse "Draft belongs to another user"
// @Failure 404 {object} ErrorResponse "Draft not found or expired"
// @Security BearerAuth
// @Router /calendar/drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	draft, err := h.draftService.Get(ownerID, draftID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetDate moves the draft to another day
// @Summary Set draft date
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param body body SetDateRequest true "New date"
// @Success 200 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/date [put]
func (h *DraftHandler) SetDate(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.draftService.SetDate(ownerID, draftID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetEventType changes the event type of the draft
// @Summary Set draft event type
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param body body SetEventTypeRequest true "Event type key"
// @Success 200 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "Unknown event type"
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/event-type [put]
func (h *DraftHandler) SetEventType(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	var req SetEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.draftService.SetEventType(ownerID, draftID, req.EventType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ProposeRole proposes a supervisor or staff value
// @Summary Propose role value
// @Description Applies the value unless selected members already hold it. In that case the proposal carries the conflict and the draft waits for a resolution.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param kind path string true "Role kind" Enums(supervisor, staff)
// @Param body body ProposeRoleRequest true "Proposed value"
// @Success 200 {object} service.ProposalResponse
// @Failure 400 {object} ErrorResponse "Unknown role kind or value"
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/roles/{kind} [put]
func (h *DraftHandler) ProposeRole(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	var req ProposeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, err := h.draftService.ProposeRole(ownerID, draftID, scheduling.RoleKind(c.Param("kind")), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// ResolveConflict applies the editor's decision on the pending conflict
// @Summary Resolve role conflict
// @Description "remove" drops the conflicting members; "exception" keeps them and disables checks for the rest of the session
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param body body ResolveConflictRequest true "Resolution"
// @Success 200 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "No conflict pending or unknown action"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/resolve [post]
func (h *DraftHandler) ResolveConflict(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	var req ResolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.draftService.ResolveConflict(ownerID, draftID, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelConflict dismisses the pending conflict and keeps the previous values
// @Summary Cancel role conflict
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "No conflict pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/conflict [delete]
func (h *DraftHandler) CancelConflict(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	draft, err := h.draftService.CancelConflict(ownerID, draftID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ToggleMember adds or removes a member from the selection
// @Summary Toggle draft member
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} service.DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/members/{memberId} [post]
func (h *DraftHandler) ToggleMember(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "memberId", "member")
	if !ok {
		return
	}
	draft, err := h.draftService.ToggleMember(ownerID, draftID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetExceptionMode switches conflict checking
// @Summary Set draft exception mode
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Param body body ExceptionModeRequest true "Exception mode"
// @Success 200 {object} service.DraftResponse
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/exception-mode [put]
func (h *DraftHandler) SetExceptionMode(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	var req ExceptionModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.draftService.SetExceptionMode(ownerID, draftID, req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitDraft persists the draft
// @Summary Submit draft
// @Description Saves the draft as a new event or over the edited one. The session is closed on success and kept on failure.
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID (UUID)"
// @Success 200 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid draft"
// @Failure 409 {object} ErrorResponse "A conflict is pending"
// @Security BearerAuth
// @Router /calendar/drafts/{id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	event, err := h.draftService.Submit(c, ownerID, draftID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CloseDraft discards a session
// @Summary Close draft
// @Tags drafts
// @Param id path string true "Draft ID (UUID)"
// @Success 204 "Draft closed"
// @Failure 404 {object} ErrorResponse "Draft not found or expired"
// @Security BearerAuth
// @Router /calendar/drafts/{id} [delete]
func (h *DraftHandler) CloseDraft(c *gin.Context) {
	ownerID, draftID, ok := h.caller(c)
	if !ok {
		return
	}
	if err := h.draftService.Close(ownerID, draftID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
