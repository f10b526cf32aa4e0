package handlers

import (
	"net/http"

	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles invitations and self-registration
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// Invite emails a registration link to a new member
// @Summary Invite member
// @Description Creates a pending invitation and emails the registration link. The link uses the Origin header when it is an allowed origin, and APP_BASE_URL otherwise.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.InviteRequest true "Invitee"
// @Success 201 {object} service.InvitationResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "User or invitation already exists"
// @Failure 503 {object} ErrorResponse "Mail delivery not configured"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invitation, err := h.invitationService.Invite(c, &req, c.GetHeader("Origin"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// Verify checks a registration token
// @Summary Verify invitation
// @Tags invitations
// @Produce json
// @Param token query string true "Invitation token"
// @Success 200 {object} service.VerifyInvitationResponse
// @Failure 404 {object} ErrorResponse "Invitation not found or expired"
// @Router /api/auth/invitations/verify [get]
func (h *InvitationHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter is required"})
		return
	}
	resp, err := h.invitationService.Verify(token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register creates an account from an invitation
// @Summary Register with invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Token and password"
// @Success 201 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired invitation"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /api/auth/register [post]
func (h *InvitationHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.invitationService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
