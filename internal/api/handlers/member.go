package handlers

import (
	"net/http"

	"ministry-portal-backend/internal/auth"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for members and profiles
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ListMembers returns every member
// @Summary List members
// @Description All members ordered by name with their supervisor and staff identities
// @Tags members
// @Produce json
// @Success 200 {array} service.MemberResponse
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}
	member, err := h.memberService.GetMember(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /profile [get]
func (h *MemberHandler) GetProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	profile, err := h.memberService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile changes the caller's name and/or image
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /profile [put]
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.memberService.UpdateProfile(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadAvatar replaces the caller's image with an uploaded file
// @Summary Upload avatar
// @Description PNG, JPEG or WEBP image up to 5 MB
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Missing, unsupported or oversized file"
// @Security BearerAuth
// @Router /profile/avatar [post]
func (h *MemberHandler) UploadAvatar(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}
	upload, closeFn, ok := formUpload(c, "file")
	if !ok {
		return
	}
	defer closeFn()

	profile, err := h.memberService.UploadAvatar(userID, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateSupervisor assigns or clears a member's supervisor identity
// @Summary Update member supervisor
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param body body service.UpdateSupervisorRequest true "Supervisor identity, empty to clear"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Unknown supervisor"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/supervisor [put]
func (h *MemberHandler) UpdateSupervisor(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}
	var req service.UpdateSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.memberService.UpdateSupervisor(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateStaff sets the staff flag and identity of a member
// @Summary Update member staff status
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param body body service.UpdateStaffRequest true "Staff flag and identity"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Unknown staff member"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/staff [put]
func (h *MemberHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}
	var req service.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.memberService.SetStaffStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member
// @Summary Delete member
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member deleted"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}
	if err := h.memberService.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
