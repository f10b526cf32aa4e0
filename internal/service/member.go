package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxAvatarBytes is the largest accepted avatar upload
const MaxAvatarBytes int64 = 5 << 20

var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// MemberService handles business logic for members and their profiles
type MemberService struct {
	users     repository.UserRepositoryInterface
	files     FileStore
	catalog   *catalog.Catalog
	validator *validator.Validate
	now       func() time.Time
}

// NewMemberService creates a new member service
func NewMemberService(users repository.UserRepositoryInterface, files FileStore, cat *catalog.Catalog, validator *validator.Validate) *MemberService {
	return &MemberService{
		users:     users,
		files:     files,
		catalog:   cat,
		validator: validator,
		now:       time.Now,
	}
}

// Upload is a file received from a client
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// MemberResponse represents a member as listed on the team page
type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image,omitempty"`
	IsStaff        bool      `json:"is_staff"`
	SupervisorName *string   `json:"supervisor_name"`
	StaffName      *string   `json:"staff_name"`
}

// ProfileResponse is the signed-in user's own profile
type ProfileResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Image string    `json:"image,omitempty"`
	Role  string    `json:"role"`
}

// UpdateProfileRequest changes the caller's name and/or image URL
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=500"`
}

// UpdateSupervisorRequest assigns a supervisor identity; empty clears it
type UpdateSupervisorRequest struct {
	SupervisorName string `json:"supervisor_name" example:"Pastor Juan"`
}

// UpdateStaffRequest sets the staff flag and identity of a member
type UpdateStaffRequest struct {
	IsStaff   bool   `json:"is_staff"`
	StaffName string `json:"staff_name,omitempty"`
}

// ListMembers returns all members ordered by name
func (s *MemberService) ListMembers() ([]MemberResponse, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	responses := make([]MemberResponse, len(users))
	for i := range users {
		responses[i] = toMemberResponse(&users[i])
	}
	return responses, nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(id uuid.UUID) (*MemberResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	resp := toMemberResponse(user)
	return &resp, nil
}

// GetProfile returns the profile of a user
func (s *MemberService) GetProfile(id uuid.UUID) (*ProfileResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

// UpdateProfile changes the name and/or image of a user. At least one is required.
func (s *MemberService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		updates["name"] = name
	}
	if req.Image != nil {
		updates["image"] = strings.TrimSpace(*req.Image)
	}
	if len(updates) == 0 {
		return nil, apperrors.NewValidationError("", "name or image is required")
	}

	if err := s.users.UpdateProfile(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(id)
}

// UploadAvatar stores a PNG, JPEG or WEBP image and sets it as the user's image
func (s *MemberService) UploadAvatar(id uuid.UUID, upload *Upload) (*ProfileResponse, error) {
	ext, ok := avatarExtensions[upload.ContentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, upload.ContentType)
	}
	if upload.Size > MaxAvatarBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	if _, err := s.getUser(id); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%d.%s", id, s.now().UnixMilli(), ext)
	url, err := s.files.Save("avatars", name, upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.users.UpdateProfile(id, map[string]interface{}{"image": url}); err != nil {
		_ = s.files.Remove(url)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return s.GetProfile(id)
}

// UpdateSupervisor sets or clears the supervisor identity of a member
func (s *MemberService) UpdateSupervisor(id uuid.UUID, req *UpdateSupervisorRequest) (*MemberResponse, error) {
	name := strings.TrimSpace(req.SupervisorName)
	if name != "" && !s.catalog.IsSupervisor(name) {
		return nil, apperrors.NewValidationError("supervisor_name", fmt.Sprintf("unknown supervisor %q", name))
	}

	if err := s.users.UpdateSupervisor(id, optionalString(name)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update supervisor: %w", err)
	}
	return s.GetMember(id)
}

// SetStaffStatus marks a member as staff, optionally with a staff identity.
// Removing the flag also clears the identity.
func (s *MemberService) SetStaffStatus(id uuid.UUID, req *UpdateStaffRequest) (*MemberResponse, error) {
	var staffName *string
	if req.IsStaff {
		name := strings.TrimSpace(req.StaffName)
		if name != "" && !s.catalog.IsStaff(name) {
			return nil, apperrors.NewValidationError("staff_name", fmt.Sprintf("unknown staff member %q", name))
		}
		staffName = optionalString(name)
	}

	if err := s.users.UpdateStaff(id, req.IsStaff, staffName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update staff status: %w", err)
	}
	return s.GetMember(id)
}

// DeleteMember removes a member and their assignments
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// Snapshot returns every member with the role fields the scheduling
// registry needs
func (s *MemberService) Snapshot() ([]scheduling.Member, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	members := make([]scheduling.Member, len(users))
	for i, u := range users {
		members[i] = scheduling.Member{
			ID:             u.ID,
			Name:           u.Name,
			Image:          u.Image,
			IsStaff:        u.IsStaff,
			SupervisorName: deref(u.SupervisorName),
			StaffName:      deref(u.StaffName),
		}
	}
	return members, nil
}

func (s *MemberService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func toMemberResponse(user *models.User) MemberResponse {
	return MemberResponse{
		ID:             user.ID,
		Name:           user.Name,
		Image:          user.Image,
		IsStaff:        user.IsStaff,
		SupervisorName: user.SupervisorName,
		StaffName:      user.StaffName,
	}
}

func toProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  string(user.Role),
	}
}

func memberFromRegistry(m scheduling.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Image:          m.Image,
		IsStaff:        m.IsStaff,
		SupervisorName: optionalString(m.SupervisorName),
		StaffName:      optionalString(m.StaffName),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
