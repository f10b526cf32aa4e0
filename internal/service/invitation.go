package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/logger"
	"ministry-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invitationSubject = "Invitación a Ministerio Conexión"

// PasswordHasher hashes plain passwords for storage
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// InvitationService handles invitations and invitation-based registration
type InvitationService struct {
	invitations repository.InvitationRepositoryInterface
	users       repository.UserRepositoryInterface
	mailer      Mailer
	hasher      PasswordHasher
	validator   *validator.Validate
	baseURL     string
	origins     map[string]struct{}
	ttl         time.Duration
	now         func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(invitations repository.InvitationRepositoryInterface, users repository.UserRepositoryInterface, mailer Mailer, hasher PasswordHasher, validator *validator.Validate, baseURL string, allowedOrigins []string, ttl time.Duration) *InvitationService {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" && origin != "*" {
			origins[origin] = struct{}{}
		}
	}
	return &InvitationService{
		invitations: invitations,
		users:       users,
		mailer:      mailer,
		hasher:      hasher,
		validator:   validator,
		baseURL:     baseURL,
		origins:     origins,
		ttl:         ttl,
		now:         time.Now,
	}
}

// InviteRequest represents the request to invite a new member
type InviteRequest struct {
	Name  string `json:"name" validate:"required,max=100" example:"Ana Lopez"`
	Email string `json:"email" validate:"required,email,max=255" example:"ana@example.com"`
}

// RegisterRequest completes a registration from an invitation
type RegisterRequest struct {
	Token    string `json:"token" validate:"required,len=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// InvitationResponse represents a sent invitation
type InvitationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Status    models.InvitationStatus `json:"status"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// VerifyInvitationResponse is returned for a usable invitation token
type VerifyInvitationResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// linkBase returns the request origin when it is one of the allowed origins,
// and APP_BASE_URL otherwise. A wildcard entry never admits an origin here.
func (s *InvitationService) linkBase(origin string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if _, ok := s.origins[origin]; ok {
		return origin
	}
	return strings.TrimRight(s.baseURL, "/")
}

// Invite creates an invitation and emails its link. The invitation is removed
// again when the email cannot be sent.
func (s *InvitationService) Invite(ctx context.Context, req *InviteRequest, origin string) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.invitations.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInvitationExists
	}

	user, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if user != nil {
		return nil, apperrors.ErrUserExists
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}

	invitation := &models.Invitation{
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
		Status:    models.InvitationStatusPending,
	}
	if err := s.invitations.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	link := s.linkBase(origin) + "/accept-invite?token=" + token

	if err := s.mailer.Send(ctx, &MailMessage{
		ToAddress: invitation.Email,
		ToName:    invitation.Name,
		Subject:   invitationSubject,
		HTMLBody:  invitationBody(invitation.Name, link, int(s.ttl.Hours())),
	}); err != nil {
		if delErr := s.invitations.Delete(invitation.ID); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("invitation_id", invitation.ID).Error("failed to roll back invitation")
		}
		return nil, fmt.Errorf("failed to send invitation email: %w", err)
	}

	return &InvitationResponse{
		ID:        invitation.ID,
		Name:      invitation.Name,
		Email:     invitation.Email,
		Status:    invitation.Status,
		ExpiresAt: invitation.ExpiresAt,
	}, nil
}

// Verify returns the invitee of a pending, unexpired token
func (s *InvitationService) Verify(token string) (*VerifyInvitationResponse, error) {
	invitation, err := s.usableInvitation(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvitationExpired) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}
	return &VerifyInvitationResponse{Email: invitation.Email, Name: invitation.Name}, nil
}

// Register creates the invited MEMBER and marks the invitation accepted
func (s *InvitationService) Register(req *RegisterRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.usableInvitation(req.Token)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(invitation.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         invitation.Name,
		Email:        invitation.Email,
		PasswordHash: hash,
		Role:         models.UserRoleMember,
	}
	if err := s.invitations.Accept(invitation, user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationExpired
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	resp := toMemberResponse(user)
	return &resp, nil
}

// usableInvitation loads a token and reports ErrInvitationExpired unless it is
// pending and unexpired.
func (s *InvitationService) usableInvitation(token string) (*models.Invitation, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrInvitationExpired
	}
	invitation, err := s.invitations.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationExpired
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if !invitation.IsUsable(s.now()) {
		return nil, apperrors.ErrInvitationExpired
	}
	return invitation, nil
}

func newInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func invitationBody(name, link string, hours int) string {
	safeLink := html.EscapeString(link)
	return `<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">` +
		`<h2>¡Hola ` + html.EscapeString(name) + `!</h2>` +
		`<p>Has sido invitado a unirte a Ministerio Conexión.</p>` +
		`<p><a href="` + safeLink + `" style="display:inline-block;padding:12px 20px;background:#2563eb;color:#fff;border-radius:6px;text-decoration:none;">Aceptar invitación</a></p>` +
		`<p>O copia este enlace en tu navegador:<br>` + safeLink + `</p>` +
		fmt.Sprintf(`<p style="color:#6b7280;font-size:13px;">Este enlace expira en %d horas.</p>`, hours) +
		`</div>`
}
