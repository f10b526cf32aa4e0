package service

import (
	"errors"
	"fmt"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpService handles business logic for evangelism follow-ups
type FollowUpService struct {
	repo      repository.FollowUpRepositoryInterface
	validator *validator.Validate
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(repo repository.FollowUpRepositoryInterface, validator *validator.Validate) *FollowUpService {
	return &FollowUpService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFollowUpRequest represents the request to record a contact
type CreateFollowUpRequest struct {
	Evangelizer      string `json:"evangelizer" validate:"required,max=100" example:"Luis"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-03"`
	FullName         string `json:"full_name" validate:"required,max=200" example:"Maria Perez"`
	Whatsapp         string `json:"whatsapp" validate:"required,max=50" example:"+50499990000"`
	Email            string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	AcceptedJesus    string `json:"accepted_jesus" validate:"required,max=50" example:"SI"`
	Reason           string `json:"reason" validate:"max=2000"`
	AgreedToFollowUp string `json:"agreed_to_follow_up" validate:"required,max=50" example:"SI"`
	Observations     string `json:"observations,omitempty" validate:"max=2000"`
}

// FollowUpResponse represents the response for follow-up operations
type FollowUpResponse struct {
	ID               uuid.UUID         `json:"id"`
	Evangelizer      string            `json:"evangelizer"`
	Date             string            `json:"date"`
	FullName         string            `json:"full_name"`
	Whatsapp         string            `json:"whatsapp"`
	Email            string            `json:"email,omitempty"`
	AcceptedJesus    string            `json:"accepted_jesus"`
	Reason           string            `json:"reason"`
	AgreedToFollowUp string            `json:"agreed_to_follow_up"`
	Observations     string            `json:"observations,omitempty"`
	Status           models.TaskStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}

// CreateFollowUp records a new contact with status PENDING
func (s *FollowUpService) CreateFollowUp(req *CreateFollowUpRequest) (*FollowUpResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	followUp := &models.FollowUp{
		Evangelizer:      req.Evangelizer,
		Date:             date,
		FullName:         req.FullName,
		Whatsapp:         req.Whatsapp,
		Email:            req.Email,
		AcceptedJesus:    req.AcceptedJesus,
		Reason:           req.Reason,
		AgreedToFollowUp: req.AgreedToFollowUp,
		Observations:     req.Observations,
		Status:           models.TaskStatusPending,
	}
	if err := s.repo.Create(followUp); err != nil {
		return nil, fmt.Errorf("failed to create follow-up: %w", err)
	}

	resp := toFollowUpResponse(followUp)
	return &resp, nil
}

// ListFollowUps returns a page of follow-ups, newest first
func (s *FollowUpService) ListFollowUps(limit, offset int) ([]FollowUpResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	followUps, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	responses := make([]FollowUpResponse, len(followUps))
	for i := range followUps {
		responses[i] = toFollowUpResponse(&followUps[i])
	}
	return responses, total, nil
}

// UpdateStatus changes the status of a follow-up
func (s *FollowUpService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*FollowUpResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFollowUpNotFound
		}
		return nil, fmt.Errorf("failed to update follow-up: %w", err)
	}

	followUp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFollowUpNotFound
		}
		return nil, fmt.Errorf("failed to get follow-up: %w", err)
	}
	resp := toFollowUpResponse(followUp)
	return &resp, nil
}

// DeleteFollowUp removes a follow-up
func (s *FollowUpService) DeleteFollowUp(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFollowUpNotFound
		}
		return fmt.Errorf("failed to delete follow-up: %w", err)
	}
	return nil
}

func toFollowUpResponse(f *models.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		ID:               f.ID,
		Evangelizer:      f.Evangelizer,
		Date:             f.Date.Format(dateLayout),
		FullName:         f.FullName,
		Whatsapp:         f.Whatsapp,
		Email:            f.Email,
		AcceptedJesus:    f.AcceptedJesus,
		Reason:           f.Reason,
		AgreedToFollowUp: f.AgreedToFollowUp,
		Observations:     f.Observations,
		Status:           f.Status,
		CreatedAt:        f.CreatedAt,
	}
}
