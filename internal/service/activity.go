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

// ActivityService handles business logic for ministry activities
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		repo:      repo,
		users:     users,
		validator: validator,
	}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Name          string    `json:"name" validate:"required,min=1,max=200" example:"Retiro de jóvenes"`
	Description   string    `json:"description" validate:"max=2000"`
	Icon          string    `json:"icon" validate:"max=50" example:"Tent"`
	Color         string    `json:"color" validate:"max=50" example:"bg-green-500"`
	ResponsibleID uuid.UUID `json:"responsible_id" validate:"required"`
}

// UpdateStatusRequest changes the status of an activity or follow-up
type UpdateStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required,oneof=PENDING DONE CANCELLED" example:"DONE"`
}

// CreateActivityUpdateRequest is a progress note on an activity
type CreateActivityUpdateRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=5000"`
}

// ActivityUpdateResponse represents a progress note
type ActivityUpdateResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    MemberResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
}

// ActivityResponse represents the response for activity operations
type ActivityResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	Color       string                   `json:"color"`
	Status      models.TaskStatus        `json:"status"`
	Responsible MemberResponse           `json:"responsible"`
	Updates     []ActivityUpdateResponse `json:"updates"`
	CreatedAt   time.Time                `json:"created_at"`
}

// CreateActivity creates a pending activity
func (s *ActivityService) CreateActivity(req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.users.GetByID(req.ResponsibleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify responsible member: %w", err)
	}

	activity := &models.Activity{
		Name:          req.Name,
		Description:   req.Description,
		Icon:          req.Icon,
		Color:         req.Color,
		ResponsibleID: req.ResponsibleID,
		Status:        models.TaskStatusPending,
	}
	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.getActivity(activity.ID)
}

// ListActivities returns all activities, newest first
func (s *ActivityService) ListActivities() ([]ActivityResponse, error) {
	activities, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = toActivityResponse(&activities[i])
	}
	return responses, nil
}

// UpdateStatus changes the status of an activity
func (s *ActivityService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return s.getActivity(id)
}

// DeleteActivity removes an activity together with its updates
func (s *ActivityService) DeleteActivity(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// AddUpdate posts a progress note authored by authorID
func (s *ActivityService) AddUpdate(activityID, authorID uuid.UUID, req *CreateActivityUpdateRequest) (*ActivityUpdateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	author, err := s.users.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	update := &models.ActivityUpdate{
		ActivityID: activityID,
		AuthorID:   authorID,
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := s.repo.CreateUpdate(update); err != nil {
		return nil, fmt.Errorf("failed to create activity update: %w", err)
	}
	update.Author = *author

	resp := toActivityUpdateResponse(update)
	return &resp, nil
}

func (s *ActivityService) getActivity(id uuid.UUID) (*ActivityResponse, error) {
	activity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func toActivityResponse(activity *models.Activity) ActivityResponse {
	updates := make([]ActivityUpdateResponse, len(activity.Updates))
	for i := range activity.Updates {
		updates[i] = toActivityUpdateResponse(&activity.Updates[i])
	}
	return ActivityResponse{
		ID:          activity.ID,
		Name:        activity.Name,
		Description: activity.Description,
		Icon:        activity.Icon,
		Color:       activity.Color,
		Status:      activity.Status,
		Responsible: toMemberResponse(&activity.Responsible),
		Updates:     updates,
		CreatedAt:   activity.CreatedAt,
	}
}

func toActivityUpdateResponse(update *models.ActivityUpdate) ActivityUpdateResponse {
	return ActivityUpdateResponse{
		ID:        update.ID,
		Title:     update.Title,
		Content:   update.Content,
		Author:    toMemberResponse(&update.Author),
		CreatedAt: update.CreatedAt,
	}
}
