package repository

import (
	"context"
	"time"

	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error)
	Count() (int64, error)
	UpdateSupervisor(id uuid.UUID, supervisorName *string) error
	UpdateStaff(id uuid.UUID, isStaff bool, staffName *string) error
	UpdateProfile(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	DeleteAll() (int64, error)
}

// EventRepositoryInterface defines the event store. Writes that touch the
// assignment set run in a single transaction.
type EventRepositoryInterface interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	CreateWithAssignments(ctx context.Context, event *models.Event, memberIDs []uuid.UUID) error
	CreateManyWithAssignments(ctx context.Context, events []*models.Event, memberIDs []uuid.UUID) error
	ReplaceWithAssignments(ctx context.Context, event *models.Event, memberIDs []uuid.UUID) error
	DeleteWithAssignments(ctx context.Context, id uuid.UUID) error
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByID(id uuid.UUID) (*models.Activity, error)
	GetAll() ([]models.Activity, error)
	UpdateStatus(id uuid.UUID, status models.TaskStatus) error
	Delete(id uuid.UUID) error
	CreateUpdate(update *models.ActivityUpdate) error
}

// ResourceRepositoryInterface defines the interface for resource repository operations
type ResourceRepositoryInterface interface {
	Create(resource *models.Resource) error
	GetByID(id uuid.UUID) (*models.Resource, error)
	GetAll(category string) ([]models.Resource, error)
	Delete(id uuid.UUID) error
}

// FollowUpRepositoryInterface defines the interface for follow-up repository operations
type FollowUpRepositoryInterface interface {
	Create(followUp *models.FollowUp) error
	GetByID(id uuid.UUID) (*models.FollowUp, error)
	GetAll(limit, offset int) ([]models.FollowUp, int64, error)
	UpdateStatus(id uuid.UUID, status models.TaskStatus) error
	Delete(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByEmail(email string) (*models.Invitation, error)
	GetByToken(token string) (*models.Invitation, error)
	Delete(id uuid.UUID) error
	Accept(invitation *models.Invitation, user *models.User) error
}

// CalendarFileRepositoryInterface defines the interface for calendar file repository operations
type CalendarFileRepositoryInterface interface {
	Create(file *models.CalendarFile) error
	GetAll(limit int) ([]models.CalendarFile, error)
}
