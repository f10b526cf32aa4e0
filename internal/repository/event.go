package repository

import (
	"context"
	"time"

	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events and their assignments
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Supervisor").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assignments.created_at ASC")
		}).
		Preload("Assignments.User")
}

// ListByDateRange returns the events dated between from and to, both inclusive
func (r *EventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.withRelations(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&events).Error
	return events, err
}

// GetByID retrieves an event with its supervisor and assignments
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.withRelations(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateWithAssignments inserts an event and its assignment set in one transaction
func (r *EventRepository) CreateWithAssignments(ctx context.Context, event *models.Event, memberIDs []uuid.UUID) error {
	return r.CreateManyWithAssignments(ctx, []*models.Event{event}, memberIDs)
}

// CreateManyWithAssignments inserts several events sharing the same
// assignment set. Either all of them are stored or none.
func (r *EventRepository) CreateManyWithAssignments(ctx context.Context, events []*models.Event, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, event := range events {
			event.Assignments = nil
			if err := tx.Omit("Supervisor", "Assignments").Create(event).Error; err != nil {
				return err
			}
			if err := insertAssignments(tx, event.ID, memberIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceWithAssignments updates the scalar fields of an event and swaps its
// whole assignment set. Nothing changes if any step fails.
func (r *EventRepository) ReplaceWithAssignments(ctx context.Context, event *models.Event, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Event{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
			"title":           event.Title,
			"date":            event.Date,
			"type":            event.Type,
			"supervisor_id":   event.SupervisorID,
			"supervisor_name": event.SupervisorName,
			"staff_name":      event.StaffName,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		return insertAssignments(tx, event.ID, memberIDs)
	})
}

// DeleteWithAssignments removes the assignments of an event and then the event itself
func (r *EventRepository) DeleteWithAssignments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Event{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// insertAssignments stores one Member assignment per distinct id.
func insertAssignments(tx *gorm.DB, eventID uuid.UUID, memberIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(memberIDs))
	assignments := make([]models.Assignment, 0, len(memberIDs))
	for _, id := range memberIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		assignments = append(assignments, models.Assignment{
			EventID: eventID,
			UserID:  id,
			Role:    models.AssignmentRoleMember,
		})
	}
	if len(assignments) == 0 {
		return nil
	}
	return tx.Omit("Event", "User").Create(&assignments).Error
}
