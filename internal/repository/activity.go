package repository

import (
	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Responsible").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("activity_updates.created_at DESC")
		}).
		Preload("Updates.Author")
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Omit("Responsible", "Updates").Create(activity).Error
}

// GetByID retrieves an activity with its responsible user and updates
func (r *ActivityRepository) GetByID(id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.withRelations().First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetAll retrieves all activities, newest first
func (r *ActivityRepository) GetAll() ([]models.Activity, error) {
	var activities []models.Activity
	err := r.withRelations().Order("created_at DESC").Find(&activities).Error
	return activities, err
}

// UpdateStatus changes the status of an activity
func (r *ActivityRepository) UpdateStatus(id uuid.UUID, status models.TaskStatus) error {
	result := r.db.Model(&models.Activity{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an activity and its updates
func (r *ActivityRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&models.ActivityUpdate{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Activity{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateUpdate adds a progress note to an activity
func (r *ActivityRepository) CreateUpdate(update *models.ActivityUpdate) error {
	return r.db.Omit("Author").Create(update).Error
}
