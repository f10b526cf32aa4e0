package repository

import (
	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpRepository handles database operations for follow-ups
type FollowUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new follow-up repository
func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{db: db}
}

// Create creates a new follow-up
func (r *FollowUpRepository) Create(followUp *models.FollowUp) error {
	return r.db.Create(followUp).Error
}

// GetByID retrieves a follow-up by ID
func (r *FollowUpRepository) GetByID(id uuid.UUID) (*models.FollowUp, error) {
	var followUp models.FollowUp
	err := r.db.First(&followUp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

// GetAll retrieves follow-ups newest first with pagination
func (r *FollowUpRepository) GetAll(limit, offset int) ([]models.FollowUp, int64, error) {
	var followUps []models.FollowUp
	var total int64

	if err := r.db.Model(&models.FollowUp{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&followUps).Error
	return followUps, total, err
}

// UpdateStatus changes the status of a follow-up
func (r *FollowUpRepository) UpdateStatus(id uuid.UUID, status models.TaskStatus) error {
	result := r.db.Model(&models.FollowUp{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a follow-up
func (r *FollowUpRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.FollowUp{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
