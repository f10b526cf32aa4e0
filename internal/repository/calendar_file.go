package repository

import (
	"ministry-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CalendarFileRepository handles database operations for analysed calendar files
type CalendarFileRepository struct {
	db *gorm.DB
}

// NewCalendarFileRepository creates a new calendar file repository
func NewCalendarFileRepository(db *gorm.DB) *CalendarFileRepository {
	return &CalendarFileRepository{db: db}
}

// Create stores a calendar file record
func (r *CalendarFileRepository) Create(file *models.CalendarFile) error {
	return r.db.Create(file).Error
}

// GetAll retrieves the most recent calendar files
func (r *CalendarFileRepository) GetAll(limit int) ([]models.CalendarFile, error) {
	var files []models.CalendarFile
	err := r.db.Order("created_at DESC").Limit(limit).Find(&files).Error
	return files, err
}
