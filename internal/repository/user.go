package repository

import (
	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByName retrieves the first user with the given display name
func (r *UserRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := r.db.Order("created_at ASC").First(&user, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users ordered by name
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("name ASC").Find(&users).Error
	return users, err
}

// GetExistingIDs returns the subset of ids that belong to a user
func (r *UserRepository) GetExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}
	var existing []uuid.UUID
	err := r.db.Model(&models.User{}).Where("id IN ?", ids).Pluck("id", &existing).Error
	return existing, err
}

// Count returns the number of users
func (r *UserRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Count(&total).Error
	return total, err
}

// UpdateSupervisor sets or clears the supervisor label of a user
func (r *UserRepository) UpdateSupervisor(id uuid.UUID, supervisorName *string) error {
	return r.updateColumns(id, map[string]interface{}{"supervisor_name": supervisorName})
}

// UpdateStaff sets the staff flag and label of a user
func (r *UserRepository) UpdateStaff(id uuid.UUID, isStaff bool, staffName *string) error {
	return r.updateColumns(id, map[string]interface{}{
		"is_staff":   isStaff,
		"staff_name": staffName,
	})
}

// UpdateProfile updates the given profile columns of a user
func (r *UserRepository) UpdateProfile(id uuid.UUID, updates map[string]interface{}) error {
	return r.updateColumns(id, updates)
}

func (r *UserRepository) updateColumns(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user together with their event assignments and activity
// updates.
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Event{}).Where("supervisor_id = ?", id).Update("supervisor_id", nil).Error; err != nil {
			return err
		}
		owned := tx.Model(&models.Activity{}).Select("id").Where("responsible_id = ?", id)
		if err := tx.Where("author_id = ? OR activity_id IN (?)", id, owned).Delete(&models.ActivityUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("responsible_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAll removes every user along with the rows that reference users.
// Events themselves are kept.
func (r *UserRepository) DeleteAll() (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Model(&models.Event{}).Update("supervisor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ActivityUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Model(&models.CalendarFile{}).Update("uploaded_by", nil).Error; err != nil {
			return err
		}
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
