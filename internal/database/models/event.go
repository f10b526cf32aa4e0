package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is one calendar occurrence. SupervisorName and StaffName are
// snapshots of the role labels at save time and survive member renames.
type Event struct {
	BaseModel
	Title          string     `json:"title" gorm:"size:200;not null"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;index"`
	Type           string     `json:"type" gorm:"type:varchar(50);not null;default:'CHURCH_MEETING_VISTA_AL_MAR'"`
	SupervisorID   *uuid.UUID `json:"supervisor_id,omitempty" gorm:"type:uuid;index"`
	SupervisorName *string    `json:"supervisor_name" gorm:"size:100"`
	StaffName      *string    `json:"staff_name" gorm:"size:100"`

	// Relationships
	Supervisor  *User        `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Assignment links a member to an event. Each member appears at most once per event.
type Assignment struct {
	BaseModel
	EventID uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_event_user"`
	UserID  uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_event_user;index"`
	Role    AssignmentRole `json:"role" gorm:"type:varchar(50);not null;default:'Member'"`

	// Relationships
	Event *Event `json:"-" gorm:"foreignKey:EventID"`
	User  User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
