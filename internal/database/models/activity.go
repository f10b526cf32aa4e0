package models

import "github.com/google/uuid"

// Activity is a ministry task with a responsible member and a log of updates
type Activity struct {
	BaseModel
	Name          string     `json:"name" gorm:"size:200;not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Icon          string     `json:"icon" gorm:"size:50"`
	Color         string     `json:"color" gorm:"size:50"`
	ResponsibleID uuid.UUID  `json:"responsible_id" gorm:"type:uuid;not null;index"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`

	// Relationships
	Responsible User             `json:"responsible" gorm:"foreignKey:ResponsibleID"`
	Updates     []ActivityUpdate `json:"updates,omitempty" gorm:"foreignKey:ActivityID"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// ActivityUpdate is a progress note posted on an activity
type ActivityUpdate struct {
	BaseModel
	ActivityID uuid.UUID `json:"activity_id" gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`

	// Relationships
	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for ActivityUpdate
func (ActivityUpdate) TableName() string {
	return "activity_updates"
}
