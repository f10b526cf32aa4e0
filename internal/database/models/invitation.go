package models

import "time"

// Invitation is a one-time registration link sent to a future member
type Invitation struct {
	BaseModel
	Email     string           `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name      string           `json:"name" gorm:"size:100;not null"`
	Token     string           `json:"-" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time        `json:"expires_at" gorm:"not null"`
	Status    InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsUsable reports whether the invitation can still be accepted at now.
func (i *Invitation) IsUsable(now time.Time) bool {
	return i.Status == InvitationStatusPending && now.Before(i.ExpiresAt)
}
