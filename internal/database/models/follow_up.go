package models

import "time"

// FollowUp records a contact made during evangelism and its follow-up state
type FollowUp struct {
	BaseModel
	Evangelizer      string     `json:"evangelizer" gorm:"size:100;not null"`
	Date             time.Time  `json:"date" gorm:"not null"`
	FullName         string     `json:"full_name" gorm:"size:200;not null"`
	Whatsapp         string     `json:"whatsapp" gorm:"size:50;not null"`
	Email            string     `json:"email,omitempty" gorm:"size:255"`
	AcceptedJesus    string     `json:"accepted_jesus" gorm:"size:50;not null"`
	Reason           string     `json:"reason" gorm:"type:text"`
	AgreedToFollowUp string     `json:"agreed_to_follow_up" gorm:"size:50;not null"`
	Observations     string     `json:"observations,omitempty" gorm:"type:text"`
	Status           TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
}

// TableName returns the table name for FollowUp
func (FollowUp) TableName() string {
	return "follow_ups"
}
