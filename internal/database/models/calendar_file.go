package models

import "github.com/google/uuid"

// CalendarFile keeps the extracted result of an analysed calendar document
type CalendarFile struct {
	BaseModel
	FileName   string     `json:"file_name" gorm:"size:255;not null"`
	FileSize   int64      `json:"file_size" gorm:"not null"`
	Content    string     `json:"content" gorm:"type:text"`
	UploadedBy *uuid.UUID `json:"uploaded_by,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for CalendarFile
func (CalendarFile) TableName() string {
	return "calendar_files"
}
