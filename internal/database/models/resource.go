package models

// Resource is an entry of the shared resource library
type Resource struct {
	BaseModel
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"size:100;not null;index"`
	Type        string `json:"type" gorm:"size:50;not null"`
	FileURL     string `json:"file_url" gorm:"size:500"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}
