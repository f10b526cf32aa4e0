package models

// User is a ministry member who can log in and be assigned to events.
// SupervisorName and StaffName are labels from the catalog, nil when unset.
type User struct {
	BaseModel
	Name           string   `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Email          string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string   `json:"-" gorm:"column:password;size:100"`
	Image          string   `json:"image" gorm:"size:500"`
	Role           UserRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
	IsStaff        bool     `json:"is_staff" gorm:"default:false"`
	SupervisorName *string  `json:"supervisor_name" gorm:"size:100"`
	StaffName      *string  `json:"staff_name" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
