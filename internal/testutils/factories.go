package testutils

import (
	"time"

	"ministry-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Ana Lopez",
		Email: "ana." + id.String()[:8] + "@test.com",
		Role:  models.UserRoleMember,
	}
}

// WithName sets a custom display name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithSupervisor sets the supervisor label
func (f *UserFactory) WithSupervisor(name string) *models.User {
	user := f.Create()
	user.SupervisorName = &name
	return user
}

// WithStaff marks the user as staff with the given label
func (f *UserFactory) WithStaff(name string) *models.User {
	user := f.Create()
	user.IsStaff = true
	user.StaffName = &name
	return user
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event on 2024-03-10 of the default type
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Title: "Reunión de Iglesia | Loc. Vista al mar",
		Date:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Type:  "CHURCH_MEETING_VISTA_AL_MAR",
	}
}

// OnDate sets the event date
func (f *EventFactory) OnDate(date time.Time) *models.Event {
	event := f.Create()
	event.Date = date
	return event
}

// WithRoles sets the supervisor and staff snapshots
func (f *EventFactory) WithRoles(supervisor, staff string) *models.Event {
	event := f.Create()
	event.SupervisorName = &supervisor
	event.StaffName = &staff
	return event
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a pending test Activity owned by responsibleID
func (f *ActivityFactory) Create(responsibleID uuid.UUID) *models.Activity {
	return &models.Activity{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name:          "Retiro de jóvenes",
		Description:   "Planificación del retiro",
		Icon:          "Tent",
		Color:         "bg-green-500",
		ResponsibleID: responsibleID,
		Status:        models.TaskStatusPending,
	}
}

// FollowUpFactory provides methods to create test FollowUp data
type FollowUpFactory struct{}

// NewFollowUpFactory creates a new FollowUpFactory
func NewFollowUpFactory() *FollowUpFactory {
	return &FollowUpFactory{}
}

// Create creates a pending test FollowUp
func (f *FollowUpFactory) Create() *models.FollowUp {
	return &models.FollowUp{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Evangelizer:      "Luis",
		Date:             time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		FullName:         "Maria Perez",
		Whatsapp:         "+50499990000",
		AcceptedJesus:    "SI",
		Reason:           "Invitada por una amiga",
		AgreedToFollowUp: "SI",
		Status:           models.TaskStatusPending,
	}
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending test Invitation valid for 48 hours
func (f *InvitationFactory) Create() *models.Invitation {
	id := uuid.New()
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID: id,
		},
		Email:     "invitee." + id.String()[:8] + "@test.com",
		Name:      "Invitee",
		Token:     id.String() + id.String()[:28],
		ExpiresAt: time.Now().Add(48 * time.Hour),
		Status:    models.InvitationStatusPending,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Event      *EventFactory
	Activity   *ActivityFactory
	FollowUp   *FollowUpFactory
	Invitation *InvitationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Event:      NewEventFactory(),
		Activity:   NewActivityFactory(),
		FollowUp:   NewFollowUpFactory(),
		Invitation: NewInvitationFactory(),
	}
}
