package service

import (
	"context"
	"io"

	"ministry-portal-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventServiceInterface defines the interface for calendar event operations
type EventServiceInterface interface {
	ListMonth(ctx context.Context, month string) ([]EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	CreateEvent(ctx context.Context, req *EventRequest) (*EventResponse, error)
	CreateRecurring(ctx context.Context, req *RecurringEventRequest) ([]EventResponse, error)
	ReplaceEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	SavePayload(ctx context.Context, payload scheduling.Payload) (*EventResponse, error)
	MonthGrid(ctx context.Context, month string) (*MonthGridResponse, error)
	ExportMonth(ctx context.Context, month string, w io.Writer) error
}

// DraftServiceInterface defines the interface for server-side event editing sessions
type DraftServiceInterface interface {
	Open(ctx context.Context, ownerID uuid.UUID, req *OpenDraftRequest) (*DraftResponse, error)
	Get(ownerID, draftID uuid.UUID) (*DraftResponse, error)
	SetDate(ownerID, draftID uuid.UUID, date string) (*DraftResponse, error)
	SetEventType(ownerID, draftID uuid.UUID, eventType string) (*DraftResponse, error)
	ProposeRole(ownerID, draftID uuid.UUID, kind scheduling.RoleKind, value string) (*ProposalResponse, error)
	ResolveConflict(ownerID, draftID uuid.UUID, action scheduling.Resolution) (*DraftResponse, error)
	CancelConflict(ownerID, draftID uuid.UUID) (*DraftResponse, error)
	ToggleMember(ownerID, draftID, memberID uuid.UUID) (*DraftResponse, error)
	SetExceptionMode(ownerID, draftID uuid.UUID, enabled bool) (*DraftResponse, error)
	Submit(ctx context.Context, ownerID, draftID uuid.UUID) (*EventResponse, error)
	Close(ownerID, draftID uuid.UUID) error
}

// MemberServiceInterface defines the interface for member administration and profiles
type MemberServiceInterface interface {
	ListMembers() ([]MemberResponse, error)
	GetMember(id uuid.UUID) (*MemberResponse, error)
	GetProfile(id uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	UploadAvatar(id uuid.UUID, upload *Upload) (*ProfileResponse, error)
	UpdateSupervisor(id uuid.UUID, req *UpdateSupervisorRequest) (*MemberResponse, error)
	SetStaffStatus(id uuid.UUID, req *UpdateStaffRequest) (*MemberResponse, error)
	DeleteMember(id uuid.UUID) error
	Snapshot() ([]scheduling.Member, error)
}

// ActivityServiceInterface defines the interface for activity operations
type ActivityServiceInterface interface {
	CreateActivity(req *CreateActivityRequest) (*ActivityResponse, error)
	ListActivities() ([]ActivityResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*ActivityResponse, error)
	DeleteActivity(id uuid.UUID) error
	AddUpdate(activityID, authorID uuid.UUID, req *CreateActivityUpdateRequest) (*ActivityUpdateResponse, error)
}

// ResourceServiceInterface defines the interface for the resource library
type ResourceServiceInterface interface {
	CreateResource(req *CreateResourceRequest) (*ResourceResponse, error)
	ListResources(category string) ([]ResourceResponse, error)
	DeleteResource(id uuid.UUID) error
	UploadFile(upload *Upload) (*UploadResponse, error)
}

// FollowUpServiceInterface defines the interface for follow-up operations
type FollowUpServiceInterface interface {
	CreateFollowUp(req *CreateFollowUpRequest) (*FollowUpResponse, error)
	ListFollowUps(limit, offset int) ([]FollowUpResponse, int64, error)
	UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*FollowUpResponse, error)
	DeleteFollowUp(id uuid.UUID) error
}

// InvitationServiceInterface defines the interface for invitations and registration
type InvitationServiceInterface interface {
	Invite(ctx context.Context, req *InviteRequest, origin string) (*InvitationResponse, error)
	Verify(token string) (*VerifyInvitationResponse, error)
	Register(req *RegisterRequest) (*MemberResponse, error)
}

// DocumentServiceInterface defines the interface for calendar document analysis
type DocumentServiceInterface interface {
	Analyze(ctx context.Context, uploaderID uuid.UUID, upload *Upload) (*DocumentAnalysis, error)
	ListCalendarFiles(limit int) ([]CalendarFileResponse, error)
}

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// DocumentAnalyzer turns a calendar document into structured event proposals
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, data []byte, mimeType string) (*DocumentAnalysis, error)
}

// FileStore persists uploaded files and returns their public URL
type FileStore interface {
	Save(dir, name string, r io.Reader) (string, error)
	Remove(url string) error
}
