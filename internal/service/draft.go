package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ministry-portal-backend/internal/catalog"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/logger"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DraftService keeps one scheduling.Draft per editing session. Sessions belong
// to the user who opened them and expire after a period of inactivity.
type DraftService struct {
	events  repository.EventRepositoryInterface
	members MemberServiceInterface
	store   EventServiceInterface
	catalog *catalog.Catalog
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*draftSession
}

type draftSession struct {
	mu        sync.Mutex
	id        uuid.UUID
	owner     uuid.UUID
	draft     *scheduling.Draft
	expiresAt time.Time
}

// NewDraftService creates a new draft service
func NewDraftService(events repository.EventRepositoryInterface, members MemberServiceInterface, store EventServiceInterface, cat *catalog.Catalog, ttl time.Duration) *DraftService {
	return &DraftService{
		events:   events,
		members:  members,
		store:    store,
		catalog:  cat,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*draftSession),
	}
}

// OpenDraftRequest opens a create session for Date, or an edit session for EventID
type OpenDraftRequest struct {
	Date    string     `json:"date,omitempty" example:"2024-03-10"`
	EventID *uuid.UUID `json:"event_id,omitempty"`
}

// DraftResponse is a draft session as returned to clients
type DraftResponse struct {
	ID              uuid.UUID        `json:"id"`
	ExpiresAt       time.Time        `json:"expires_at"`
	Draft           scheduling.View  `json:"draft"`
	EligibleMembers []MemberResponse `json:"eligible_members"`
}

// ProposalResponse carries the outcome of a role change and the resulting draft
type ProposalResponse struct {
	Proposal scheduling.Proposal `json:"proposal"`
	Draft    DraftResponse       `json:"draft"`
}

// Open starts a session with a fresh member snapshot
func (s *DraftService) Open(ctx context.Context, ownerID uuid.UUID, req *OpenDraftRequest) (*DraftResponse, error) {
	members, err := s.members.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	draft := scheduling.NewDraft(scheduling.NewRegistry(members), s.catalog)

	switch {
	case req.EventID != nil:
		event, err := s.events.GetByID(ctx, *req.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEventNotFound
			}
			return nil, fmt.Errorf("failed to load event: %w", err)
		}
		snapshot := scheduling.EventSnapshot{
			ID:        event.ID,
			Date:      event.Date,
			EventType: event.Type,
		}
		snapshot.SupervisorName = supervisorLabel(event)
		if event.StaffName != nil {
			snapshot.StaffName = *event.StaffName
		}
		for _, a := range event.Assignments {
			snapshot.MemberIDs = append(snapshot.MemberIDs, a.UserID)
		}
		draft.LoadForEdit(snapshot)
	case req.Date != "":
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		draft.Open(date)
	default:
		return nil, apperrors.NewValidationError("date", "either date or event_id is required")
	}

	session := &draftSession{
		id:        uuid.New(),
		owner:     ownerID,
		draft:     draft,
		expiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.sessions[session.id] = session
	s.mu.Unlock()

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"draft_id": session.id,
		"mode":     draft.Snapshot().Mode,
	}).Debug("draft opened")

	resp := s.response(session, session.expiresAt)
	return &resp, nil
}

// Get returns the current state of a session
func (s *DraftService) Get(ownerID, draftID uuid.UUID) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(*scheduling.Draft) error { return nil })
}

// SetDate moves the draft to another day
func (s *DraftService) SetDate(ownerID, draftID uuid.UUID, date string) (*DraftResponse, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		return d.SetDate(parsed)
	})
}

// SetEventType changes the event type of the draft
func (s *DraftService) SetEventType(ownerID, draftID uuid.UUID, eventType string) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		return d.SetEventType(eventType)
	})
}

// ProposeRole proposes a supervisor or staff value. Conflicts are reported in
// the proposal and leave the draft waiting for ResolveConflict.
func (s *DraftService) ProposeRole(ownerID, draftID uuid.UUID, kind scheduling.RoleKind, value string) (*ProposalResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("unknown role kind %q", kind))
	}
	var proposal scheduling.Proposal
	draft, err := s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		var err error
		if kind == scheduling.RoleSupervisor {
			proposal, err = d.ProposeSupervisor(value)
		} else {
			proposal, err = d.ProposeStaff(value)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ProposalResponse{Proposal: proposal, Draft: *draft}, nil
}

// ResolveConflict applies the editor's decision on the pending conflict
func (s *DraftService) ResolveConflict(ownerID, draftID uuid.UUID, action scheduling.Resolution) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		return d.ResolveConflict(action)
	})
}

// CancelConflict dismisses the pending conflict without applying its value
func (s *DraftService) CancelConflict(ownerID, draftID uuid.UUID) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		return d.CancelConflict()
	})
}

// ToggleMember adds or removes a member from the draft's selection
func (s *DraftService) ToggleMember(ownerID, draftID, memberID uuid.UUID) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		_, err := d.ToggleMember(memberID)
		return err
	})
}

// SetExceptionMode turns the role filter of the member list off or on
func (s *DraftService) SetExceptionMode(ownerID, draftID uuid.UUID, enabled bool) (*DraftResponse, error) {
	return s.mutate(ownerID, draftID, func(d *scheduling.Draft) error {
		return d.SetExceptionMode(enabled)
	})
}

// Submit persists the draft. The session is closed on success and kept
// unchanged on failure so the editor can retry.
func (s *DraftService) Submit(ctx context.Context, ownerID, draftID uuid.UUID) (*EventResponse, error) {
	session, _, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	payload, err := session.draft.Payload()
	if err != nil {
		return nil, err
	}

	event, err := s.store.SavePayload(ctx, payload)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("draft_id", draftID).Warn("draft submit failed")
		return nil, err
	}

	session.draft.Reset()
	s.mu.Lock()
	delete(s.sessions, draftID)
	s.mu.Unlock()

	return event, nil
}

// Close discards a session without saving
func (s *DraftService) Close(ownerID, draftID uuid.UUID) error {
	if _, _, err := s.lookup(ownerID, draftID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, draftID)
	s.mu.Unlock()
	return nil
}

func (s *DraftService) mutate(ownerID, draftID uuid.UUID, fn func(*scheduling.Draft) error) (*DraftResponse, error) {
	session, expiresAt, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := fn(session.draft); err != nil {
		return nil, err
	}
	resp := s.response(session, expiresAt)
	return &resp, nil
}

// lookup finds a live session owned by ownerID and extends its lifetime.
func (s *DraftService) lookup(ownerID, draftID uuid.UUID) (*draftSession, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[draftID]
	if !ok {
		return nil, time.Time{}, apperrors.ErrDraftNotFound
	}
	now := s.now()
	if !now.Before(session.expiresAt) {
		delete(s.sessions, draftID)
		return nil, time.Time{}, apperrors.ErrDraftNotFound
	}
	if session.owner != ownerID {
		return nil, time.Time{}, apperrors.ErrDraftNotOwned
	}
	session.expiresAt = now.Add(s.ttl)
	return session, session.expiresAt, nil
}

func (s *DraftService) sweepLocked() {
	now := s.now()
	for id, session := range s.sessions {
		if !now.Before(session.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

// response must be called with session.mu held.
func (s *DraftService) response(session *draftSession, expiresAt time.Time) DraftResponse {
	eligible := session.draft.EligibleMembers()
	members := make([]MemberResponse, len(eligible))
	for i, m := range eligible {
		members[i] = memberFromRegistry(m)
	}
	return DraftResponse{
		ID:              session.id,
		ExpiresAt:       expiresAt,
		Draft:           session.draft.Snapshot(),
		EligibleMembers: members,
	}
}
