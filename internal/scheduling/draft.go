package scheduling

import (
	"fmt"
	"time"

	apperrors "ministry-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// State is the editing lifecycle of a Draft.
type State string

const (
	StateIdle            State = "idle"
	StateEditing         State = "editing"
	StateConflictPending State = "conflict_pending"
)

// Mode tells whether a draft creates a new event or replaces an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Resolution is the editor's answer to a pending conflict.
type Resolution string

const (
	// ResolutionRemove drops the conflicting members from the selection.
	ResolutionRemove Resolution = "remove"
	// ResolutionException keeps them and disables checks for the rest of the session.
	ResolutionException Resolution = "exception"
)

// IsValid checks if the resolution is valid
func (r Resolution) IsValid() bool {
	return r == ResolutionRemove || r == ResolutionException
}

// RoleCatalog is the closed set of legal values a draft validates against.
type RoleCatalog interface {
	IsSupervisor(name string) bool
	IsStaff(name string) bool
	IsEventType(key string) bool
}

// Conflict describes a deferred role change.
type Conflict struct {
	Kind                 RoleKind    `json:"kind"`
	Value                string      `json:"value"`
	ConflictingMemberIDs []uuid.UUID `json:"conflicting_member_ids"`
}

func (c *Conflict) clone() *Conflict {
	if c == nil {
		return nil
	}
	out := *c
	out.ConflictingMemberIDs = append([]uuid.UUID(nil), c.ConflictingMemberIDs...)
	return &out
}

// Proposal is the outcome of a role change. Exactly one of Applied or
// Conflict is set.
type Proposal struct {
	Applied  bool      `json:"applied"`
	Conflict *Conflict `json:"conflict,omitempty"`
}

// EventSnapshot is a persisted event as loaded into a draft for editing.
type EventSnapshot struct {
	ID             uuid.UUID
	Date           time.Time
	EventType      string
	SupervisorName string
	StaffName      string
	MemberIDs      []uuid.UUID
}

// Payload is a finalized draft ready for persistence.
type Payload struct {
	EventID        *uuid.UUID
	Date           time.Time
	EventType      string
	SupervisorName string
	StaffName      string
	MemberIDs      []uuid.UUID
}

// View is a read-only copy of a draft's fields.
type View struct {
	State             State       `json:"state"`
	Mode              Mode        `json:"mode,omitempty"`
	EventID           *uuid.UUID  `json:"event_id,omitempty"`
	Date              time.Time   `json:"date"`
	EventType         string      `json:"event_type"`
	SupervisorName    string      `json:"supervisor_name"`
	StaffName         string      `json:"staff_name"`
	SelectedMemberIDs []uuid.UUID `json:"selected_member_ids"`
	ExceptionMode     bool        `json:"exception_mode"`
	PendingConflict   *Conflict   `json:"pending_conflict,omitempty"`
}

// Draft holds the editable fields of one event while it is being edited.
// A Draft is not safe for concurrent use.
type Draft struct {
	registry *Registry
	roles    RoleCatalog

	state          State
	mode           Mode
	eventID        uuid.UUID
	date           time.Time
	eventType      string
	supervisorName string
	staffName      string
	selected       []uuid.UUID
	exceptionMode  bool
	pending        *Conflict
}

// NewDraft returns an idle draft checking roles against registry and roles.
func NewDraft(registry *Registry, roles RoleCatalog) *Draft {
	return &Draft{
		registry: registry,
		roles:    roles,
		state:    StateIdle,
		selected: []uuid.UUID{},
	}
}

// Open starts a fresh create form for date.
func (d *Draft) Open(date time.Time) {
	d.Reset()
	d.state = StateEditing
	d.mode = ModeCreate
	d.date = date
}

// LoadForEdit fills the draft from a stored event. Stored values are trusted,
// so no conflict detection runs.
func (d *Draft) LoadForEdit(ev EventSnapshot) {
	d.Reset()
	d.state = StateEditing
	d.mode = ModeEdit
	d.eventID = ev.ID
	d.date = ev.Date
	d.eventType = ev.EventType
	d.supervisorName = ev.SupervisorName
	d.staffName = ev.StaffName
	for _, id := range ev.MemberIDs {
		if !d.isSelected(id) {
			d.selected = append(d.selected, id)
		}
	}
}

// Reset discards every field and returns the draft to idle. Safe from any
// state, including while a conflict is pending.
func (d *Draft) Reset() {
	d.state = StateIdle
	d.mode = ""
	d.eventID = uuid.Nil
	d.date = time.Time{}
	d.eventType = ""
	d.supervisorName = ""
	d.staffName = ""
	d.selected = []uuid.UUID{}
	d.exceptionMode = false
	d.pending = nil
}

// State returns the current lifecycle state.
func (d *Draft) State() State {
	return d.state
}

// SetDate moves the draft to another day.
func (d *Draft) SetDate(date time.Time) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	d.date = date
	return nil
}

// SetEventType changes the event type. The key must be in the catalog.
func (d *Draft) SetEventType(key string) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	if !d.roles.IsEventType(key) {
		return apperrors.NewValidationError("event_type", fmt.Sprintf("unknown event type %q", key))
	}
	d.eventType = key
	return nil
}

// ProposeSupervisor tries to set the supervisor. See propose.
func (d *Draft) ProposeSupervisor(value string) (Proposal, error) {
	return d.propose(RoleSupervisor, value)
}

// ProposeStaff tries to set the staff identity. See propose.
func (d *Draft) ProposeStaff(value string) (Proposal, error) {
	return d.propose(RoleStaff, value)
}

// propose validates value against the closed list first, then applies it
// unless selected members already hold it, in which case the change is parked
// as a pending conflict and the field keeps its previous value. An empty
// value clears the field and never conflicts.
func (d *Draft) propose(kind RoleKind, value string) (Proposal, error) {
	if err := d.requireEditing(); err != nil {
		return Proposal{}, err
	}
	if value != "" {
		switch kind {
		case RoleSupervisor:
			if !d.roles.IsSupervisor(value) {
				return Proposal{}, apperrors.NewValidationError("supervisor_name", fmt.Sprintf("unknown supervisor %q", value))
			}
		case RoleStaff:
			if !d.roles.IsStaff(value) {
				return Proposal{}, apperrors.NewValidationError("staff_name", fmt.Sprintf("unknown staff member %q", value))
			}
		}
	}

	if value == "" || d.exceptionMode {
		d.apply(kind, value)
		return Proposal{Applied: true}, nil
	}

	conflicting := d.registry.FindConflictingMembers(d.selected, kind, value)
	if len(conflicting) == 0 {
		d.apply(kind, value)
		return Proposal{Applied: true}, nil
	}

	d.pending = &Conflict{Kind: kind, Value: value, ConflictingMemberIDs: conflicting}
	d.state = StateConflictPending
	return Proposal{Conflict: d.pending.clone()}, nil
}

// ResolveConflict settles the pending conflict and applies its value.
func (d *Draft) ResolveConflict(action Resolution) error {
	if d.pending == nil {
		return apperrors.ErrNoPendingConflict
	}
	if !action.IsValid() {
		return apperrors.NewValidationError("action", fmt.Sprintf("unknown resolution %q", action))
	}

	switch action {
	case ResolutionRemove:
		drop := make(map[uuid.UUID]struct{}, len(d.pending.ConflictingMemberIDs))
		for _, id := range d.pending.ConflictingMemberIDs {
			drop[id] = struct{}{}
		}
		kept := make([]uuid.UUID, 0, len(d.selected))
		for _, id := range d.selected {
			if _, ok := drop[id]; !ok {
				kept = append(kept, id)
			}
		}
		d.selected = kept
	case ResolutionException:
		d.exceptionMode = true
	}

	d.apply(d.pending.Kind, d.pending.Value)
	d.pending = nil
	d.state = StateEditing
	return nil
}

// CancelConflict dismisses the pending conflict. The parked value is dropped
// and every field, selection included, stays as it was before the proposal.
func (d *Draft) CancelConflict() error {
	if d.pending == nil {
		return apperrors.ErrNoPendingConflict
	}
	d.pending = nil
	d.state = StateEditing
	return nil
}

// ToggleMember adds or removes a member and reports whether it is now
// selected. Role fields already applied are not re-checked.
func (d *Draft) ToggleMember(id uuid.UUID) (bool, error) {
	if err := d.requireEditing(); err != nil {
		return false, err
	}
	for i, existing := range d.selected {
		if existing == id {
			d.selected = append(d.selected[:i:i], d.selected[i+1:]...)
			return false, nil
		}
	}
	d.selected = append(d.selected, id)
	return true, nil
}

// SetExceptionMode switches conflict checking off or back on. Turning it
// back on does not re-check values already applied.
func (d *Draft) SetExceptionMode(enabled bool) error {
	if err := d.requireEditing(); err != nil {
		return err
	}
	d.exceptionMode = enabled
	return nil
}

// EligibleMembers lists the registry members the editor may select given the
// currently applied roles.
func (d *Draft) EligibleMembers() []Member {
	return EligibleMembers(d.registry.Members(), d.supervisorName, d.staffName, d.exceptionMode)
}

// Payload returns the finalized draft. It fails while idle or while a
// conflict is pending.
func (d *Draft) Payload() (Payload, error) {
	if err := d.requireEditing(); err != nil {
		return Payload{}, err
	}
	p := Payload{
		Date:           d.date,
		EventType:      d.eventType,
		SupervisorName: d.supervisorName,
		StaffName:      d.staffName,
		MemberIDs:      append([]uuid.UUID{}, d.selected...),
	}
	if d.mode == ModeEdit {
		id := d.eventID
		p.EventID = &id
	}
	return p, nil
}

// Snapshot returns a copy of the draft's fields.
func (d *Draft) Snapshot() View {
	v := View{
		State:             d.state,
		Mode:              d.mode,
		Date:              d.date,
		EventType:         d.eventType,
		SupervisorName:    d.supervisorName,
		StaffName:         d.staffName,
		SelectedMemberIDs: append([]uuid.UUID{}, d.selected...),
		ExceptionMode:     d.exceptionMode,
		PendingConflict:   d.pending.clone(),
	}
	if d.mode == ModeEdit {
		id := d.eventID
		v.EventID = &id
	}
	return v
}

func (d *Draft) apply(kind RoleKind, value string) {
	switch kind {
	case RoleSupervisor:
		d.supervisorName = value
	case RoleStaff:
		d.staffName = value
	}
}

func (d *Draft) isSelected(id uuid.UUID) bool {
	for _, existing := range d.selected {
		if existing == id {
			return true
		}
	}
	return false
}

func (d *Draft) requireEditing() error {
	switch d.state {
	case StateIdle:
		return apperrors.ErrDraftNotOpen
	case StateConflictPending:
		return apperrors.ErrConflictPending
	}
	return nil
}
