// Package scheduling contains the in-memory core of event editing: the role
// registry answering who already holds a supervisor or staff label, and the
// Draft state machine that defers conflicting role changes until the editor
// resolves them. Nothing in this package performs I/O.
package scheduling

import "github.com/google/uuid"

// RoleKind selects which role field of a member is compared.
type RoleKind string

const (
	RoleSupervisor RoleKind = "supervisor"
	RoleStaff      RoleKind = "staff"
)

// IsValid checks if the role kind is valid
func (k RoleKind) IsValid() bool {
	return k == RoleSupervisor || k == RoleStaff
}

// Member is the registry's view of a user. An empty SupervisorName or
// StaffName means the member holds no such label.
type Member struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image,omitempty"`
	IsStaff        bool      `json:"is_staff"`
	SupervisorName string    `json:"supervisor_name,omitempty"`
	StaffName      string    `json:"staff_name,omitempty"`
}

func (m Member) roleValue(kind RoleKind) string {
	if kind == RoleStaff {
		return m.StaffName
	}
	return m.SupervisorName
}

// Registry is a read-only snapshot of members indexed by id.
type Registry struct {
	members []Member
	byID    map[uuid.UUID]int
}

// NewRegistry indexes members, keeping their order. When ids repeat the first
// occurrence wins.
func NewRegistry(members []Member) *Registry {
	r := &Registry{
		members: make([]Member, 0, len(members)),
		byID:    make(map[uuid.UUID]int, len(members)),
	}
	for _, m := range members {
		if _, dup := r.byID[m.ID]; dup {
			continue
		}
		r.byID[m.ID] = len(r.members)
		r.members = append(r.members, m)
	}
	return r
}

// Members returns the snapshot in its original order.
func (r *Registry) Members() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// Member looks up one member by id.
func (r *Registry) Member(id uuid.UUID) (Member, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Member{}, false
	}
	return r.members[i], true
}

// Len is the number of members in the snapshot.
func (r *Registry) Len() int {
	return len(r.members)
}

// FindConflictingMembers returns, in candidate order, the candidates whose
// role field of the given kind equals value. Matching is exact and
// case-sensitive. Unknown candidates and an empty value never match.
func (r *Registry) FindConflictingMembers(candidates []uuid.UUID, kind RoleKind, value string) []uuid.UUID {
	conflicting := make([]uuid.UUID, 0)
	if value == "" {
		return conflicting
	}
	for _, id := range candidates {
		i, ok := r.byID[id]
		if !ok {
			continue
		}
		if r.members[i].roleValue(kind) == value {
			conflicting = append(conflicting, id)
		}
	}
	return conflicting
}

// EligibleMembers filters members selectable for an event. Outside exception
// mode it hides the member whose name is the applied supervisor and any member
// whose staff label is the applied staff value. In exception mode nothing is
// hidden.
func EligibleMembers(members []Member, supervisorName, staffName string, exceptionMode bool) []Member {
	eligible := make([]Member, 0, len(members))
	for _, m := range members {
		if !exceptionMode {
			if supervisorName != "" && m.Name == supervisorName {
				continue
			}
			if staffName != "" && m.StaffName == staffName {
				continue
			}
		}
		eligible = append(eligible, m)
	}
	return eligible
}
