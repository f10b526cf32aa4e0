// Package catalog holds the closed lists the calendar is built around: event
// types, supervisor identities and staff identities. A Catalog is immutable
// once built and is shared by pointer.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultEventType is used when a draft is submitted without a type.
	DefaultEventType = "CHURCH_MEETING_VISTA_AL_MAR"
	// FallbackTitle is the event title when the type has no label.
	FallbackTitle = "Evento"
)

// EventTypeInfo describes one event type and how clients should render it.
type EventTypeInfo struct {
	Key         string `yaml:"key" json:"key"`
	Label       string `yaml:"label" json:"label"`
	TextColor   string `yaml:"text_color" json:"text_color"`
	SoftBg      string `yaml:"soft_bg" json:"soft_bg"`
	BorderColor string `yaml:"border_color" json:"border_color"`
	IconName    string `yaml:"icon_name,omitempty" json:"icon_name,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// File is the YAML layout accepted by Load.
type File struct {
	DefaultEventType string          `yaml:"default_event_type"`
	EventTypes       []EventTypeInfo `yaml:"event_types"`
	Supervisors      []string        `yaml:"supervisors"`
	StaffMembers     []string        `yaml:"staff_members"`
}

// Catalog is the read-only set of event types and role identities.
type Catalog struct {
	defaultEventType string
	eventTypes       []EventTypeInfo
	eventIndex       map[string]int
	supervisors      []string
	supervisorSet    map[string]struct{}
	staff            []string
	staffSet         map[string]struct{}
}

// Load reads a catalog from a YAML file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f)
}

// New validates f and builds a catalog from it.
func New(f File) (*Catalog, error) {
	if len(f.EventTypes) == 0 {
		return nil, fmt.Errorf("catalog must define at least one event type")
	}
	if len(f.Supervisors) == 0 {
		return nil, fmt.Errorf("catalog must define at least one supervisor")
	}
	if len(f.StaffMembers) == 0 {
		return nil, fmt.Errorf("catalog must define at least one staff member")
	}

	c := &Catalog{
		defaultEventType: f.DefaultEventType,
		eventTypes:       make([]EventTypeInfo, len(f.EventTypes)),
		eventIndex:       make(map[string]int, len(f.EventTypes)),
		supervisors:      append([]string(nil), f.Supervisors...),
		supervisorSet:    make(map[string]struct{}, len(f.Supervisors)),
		staff:            append([]string(nil), f.StaffMembers...),
		staffSet:         make(map[string]struct{}, len(f.StaffMembers)),
	}
	copy(c.eventTypes, f.EventTypes)

	for i, et := range c.eventTypes {
		if et.Key == "" {
			return nil, fmt.Errorf("event type at position %d has no key", i)
		}
		if _, dup := c.eventIndex[et.Key]; dup {
			return nil, fmt.Errorf("duplicate event type %q", et.Key)
		}
		c.eventIndex[et.Key] = i
	}

	if c.defaultEventType == "" {
		c.defaultEventType = DefaultEventType
	}
	if _, ok := c.eventIndex[c.defaultEventType]; !ok {
		return nil, fmt.Errorf("default event type %q is not defined", c.defaultEventType)
	}

	for _, s := range c.supervisors {
		if s == "" {
			return nil, fmt.Errorf("supervisor names must not be empty")
		}
		if _, dup := c.supervisorSet[s]; dup {
			return nil, fmt.Errorf("duplicate supervisor %q", s)
		}
		c.supervisorSet[s] = struct{}{}
	}
	for _, s := range c.staff {
		if s == "" {
			return nil, fmt.Errorf("staff names must not be empty")
		}
		if _, dup := c.staffSet[s]; dup {
			return nil, fmt.Errorf("duplicate staff member %q", s)
		}
		c.staffSet[s] = struct{}{}
	}

	return c, nil
}

// EventTypes returns the event types in display order.
func (c *Catalog) EventTypes() []EventTypeInfo {
	out := make([]EventTypeInfo, len(c.eventTypes))
	copy(out, c.eventTypes)
	return out
}

// EventType looks up an event type by key.
func (c *Catalog) EventType(key string) (EventTypeInfo, bool) {
	i, ok := c.eventIndex[key]
	if !ok {
		return EventTypeInfo{}, false
	}
	return c.eventTypes[i], true
}

// IsEventType reports whether key names a known event type.
func (c *Catalog) IsEventType(key string) bool {
	_, ok := c.eventIndex[key]
	return ok
}

// DefaultEventType is the type assumed for drafts without one.
func (c *Catalog) DefaultEventType() string {
	return c.defaultEventType
}

// TitleFor returns the display title stamped on events of the given type.
func (c *Catalog) TitleFor(key string) string {
	if et, ok := c.EventType(key); ok && et.Label != "" {
		return et.Label
	}
	return FallbackTitle
}

// Supervisors returns the supervisor identities in display order.
func (c *Catalog) Supervisors() []string {
	return append([]string(nil), c.supervisors...)
}

// StaffMembers returns the staff identities in display order.
func (c *Catalog) StaffMembers() []string {
	return append([]string(nil), c.staff...)
}

// IsSupervisor reports whether name is a supervisor identity. Case-sensitive.
func (c *Catalog) IsSupervisor(name string) bool {
	_, ok := c.supervisorSet[name]
	return ok
}

// IsStaff reports whether name is a staff identity. Case-sensitive.
func (c *Catalog) IsStaff(name string) bool {
	_, ok := c.staffSet[name]
	return ok
}
