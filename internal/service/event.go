package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	// MaxRecurringOccurrences bounds how many events one recurring request may create
	MaxRecurringOccurrences = 120
)

// EventService handles business logic for calendar events
type EventService struct {
	events    repository.EventRepositoryInterface
	users     repository.UserRepositoryInterface
	catalog   *catalog.Catalog
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(events repository.EventRepositoryInterface, users repository.UserRepositoryInterface, cat *catalog.Catalog, validator *validator.Validate) *EventService {
	return &EventService{
		events:    events,
		users:     users,
		catalog:   cat,
		validator: validator,
	}
}

// EventRequest represents the request to create or replace an event
type EventRequest struct {
	Date           string      `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-10"`
	EventType      string      `json:"event_type" validate:"omitempty,max=50" example:"CHURCH_MEETING_VISTA_AL_MAR"`
	SupervisorName string      `json:"supervisor_name" validate:"max=100" example:"Pastor Juan"`
	StaffName      string      `json:"staff_name" validate:"max=100"`
	MemberIDs      []uuid.UUID `json:"member_ids"`
}

// RecurringEventRequest creates one event per occurrence of an RRULE
type RecurringEventRequest struct {
	EventRequest
	RRule string `json:"rrule" validate:"required,max=500" example:"FREQ=WEEKLY;BYDAY=SU;COUNT=4"`
}

// EventMember is an assigned member as shown on an event
type EventMember struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Date           string        `json:"date" example:"2024-03-10"`
	Type           string        `json:"type"`
	SupervisorID   *uuid.UUID    `json:"supervisor_id,omitempty"`
	SupervisorName *string       `json:"supervisor_name"`
	StaffName      *string       `json:"staff_name"`
	Members        []EventMember `json:"members"`
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date        string          `json:"date"`
	InMonth     bool            `json:"in_month"`
	Events      []EventResponse `json:"events"`
	Supervisors []string        `json:"supervisors"`
}

// MonthGridResponse is a month laid out in Sunday-first weeks
type MonthGridResponse struct {
	Month string          `json:"month" example:"2024-03"`
	Weeks [][]CalendarDay `json:"weeks"`
}

// ListMonth returns every event of a YYYY-MM month ordered by date
func (s *EventService) ListMonth(ctx context.Context, month string) ([]EventResponse, error) {
	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return toEventResponses(events), nil
}

// GetEvent retrieves one event with its members
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// CreateEvent stores a new event
func (s *EventService) CreateEvent(ctx context.Context, req *EventRequest) (*EventResponse, error) {
	payload, err := s.requestPayload(req)
	if err != nil {
		return nil, err
	}
	return s.SavePayload(ctx, payload)
}

// ReplaceEvent overwrites the fields and the member set of an existing event
func (s *EventService) ReplaceEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*EventResponse, error) {
	payload, err := s.requestPayload(req)
	if err != nil {
		return nil, err
	}
	payload.EventID = &id
	return s.SavePayload(ctx, payload)
}

// DeleteEvent removes an event and its assignments
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.events.DeleteWithAssignments(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// SavePayload persists a finalized draft. A payload with an EventID replaces
// that event, otherwise a new event is created.
func (s *EventService) SavePayload(ctx context.Context, payload scheduling.Payload) (*EventResponse, error) {
	event, memberIDs, err := s.buildEvent(payload)
	if err != nil {
		return nil, err
	}

	if payload.EventID == nil {
		if err := s.events.CreateWithAssignments(ctx, event, memberIDs); err != nil {
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
	} else {
		event.ID = *payload.EventID
		if err := s.events.ReplaceWithAssignments(ctx, event, memberIDs); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEventNotFound
			}
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
	}

	return s.GetEvent(ctx, event.ID)
}

// CreateRecurring creates one event per RRULE occurrence within a year of the start date
func (s *EventService) CreateRecurring(ctx context.Context, req *RecurringEventRequest) ([]EventResponse, error) {
	payload, err := s.requestPayload(&req.EventRequest)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	occurrences, err := expandRecurrence(req.RRule, payload.Date)
	if err != nil {
		return nil, err
	}

	template, memberIDs, err := s.buildEvent(payload)
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(occurrences))
	created := make(map[uuid.UUID]struct{}, len(occurrences))
	for _, day := range occurrences {
		event := *template
		event.ID = uuid.New()
		event.Date = day
		events = append(events, &event)
		created[event.ID] = struct{}{}
	}

	if err := s.events.CreateManyWithAssignments(ctx, events, memberIDs); err != nil {
		return nil, fmt.Errorf("failed to create recurring events: %w", err)
	}

	stored, err := s.events.ListByDateRange(ctx, occurrences[0], occurrences[len(occurrences)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to load created events: %w", err)
	}
	responses := make([]EventResponse, 0, len(events))
	for i := range stored {
		if _, ok := created[stored[i].ID]; ok {
			responses = append(responses, toEventResponse(&stored[i]))
		}
	}
	return responses, nil
}

// MonthGrid lays out a month as Sunday-first weeks, each day carrying its
// events and the distinct supervisors scheduled that day
func (s *EventService) MonthGrid(ctx context.Context, month string) (*MonthGridResponse, error) {
	first, last, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	events, err := s.events.ListByDateRange(ctx, gridStart, gridEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	byDay := make(map[string][]EventResponse)
	for i := range events {
		resp := toEventResponse(&events[i])
		byDay[resp.Date] = append(byDay[resp.Date], resp)
	}

	grid := &MonthGridResponse{Month: first.Format(monthLayout)}
	var week []CalendarDay
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		dayEvents := byDay[key]
		if dayEvents == nil {
			dayEvents = []EventResponse{}
		}
		week = append(week, CalendarDay{
			Date:        key,
			InMonth:     day.Month() == first.Month(),
			Events:      dayEvents,
			Supervisors: distinctSupervisors(dayEvents),
		})
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}

	return grid, nil
}

// ExportMonth writes the month's events as an iCalendar feed
func (s *EventService) ExportMonth(ctx context.Context, month string, w io.Writer) error {
	events, err := s.ListMonth(ctx, month)
	if err != nil {
		return err
	}
	return WriteICS(w, events, s.catalog)
}

func (s *EventService) requestPayload(req *EventRequest) (scheduling.Payload, error) {
	if err := s.validator.Struct(req); err != nil {
		return scheduling.Payload{}, fmt.Errorf("validation failed: %w", err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return scheduling.Payload{}, err
	}
	return scheduling.Payload{
		Date:           date,
		EventType:      strings.TrimSpace(req.EventType),
		SupervisorName: strings.TrimSpace(req.SupervisorName),
		StaffName:      strings.TrimSpace(req.StaffName),
		MemberIDs:      req.MemberIDs,
	}, nil
}

// buildEvent checks a payload against the catalog and the member table and
// returns the event row to store together with the de-duplicated member ids.
func (s *EventService) buildEvent(payload scheduling.Payload) (*models.Event, []uuid.UUID, error) {
	eventType := payload.EventType
	if eventType == "" {
		eventType = s.catalog.DefaultEventType()
	}
	if !s.catalog.IsEventType(eventType) {
		return nil, nil, apperrors.NewValidationError("event_type", fmt.Sprintf("unknown event type %q", eventType))
	}
	if payload.SupervisorName != "" && !s.catalog.IsSupervisor(payload.SupervisorName) {
		return nil, nil, apperrors.NewValidationError("supervisor_name", fmt.Sprintf("unknown supervisor %q", payload.SupervisorName))
	}
	if payload.StaffName != "" && !s.catalog.IsStaff(payload.StaffName) {
		return nil, nil, apperrors.NewValidationError("staff_name", fmt.Sprintf("unknown staff member %q", payload.StaffName))
	}

	memberIDs := dedupeIDs(payload.MemberIDs)
	if len(memberIDs) > 0 {
		existing, err := s.users.GetExistingIDs(memberIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to verify members: %w", err)
		}
		if len(existing) != len(memberIDs) {
			return nil, nil, apperrors.ErrUnknownMembers
		}
	}

	event := &models.Event{
		Title:          s.catalog.TitleFor(eventType),
		Date:           payload.Date,
		Type:           eventType,
		SupervisorName: optionalString(payload.SupervisorName),
		StaffName:      optionalString(payload.StaffName),
	}

	if payload.SupervisorName != "" {
		supervisor, err := s.users.GetByName(payload.SupervisorName)
		switch {
		case err == nil:
			event.SupervisorID = &supervisor.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, nil, fmt.Errorf("failed to look up supervisor: %w", err)
		}
	}

	return event, memberIDs, nil
}

// expandRecurrence returns the occurrence dates of rule starting at start,
// limited to one year and MaxRecurringOccurrences.
func expandRecurrence(rule string, start time.Time) ([]time.Time, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRecurrence, err)
	}
	r.DTStart(start)

	occurrences := r.Between(start, start.AddDate(1, 0, 0), true)
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("%w: no occurrences within one year", apperrors.ErrInvalidRecurrence)
	}
	if len(occurrences) > MaxRecurringOccurrences {
		return nil, fmt.Errorf("%w: more than %d occurrences", apperrors.ErrInvalidRecurrence, MaxRecurringOccurrences)
	}

	days := make([]time.Time, len(occurrences))
	for i, o := range occurrences {
		days[i] = time.Date(o.Year(), o.Month(), o.Day(), 0, 0, 0, 0, time.UTC)
	}
	return days, nil
}

func toEventResponses(events []models.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = toEventResponse(&events[i])
	}
	return responses
}

func toEventResponse(event *models.Event) EventResponse {
	members := make([]EventMember, 0, len(event.Assignments))
	for _, a := range event.Assignments {
		members = append(members, EventMember{
			ID:    a.UserID,
			Name:  a.User.Name,
			Image: a.User.Image,
		})
	}
	return EventResponse{
		ID:             event.ID,
		Title:          event.Title,
		Date:           event.Date.Format(dateLayout),
		Type:           event.Type,
		SupervisorID:   event.SupervisorID,
		SupervisorName: supervisorNamePtr(event),
		StaffName:      event.StaffName,
		Members:        members,
	}
}

// supervisorLabel prefers the stored label and falls back to the linked user.
func supervisorLabel(event *models.Event) string {
	if event.SupervisorName != nil && *event.SupervisorName != "" {
		return *event.SupervisorName
	}
	if event.Supervisor != nil {
		return event.Supervisor.Name
	}
	return ""
}

func supervisorNamePtr(event *models.Event) *string {
	name := supervisorLabel(event)
	if name == "" {
		return event.SupervisorName
	}
	return &name
}

func distinctSupervisors(events []EventResponse) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, e := range events {
		if e.SupervisorName == nil || *e.SupervisorName == "" {
			continue
		}
		if _, ok := seen[*e.SupervisorName]; ok {
			continue
		}
		seen[*e.SupervisorName] = struct{}{}
		names = append(names, *e.SupervisorName)
	}
	return names
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return date, nil
}

// monthBounds returns the first and last day of a YYYY-MM month.
func monthBounds(month string) (time.Time, time.Time, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidMonth
	}
	return first, first.AddDate(0, 1, -1), nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
