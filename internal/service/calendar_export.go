package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ministry-portal-backend/internal/catalog"

	"github.com/emersion/go-ical"
)

const icsProductID = "-//Ministerio Conexion//Ministry Portal//ES"

// WriteICS encodes events as all-day VEVENTs of a single VCALENDAR
func WriteICS(w io.Writer, events []EventResponse, cat *catalog.Catalog) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	stamp := time.Now().UTC()
	for _, e := range events {
		day, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return fmt.Errorf("invalid event date %q: %w", e.Date, err)
		}

		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, e.ID.String()+"@ministry-portal")
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		vevent.Props.SetDate(ical.PropDateTimeStart, day)
		vevent.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))
		vevent.Props.SetText(ical.PropSummary, e.Title)
		vevent.Props.SetText(ical.PropDescription, describeEvent(e))

		category := e.Type
		if info, ok := cat.EventType(e.Type); ok {
			category = info.Label
		}
		vevent.Props.SetText(ical.PropCategories, category)

		cal.Children = append(cal.Children, vevent.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func describeEvent(e EventResponse) string {
	var lines []string
	if e.SupervisorName != nil {
		lines = append(lines, "Supervisor: "+*e.SupervisorName)
	}
	if e.StaffName != nil {
		lines = append(lines, "Staff: "+*e.StaffName)
	}
	if len(e.Members) > 0 {
		names := make([]string, len(e.Members))
		for i, m := range e.Members {
			names[i] = m.Name
		}
		lines = append(lines, "Miembros: "+strings.Join(names, ", "))
	}
	return strings.Join(lines, "\n")
}
