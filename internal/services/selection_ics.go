package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/emersion/go-ical"
	"github.com/terraincognita07/rangepicker/internal/models"
)

var (
	ErrSelectionIncomplete = errors.New("selection is incomplete")
	ErrICSNoEvent          = errors.New("calendar has no event")
)

const (
	icsProductID      = "-//rangepicker//rangepicker//EN"
	icsSelectionTitle = "Selected range"
	icsDateLayout     = "20060102"
)

// EncodeSelectionICS writes a complete selection as a single all-day VEVENT.
// DTEND is exclusive, so it is the day after the selection end.
func EncodeSelectionICS(w io.Writer, uid string, selection models.Selection, now time.Time) error {
	selection = selection.Normalized()
	if !selection.Complete() {
		return ErrSelectionIncomplete
	}

	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, icsProductID)

	event := ics.NewComponent(ics.CompEvent)
	event.Props.SetText(ics.PropUID, uid)
	event.Props.SetText(ics.PropSummary, icsSelectionTitle)
	event.Props.SetDateTime(ics.PropDateTimeStamp, now.UTC())
	event.Props.SetDate(ics.PropDateTimeStart, selection.Start.Time())
	event.Props.SetDate(ics.PropDateTimeEnd, selection.End.AddDays(1).Time())
	cal.Children = append(cal.Children, event)

	if err := ics.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode ICS: %w", err)
	}
	return nil
}

// DecodeSelectionICS reads the first VEVENT of r back into a selection. An
// event without DTEND covers its start day only.
func DecodeSelectionICS(r io.Reader) (models.Selection, error) {
	cal, err := ics.NewDecoder(r).Decode()
	if err == io.EOF {
		return models.Selection{}, ErrICSNoEvent
	}
	if err != nil {
		return models.Selection{}, fmt.Errorf("%w: decode ICS: %v", ErrInvalidArgument, err)
	}

	for _, comp := range cal.Children {
		if comp.Name != ics.CompEvent {
			continue
		}
		return selectionFromEvent(comp)
	}
	return models.Selection{}, ErrICSNoEvent
}

func selectionFromEvent(comp *ics.Component) (models.Selection, error) {
	startProp := comp.Props.Get(ics.PropDateTimeStart)
	if startProp == nil {
		return models.Selection{}, fmt.Errorf("%w: event has no DTSTART", ErrInvalidArgument)
	}
	start, err := propDate(startProp)
	if err != nil {
		return models.Selection{}, fmt.Errorf("%w: parse DTSTART: %v", ErrInvalidArgument, err)
	}

	endProp := comp.Props.Get(ics.PropDateTimeEnd)
	if endProp == nil {
		return models.Selection{Start: start, End: start}, nil
	}
	exclusiveEnd, err := propDate(endProp)
	if err != nil {
		return models.Selection{}, fmt.Errorf("%w: parse DTEND: %v", ErrInvalidArgument, err)
	}

	end := exclusiveEnd.AddDays(-1)
	if end.Before(start) {
		end = start
	}
	return models.Selection{Start: start, End: end}, nil
}

// propDate takes the calendar day in the property's own zone: TZID when
// present, UTC for a trailing Z, and the written wall clock otherwise.
func propDate(prop *ics.Prop) (models.CalendarDate, error) {
	value, err := prop.DateTime(time.UTC)
	if err == nil {
		return models.DateFromTime(value), nil
	}

	// An unknown TZID still carries the local date in its first eight digits.
	raw := strings.TrimSpace(prop.Value)
	if len(raw) >= len(icsDateLayout) {
		if parsed, parseErr := time.ParseInLocation(icsDateLayout, raw[:len(icsDateLayout)], time.UTC); parseErr == nil {
			return models.DateFromTime(parsed), nil
		}
	}
	return models.CalendarDate{}, err
}
