package services

import "github.com/terraincognita07/rangepicker/internal/models"

// SelectionState is the two-valued state of a SelectionMachine.
type SelectionState int

const (
	// SelectionIdle waits for the first pick of a range.
	SelectionIdle SelectionState = iota
	// SelectionStartPicked holds a committed start and waits for the end.
	SelectionStartPicked
)

func (state SelectionState) String() string {
	switch state {
	case SelectionStartPicked:
		return "start_picked"
	default:
		return "idle"
	}
}

// SelectionListener receives every committed selection.
type SelectionListener func(models.Selection)

// SelectionMachine tracks a two-click range pick with a hover preview. It is
// not safe for concurrent use; PickerSession serializes access.
type SelectionMachine struct {
	state              SelectionState
	committed          models.Selection
	preview            models.Selection
	lastEmitted        models.Selection
	reportIntermediate bool
	listener           SelectionListener
}

func NewSelectionMachine(initial models.Selection, reportIntermediate bool) *SelectionMachine {
	initial = initial.Normalized()
	return &SelectionMachine{
		state:              SelectionIdle,
		committed:          initial,
		lastEmitted:        initial,
		reportIntermediate: reportIntermediate,
	}
}

func (machine *SelectionMachine) OnChange(listener SelectionListener) {
	machine.listener = listener
}

func (machine *SelectionMachine) State() SelectionState {
	return machine.state
}

func (machine *SelectionMachine) Committed() models.Selection {
	return machine.committed
}

// Preview is the transient hover range; empty when nothing is previewed.
func (machine *SelectionMachine) Preview() models.Selection {
	return machine.preview
}

func (machine *SelectionMachine) LastEmitted() models.Selection {
	return machine.lastEmitted
}

// PickDate commits date as start or end depending on the current state.
// An end before the start is swapped, never rejected.
func (machine *SelectionMachine) PickDate(date models.CalendarDate) models.Selection {
	switch machine.state {
	case SelectionStartPicked:
		start := machine.committed.Start
		if date.Before(start) {
			machine.committed = models.Selection{Start: date, End: start}
		} else {
			machine.committed = models.Selection{Start: start, End: date}
		}
		machine.state = SelectionIdle
		machine.preview = models.Selection{}
		machine.emit(machine.committed)
	default:
		machine.committed = models.Selection{Start: date}
		machine.state = SelectionStartPicked
		machine.preview = models.Selection{Start: date, End: date}
		if machine.reportIntermediate {
			machine.emit(machine.committed)
		}
	}
	return machine.committed
}

// Hover updates the preview. Hovering while idle shows no preview.
func (machine *SelectionMachine) Hover(date models.CalendarDate) models.Selection {
	if machine.state != SelectionStartPicked {
		machine.preview = models.Selection{}
		return machine.preview
	}

	start := machine.committed.Start
	machine.preview = models.Selection{
		Start: models.MinDate(date, start),
		End:   models.MaxDate(date, start),
	}
	return machine.preview
}

// Reset adopts an externally supplied selection when it differs from what
// the machine last emitted. It returns false, leaving all state untouched,
// when the values match at day level.
func (machine *SelectionMachine) Reset(external models.Selection) bool {
	external = external.Normalized()
	if external.SameDays(machine.lastEmitted) {
		return false
	}

	machine.state = SelectionIdle
	machine.preview = models.Selection{}
	machine.committed = external
	machine.lastEmitted = external
	return true
}

func (machine *SelectionMachine) emit(selection models.Selection) {
	machine.lastEmitted = selection
	if machine.listener != nil {
		machine.listener(selection)
	}
}
