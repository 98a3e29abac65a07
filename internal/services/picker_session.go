package services

import (
	"sync"

	"github.com/terraincognita07/rangepicker/internal/models"
)

// SessionOptions are fixed for the lifetime of a PickerSession.
type SessionOptions struct {
	Horizon   models.Horizon
	PaneCount int
	Selection models.Selection
	// ReportIntermediate notifies listeners with [start, none] after the
	// first pick of a range, not only when the range completes.
	ReportIntermediate bool
}

// PaneView is one pane ready for rendering.
type PaneView struct {
	Index   int
	Month   models.MonthKey
	Grid    models.MonthGrid
	Blocked PaneBlocked
}

// SessionView is a consistent snapshot of a session.
type SessionView struct {
	State        SelectionState
	Horizon      models.Horizon
	Panes        []PaneView
	Selection    models.Selection
	Preview      models.Selection
	OutOfHorizon bool
}

// PickResult carries the committed selection after a pick plus the soft
// out-of-horizon advisory for the picked day.
type PickResult struct {
	Selection    models.Selection
	OutOfHorizon bool
}

// PickerSession owns the selection machine and pane window of one picker
// instance. All methods are safe for concurrent use; each session has its
// own lock and shares nothing mutable with other sessions.
type PickerSession struct {
	mu      sync.Mutex
	machine *SelectionMachine
	window  *PaneWindow
	grids   *MonthGridCache
}

func NewPickerSession(options SessionOptions, grids *MonthGridCache) (*PickerSession, error) {
	window, err := NewPaneWindow(options.Horizon, options.PaneCount, options.Selection)
	if err != nil {
		return nil, err
	}
	if grids == nil {
		grids = NewMonthGridCache()
	}
	return &PickerSession{
		machine: NewSelectionMachine(options.Selection, options.ReportIntermediate),
		window:  window,
		grids:   grids,
	}, nil
}

// OnChange registers the listener for committed selections. The listener
// runs while the session lock is held and must not call back into the session.
func (session *PickerSession) OnChange(listener SelectionListener) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.machine.OnChange(listener)
}

func (session *PickerSession) PickDate(date models.CalendarDate) (PickResult, error) {
	if date.IsZero() {
		return PickResult{}, ErrInvalidDate
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	selection := session.machine.PickDate(date)
	return PickResult{
		Selection:    selection,
		OutOfHorizon: !session.window.Horizon().Contains(date),
	}, nil
}

func (session *PickerSession) Hover(date models.CalendarDate) (models.Selection, error) {
	if date.IsZero() {
		return models.Selection{}, ErrInvalidDate
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.machine.Hover(date), nil
}

// Navigate moves one pane; false means the move was blocked.
func (session *PickerSession) Navigate(index int, delta models.MonthDelta) (bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.window.Navigate(index, delta)
}

// SetSelection hands the session an externally supplied selection. A value
// that matches what the session last emitted is ignored; anything else
// resets the machine and refocuses the panes on it.
func (session *PickerSession) SetSelection(selection models.Selection) (bool, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.machine.Reset(selection) {
		return false, nil
	}
	if err := session.window.Refocus(session.machine.Committed()); err != nil {
		return true, err
	}
	return true, nil
}

func (session *PickerSession) Selection() models.Selection {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.machine.Committed()
}

func (session *PickerSession) Panes() []models.MonthKey {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.window.Panes()
}

func (session *PickerSession) Horizon() models.Horizon {
	return session.window.Horizon()
}

func (session *PickerSession) View() (SessionView, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	horizon := session.window.Horizon()
	selection := session.machine.Committed()

	panes := session.window.Panes()
	views := make([]PaneView, 0, len(panes))
	for index, month := range panes {
		grid, err := session.grids.Grid(month)
		if err != nil {
			return SessionView{}, err
		}
		views = append(views, PaneView{
			Index:   index,
			Month:   month,
			Grid:    grid,
			Blocked: session.window.Blocked(index),
		})
	}

	outOfHorizon := false
	if selection.HasStart() && !horizon.Contains(selection.Start) {
		outOfHorizon = true
	}
	if !selection.End.IsZero() && !horizon.Contains(selection.End) {
		outOfHorizon = true
	}

	return SessionView{
		State:        session.machine.State(),
		Horizon:      horizon,
		Panes:        views,
		Selection:    selection,
		Preview:      session.machine.Preview(),
		OutOfHorizon: outOfHorizon,
	}, nil
}
