package services

import (
	"fmt"

	"github.com/terraincognita07/rangepicker/internal/models"
)

// PaneBlocked tells a client which navigation controls of a pane to disable.
type PaneBlocked struct {
	PrevMonth bool `json:"prev_month"`
	NextMonth bool `json:"next_month"`
	PrevYear  bool `json:"prev_year"`
	NextYear  bool `json:"next_year"`
}

// InitialFocus places paneCount panes inside horizon. A complete selection
// shown on two panes puts start and end side by side; a single pane follows
// the selection start; everything else spreads the panes over the horizon.
func InitialFocus(horizon models.Horizon, paneCount int, selection models.Selection) ([]models.MonthKey, error) {
	if err := validateHorizon(horizon); err != nil {
		return nil, err
	}
	if err := validatePaneCount(paneCount); err != nil {
		return nil, err
	}

	selection = selection.Normalized()
	if paneCount == 2 && selection.Complete() {
		startMonth := selection.Start.MonthKey()
		endMonth := selection.End.MonthKey()
		if startMonth == endMonth {
			startMonth = endMonth.AddMonths(-1)
		}
		return []models.MonthKey{startMonth, endMonth}, nil
	}
	if paneCount == 1 && selection.HasStart() {
		return []models.MonthKey{selection.Start.MonthKey()}, nil
	}

	return spreadPanes(horizon, paneCount), nil
}

func spreadPanes(horizon models.Horizon, paneCount int) []models.MonthKey {
	first := horizon.FirstMonth()
	last := horizon.LastMonth()
	if paneCount == 1 {
		return []models.MonthKey{last}
	}

	total := MonthDistance(first, last)
	panes := make([]models.MonthKey, paneCount)

	if total <= paneCount {
		for index := range panes {
			panes[index] = last.AddMonths(-(paneCount - 1 - index))
		}
		return panes
	}

	step := roundDiv(total, paneCount-1)
	for index := range panes {
		pane := first.AddMonths(step * index)
		// rounding the step up can push trailing panes past the horizon end
		if ceiling := last.AddMonths(-(paneCount - 1 - index)); pane.After(ceiling) {
			pane = ceiling
		}
		panes[index] = pane
	}
	return panes
}

// roundDiv rounds numerator/denominator half up; both are non-negative.
func roundDiv(numerator int, denominator int) int {
	return (2*numerator + denominator) / (2 * denominator)
}

// CanNavigate reports whether pane index may move by delta. The first pane
// may not move before the horizon start, the last may not move past the
// horizon end, and no pane may land on or cross its neighbour. A neighbour
// one month away counts as touching only for the pane's current position:
// the pane is blocked from moving toward it, while a pane two months away
// may still step into the adjacent month.
func CanNavigate(panes []models.MonthKey, horizon models.Horizon, index int, delta models.MonthDelta) bool {
	if index < 0 || index >= len(panes) || delta.IsZero() {
		return false
	}

	target := panes[index].Add(delta)
	if delta.Forward() {
		if index == len(panes)-1 {
			return !target.After(horizon.LastMonth())
		}
		return SignedMonthDistance(target, panes[index+1]) > 0
	}

	if index == 0 {
		return !target.Before(horizon.FirstMonth())
	}
	return SignedMonthDistance(panes[index-1], target) > 0
}

// BlockedControls evaluates CanNavigate for the four navigation buttons.
func BlockedControls(panes []models.MonthKey, horizon models.Horizon, index int) PaneBlocked {
	return PaneBlocked{
		PrevMonth: !CanNavigate(panes, horizon, index, models.PrevMonth),
		NextMonth: !CanNavigate(panes, horizon, index, models.NextMonth),
		PrevYear:  !CanNavigate(panes, horizon, index, models.PrevYear),
		NextYear:  !CanNavigate(panes, horizon, index, models.NextYear),
	}
}

// PaneWindow owns the displayed month of every pane of one session.
type PaneWindow struct {
	horizon models.Horizon
	panes   []models.MonthKey
}

func NewPaneWindow(horizon models.Horizon, paneCount int, selection models.Selection) (*PaneWindow, error) {
	panes, err := InitialFocus(horizon, paneCount, selection)
	if err != nil {
		return nil, err
	}
	return &PaneWindow{horizon: horizon, panes: panes}, nil
}

func (window *PaneWindow) Horizon() models.Horizon {
	return window.horizon
}

// Panes returns a copy of the current positions.
func (window *PaneWindow) Panes() []models.MonthKey {
	panes := make([]models.MonthKey, len(window.panes))
	copy(panes, window.panes)
	return panes
}

func (window *PaneWindow) Blocked(index int) PaneBlocked {
	return BlockedControls(window.panes, window.horizon, index)
}

// Navigate moves one pane. It returns false without touching any pane when
// the move is blocked; only malformed requests are errors.
func (window *PaneWindow) Navigate(index int, delta models.MonthDelta) (bool, error) {
	if index < 0 || index >= len(window.panes) {
		return false, fmt.Errorf("%w: %d not in 0..%d", ErrInvalidPaneIndex, index, len(window.panes)-1)
	}
	if delta.IsZero() {
		return false, ErrInvalidDelta
	}
	if !CanNavigate(window.panes, window.horizon, index, delta) {
		return false, nil
	}

	window.panes[index] = window.panes[index].Add(delta)
	return true, nil
}

// Refocus re-derives every pane from selection, keeping the pane count.
func (window *PaneWindow) Refocus(selection models.Selection) error {
	panes, err := InitialFocus(window.horizon, len(window.panes), selection)
	if err != nil {
		return err
	}
	window.panes = panes
	return nil
}
