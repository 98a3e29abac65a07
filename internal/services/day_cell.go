package services

import "github.com/terraincognita07/rangepicker/internal/models"

// DayCell is one classified grid day. Clients style cells from these flags
// instead of re-deriving range membership.
type DayCell struct {
	Date      models.CalendarDate
	InMonth   bool
	InHorizon bool
	Selected  bool
	Previewed bool
	Border    bool
}

// ClassifyDay flags day for display inside the pane showing month.
func ClassifyDay(day models.CalendarDate, month models.MonthKey, horizon models.Horizon, selection models.Selection, preview models.Selection) DayCell {
	return DayCell{
		Date:      day,
		InMonth:   day.MonthKey() == month,
		InHorizon: horizon.Contains(day),
		Selected:  selection.Covers(day),
		Previewed: preview.Complete() && day.InRange(preview.Start, preview.End),
		Border:    selection.IsBorder(day),
	}
}

// ClassifyWeek classifies every day of row.
func ClassifyWeek(row models.WeekRow, month models.MonthKey, horizon models.Horizon, selection models.Selection, preview models.Selection) [7]DayCell {
	cells := [7]DayCell{}
	for index, day := range row.Days {
		cells[index] = ClassifyDay(day, month, horizon, selection, preview)
	}
	return cells
}
