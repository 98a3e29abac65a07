package models

// Selection is a committed date range. Either bound may be zero (unset).
type Selection struct {
	Start CalendarDate
	End   CalendarDate
}

func (selection Selection) HasStart() bool {
	return !selection.Start.IsZero()
}

func (selection Selection) Complete() bool {
	return !selection.Start.IsZero() && !selection.End.IsZero()
}

func (selection Selection) IsEmpty() bool {
	return selection.Start.IsZero() && selection.End.IsZero()
}

// SameDays compares both bounds at day level; unset bounds only match unset bounds.
func (selection Selection) SameDays(other Selection) bool {
	return selection.Start.Equal(other.Start) && selection.End.Equal(other.End)
}

// Normalized swaps the bounds when end is before start.
func (selection Selection) Normalized() Selection {
	if selection.Complete() && selection.End.Before(selection.Start) {
		return Selection{Start: selection.End, End: selection.Start}
	}
	return selection
}

// Covers reports whether day is highlighted by the selection: the start day
// itself, or any day in [start, end] once an end is set.
func (selection Selection) Covers(day CalendarDate) bool {
	if !selection.HasStart() {
		return false
	}
	if day.Equal(selection.Start) {
		return true
	}
	if selection.End.IsZero() {
		return false
	}
	return day.InRange(selection.Start, selection.End)
}

// IsBorder reports whether day is one of the selection's bounds.
func (selection Selection) IsBorder(day CalendarDate) bool {
	if selection.HasStart() && day.Equal(selection.Start) {
		return true
	}
	return !selection.End.IsZero() && day.Equal(selection.End)
}

// WeekRow is one Monday..Sunday row of a month grid.
type WeekRow struct {
	WeekNumber int
	Days       [7]CalendarDate
}

// MonthGrid is the derived week view of one month.
type MonthGrid struct {
	Month MonthKey
	Weeks []WeekRow
}

func (grid MonthGrid) FirstDay() CalendarDate {
	if len(grid.Weeks) == 0 {
		return CalendarDate{}
	}
	return grid.Weeks[0].Days[0]
}

func (grid MonthGrid) LastDay() CalendarDate {
	if len(grid.Weeks) == 0 {
		return CalendarDate{}
	}
	return grid.Weeks[len(grid.Weeks)-1].Days[6]
}
