package services

import (
	"sync"

	"github.com/terraincognita07/rangepicker/internal/models"
)

// BuildMonthGrid returns the Monday-first week rows covering key. The first
// row starts on the Monday on or before the 1st and the last row ends on the
// Sunday on or after the last day of the month.
func BuildMonthGrid(key models.MonthKey) (models.MonthGrid, error) {
	if err := validateMonthKey(key); err != nil {
		return models.MonthGrid{}, err
	}

	startYear, startWeek := key.FirstDay().ISOWeek()
	endYear, endWeek := key.LastDay().ISOWeek()

	weeks := make([]models.WeekRow, 0, 6)

	// January may open inside week 52/53 of the previous ISO year. That row is
	// built against the previous year so its days stay correct.
	if startYear < key.Year {
		weeks = append(weeks, buildWeekRow(startYear, startWeek))
		startWeek = 1
	}

	// December may close inside week 1 of the next ISO year. Count it as the
	// week after this year's last week so the loop does not stop early.
	if endYear > key.Year {
		endWeek = isoWeeksInYear(key.Year) + 1
	}

	for week := startWeek; week <= endWeek; week++ {
		weeks = append(weeks, buildWeekRow(key.Year, week))
	}

	return models.MonthGrid{Month: key, Weeks: weeks}, nil
}

func buildWeekRow(isoYear int, week int) models.WeekRow {
	monday := isoWeekMonday(isoYear, week)
	row := models.WeekRow{}
	for offset := range row.Days {
		row.Days[offset] = monday.AddDays(offset)
	}
	_, row.WeekNumber = monday.ISOWeek()
	return row
}

// isoWeekMonday overflows into the next ISO year for week numbers past the
// last week of isoYear.
func isoWeekMonday(isoYear int, week int) models.CalendarDate {
	jan4 := models.NewCalendarDate(isoYear, 0, 4)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDays(-sinceMonday + (week-1)*7)
}

func isoWeeksInYear(year int) int {
	_, week := models.NewCalendarDate(year, 11, 28).ISOWeek()
	return week
}

// MonthGridCache memoizes grids per MonthKey. Grids never change for a given
// key, so entries are never invalidated.
type MonthGridCache struct {
	mu    sync.RWMutex
	grids map[models.MonthKey]models.MonthGrid
}

func NewMonthGridCache() *MonthGridCache {
	return &MonthGridCache{grids: make(map[models.MonthKey]models.MonthGrid)}
}

func (cache *MonthGridCache) Grid(key models.MonthKey) (models.MonthGrid, error) {
	cache.mu.RLock()
	grid, ok := cache.grids[key]
	cache.mu.RUnlock()
	if ok {
		return grid, nil
	}

	grid, err := BuildMonthGrid(key)
	if err != nil {
		return models.MonthGrid{}, err
	}

	cache.mu.Lock()
	cache.grids[key] = grid
	cache.mu.Unlock()
	return grid, nil
}

func (cache *MonthGridCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.grids)
}
