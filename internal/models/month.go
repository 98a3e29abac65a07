package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMonthInvalid   = errors.New("invalid month")
	ErrHorizonInvalid = errors.New("invalid horizon")
)

// MonthKey identifies one calendar month. Month is zero based.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (key MonthKey) Validate() error {
	if key.Month < 0 || key.Month > 11 {
		return fmt.Errorf("%w: month %d outside 0..11", ErrMonthInvalid, key.Month)
	}
	return nil
}

// Index is the absolute month number year*12+month used for distance math.
func (key MonthKey) Index() int {
	return key.Year*12 + key.Month
}

func MonthKeyFromIndex(index int) MonthKey {
	year := floorDiv(index, 12)
	return MonthKey{Year: year, Month: index - year*12}
}

// AddMonths shifts the key with month/year carry.
func (key MonthKey) AddMonths(months int) MonthKey {
	return MonthKeyFromIndex(key.Index() + months)
}

func (key MonthKey) Add(delta MonthDelta) MonthKey {
	return key.AddMonths(delta.TotalMonths())
}

func (key MonthKey) Before(other MonthKey) bool {
	return key.Index() < other.Index()
}

func (key MonthKey) After(other MonthKey) bool {
	return key.Index() > other.Index()
}

func (key MonthKey) FirstDay() CalendarDate {
	return CalendarDate{Year: key.Year, Month: key.Month, Day: 1}
}

func (key MonthKey) LastDay() CalendarDate {
	return NewCalendarDate(key.Year, key.Month+1, 0)
}

func (key MonthKey) Label() string {
	return fmt.Sprintf("%s %d", time.Month(key.Month+1).String(), key.Year)
}

func (key MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", key.Year, key.Month+1)
}

// MonthDelta is a navigation step, e.g. {Months: -1} or {Years: 1}.
type MonthDelta struct {
	Months int `json:"months"`
	Years  int `json:"years"`
}

var (
	PrevMonth = MonthDelta{Months: -1}
	NextMonth = MonthDelta{Months: 1}
	PrevYear  = MonthDelta{Years: -1}
	NextYear  = MonthDelta{Years: 1}
)

// TotalMonths folds Years into a single month count.
func (delta MonthDelta) TotalMonths() int {
	return delta.Years*12 + delta.Months
}

func (delta MonthDelta) IsZero() bool {
	return delta.TotalMonths() == 0
}

func (delta MonthDelta) Forward() bool {
	return delta.TotalMonths() > 0
}

// Horizon is the inclusive date bound of a picker session.
type Horizon struct {
	Start CalendarDate
	End   CalendarDate
}

func NewHorizon(start CalendarDate, end CalendarDate) (Horizon, error) {
	horizon := Horizon{Start: start, End: end}
	if err := horizon.Validate(); err != nil {
		return Horizon{}, err
	}
	return horizon, nil
}

func (horizon Horizon) Validate() error {
	if horizon.Start.IsZero() || horizon.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrHorizonInvalid)
	}
	if horizon.Start.After(horizon.End) {
		return fmt.Errorf("%w: start %s after end %s", ErrHorizonInvalid, horizon.Start, horizon.End)
	}
	return nil
}

func (horizon Horizon) Contains(date CalendarDate) bool {
	return date.InRange(horizon.Start, horizon.End)
}

func (horizon Horizon) FirstMonth() MonthKey {
	return horizon.Start.MonthKey()
}

func (horizon Horizon) LastMonth() MonthKey {
	return horizon.End.MonthKey()
}

func floorDiv(value int, divisor int) int {
	quotient := value / divisor
	if value%divisor != 0 && (value < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}
