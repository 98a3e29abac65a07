package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrDateInvalid = errors.New("invalid calendar date")

// CalendarDate is a whole-day value with no time zone. Month is zero based
// (0 = January) to line up with MonthKey. The zero value means "no date".
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewCalendarDate normalizes overflowing month/day values the way time.Date does.
func NewCalendarDate(year int, month int, day int) CalendarDate {
	return DateFromTime(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC))
}

func DateFromTime(value time.Time) CalendarDate {
	year, month, day := value.Date()
	return CalendarDate{Year: year, Month: int(month) - 1, Day: day}
}

func ParseCalendarDate(raw string) (CalendarDate, error) {
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrDateInvalid, raw)
	}
	return DateFromTime(parsed), nil
}

func (date CalendarDate) IsZero() bool {
	return date == CalendarDate{}
}

func (date CalendarDate) Time() time.Time {
	return time.Date(date.Year, time.Month(date.Month+1), date.Day, 0, 0, 0, 0, time.UTC)
}

func (date CalendarDate) MonthKey() MonthKey {
	return MonthKey{Year: date.Year, Month: date.Month}
}

func (date CalendarDate) AddDays(days int) CalendarDate {
	return DateFromTime(date.Time().AddDate(0, 0, days))
}

func (date CalendarDate) Weekday() time.Weekday {
	return date.Time().Weekday()
}

func (date CalendarDate) ISOWeek() (int, int) {
	return date.Time().ISOWeek()
}

// Compare returns -1, 0 or +1 at day granularity.
func (date CalendarDate) Compare(other CalendarDate) int {
	switch {
	case date.Year != other.Year:
		return sign(date.Year - other.Year)
	case date.Month != other.Month:
		return sign(date.Month - other.Month)
	default:
		return sign(date.Day - other.Day)
	}
}

func (date CalendarDate) Before(other CalendarDate) bool {
	return date.Compare(other) < 0
}

func (date CalendarDate) After(other CalendarDate) bool {
	return date.Compare(other) > 0
}

func (date CalendarDate) Equal(other CalendarDate) bool {
	return date.Compare(other) == 0
}

// InRange reports whether date lies in [from, to], both ends inclusive.
func (date CalendarDate) InRange(from CalendarDate, to CalendarDate) bool {
	return !date.Before(from) && !date.After(to)
}

func (date CalendarDate) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Time().Format(DateLayout)
}

func MinDate(a CalendarDate, b CalendarDate) CalendarDate {
	if b.Before(a) {
		return b
	}
	return a
}

func MaxDate(a CalendarDate, b CalendarDate) CalendarDate {
	if b.After(a) {
		return b
	}
	return a
}

func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}
