package models

import "time"

const (
	MinPaneCount     = 1
	MaxPaneCount     = 12
	DefaultPaneCount = 2
)

// PickerPreset stores reusable session construction parameters. Dates are
// kept as YYYY-MM-DD text.
type PickerPreset struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null;uniqueIndex"`
	HorizonStart string    `gorm:"not null"`
	HorizonEnd   string    `gorm:"not null"`
	PaneCount    int       `gorm:"not null;default:2"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (PickerPreset) TableName() string {
	return "picker_presets"
}

func (preset PickerPreset) Horizon() (Horizon, error) {
	start, err := ParseCalendarDate(preset.HorizonStart)
	if err != nil {
		return Horizon{}, err
	}
	end, err := ParseCalendarDate(preset.HorizonEnd)
	if err != nil {
		return Horizon{}, err
	}
	return NewHorizon(start, end)
}
