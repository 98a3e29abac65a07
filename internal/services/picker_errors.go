package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/rangepicker/internal/models"
)

// ErrInvalidArgument is the root of every rejected-input error in this
// package. Callers can match it with errors.Is regardless of the detail.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidMonth     = fmt.Errorf("%w: month", ErrInvalidArgument)
	ErrInvalidHorizon   = fmt.Errorf("%w: horizon", ErrInvalidArgument)
	ErrInvalidPaneCount = fmt.Errorf("%w: pane count", ErrInvalidArgument)
	ErrInvalidPaneIndex = fmt.Errorf("%w: pane index", ErrInvalidArgument)
	ErrInvalidDelta     = fmt.Errorf("%w: navigation delta", ErrInvalidArgument)
	ErrInvalidDate      = fmt.Errorf("%w: date", ErrInvalidArgument)
)

func validateMonthKey(key models.MonthKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}
	return nil
}

func validateHorizon(horizon models.Horizon) error {
	if err := horizon.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHorizon, err)
	}
	return nil
}

func validatePaneCount(paneCount int) error {
	if paneCount < models.MinPaneCount || paneCount > models.MaxPaneCount {
		return fmt.Errorf("%w: %d outside %d..%d", ErrInvalidPaneCount, paneCount, models.MinPaneCount, models.MaxPaneCount)
	}
	return nil
}
