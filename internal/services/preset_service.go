package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/rangepicker/internal/models"
)

var (
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameInvalid  = fmt.Errorf("%w: preset name", ErrInvalidArgument)
	ErrPresetNameTaken    = errors.New("preset name already exists")
	ErrPresetLoadFailed   = errors.New("load presets failed")
	ErrPresetCreateFailed = errors.New("create preset failed")
	ErrPresetDeleteFailed = errors.New("delete preset failed")
)

const maxPresetNameLength = 64

type PresetInput struct {
	Name      string
	Horizon   models.Horizon
	PaneCount int
}

type PresetRepository interface {
	List() ([]models.PickerPreset, error)
	FindByID(id uint) (models.PickerPreset, bool, error)
	FindByName(name string) (models.PickerPreset, bool, error)
	Create(preset *models.PickerPreset) error
	DeleteByID(id uint) (bool, error)
}

type PresetService struct {
	presets PresetRepository
}

func NewPresetService(presets PresetRepository) *PresetService {
	return &PresetService{presets: presets}
}

func (service *PresetService) ListPresets() ([]models.PickerPreset, error) {
	presets, err := service.presets.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPresetLoadFailed, err)
	}
	return presets, nil
}

func (service *PresetService) CreatePreset(input PresetInput) (models.PickerPreset, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxPresetNameLength {
		return models.PickerPreset{}, ErrPresetNameInvalid
	}
	if err := validateHorizon(input.Horizon); err != nil {
		return models.PickerPreset{}, err
	}
	paneCount := input.PaneCount
	if paneCount == 0 {
		paneCount = models.DefaultPaneCount
	}
	if err := validatePaneCount(paneCount); err != nil {
		return models.PickerPreset{}, err
	}

	_, exists, err := service.presets.FindByName(name)
	if err != nil {
		return models.PickerPreset{}, fmt.Errorf("%w: %v", ErrPresetLoadFailed, err)
	}
	if exists {
		return models.PickerPreset{}, ErrPresetNameTaken
	}

	preset := models.PickerPreset{
		Name:         name,
		HorizonStart: input.Horizon.Start.String(),
		HorizonEnd:   input.Horizon.End.String(),
		PaneCount:    paneCount,
	}
	if err := service.presets.Create(&preset); err != nil {
		return models.PickerPreset{}, fmt.Errorf("%w: %v", ErrPresetCreateFailed, err)
	}
	return preset, nil
}

func (service *PresetService) FindPreset(id uint) (models.PickerPreset, error) {
	preset, found, err := service.presets.FindByID(id)
	if err != nil {
		return models.PickerPreset{}, fmt.Errorf("%w: %v", ErrPresetLoadFailed, err)
	}
	if !found {
		return models.PickerPreset{}, ErrPresetNotFound
	}
	return preset, nil
}

func (service *PresetService) DeletePreset(id uint) error {
	deleted, err := service.presets.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPresetDeleteFailed, err)
	}
	if !deleted {
		return ErrPresetNotFound
	}
	return nil
}

// SessionOptionsFromPreset turns a stored preset into session options. The
// initial selection is supplied by the caller; presets never store one.
func SessionOptionsFromPreset(preset models.PickerPreset, selection models.Selection, reportIntermediate bool) (SessionOptions, error) {
	horizon, err := preset.Horizon()
	if err != nil {
		return SessionOptions{}, fmt.Errorf("%w: %v", ErrInvalidHorizon, err)
	}
	return SessionOptions{
		Horizon:            horizon,
		PaneCount:          preset.PaneCount,
		Selection:          selection,
		ReportIntermediate: reportIntermediate,
	}, nil
}
