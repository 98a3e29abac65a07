package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/rangepicker/internal/models"
)

type stubPresetRepo struct {
	presets   []models.PickerPreset
	nextID    uint
	createErr error
}

func (stub *stubPresetRepo) List() ([]models.PickerPreset, error) {
	return append([]models.PickerPreset(nil), stub.presets...), nil
}

func (stub *stubPresetRepo) FindByID(id uint) (models.PickerPreset, bool, error) {
	for _, preset := range stub.presets {
		if preset.ID == id {
			return preset, true, nil
		}
	}
	return models.PickerPreset{}, false, nil
}

func (stub *stubPresetRepo) FindByName(name string) (models.PickerPreset, bool, error) {
	for _, preset := range stub.presets {
		if preset.Name == name {
			return preset, true, nil
		}
	}
	return models.PickerPreset{}, false, nil
}

func (stub *stubPresetRepo) Create(preset *models.PickerPreset) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.nextID++
	preset.ID = stub.nextID
	stub.presets = append(stub.presets, *preset)
	return nil
}

func (stub *stubPresetRepo) DeleteByID(id uint) (bool, error) {
	for index, preset := range stub.presets {
		if preset.ID == id {
			stub.presets = append(stub.presets[:index], stub.presets[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestPresetServiceCreateAndFind(t *testing.T) {
	t.Parallel()

	service := NewPresetService(&stubPresetRepo{})
	preset, err := service.CreatePreset(PresetInput{
		Name:    "  Quarter  ",
		Horizon: mustHorizon(t, "2026-01-01", "2026-03-31"),
	})
	if err != nil {
		t.Fatalf("CreatePreset() unexpected error: %v", err)
	}
	if preset.Name != "Quarter" {
		t.Fatalf("expected trimmed name, got %q", preset.Name)
	}
	if preset.PaneCount != models.DefaultPaneCount {
		t.Fatalf("expected default pane count %d, got %d", models.DefaultPaneCount, preset.PaneCount)
	}
	if preset.HorizonStart != "2026-01-01" || preset.HorizonEnd != "2026-03-31" {
		t.Fatalf("unexpected stored horizon %s..%s", preset.HorizonStart, preset.HorizonEnd)
	}

	found, err := service.FindPreset(preset.ID)
	if err != nil {
		t.Fatalf("FindPreset() unexpected error: %v", err)
	}
	if found.Name != "Quarter" {
		t.Fatalf("expected stored preset, got %#v", found)
	}
}

func TestPresetServiceValidation(t *testing.T) {
	t.Parallel()

	horizon := mustHorizon(t, "2026-01-01", "2026-12-31")
	tests := []struct {
		name     string
		input    PresetInput
		expected error
	}{
		{name: "blank name", input: PresetInput{Name: "   ", Horizon: horizon}, expected: ErrPresetNameInvalid},
		{name: "long name", input: PresetInput{Name: strings.Repeat("x", 65), Horizon: horizon}, expected: ErrPresetNameInvalid},
		{name: "too many panes", input: PresetInput{Name: "wide", Horizon: horizon, PaneCount: 13}, expected: ErrInvalidPaneCount},
		{name: "negative panes", input: PresetInput{Name: "narrow", Horizon: horizon, PaneCount: -1}, expected: ErrInvalidPaneCount},
		{name: "missing horizon", input: PresetInput{Name: "empty"}, expected: ErrInvalidHorizon},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			service := NewPresetService(&stubPresetRepo{})
			_, err := service.CreatePreset(test.input)
			if !errors.Is(err, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument root, got %v", err)
			}
		})
	}
}

func TestPresetServiceRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	service := NewPresetService(&stubPresetRepo{})
	input := PresetInput{Name: "Year", Horizon: mustHorizon(t, "2026-01-01", "2026-12-31"), PaneCount: 4}
	if _, err := service.CreatePreset(input); err != nil {
		t.Fatalf("CreatePreset() unexpected error: %v", err)
	}
	if _, err := service.CreatePreset(input); !errors.Is(err, ErrPresetNameTaken) {
		t.Fatalf("expected ErrPresetNameTaken, got %v", err)
	}
}

func TestPresetServiceWrapsRepositoryFailure(t *testing.T) {
	t.Parallel()

	service := NewPresetService(&stubPresetRepo{createErr: errors.New("disk full")})
	_, err := service.CreatePreset(PresetInput{Name: "Year", Horizon: mustHorizon(t, "2026-01-01", "2026-12-31")})
	if !errors.Is(err, ErrPresetCreateFailed) {
		t.Fatalf("expected ErrPresetCreateFailed, got %v", err)
	}
}

func TestPresetServiceDelete(t *testing.T) {
	t.Parallel()

	repo := &stubPresetRepo{}
	service := NewPresetService(repo)
	preset, err := service.CreatePreset(PresetInput{Name: "Year", Horizon: mustHorizon(t, "2026-01-01", "2026-12-31")})
	if err != nil {
		t.Fatalf("CreatePreset() unexpected error: %v", err)
	}

	if err := service.DeletePreset(preset.ID); err != nil {
		t.Fatalf("DeletePreset() unexpected error: %v", err)
	}
	if err := service.DeletePreset(preset.ID); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
	if _, err := service.FindPreset(preset.ID); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestSessionOptionsFromPreset(t *testing.T) {
	t.Parallel()

	preset := models.PickerPreset{Name: "Q1", HorizonStart: "2026-01-01", HorizonEnd: "2026-03-31", PaneCount: 3}
	options, err := SessionOptionsFromPreset(preset, models.Selection{}, true)
	if err != nil {
		t.Fatalf("SessionOptionsFromPreset() unexpected error: %v", err)
	}
	if options.PaneCount != 3 || !options.ReportIntermediate {
		t.Fatalf("unexpected options %#v", options)
	}
	if options.Horizon.Start.String() != "2026-01-01" || options.Horizon.End.String() != "2026-03-31" {
		t.Fatalf("unexpected horizon %s..%s", options.Horizon.Start, options.Horizon.End)
	}

	preset.HorizonEnd = "garbage"
	if _, err := SessionOptionsFromPreset(preset, models.Selection{}, true); !errors.Is(err, ErrInvalidHorizon) {
		t.Fatalf("expected ErrInvalidHorizon, got %v", err)
	}
}
