package db

import (
	"errors"

	"github.com/terraincognita07/rangepicker/internal/models"
	"gorm.io/gorm"
)

type PresetRepository struct {
	database *gorm.DB
}

func NewPresetRepository(database *gorm.DB) *PresetRepository {
	return &PresetRepository{database: database}
}

func (repo *PresetRepository) List() ([]models.PickerPreset, error) {
	presets := make([]models.PickerPreset, 0)
	if err := repo.database.Order("name ASC").Find(&presets).Error; err != nil {
		return nil, err
	}
	return presets, nil
}

func (repo *PresetRepository) FindByID(id uint) (models.PickerPreset, bool, error) {
	return repo.findOne("id = ?", id)
}

func (repo *PresetRepository) FindByName(name string) (models.PickerPreset, bool, error) {
	return repo.findOne("name = ?", name)
}

func (repo *PresetRepository) findOne(query string, arg any) (models.PickerPreset, bool, error) {
	preset := models.PickerPreset{}
	err := repo.database.Where(query, arg).First(&preset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PickerPreset{}, false, nil
	}
	if err != nil {
		return models.PickerPreset{}, false, err
	}
	return preset, true, nil
}

func (repo *PresetRepository) Create(preset *models.PickerPreset) error {
	return repo.database.Create(preset).Error
}

func (repo *PresetRepository) DeleteByID(id uint) (bool, error) {
	result := repo.database.Delete(&models.PickerPreset{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
