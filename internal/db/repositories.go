package db

import "gorm.io/gorm"

type Repositories struct {
	Presets *PresetRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Presets: NewPresetRepository(database),
	}
}
