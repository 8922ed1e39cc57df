package repository

import (
	"github.com/curtisnlogan/lodestar-project/internal/app/models"
)

// ============================
// Наблюдения Солнечной системы
// ============================

func (r *Repository) CreateSolarSystem(obs *models.SolarSystem) error {
	return r.DB.Create(obs).Error
}

func (r *Repository) GetSolarSystem(id int) (*models.SolarSystem, error) {
	var obs models.SolarSystem
	if err := r.DB.First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *Repository) DeleteSolarSystem(id int) error {
	return r.DB.Delete(&models.SolarSystem{}, id).Error
}

// SolarSystemsMissingDistance — наблюдения с payload, но без рассчитанного
// расстояния (кандидаты для пересчёта).
func (r *Repository) SolarSystemsMissingDistance() ([]models.SolarSystem, error) {
	var observations []models.SolarSystem
	err := r.DB.
		Where("api_payload IS NOT NULL AND distance_light_years IS NULL").
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *Repository) UpdateSolarSystem(obs *models.SolarSystem) error {
	return r.DB.Save(obs).Error
}

// ============================
// Наблюдения звёзд
// ============================

func (r *Repository) CreateStar(obs *models.Star) error {
	return r.DB.Create(obs).Error
}

func (r *Repository) GetStar(id int) (*models.Star, error) {
	var obs models.Star
	if err := r.DB.First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *Repository) DeleteStar(id int) error {
	return r.DB.Delete(&models.Star{}, id).Error
}

// ============================
// Наблюдения объектов глубокого космоса
// ============================

func (r *Repository) CreateDeepSky(obs *models.DeepSky) error {
	return r.DB.Create(obs).Error
}

func (r *Repository) GetDeepSky(id int) (*models.DeepSky, error) {
	var obs models.DeepSky
	if err := r.DB.First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *Repository) DeleteDeepSky(id int) error {
	return r.DB.Delete(&models.DeepSky{}, id).Error
}

// ============================
// Особые события
// ============================

func (r *Repository) CreateSpecialEvent(obs *models.SpecialEvent) error {
	return r.DB.Create(obs).Error
}

func (r *Repository) GetSpecialEvent(id int) (*models.SpecialEvent, error) {
	var obs models.SpecialEvent
	if err := r.DB.First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *Repository) DeleteSpecialEvent(id int) error {
	return r.DB.Delete(&models.SpecialEvent{}, id).Error
}
