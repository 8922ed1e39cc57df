package repository

import (
	"github.com/curtisnlogan/lodestar-project/internal/app/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	DB    *gorm.DB
	Redis *RedisRepository
}

func NewRepository(dsn string) (*Repository, error) {
	// TranslateError нужен, чтобы ловить нарушение уникальности slug как gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	repo := &Repository{DB: db}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

func NewRepositoryFromDB(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Migrate создаёт/обновляет схему БД.
func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(
		&models.User{},
		&models.ObservingSession{},
		&models.SolarSystem{},
		&models.Star{},
		&models.DeepSky{},
		&models.SpecialEvent{},
	)
}
