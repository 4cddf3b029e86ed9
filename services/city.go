package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-directory/models"
	"restaurant-directory/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CityService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCityService(db *gorm.DB, log *zap.Logger) *CityService {
	return &CityService{db: db, log: log}
}

func (s *CityService) List(ctx context.Context) ([]models.City, error) {
	return repository.NewCityRepository(s.db).List(ctx)
}

func (s *CityService) Get(ctx context.Context, id uint) (*models.City, error) {
	return repository.NewCityRepository(s.db).FindByID(ctx, id)
}

func (s *CityService) Create(ctx context.Context, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: city name is required", models.ErrValidation)
	}
	city := &models.City{Name: name}
	if err := repository.NewCityRepository(s.db).Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Update(ctx context.Context, id uint, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: city name is required", models.ErrValidation)
	}
	cities := repository.NewCityRepository(s.db)
	city, err := cities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cities.Rename(ctx, city, name); err != nil {
		return nil, err
	}
	city.Name = name
	return city, nil
}

// Delete refuses to remove a city that restaurants still point at.
func (s *CityService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cities := repository.NewCityRepository(tx)
		if _, err := cities.FindByID(ctx, id); err != nil {
			return err
		}
		n, err := cities.CountRestaurants(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: city %d is referenced by %d restaurants", models.ErrConflict, id, n)
		}
		return cities.Delete(ctx, id)
	})
}

// findOrCreateCity looks the city up by exact name and inserts it when
// missing. The insert runs in a savepoint: if a concurrent request created
// the same name first, the unique index rejects ours and the winner is read back.
func findOrCreateCity(ctx context.Context, tx *gorm.DB, name string) (*models.City, error) {
	cities := repository.NewCityRepository(tx)
	city, err := cities.FindByName(ctx, name)
	if err == nil {
		return city, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	city = &models.City{Name: name}
	err = tx.Transaction(func(sp *gorm.DB) error {
		return repository.NewCityRepository(sp).Create(ctx, city)
	})
	if errors.Is(err, models.ErrConflict) {
		return cities.FindByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	return city, nil
}
