package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-directory/models"
	"restaurant-directory/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddressInput struct {
	Street   string
	Number   string
	CityName string
	Location *models.Location
}

// RestaurantInput carries a create or a partial update. Nil fields are
// left untouched on update.
type RestaurantInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	Address     *AddressInput
}

type RestaurantService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRestaurantService(db *gorm.DB, log *zap.Logger) *RestaurantService {
	return &RestaurantService{db: db, log: log}
}

func (s *RestaurantService) List(ctx context.Context, filter repository.RestaurantFilter) ([]models.Restaurant, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return repository.NewRestaurantRepository(s.db).List(ctx, filter, repository.RelCity)
}

// Get loads the restaurant with its city and its ordered menu.
func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	return repository.NewRestaurantRepository(s.db).FindByID(ctx, id, repository.RelMenuItems, repository.RelCity)
}

func (s *RestaurantService) Create(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Address == nil || strings.TrimSpace(in.Address.CityName) == "" {
		return nil, fmt.Errorf("%w: name and a full address with cityName are required", models.ErrValidation)
	}

	restaurant := &models.Restaurant{
		Name: strings.TrimSpace(*in.Name),
		Address: models.Address{
			Street: in.Address.Street,
			Number: in.Address.Number,
		},
	}
	if in.Description != nil {
		restaurant.Description = *in.Description
	}
	if in.ImageURL != nil {
		restaurant.ImageURL = *in.ImageURL
	}
	if in.Address.Location != nil {
		restaurant.Address.Location = *in.Address.Location
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		city, err := findOrCreateCity(ctx, tx, strings.TrimSpace(in.Address.CityName))
		if err != nil {
			return err
		}
		restaurant.CityID = &city.ID
		restaurant.City = city
		return repository.NewRestaurantRepository(tx).Create(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Restaurant created", zap.Uint("restaurantID", restaurant.ID), zap.String("city", restaurant.City.Name))
	return restaurant, nil
}

func (s *RestaurantService) Update(ctx context.Context, id uint, in RestaurantInput) (*models.Restaurant, error) {
	var restaurant *models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := repository.NewRestaurantRepository(tx)
		var err error
		restaurant, err = restaurants.FindByID(ctx, id, repository.RelCity)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
			}
			restaurant.Name = name
		}
		if in.Description != nil {
			restaurant.Description = *in.Description
		}
		if in.ImageURL != nil {
			restaurant.ImageURL = *in.ImageURL
		}
		if in.Address != nil {
			restaurant.Address.Street = in.Address.Street
			restaurant.Address.Number = in.Address.Number
			if in.Address.Location != nil {
				restaurant.Address.Location = *in.Address.Location
			}
			if cityName := strings.TrimSpace(in.Address.CityName); cityName != "" {
				city, err := findOrCreateCity(ctx, tx, cityName)
				if err != nil {
					return err
				}
				restaurant.CityID = &city.ID
				restaurant.City = city
			}
		}
		return restaurants.Save(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Delete removes the restaurant together with its menu.
func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := repository.NewRestaurantRepository(tx)
		exists, err := restaurants.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: restaurant %d", models.ErrNotFound, id)
		}
		if _, err := repository.NewMenuRepository(tx).DeleteByRestaurant(ctx, id); err != nil {
			return err
		}
		return restaurants.Delete(ctx, id)
	})
}
