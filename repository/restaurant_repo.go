package repository

import (
	"context"
	"strings"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint, relations ...string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := withRelations(r.db.WithContext(ctx), relations).First(&restaurant, id).Error; err != nil {
		return nil, notFound(err, "restaurant", id)
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RestaurantFilter narrows List. Zero values match everything.
type RestaurantFilter struct {
	Search string
	CityID uint
}

func (r *RestaurantRepository) List(ctx context.Context, filter RestaurantFilter, relations ...string) ([]models.Restaurant, error) {
	query := withRelations(r.db.WithContext(ctx), relations)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.CityID != 0 {
		query = query.Where("city_id = ?", filter.CityID)
	}
	restaurants := []models.Restaurant{}
	err := query.Order("id ASC").Find(&restaurants).Error
	return restaurants, err
}

// Create and Save never touch the City row; it is resolved beforehand.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Omit("City", "MenuItems").Create(restaurant).Error
}

func (r *RestaurantRepository) Save(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Omit("City", "MenuItems").Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Restaurant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "restaurant", id)
	}
	return nil
}
