package repository

import (
	"context"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) FindByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := r.db.WithContext(ctx).First(&city, id).Error; err != nil {
		return nil, notFound(err, "city", id)
	}
	return &city, nil
}

// FindByName matches the name exactly (case-sensitive).
func (r *CityRepository) FindByName(ctx context.Context, name string) (*models.City, error) {
	var city models.City
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&city).Error; err != nil {
		return nil, notFound(err, "city", name)
	}
	return &city, nil
}

func (r *CityRepository) List(ctx context.Context) ([]models.City, error) {
	cities := []models.City{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	return conflict(r.db.WithContext(ctx).Create(city).Error, "city", city.Name)
}

func (r *CityRepository) Rename(ctx context.Context, city *models.City, name string) error {
	err := r.db.WithContext(ctx).Model(city).Update("name", name).Error
	return conflict(err, "city", name)
}

func (r *CityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.City{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "city", id)
	}
	return nil
}

// CountRestaurants counts the restaurants that reference the city.
func (r *CityRepository) CountRestaurants(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).Where("city_id = ?", id).Count(&count).Error
	return count, err
}
