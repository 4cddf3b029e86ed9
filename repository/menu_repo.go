package repository

import (
	"context"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// DeleteByRestaurant removes every item owned by the restaurant.
func (r *MenuRepository) DeleteByRestaurant(ctx context.Context, restaurantID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&models.MenuItem{})
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) CreateBatch(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindByRestaurant orders by category, then name.
func (r *MenuRepository) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}
