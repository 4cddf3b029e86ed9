package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-directory/metrics"
	"restaurant-directory/models"
	"restaurant-directory/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MenuItemInput struct {
	Name        string
	Description *string
	Price       float64
	Category    string
}

type MenuService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMenuService(db *gorm.DB, log *zap.Logger) *MenuService {
	return &MenuService{db: db, log: log}
}

// BulkSave replaces the whole menu of a restaurant in one transaction.
// Items are de-duplicated by trimmed name and the first occurrence wins.
// An empty input clears the menu.
func (s *MenuService) BulkSave(ctx context.Context, restaurantID uint, items []MenuItemInput) ([]models.MenuItem, error) {
	saved := []models.MenuItem{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := repository.NewRestaurantRepository(tx)
		menus := repository.NewMenuRepository(tx)

		exists, err := restaurants.Exists(ctx, restaurantID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: restaurant %d", models.ErrNotFound, restaurantID)
		}
		for i, it := range items {
			if strings.TrimSpace(it.Name) == "" {
				return fmt.Errorf("%w: item %d has an empty name", models.ErrValidation, i)
			}
		}

		removed, err := menus.DeleteByRestaurant(ctx, restaurantID)
		if err != nil {
			return err
		}
		s.log.Debug("Menu cleared", zap.Uint("restaurantID", restaurantID), zap.Int64("removed", removed))

		if len(items) == 0 {
			return nil
		}

		saved = normalizeMenuItems(restaurantID, dedupeMenuItems(items))
		if err := menus.CreateBatch(ctx, saved); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("%w: a menu item with that name already exists in restaurant %d", models.ErrConflict, restaurantID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		metrics.MenuBulkSavesTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.MenuBulkSavesTotal.WithLabelValues("success").Inc()
	s.log.Info("Menu replaced", zap.Uint("restaurantID", restaurantID), zap.Int("items", len(saved)))
	return saved, nil
}

// FindByRestaurant returns the menu grouped by category, then by name.
func (s *MenuService) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	return repository.NewMenuRepository(s.db).FindByRestaurant(ctx, restaurantID)
}

func dedupeMenuItems(items []MenuItemInput) []MenuItemInput {
	seen := make(map[string]bool, len(items))
	out := make([]MenuItemInput, 0, len(items))
	for _, it := range items {
		key := strings.TrimSpace(it.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func normalizeMenuItems(restaurantID uint, items []MenuItemInput) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		category := strings.TrimSpace(it.Category)
		if category == "" {
			category = models.DefaultMenuCategory
		}
		out = append(out, models.MenuItem{
			RestaurantID: restaurantID,
			Name:         strings.TrimSpace(it.Name),
			Description:  it.Description,
			Price:        it.Price,
			Category:     category,
		})
	}
	return out
}
