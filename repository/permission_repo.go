package repository

import (
	"context"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindByName(ctx context.Context, name string) (*models.Permission, error)
	Create(ctx context.Context, permission *models.Permission) error
	List(ctx context.Context) ([]models.Permission, error)
}

type GormPermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

func (r *GormPermissionRepository) FindByName(ctx context.Context, name string) (*models.Permission, error) {
	var p models.Permission
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, notFound(err, "permission", name)
	}
	return &p, nil
}

func (r *GormPermissionRepository) Create(ctx context.Context, permission *models.Permission) error {
	return conflict(r.db.WithContext(ctx).Create(permission).Error, "permission", permission.Name)
}

func (r *GormPermissionRepository) List(ctx context.Context) ([]models.Permission, error) {
	perms := []models.Permission{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&perms).Error
	return perms, err
}
