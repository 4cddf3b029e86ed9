package repository

import (
	"context"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByID(ctx context.Context, id uint, relations ...string) (*models.Role, error)
	FindByName(ctx context.Context, name string, relations ...string) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	List(ctx context.Context, relations ...string) ([]models.Role, error)
	AddPermission(ctx context.Context, role *models.Role, permission *models.Permission) error
	ReplacePermissions(ctx context.Context, role *models.Role, permissions []models.Permission) error
}

type GormRoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) FindByID(ctx context.Context, id uint, relations ...string) (*models.Role, error) {
	var role models.Role
	if err := withRelations(r.db.WithContext(ctx), relations).First(&role, id).Error; err != nil {
		return nil, notFound(err, "role", id)
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByName(ctx context.Context, name string, relations ...string) (*models.Role, error) {
	var role models.Role
	if err := withRelations(r.db.WithContext(ctx), relations).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, notFound(err, "role", name)
	}
	return &role, nil
}

func (r *GormRoleRepository) Create(ctx context.Context, role *models.Role) error {
	return conflict(r.db.WithContext(ctx).Omit("Permissions.*").Create(role).Error, "role", role.Name)
}

func (r *GormRoleRepository) List(ctx context.Context, relations ...string) ([]models.Role, error) {
	roles := []models.Role{}
	err := withRelations(r.db.WithContext(ctx), relations).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *GormRoleRepository) AddPermission(ctx context.Context, role *models.Role, permission *models.Permission) error {
	return r.db.WithContext(ctx).Model(role).Association("Permissions").Append(permission)
}

func (r *GormRoleRepository) ReplacePermissions(ctx context.Context, role *models.Role, permissions []models.Permission) error {
	return r.db.WithContext(ctx).Model(role).Association("Permissions").Replace(permissions)
}
