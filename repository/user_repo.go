package repository

import (
	"context"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

// UserRepository defines the storage operations on accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uint, relations ...string) (*models.User, error)
	FindByEmail(ctx context.Context, email string, relations ...string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, relations ...string) ([]models.User, error)
	AddRole(ctx context.Context, user *models.User, role *models.Role) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint, relations ...string) (*models.User, error) {
	var user models.User
	if err := withRelations(r.db.WithContext(ctx), relations).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string, relations ...string) (*models.User, error) {
	var user models.User
	err := withRelations(r.db.WithContext(ctx), relations).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return &user, nil
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the user and links the already persisted roles in user.Roles.
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Omit("Roles.*").Create(user).Error
	return conflict(err, "user", user.Email)
}

func (r *GormUserRepository) List(ctx context.Context, relations ...string) ([]models.User, error) {
	users := []models.User{}
	err := withRelations(r.db.WithContext(ctx), relations).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *GormUserRepository) AddRole(ctx context.Context, user *models.User, role *models.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Append(role)
}
