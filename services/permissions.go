package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-directory/models"
	"restaurant-directory/repository"
)

type PermissionService struct {
	permissions repository.PermissionRepository
}

func NewPermissionService(permissions repository.PermissionRepository) *PermissionService {
	return &PermissionService{permissions: permissions}
}

func (s *PermissionService) Create(ctx context.Context, name string) (*models.Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: permission name is required", models.ErrValidation)
	}
	p := &models.Permission{Name: name}
	if err := s.permissions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PermissionService) List(ctx context.Context) ([]models.Permission, error) {
	return s.permissions.List(ctx)
}
