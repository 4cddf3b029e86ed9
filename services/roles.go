package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant-directory/models"
	"restaurant-directory/repository"

	"go.uber.org/zap"
)

type RoleService struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
	log         *zap.Logger
}

func NewRoleService(roles repository.RoleRepository, permissions repository.PermissionRepository, log *zap.Logger) *RoleService {
	return &RoleService{roles: roles, permissions: permissions, log: log}
}

func (s *RoleService) Create(ctx context.Context, name, description string) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", models.ErrValidation)
	}
	role := &models.Role{Name: name, Description: description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	s.log.Info("Role created", zap.String("role", role.Name))
	return role, nil
}

// AssignPermission grants the named permission to the role; granting it
// twice is a no-op.
func (s *RoleService) AssignPermission(ctx context.Context, roleID uint, permissionName string) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, roleID, repository.RelPermissions)
	if err != nil {
		return nil, err
	}
	permission, err := s.permissions.FindByName(ctx, permissionName)
	if err != nil {
		return nil, err
	}
	for _, p := range role.Permissions {
		if p.ID == permission.ID {
			return role, nil
		}
	}
	if err := s.roles.AddPermission(ctx, role, permission); err != nil {
		return nil, err
	}
	s.log.Info("Permission assigned", zap.String("role", role.Name), zap.String("permission", permission.Name))
	return s.roles.FindByID(ctx, roleID, repository.RelPermissions)
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	return s.roles.List(ctx, repository.RelPermissions)
}
