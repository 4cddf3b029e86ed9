package services

import (
	"context"

	"restaurant-directory/models"
	"restaurant-directory/repository"

	"go.uber.org/zap"
)

type UserService struct {
	users repository.UserRepository
	roles repository.RoleRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, roles: roles, log: log}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, repository.RelRoles)
}

// AssignRole attaches the named role. Assigning a role the user already
// has is a no-op.
func (s *UserService) AssignRole(ctx context.Context, userID uint, roleName string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID, repository.RelRoles)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if user.HasRole(role.Name) {
		return user, nil
	}
	if err := s.users.AddRole(ctx, user, role); err != nil {
		return nil, err
	}
	s.log.Info("Role assigned", zap.Uint("userID", user.ID), zap.String("role", role.Name))
	return s.users.FindByID(ctx, userID, repository.RelRoles)
}
