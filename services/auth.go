package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant-directory/metrics"
	"restaurant-directory/models"
	"restaurant-directory/repository"
	"restaurant-directory/security"

	"go.uber.org/zap"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	LastName string
}

type AuthService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	hasher security.PasswordHasher
	tokens *TokenService
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, hasher security.PasswordHasher, tokens *TokenService, log *zap.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an account with the default "user" role. The email is
// checked before any hashing so duplicates cost nothing.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: checking email: %v", models.ErrInternal, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is already in use", models.ErrConflict, in.Email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", models.ErrInternal, err)
	}

	defaultRole, err := s.roles.FindByName(ctx, models.RoleUser)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: default role %q is missing, run the seeder", models.ErrNotFound, models.RoleUser)
		}
		return nil, fmt.Errorf("%w: loading default role: %v", models.ErrInternal, err)
	}

	user := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		LastName:     in.LastName,
		PasswordHash: hash,
		Roles:        []models.Role{*defaultRole},
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to save user", zap.String("email", in.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: saving user: %v", models.ErrInternal, err)
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info("User registered", zap.Uint("userID", user.ID))
	return user, nil
}

// ValidateCredentials returns the user with roles and permissions loaded.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email, repository.RelRoles, repository.RelRolePermissions)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: loading user: %v", models.ErrInternal, err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	pair, err := s.tokens.IssuePair(models.TokenPayload{
		ID:              user.ID,
		Email:           user.Email,
		Roles:           user.RoleNames(),
		PermissionCodes: user.PermissionCodes(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: signing tokens: %v", models.ErrInternal, err)
	}
	s.log.Debug("User logged in", zap.Uint("userID", user.ID))
	return pair, nil
}

func (s *AuthService) Refresh(refreshToken string) (*models.TokenPair, error) {
	return s.tokens.Refresh(refreshToken)
}

// Profile loads the caller's account with its roles.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID, repository.RelRoles)
}
