package seed

import (
	"context"
	"errors"
	"fmt"

	"restaurant-directory/models"
	"restaurant-directory/repository"
	"restaurant-directory/security"

	"gorm.io/gorm"
)

// Permissions seeded on every start of the users service.
var Permissions = []string{
	models.PermUsersRead,
	models.PermUsersCreate,
	models.PermUsersUpdate,
	models.PermUsersDelete,
	models.PermUsersAssignRoles,
	models.PermRolesCreate,
	models.PermRolesAssignPermissions,
	models.PermPermissionsCreate,
}

// Cities seeded on every start of the restaurant service.
var Cities = []string{
	"Villa María",
	"Córdoba",
	"Río Cuarto",
	"Leones",
	"Marcos Juarez",
	"Bell Ville",
}

type AdminSeed struct {
	Email    string
	Password string
	// Hasher defaults to bcrypt at security.PasswordCost.
	Hasher security.PasswordHasher
}

type Report struct {
	CreatedPermissions int
	CreatedRoles       int
	CreatedUsers       int
	CreatedCities      int
	// GrantedAdminPermissions counts permissions newly granted to the admin role.
	GrantedAdminPermissions int
	Noop                    bool
}

// SeedAccess makes sure the default permissions, the "user" and "admin"
// roles and the admin account exist. The admin role is granted every
// permission on each run. Running it twice changes nothing.
func SeedAccess(ctx context.Context, db *gorm.DB, admin AdminSeed) (*Report, error) {
	report := &Report{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perms := repository.NewPermissionRepository(tx)
		roles := repository.NewRoleRepository(tx)
		users := repository.NewUserRepository(tx)

		for _, name := range Permissions {
			_, err := perms.FindByName(ctx, name)
			if err == nil {
				continue
			}
			if !errors.Is(err, models.ErrNotFound) {
				return err
			}
			if err := perms.Create(ctx, &models.Permission{Name: name}); err != nil {
				return fmt.Errorf("create permission %s: %w", name, err)
			}
			report.CreatedPermissions++
		}

		if _, err := ensureRole(ctx, roles, models.RoleUser, "Regular user", report); err != nil {
			return err
		}
		adminRole, err := ensureRole(ctx, roles, models.RoleAdmin, "Administrator", report)
		if err != nil {
			return err
		}

		allPerms, err := perms.List(ctx)
		if err != nil {
			return err
		}
		if len(adminRole.Permissions) != len(allPerms) {
			granted := len(allPerms) - len(adminRole.Permissions)
			if err := roles.ReplacePermissions(ctx, adminRole, allPerms); err != nil {
				return fmt.Errorf("grant admin permissions: %w", err)
			}
			report.GrantedAdminPermissions = granted
		}

		if admin.Email == "" {
			return nil
		}
		exists, err := users.ExistsByEmail(ctx, admin.Email)
		if err != nil || exists {
			return err
		}
		hasher := admin.Hasher
		if hasher == nil {
			hasher = security.NewBcryptHasher()
		}
		hash, err := hasher.Hash(admin.Password)
		if err != nil {
			return err
		}
		adminUser := &models.User{
			Email:        admin.Email,
			Name:         "Admin",
			LastName:     "System",
			PasswordHash: hash,
			Roles:        []models.Role{*adminRole},
		}
		if err := users.Create(ctx, adminUser); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		report.CreatedUsers++
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Noop = report.CreatedPermissions == 0 && report.CreatedRoles == 0 &&
		report.CreatedUsers == 0 && report.GrantedAdminPermissions == 0
	return report, nil
}

func ensureRole(ctx context.Context, roles *repository.GormRoleRepository, name, description string, report *Report) (*models.Role, error) {
	role, err := roles.FindByName(ctx, name, repository.RelPermissions)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	role = &models.Role{Name: name, Description: description}
	if err := roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	report.CreatedRoles++
	return role, nil
}

// SeedCities inserts the known city list, skipping names already present.
func SeedCities(ctx context.Context, db *gorm.DB) (*Report, error) {
	report := &Report{}
	cities := repository.NewCityRepository(db)
	for _, name := range Cities {
		_, err := cities.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		if err := cities.Create(ctx, &models.City{Name: name}); err != nil {
			return nil, fmt.Errorf("create city %s: %w", name, err)
		}
		report.CreatedCities++
	}
	report.Noop = report.CreatedCities == 0
	return report, nil
}
