package seed

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"restaurant-directory/config"
	"restaurant-directory/models"
	"restaurant-directory/repository"
	"restaurant-directory/security"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.MigrateUsers(db); err != nil {
		t.Fatalf("migrate users: %v", err)
	}
	if err := config.MigrateRestaurants(db); err != nil {
		t.Fatalf("migrate restaurants: %v", err)
	}
	return db
}

func TestSeedAccess_IsIdempotent(t *testing.T) {
	db := newSeedDBForTest(t)
	ctx := context.Background()
	admin := AdminSeed{Email: "admin@admin.com", Password: "admin123"}

	first, err := SeedAccess(ctx, db, admin)
	require.NoError(t, err)
	assert.Equal(t, len(Permissions), first.CreatedPermissions)
	assert.Equal(t, 2, first.CreatedRoles)
	assert.Equal(t, 1, first.CreatedUsers)
	assert.Equal(t, len(Permissions), first.GrantedAdminPermissions)
	assert.False(t, first.Noop)

	second, err := SeedAccess(ctx, db, admin)
	require.NoError(t, err)
	assert.True(t, second.Noop)

	var permissions, roles, users int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permissions).Error)
	require.NoError(t, db.Model(&models.Role{}).Count(&roles).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(len(Permissions)), permissions)
	assert.Equal(t, int64(2), roles)
	assert.Equal(t, int64(1), users)
}

func TestSeedAccess_AdminHoldsEveryPermission(t *testing.T) {
	db := newSeedDBForTest(t)
	ctx := context.Background()
	_, err := SeedAccess(ctx, db, AdminSeed{Email: "root@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	user, err := repository.NewUserRepository(db).FindByEmail(ctx, "root@example.com", repository.RelRoles, repository.RelRolePermissions)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleAdmin}, user.RoleNames())
	assert.ElementsMatch(t, Permissions, user.PermissionCodes())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")))
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, security.PasswordCost, cost)

	userRole, err := repository.NewRoleRepository(db).FindByName(ctx, models.RoleUser, repository.RelPermissions)
	require.NoError(t, err)
	assert.Empty(t, userRole.Permissions)
}

func TestSeedAccess_RegrantsNewPermissionsToAdmin(t *testing.T) {
	db := newSeedDBForTest(t)
	ctx := context.Background()
	_, err := SeedAccess(ctx, db, AdminSeed{})
	require.NoError(t, err)

	require.NoError(t, repository.NewPermissionRepository(db).Create(ctx, &models.Permission{Name: "reports_read"}))
	regrant, err := SeedAccess(ctx, db, AdminSeed{})
	require.NoError(t, err)
	assert.Zero(t, regrant.CreatedPermissions)
	assert.Equal(t, 1, regrant.GrantedAdminPermissions)
	assert.False(t, regrant.Noop)

	admin, err := repository.NewRoleRepository(db).FindByName(ctx, models.RoleAdmin, repository.RelPermissions)
	require.NoError(t, err)
	assert.Len(t, admin.Permissions, len(Permissions)+1)
}

func TestSeedCities_IsIdempotent(t *testing.T) {
	db := newSeedDBForTest(t)
	ctx := context.Background()

	first, err := SeedCities(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(Cities), first.CreatedCities)

	second, err := SeedCities(ctx, db)
	require.NoError(t, err)
	assert.True(t, second.Noop)

	var cities []models.City
	require.NoError(t, db.Order("id").Find(&cities).Error)
	require.Len(t, cities, len(Cities))
	assert.Equal(t, "Villa María", cities[0].Name)
}
