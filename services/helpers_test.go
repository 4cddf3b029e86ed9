package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"restaurant-directory/config"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database private to the test with both
// schemas migrated.
func newTestDB(t *testing.T) *gorm.DB {
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

func newTestTokenService() *TokenService {
	return NewTokenService(TokenConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    168 * time.Hour,
	})
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func strPtr(s string) *string { return &s }
