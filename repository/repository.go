package repository

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-directory/models"

	"gorm.io/gorm"
)

// Relation names accepted by the Find/List methods. Nothing is preloaded
// unless the caller asks for it.
const (
	RelRoles           = "Roles"
	RelRolePermissions = "Roles.Permissions"
	RelPermissions     = "Permissions"
	RelCity            = "City"
	RelMenuItems       = "MenuItems"
)

func withRelations(db *gorm.DB, relations []string) *gorm.DB {
	for _, rel := range relations {
		if rel == RelMenuItems {
			db = db.Preload(rel, func(tx *gorm.DB) *gorm.DB {
				return tx.Order("category ASC").Order("name ASC")
			})
			continue
		}
		db = db.Preload(rel)
	}
	return db
}

// IsUniqueViolation reports whether err came from a unique index. With
// TranslateError enabled both drivers return gorm.ErrDuplicatedKey; the
// message checks cover connections opened without it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505")
}

func notFound(err error, what string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %v", models.ErrNotFound, what, key)
	}
	return err
}

func conflict(err error, what string, key any) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s %v", models.ErrConflict, what, key)
	}
	return err
}
