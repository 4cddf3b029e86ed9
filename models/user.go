package models

import (
	"time"
)

const (
	// RoleUser is attached to every account on registration.
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Permission codes checked by the users service routes.
const (
	PermUsersRead              = "users_read"
	PermUsersCreate            = "users_create"
	PermUsersUpdate            = "users_update"
	PermUsersDelete            = "users_delete"
	PermUsersAssignRoles       = "users_assign_roles"
	PermRolesCreate            = "roles_create"
	PermRolesAssignPermissions = "roles_assign_permissions"
	PermPermissionsCreate      = "permissions_create"
)

// Permission is an opaque capability code such as "users_read".
type Permission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Role struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;size:64;not null"`
	Description string       `json:"description" gorm:"size:255"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Roles        []Role    `json:"roles,omitempty" gorm:"many2many:user_roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoleNames returns the names of the loaded roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// PermissionCodes is the union of permission names across the loaded roles.
// Roles.Permissions must be preloaded for the result to be complete.
func (u *User) PermissionCodes() []string {
	seen := map[string]bool{}
	codes := []string{}
	for _, r := range u.Roles {
		for _, p := range r.Permissions {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			codes = append(codes, p.Name)
		}
	}
	return codes
}

// HasRole reports whether a role with the given name is attached.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
