package handlers

import (
	"net/http"

	"restaurant-directory/services"

	"github.com/gin-gonic/gin"
)

type AssignRoleRequest struct {
	RoleName string `json:"roleName" binding:"required"`
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AssignPermissionRequest struct {
	PermissionName string `json:"permissionName" binding:"required"`
}

type CreatePermissionRequest struct {
	Name string `json:"name" binding:"required"`
}

// AdminHandler serves user, role and permission administration.
type AdminHandler struct {
	users       *services.UserService
	roles       *services.RoleService
	permissions *services.PermissionService
}

func NewAdminHandler(users *services.UserService, roles *services.RoleService, permissions *services.PermissionService) *AdminHandler {
	return &AdminHandler{users: users, roles: roles, permissions: permissions}
}

// ListUsers returns every account with its roles
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AssignRole attaches a role to a user by role name
func (h *AdminHandler) AssignRole(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AssignRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.AssignRole(c.Request.Context(), userID, req.RoleName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListRoles returns every role with its permissions
func (h *AdminHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// CreateRole creates a new role
func (h *AdminHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roles.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// AssignPermission grants a permission, by name, to the role in the path
func (h *AdminHandler) AssignPermission(c *gin.Context) {
	roleID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AssignPermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roles.AssignPermission(c.Request.Context(), roleID, req.PermissionName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// ListPermissions returns every permission
func (h *AdminHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.permissions.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}

// CreatePermission creates a new permission code
func (h *AdminHandler) CreatePermission(c *gin.Context) {
	var req CreatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	permission, err := h.permissions.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, permission)
}
