package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"moviecatalogapi/pkg/logger"
	"moviecatalogapi/services"
	"moviecatalogapi/services/dto"
	"moviecatalogapi/utils"

	"github.com/gin-gonic/gin"
)

var roleSrv services.RoleService

// SetRoleService initializes the role service instance.
func SetRoleService(srv services.RoleService) {
	roleSrv = srv
}

// GetAllRoles retrieves all roles
// @Summary List roles
// @Description Retrieves all roles ordered by name.
// @Tags Roles
// @Accept json
// @Produce json
// @Success 200 {array} dto.RoleResponse "List of roles"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/roles [get]
func getAllRoles(c *gin.Context) {
	roles, err := roleSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list roles: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, roles)
}

// GetRoleByID retrieves a role by ID
// @Summary Get role by ID
// @Description Retrieves a single role.
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.RoleResponse "Role details"
// @Failure 400 {object} map[string]string "Invalid role ID"
// @Failure 404 {object} map[string]string "Role not found"
// @Router /api/catalog/roles/{id} [get]
func getRoleByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid role ID"))
		return
	}

	role, err := roleSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get role %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if role == nil {
		notFoundResponse(c, "Role not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, role)
}

// GetRoleForEdit retrieves a role in its editable shape
// @Summary Get role for editing
// @Description Retrieves a role in the mutable request shape for pre-filling an edit form.
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.RoleRequest "Editable role"
// @Failure 400 {object} map[string]string "Invalid role ID"
// @Failure 404 {object} map[string]string "Role not found"
// @Router /api/catalog/roles/{id}/edit [get]
func getRoleForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid role ID"))
		return
	}

	request, err := roleSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get role %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "Role not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateRole creates a new role
// @Summary Create role
// @Description Creates a role. The trimmed name must be unique.
// @Tags Roles
// @Accept json
// @Produce json
// @Param role body dto.RoleRequest true "Role object"
// @Success 201 {object} dto.CommandResult "Role created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "Role with the same name already exists"
// @Router /api/catalog/roles [post]
func createRole(c *gin.Context) {
	var request dto.RoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := roleSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create role: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateRole updates an existing role
// @Summary Update role
// @Description Updates a role. The trimmed name must remain unique among the other roles.
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Param role body dto.RoleRequest true "Role object"
// @Success 200 {object} dto.CommandResult "Role updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "Role not found"
// @Failure 409 {object} dto.CommandResult "Role with the same name already exists"
// @Router /api/catalog/roles/{id} [put]
func updateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid role ID"))
		return
	}

	var request dto.RoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := roleSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update role %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteRole deletes a role
// @Summary Delete role
// @Description Deletes a role together with its user links.
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.CommandResult "Role deleted successfully"
// @Failure 400 {object} map[string]string "Invalid role ID"
// @Failure 404 {object} dto.CommandResult "Role not found"
// @Router /api/catalog/roles/{id} [delete]
func deleteRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid role ID"))
		return
	}

	result, err := roleSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete role %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterRoleRoutes registers HTTP endpoints for role operations.
func RegisterRoleRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/roles")
	{
		roles.GET("", getAllRoles)
		roles.GET("/:id", getRoleByID)
		roles.GET("/:id/edit", getRoleForEdit)
		roles.POST("", createRole)
		roles.PUT("/:id", updateRole)
		roles.DELETE("/:id", deleteRole)
	}
}
