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

var groupSrv services.GroupService

// SetGroupService initializes the group service instance.
func SetGroupService(srv services.GroupService) {
	groupSrv = srv
}

// GetAllGroups retrieves all groups
// @Summary List groups
// @Description Retrieves all groups.
// @Tags Groups
// @Accept json
// @Produce json
// @Success 200 {array} dto.GroupResponse "List of groups"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/groups [get]
func getAllGroups(c *gin.Context) {
	groups, err := groupSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list groups: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, groups)
}

// GetGroupByID retrieves a group by ID
// @Summary Get group by ID
// @Description Retrieves a single group.
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.GroupResponse "Group details"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/catalog/groups/{id} [get]
func getGroupByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid group ID"))
		return
	}

	group, err := groupSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get group %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if group == nil {
		notFoundResponse(c, "Group not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, group)
}

// GetGroupForEdit retrieves a group in its editable shape
// @Summary Get group for editing
// @Description Retrieves a group in the mutable request shape for pre-filling an edit form.
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.GroupRequest "Editable group"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/catalog/groups/{id}/edit [get]
func getGroupForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid group ID"))
		return
	}

	request, err := groupSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get group %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "Group not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateGroup creates a new group
// @Summary Create group
// @Description Creates a group. The trimmed name must be unique.
// @Tags Groups
// @Accept json
// @Produce json
// @Param group body dto.GroupRequest true "Group object"
// @Success 201 {object} dto.CommandResult "Group created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "Group with the same name already exists"
// @Router /api/catalog/groups [post]
func createGroup(c *gin.Context) {
	var request dto.GroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := groupSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create group: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateGroup updates an existing group
// @Summary Update group
// @Description Updates a group. The trimmed name must remain unique among the other groups.
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param group body dto.GroupRequest true "Group object"
// @Success 200 {object} dto.CommandResult "Group updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "Group not found"
// @Failure 409 {object} dto.CommandResult "Group with the same name already exists"
// @Router /api/catalog/groups/{id} [put]
func updateGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid group ID"))
		return
	}

	var request dto.GroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := groupSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update group %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Description Deletes a group. Groups with relational users cannot be deleted.
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.CommandResult "Group deleted successfully"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 404 {object} dto.CommandResult "Group not found"
// @Failure 409 {object} dto.CommandResult "Group has relational users"
// @Router /api/catalog/groups/{id} [delete]
func deleteGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid group ID"))
		return
	}

	result, err := groupSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete group %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterGroupRoutes registers HTTP endpoints for group operations.
func RegisterGroupRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	{
		groups.GET("", getAllGroups)
		groups.GET("/:id", getGroupByID)
		groups.GET("/:id/edit", getGroupForEdit)
		groups.POST("", createGroup)
		groups.PUT("/:id", updateGroup)
		groups.DELETE("/:id", deleteGroup)
	}
}
