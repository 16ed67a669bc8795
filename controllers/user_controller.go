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

var userSrv services.UserService

// SetUserService initializes the user service instance.
func SetUserService(srv services.UserService) {
	userSrv = srv
}

// GetAllUsers retrieves all users
// @Summary List users
// @Description Retrieves all users with their group. Stored credentials are never returned.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} dto.UserResponse "List of users"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/users [get]
func getAllUsers(c *gin.Context) {
	users, err := userSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list users: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, users)
}

// GetUserByID retrieves a user by ID
// @Summary Get user by ID
// @Description Retrieves a single user with its group.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse "User details"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/catalog/users/{id} [get]
func getUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid user ID"))
		return
	}

	user, err := userSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get user %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if user == nil {
		notFoundResponse(c, "User not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, user)
}

// GetUserForEdit retrieves a user in its editable shape
// @Summary Get user for editing
// @Description Retrieves a user in the mutable request shape for pre-filling an edit form. The credential field comes back blank.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserRequest "Editable user"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/catalog/users/{id}/edit [get]
func getUserForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid user ID"))
		return
	}

	request, err := userSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get user %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "User not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateUser creates a new user
// @Summary Create user
// @Description Creates a user. The trimmed username must be unique; the registration timestamp is stamped server-side.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "User object"
// @Success 201 {object} dto.CommandResult "User created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "User with the same username already exists"
// @Router /api/catalog/users [post]
func createUser(c *gin.Context) {
	var request dto.UserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := userSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create user: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateUser updates an existing user
// @Summary Update user
// @Description Updates a user. A blank credential keeps the stored one; the trimmed username must remain unique among the other users.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body dto.UserRequest true "User object"
// @Success 200 {object} dto.CommandResult "User updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "User not found"
// @Failure 409 {object} dto.CommandResult "User with the same username already exists"
// @Router /api/catalog/users/{id} [put]
func updateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid user ID"))
		return
	}

	var request dto.UserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := userSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update user %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Deletes a user together with its role links.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.CommandResult "User deleted successfully"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} dto.CommandResult "User not found"
// @Router /api/catalog/users/{id} [delete]
func deleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid user ID"))
		return
	}

	result, err := userSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete user %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterUserRoutes registers HTTP endpoints for user operations.
func RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", getAllUsers)
		users.GET("/:id", getUserByID)
		users.GET("/:id/edit", getUserForEdit)
		users.POST("", createUser)
		users.PUT("/:id", updateUser)
		users.DELETE("/:id", deleteUser)
	}
}
