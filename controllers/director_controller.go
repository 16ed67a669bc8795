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

var directorSrv services.DirectorService

// SetDirectorService initializes the director service instance.
func SetDirectorService(srv services.DirectorService) {
	directorSrv = srv
}

// GetAllDirectors retrieves all directors
// @Summary List directors
// @Description Retrieves all directors ordered by last name then first name, each with its movie count and movie names.
// @Tags Directors
// @Accept json
// @Produce json
// @Success 200 {array} dto.DirectorResponse "List of directors"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/directors [get]
func getAllDirectors(c *gin.Context) {
	directors, err := directorSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list directors: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, directors)
}

// GetDirectorByID retrieves a director by ID
// @Summary Get director by ID
// @Description Retrieves a single director with its movie details.
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} dto.DirectorResponse "Director details"
// @Failure 400 {object} map[string]string "Invalid director ID"
// @Failure 404 {object} map[string]string "Director not found"
// @Router /api/catalog/directors/{id} [get]
func getDirectorByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid director ID"))
		return
	}

	director, err := directorSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get director %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if director == nil {
		notFoundResponse(c, "Director not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, director)
}

// GetDirectorForEdit retrieves a director in its editable shape
// @Summary Get director for editing
// @Description Retrieves a director in the mutable request shape for pre-filling an edit form.
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} dto.DirectorRequest "Editable director"
// @Failure 400 {object} map[string]string "Invalid director ID"
// @Failure 404 {object} map[string]string "Director not found"
// @Router /api/catalog/directors/{id}/edit [get]
func getDirectorForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid director ID"))
		return
	}

	request, err := directorSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get director %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "Director not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateDirector creates a new director
// @Summary Create director
// @Description Creates a director. The trimmed first/last name pair must be unique.
// @Tags Directors
// @Accept json
// @Produce json
// @Param director body dto.DirectorRequest true "Director object"
// @Success 201 {object} dto.CommandResult "Director created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "Director with the same name already exists"
// @Router /api/catalog/directors [post]
func createDirector(c *gin.Context) {
	var request dto.DirectorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := directorSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create director: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateDirector updates an existing director
// @Summary Update director
// @Description Updates a director. The trimmed first/last name pair must remain unique among the other directors.
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Param director body dto.DirectorRequest true "Director object"
// @Success 200 {object} dto.CommandResult "Director updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "Director not found"
// @Failure 409 {object} dto.CommandResult "Director with the same name already exists"
// @Router /api/catalog/directors/{id} [put]
func updateDirector(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid director ID"))
		return
	}

	var request dto.DirectorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := directorSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update director %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteDirector deletes a director
// @Summary Delete director
// @Description Deletes a director. Directors with relational movies cannot be deleted.
// @Tags Directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} dto.CommandResult "Director deleted successfully"
// @Failure 400 {object} map[string]string "Invalid director ID"
// @Failure 404 {object} dto.CommandResult "Director not found"
// @Failure 409 {object} dto.CommandResult "Director has relational movies"
// @Router /api/catalog/directors/{id} [delete]
func deleteDirector(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid director ID"))
		return
	}

	result, err := directorSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete director %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterDirectorRoutes registers HTTP endpoints for director operations.
func RegisterDirectorRoutes(rg *gin.RouterGroup) {
	directors := rg.Group("/directors")
	{
		directors.GET("", getAllDirectors)
		directors.GET("/:id", getDirectorByID)
		directors.GET("/:id/edit", getDirectorForEdit)
		directors.POST("", createDirector)
		directors.PUT("/:id", updateDirector)
		directors.DELETE("/:id", deleteDirector)
	}
}
