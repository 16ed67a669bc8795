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

var genreSrv services.GenreService

// SetGenreService initializes the genre service instance.
func SetGenreService(srv services.GenreService) {
	genreSrv = srv
}

// GetAllGenres retrieves all genres
// @Summary List genres
// @Description Retrieves all genres ordered by name.
// @Tags Genres
// @Accept json
// @Produce json
// @Success 200 {array} dto.GenreResponse "List of genres"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/genres [get]
func getAllGenres(c *gin.Context) {
	genres, err := genreSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list genres: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, genres)
}

// GetGenreByID retrieves a genre by ID
// @Summary Get genre by ID
// @Description Retrieves a single genre.
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} dto.GenreResponse "Genre details"
// @Failure 400 {object} map[string]string "Invalid genre ID"
// @Failure 404 {object} map[string]string "Genre not found"
// @Router /api/catalog/genres/{id} [get]
func getGenreByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid genre ID"))
		return
	}

	genre, err := genreSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get genre %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if genre == nil {
		notFoundResponse(c, "Genre not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, genre)
}

// GetGenreForEdit retrieves a genre in its editable shape
// @Summary Get genre for editing
// @Description Retrieves a genre in the mutable request shape for pre-filling an edit form.
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} dto.GenreRequest "Editable genre"
// @Failure 400 {object} map[string]string "Invalid genre ID"
// @Failure 404 {object} map[string]string "Genre not found"
// @Router /api/catalog/genres/{id}/edit [get]
func getGenreForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid genre ID"))
		return
	}

	request, err := genreSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get genre %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "Genre not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateGenre creates a new genre
// @Summary Create genre
// @Description Creates a genre. The trimmed name must be unique.
// @Tags Genres
// @Accept json
// @Produce json
// @Param genre body dto.GenreRequest true "Genre object"
// @Success 201 {object} dto.CommandResult "Genre created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "Genre with the same name already exists"
// @Router /api/catalog/genres [post]
func createGenre(c *gin.Context) {
	var request dto.GenreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := genreSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create genre: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateGenre updates an existing genre
// @Summary Update genre
// @Description Updates a genre. The trimmed name must remain unique among the other genres.
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body dto.GenreRequest true "Genre object"
// @Success 200 {object} dto.CommandResult "Genre updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "Genre not found"
// @Failure 409 {object} dto.CommandResult "Genre with the same name already exists"
// @Router /api/catalog/genres/{id} [put]
func updateGenre(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid genre ID"))
		return
	}

	var request dto.GenreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := genreSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update genre %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteGenre deletes a genre
// @Summary Delete genre
// @Description Deletes a genre together with its movie links.
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} dto.CommandResult "Genre deleted successfully"
// @Failure 400 {object} map[string]string "Invalid genre ID"
// @Failure 404 {object} dto.CommandResult "Genre not found"
// @Router /api/catalog/genres/{id} [delete]
func deleteGenre(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid genre ID"))
		return
	}

	result, err := genreSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete genre %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterGenreRoutes registers HTTP endpoints for genre operations.
func RegisterGenreRoutes(rg *gin.RouterGroup) {
	genres := rg.Group("/genres")
	{
		genres.GET("", getAllGenres)
		genres.GET("/:id", getGenreByID)
		genres.GET("/:id/edit", getGenreForEdit)
		genres.POST("", createGenre)
		genres.PUT("/:id", updateGenre)
		genres.DELETE("/:id", deleteGenre)
	}
}
