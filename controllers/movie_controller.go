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

var movieSrv services.MovieService

// SetMovieService initializes the movie service instance.
func SetMovieService(srv services.MovieService) {
	movieSrv = srv
}

// GetAllMovies retrieves all movies
// @Summary List movies
// @Description Retrieves all movies with their director and linked genres.
// @Tags Movies
// @Accept json
// @Produce json
// @Success 200 {array} dto.MovieResponse "List of movies"
// @Failure 400 {object} map[string]string "Internal error"
// @Router /api/catalog/movies [get]
func getAllMovies(c *gin.Context) {
	movies, err := movieSrv.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list movies: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, movies)
}

// GetMovieByID retrieves a movie by ID
// @Summary Get movie by ID
// @Description Retrieves a single movie with its director and linked genres.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} dto.MovieResponse "Movie details"
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 404 {object} map[string]string "Movie not found"
// @Router /api/catalog/movies/{id} [get]
func getMovieByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid movie ID"))
		return
	}

	movie, err := movieSrv.Item(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get movie %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if movie == nil {
		notFoundResponse(c, "Movie not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, movie)
}

// GetMovieForEdit retrieves a movie in its editable shape
// @Summary Get movie for editing
// @Description Retrieves a movie in the mutable request shape, including its current genre identifiers, for pre-filling an edit form.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} dto.MovieRequest "Editable movie"
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 404 {object} map[string]string "Movie not found"
// @Router /api/catalog/movies/{id}/edit [get]
func getMovieForEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid movie ID"))
		return
	}

	request, err := movieSrv.Edit(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to get movie %d for edit: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	if request == nil {
		notFoundResponse(c, "Movie not found!")
		return
	}

	utils.JSONResponse(c, http.StatusOK, request)
}

// CreateMovie creates a new movie
// @Summary Create movie
// @Description Creates a movie and links it to the requested genres. The trimmed name must be unique. Non-positive genre identifiers are dropped.
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body dto.MovieRequest true "Movie object"
// @Success 201 {object} dto.CommandResult "Movie created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} dto.CommandResult "Movie with the same name already exists"
// @Router /api/catalog/movies [post]
func createMovie(c *gin.Context) {
	var request dto.MovieRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := movieSrv.Create(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to create movie: %v", err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusCreated)
}

// UpdateMovie updates an existing movie
// @Summary Update movie
// @Description Updates a movie and synchronizes its genre links so the final linked set equals exactly the requested set.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body dto.MovieRequest true "Movie object"
// @Success 200 {object} dto.CommandResult "Movie updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} dto.CommandResult "Movie not found"
// @Failure 409 {object} dto.CommandResult "Movie with the same name already exists"
// @Router /api/catalog/movies/{id} [put]
func updateMovie(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid movie ID"))
		return
	}

	var request dto.MovieRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	request.ID = uint(id)

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := movieSrv.Update(c.Request.Context(), &request)
	if err != nil {
		logger.Errorf("Failed to update movie %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// DeleteMovie deletes a movie
// @Summary Delete movie
// @Description Deletes a movie together with its genre links. Genres themselves are never deleted.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} dto.CommandResult "Movie deleted successfully"
// @Failure 400 {object} map[string]string "Invalid movie ID"
// @Failure 404 {object} dto.CommandResult "Movie not found"
// @Router /api/catalog/movies/{id} [delete]
func deleteMovie(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid movie ID"))
		return
	}

	result, err := movieSrv.Delete(c.Request.Context(), uint(id))
	if err != nil {
		logger.Errorf("Failed to delete movie %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}

	commandResponse(c, result, http.StatusOK)
}

// RegisterMovieRoutes registers HTTP endpoints for movie operations.
func RegisterMovieRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", getAllMovies)
		movies.GET("/:id", getMovieByID)
		movies.GET("/:id/edit", getMovieForEdit)
		movies.POST("", createMovie)
		movies.PUT("/:id", updateMovie)
		movies.DELETE("/:id", deleteMovie)
	}
}
