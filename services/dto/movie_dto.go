package dto

import (
	"fmt"
	"strings"
	"time"

	"moviecatalogapi/models"
	"moviecatalogapi/utils"

	"github.com/shopspring/decimal"
)

// MovieRequest is the inbound shape for movie create/update. GenreIds is the
// full set of genres the movie should end up linked to; non-positive entries
// are dropped silently.
type MovieRequest struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name" validate:"required,max=200"`
	ReleaseDate  *time.Time      `json:"release_date,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	DirectorID   *uint           `json:"director_id,omitempty"`
	GenreIds     []int           `json:"genre_ids"`
}

// MovieResponse is the outbound, denormalized movie shape.
type MovieResponse struct {
	ID            uint            `json:"id"`
	Guid          string          `json:"guid"`
	Name          string          `json:"name"`
	ReleaseDate   *time.Time      `json:"release_date,omitempty"`
	ReleaseDateF  string          `json:"release_date_f"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalRevenueF string          `json:"total_revenue_f"`
	DirectorName  string          `json:"director_name"`
	GenreNames    string          `json:"genre_names"`
	GenreIds      []uint          `json:"genre_ids"`
}

// NewMovieResponse maps a movie entity, with its loaded director and genre
// joins, to the response shape.
func NewMovieResponse(entity *models.Movie) MovieResponse {
	directorName := ""
	if entity.Director != nil {
		directorName = fmt.Sprintf("%s %s", entity.Director.FirstName, entity.Director.LastName)
	}

	genreNames := make([]string, 0, len(entity.MovieGenres))
	genreIds := make([]uint, 0, len(entity.MovieGenres))
	for _, movieGenre := range entity.MovieGenres {
		genreNames = append(genreNames, movieGenre.Genre.Name)
		genreIds = append(genreIds, movieGenre.GenreID)
	}

	return MovieResponse{
		ID:            entity.ID,
		Guid:          entity.Guid,
		Name:          entity.Name,
		ReleaseDate:   entity.ReleaseDate,
		ReleaseDateF:  utils.FormatDate(entity.ReleaseDate),
		TotalRevenue:  entity.TotalRevenue,
		TotalRevenueF: utils.FormatCurrency(entity.TotalRevenue),
		DirectorName:  directorName,
		GenreNames:    strings.Join(genreNames, ", "),
		GenreIds:      genreIds,
	}
}

// NewMovieEditRequest maps a movie entity back to the mutable request shape,
// including the identifiers of its currently linked genres.
func NewMovieEditRequest(entity *models.Movie) *MovieRequest {
	genreIds := make([]int, 0, len(entity.MovieGenres))
	for _, movieGenre := range entity.MovieGenres {
		genreIds = append(genreIds, int(movieGenre.GenreID))
	}

	return &MovieRequest{
		ID:           entity.ID,
		Name:         entity.Name,
		ReleaseDate:  entity.ReleaseDate,
		TotalRevenue: entity.TotalRevenue,
		DirectorID:   entity.DirectorID,
		GenreIds:     genreIds,
	}
}
