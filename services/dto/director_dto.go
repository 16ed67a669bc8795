package dto

import (
	"fmt"
	"strings"

	"moviecatalogapi/models"
)

// DirectorRequest is the inbound shape for director create/update.
type DirectorRequest struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	IsRetired bool   `json:"is_retired"`
}

// DirectorResponse is the outbound, denormalized director shape.
type DirectorResponse struct {
	ID         uint   `json:"id"`
	Guid       string `json:"guid"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	IsRetired  bool   `json:"is_retired"`
	IsRetiredF string `json:"is_retired_f"`
	MovieCount int    `json:"movie_count"`
	MovieNames string `json:"movie_names"`
}

// NewDirectorResponse maps a director entity, with its loaded movies, to the
// response shape.
func NewDirectorResponse(entity *models.Director) DirectorResponse {
	isRetiredF := "No"
	if entity.IsRetired {
		isRetiredF = "Yes"
	}

	movieNames := make([]string, 0, len(entity.Movies))
	for _, movie := range entity.Movies {
		movieNames = append(movieNames, movie.Name)
	}

	return DirectorResponse{
		ID:         entity.ID,
		Guid:       entity.Guid,
		FirstName:  entity.FirstName,
		LastName:   entity.LastName,
		FullName:   fmt.Sprintf("%s %s", entity.FirstName, entity.LastName),
		IsRetired:  entity.IsRetired,
		IsRetiredF: isRetiredF,
		MovieCount: len(entity.Movies),
		MovieNames: strings.Join(movieNames, ", "),
	}
}

// NewDirectorEditRequest maps a director entity back to the mutable request
// shape for pre-filling an edit form.
func NewDirectorEditRequest(entity *models.Director) *DirectorRequest {
	return &DirectorRequest{
		ID:        entity.ID,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		IsRetired: entity.IsRetired,
	}
}
