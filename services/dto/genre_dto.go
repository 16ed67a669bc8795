package dto

import "moviecatalogapi/models"

// GenreRequest is the inbound shape for genre create/update.
type GenreRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

// GenreResponse is the outbound genre shape.
type GenreResponse struct {
	ID   uint   `json:"id"`
	Guid string `json:"guid"`
	Name string `json:"name"`
}

// NewGenreResponse maps a genre entity to the response shape.
func NewGenreResponse(entity *models.Genre) GenreResponse {
	return GenreResponse{
		ID:   entity.ID,
		Guid: entity.Guid,
		Name: entity.Name,
	}
}

// NewGenreEditRequest maps a genre entity back to the mutable request shape.
func NewGenreEditRequest(entity *models.Genre) *GenreRequest {
	return &GenreRequest{
		ID:   entity.ID,
		Name: entity.Name,
	}
}
