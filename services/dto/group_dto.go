package dto

import "moviecatalogapi/models"

// GroupRequest is the inbound shape for group create/update.
type GroupRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// GroupResponse is the outbound group shape.
type GroupResponse struct {
	ID          uint   `json:"id"`
	Guid        string `json:"guid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewGroupResponse maps a group entity to the response shape.
func NewGroupResponse(entity *models.Group) GroupResponse {
	return GroupResponse{
		ID:          entity.ID,
		Guid:        entity.Guid,
		Name:        entity.Name,
		Description: entity.Description,
	}
}

// NewGroupEditRequest maps a group entity back to the mutable request shape.
func NewGroupEditRequest(entity *models.Group) *GroupRequest {
	return &GroupRequest{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
	}
}
