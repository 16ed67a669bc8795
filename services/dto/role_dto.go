package dto

import "moviecatalogapi/models"

// RoleRequest is the inbound shape for role create/update.
type RoleRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

// RoleResponse is the outbound role shape.
type RoleResponse struct {
	ID   uint   `json:"id"`
	Guid string `json:"guid"`
	Name string `json:"name"`
}

// NewRoleResponse maps a role entity to the response shape.
func NewRoleResponse(entity *models.Role) RoleResponse {
	return RoleResponse{
		ID:   entity.ID,
		Guid: entity.Guid,
		Name: entity.Name,
	}
}

// NewRoleEditRequest maps a role entity back to the mutable request shape.
func NewRoleEditRequest(entity *models.Role) *RoleRequest {
	return &RoleRequest{
		ID:   entity.ID,
		Name: entity.Name,
	}
}
