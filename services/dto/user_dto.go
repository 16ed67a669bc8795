package dto

import (
	"time"

	"moviecatalogapi/models"
	"moviecatalogapi/utils"

	"github.com/shopspring/decimal"
)

// UserRequest is the inbound shape for user create/update. A blank password
// on update means "keep the stored credential".
type UserRequest struct {
	ID        uint            `json:"id"`
	UserName  string          `json:"user_name" validate:"required,max=100"`
	Password  string          `json:"password" validate:"max=100"`
	FirstName string          `json:"first_name" validate:"max=100"`
	LastName  string          `json:"last_name" validate:"max=100"`
	Gender    models.Gender   `json:"gender"`
	BirthDate *time.Time      `json:"birth_date,omitempty"`
	Score     decimal.Decimal `json:"score"`
	IsActive  bool            `json:"is_active"`
	Address   string          `json:"address"`
	CountryID *uint           `json:"country_id,omitempty"`
	CityID    *uint           `json:"city_id,omitempty"`
	GroupID   *uint           `json:"group_id,omitempty"`
}

// UserResponse is the outbound, denormalized user shape. The credential is
// never projected outward.
type UserResponse struct {
	ID                uint            `json:"id"`
	Guid              string          `json:"guid"`
	UserName          string          `json:"user_name"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Gender            models.Gender   `json:"gender"`
	BirthDate         *time.Time      `json:"birth_date,omitempty"`
	BirthDateF        string          `json:"birth_date_f"`
	RegistrationDate  time.Time       `json:"registration_date"`
	RegistrationDateF string          `json:"registration_date_f"`
	Score             decimal.Decimal `json:"score"`
	IsActive          bool            `json:"is_active"`
	Address           string          `json:"address"`
	GroupName         string          `json:"group_name"`
}

// NewUserResponse maps a user entity, with its loaded group, to the response
// shape.
func NewUserResponse(entity *models.User) UserResponse {
	groupName := ""
	if entity.Group != nil {
		groupName = entity.Group.Name
	}

	return UserResponse{
		ID:                entity.ID,
		Guid:              entity.Guid,
		UserName:          entity.UserName,
		FirstName:         entity.FirstName,
		LastName:          entity.LastName,
		Gender:            entity.Gender,
		BirthDate:         entity.BirthDate,
		BirthDateF:        utils.FormatDate(entity.BirthDate),
		RegistrationDate:  entity.RegistrationDate,
		RegistrationDateF: utils.FormatDateValue(entity.RegistrationDate),
		Score:             entity.Score,
		IsActive:          entity.IsActive,
		Address:           entity.Address,
		GroupName:         groupName,
	}
}

// NewUserEditRequest maps a user entity back to the mutable request shape.
// The stored credential is not echoed back.
func NewUserEditRequest(entity *models.User) *UserRequest {
	return &UserRequest{
		ID:        entity.ID,
		UserName:  entity.UserName,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		Gender:    entity.Gender,
		BirthDate: entity.BirthDate,
		Score:     entity.Score,
		IsActive:  entity.IsActive,
		Address:   entity.Address,
		CountryID: entity.CountryID,
		CityID:    entity.CityID,
		GroupID:   entity.GroupID,
	}
}
