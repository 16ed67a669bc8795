package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender enumerates user gender codes.
type Gender int

// Gender codes.
const (
	GenderMan Gender = iota
	GenderWoman
)

// String returns the display name of the gender code.
func (g Gender) String() string {
	switch g {
	case GenderMan:
		return "Man"
	case GenderWoman:
		return "Woman"
	}
	return ""
}

// User represents the users table.
// The password is stored as received. Hashing is a separate hardening task
// with no contract defined here.
type User struct {
	Entity
	UserName         string          `gorm:"column:user_name;size:100" json:"user_name" validate:"required,max=100"`
	Password         string          `gorm:"column:password;size:100" json:"-" validate:"required,max=100"`
	FirstName        string          `gorm:"column:first_name;size:100" json:"first_name"`
	LastName         string          `gorm:"column:last_name;size:100" json:"last_name"`
	Gender           Gender          `gorm:"column:gender" json:"gender"`
	BirthDate        *time.Time      `gorm:"column:birth_date" json:"birth_date,omitempty"`
	RegistrationDate time.Time       `gorm:"column:registration_date" json:"registration_date"`
	Score            decimal.Decimal `gorm:"column:score;type:decimal(18,2)" json:"score"`
	IsActive         bool            `gorm:"column:is_active" json:"is_active"`
	Address          string          `gorm:"column:address" json:"address"`
	CountryID        *uint           `gorm:"column:country_id" json:"country_id,omitempty"`
	CityID           *uint           `gorm:"column:city_id" json:"city_id,omitempty"`
	GroupID          *uint           `gorm:"column:group_id" json:"group_id,omitempty"`

	Group     *Group     `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	UserRoles []UserRole `gorm:"foreignKey:UserID" json:"user_roles,omitempty"`
}

// TableName returns the database table name for User model.
func (User) TableName() string {
	return "users"
}
