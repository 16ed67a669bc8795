package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movie represents the movies table.
// A movie owns its MovieGenre join rows: they are created and removed as part
// of the movie's own create/update/delete operations.
type Movie struct {
	Entity
	Name         string          `gorm:"column:name;size:200" json:"name" validate:"required,max=200"`
	ReleaseDate  *time.Time      `gorm:"column:release_date" json:"release_date,omitempty"`
	TotalRevenue decimal.Decimal `gorm:"column:total_revenue;type:decimal(18,2)" json:"total_revenue"`
	DirectorID   *uint           `gorm:"column:director_id" json:"director_id,omitempty"`

	Director    *Director    `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
	MovieGenres []MovieGenre `gorm:"foreignKey:MovieID" json:"movie_genres,omitempty"`
}

// TableName returns the database table name for Movie model.
func (Movie) TableName() string {
	return "movies"
}
