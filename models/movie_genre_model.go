package models

// MovieGenre represents the movie_genres join table.
// Links movies to genres; at most one row per (movie, genre) pair.
type MovieGenre struct {
	Entity
	MovieID uint `gorm:"column:movie_id;index" json:"movie_id" validate:"required"`
	GenreID uint `gorm:"column:genre_id;index" json:"genre_id" validate:"required"`

	Genre Genre `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}

// TableName returns the database table name for MovieGenre model.
func (MovieGenre) TableName() string {
	return "movie_genres"
}
