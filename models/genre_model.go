package models

// Genre represents the genres table.
type Genre struct {
	Entity
	Name string `gorm:"column:name;size:50" json:"name" validate:"required,max=50"`

	MovieGenres []MovieGenre `gorm:"foreignKey:GenreID" json:"movie_genres,omitempty"`
}

// TableName returns the database table name for Genre model.
func (Genre) TableName() string {
	return "genres"
}
