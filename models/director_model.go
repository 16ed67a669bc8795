package models

// Director represents the directors table.
// A director does not own its movies: deletion is refused while any movie
// still references the director.
type Director struct {
	Entity
	FirstName string `gorm:"column:first_name;size:100" json:"first_name" validate:"required,max=100"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name" validate:"required,max=100"`
	IsRetired bool   `gorm:"column:is_retired" json:"is_retired"`

	Movies []Movie `gorm:"foreignKey:DirectorID" json:"movies,omitempty"`
}

// TableName returns the database table name for Director model.
func (Director) TableName() string {
	return "directors"
}
