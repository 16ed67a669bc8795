package models

// Group represents the groups table.
// A group does not own its users: deletion is refused while any user still
// references the group.
type Group struct {
	Entity
	Name        string `gorm:"column:name;size:100" json:"name" validate:"required,max=100"`
	Description string `gorm:"column:description" json:"description"`

	Users []User `gorm:"foreignKey:GroupID" json:"users,omitempty"`
}

// TableName returns the database table name for Group model.
func (Group) TableName() string {
	return "groups"
}
