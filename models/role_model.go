package models

// Role represents the roles table.
type Role struct {
	Entity
	Name string `gorm:"column:name;size:50" json:"name" validate:"required,max=50"`

	UserRoles []UserRole `gorm:"foreignKey:RoleID" json:"user_roles,omitempty"`
}

// TableName returns the database table name for Role model.
func (Role) TableName() string {
	return "roles"
}
