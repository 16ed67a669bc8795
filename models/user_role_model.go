package models

// UserRole represents the user_roles join table.
// Links users to roles; at most one row per (user, role) pair. Rows are
// removed unconditionally when the owning user is deleted.
type UserRole struct {
	Entity
	UserID uint `gorm:"column:user_id;index" json:"user_id" validate:"required"`
	RoleID uint `gorm:"column:role_id;index" json:"role_id" validate:"required"`

	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName returns the database table name for UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}
