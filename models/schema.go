package models

// All returns every persisted model in dependency order, referenced tables
// before the tables that point at them.
func All() []interface{} {
	return []interface{}{
		&Director{},
		&Genre{},
		&Group{},
		&Role{},
		&Movie{},
		&User{},
		&MovieGenre{},
		&UserRole{},
	}
}
