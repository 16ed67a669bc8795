package repository

import (
	"moviecatalogapi/config"

	"gorm.io/gorm"
)

// BaseRepository provides the unit-of-work boundary for catalog mutations.
// Changes staged on the returned transaction become durable only when the
// caller commits it.
type BaseRepository interface {
	Begin() *gorm.DB
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a base repository bound to the global database handle.
func NewBaseRepository() BaseRepository {
	return NewBaseRepositoryWithDB(config.DB)
}

// NewBaseRepositoryWithDB creates a base repository bound to the given database handle.
func NewBaseRepositoryWithDB(db *gorm.DB) BaseRepository {
	return &baseRepository{
		db: db,
	}
}

func (r *baseRepository) Begin() *gorm.DB {
	return r.db.Begin()
}
