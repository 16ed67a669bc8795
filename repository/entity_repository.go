package repository

import (
	"errors"

	"moviecatalogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueryConfig shapes every query an EntityRepository issues: the default
// ordering of the collection and the related records to eager-load.
type QueryConfig struct {
	Orders   []string
	Preloads []string
}

// EntityRepository provides data access operations for one entity type.
// Passing a nil tx runs reads against a read-only session of the root
// handle; passing a live transaction stages mutations until the caller
// commits, which is the only point at which they become durable.
type EntityRepository[E any, P interface {
	*E
	models.Record
}] struct {
	db  *gorm.DB
	cfg QueryConfig
}

// NewEntityRepository creates an entity repository over the given database
// handle with the entity's ordering and eager-loading configuration.
func NewEntityRepository[E any, P interface {
	*E
	models.Record
}](db *gorm.DB, cfg QueryConfig) *EntityRepository[E, P] {
	return &EntityRepository[E, P]{
		db:  db,
		cfg: cfg,
	}
}

// Query returns the entity collection with ordering and preloads applied.
// All read paths route through here so the configuration holds uniformly.
func (r *EntityRepository[E, P]) Query(tx *gorm.DB) *gorm.DB {
	db := tx
	if db == nil {
		db = r.db.Session(&gorm.Session{})
	}
	q := db.Model(new(E))
	for _, preload := range r.cfg.Preloads {
		q = q.Preload(preload)
	}
	for _, order := range r.cfg.Orders {
		q = q.Order(order)
	}
	return q
}

// GetAll returns every entity of the collection.
func (r *EntityRepository[E, P]) GetAll(tx *gorm.DB) ([]E, error) {
	var entities []E
	if err := r.Query(tx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID returns the entity with the given identifier, or nil when absent.
func (r *EntityRepository[E, P]) GetByID(tx *gorm.DB, id uint) (P, error) {
	var none P
	entity := P(new(E))
	if err := r.Query(tx).Where("id = ?", id).First(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return none, nil
		}
		return none, err
	}
	return entity, nil
}

// Exists reports whether any entity matches the condition. Ordering and
// preloads are skipped: this backs uniqueness probes, not listings.
func (r *EntityRepository[E, P]) Exists(tx *gorm.DB, query string, args ...interface{}) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(new(E)).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create stages an insert. The store assigns the numeric identifier, visible
// on the entity before the transaction commits; the guid is assigned here.
// Loaded associations are never written back.
func (r *EntityRepository[E, P]) Create(tx *gorm.DB, entity P) error {
	db := tx
	if db == nil {
		db = r.db
	}
	entity.EnsureGuid()
	return db.Omit(clause.Associations).Create(entity).Error
}

// Update stages a full update of a previously fetched entity. Loaded
// associations are never written back: join rows are managed explicitly by
// the owning service.
func (r *EntityRepository[E, P]) Update(tx *gorm.DB, entity P) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Omit(clause.Associations).Save(entity).Error
}

// Delete stages removal of a previously fetched entity.
func (r *EntityRepository[E, P]) Delete(tx *gorm.DB, entity P) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(entity).Error
}

// DeleteWhere stages removal of every entity matching the condition. Used by
// owning entities to drop their join rows in the same unit of work.
func (r *EntityRepository[E, P]) DeleteWhere(tx *gorm.DB, query string, args ...interface{}) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where(query, args...).Delete(new(E)).Error
}
