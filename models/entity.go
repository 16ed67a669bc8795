package models

import "github.com/google/uuid"

// Entity is the base embedded by every persisted record. The numeric ID is
// assigned by the store on insert; the Guid is assigned once at creation and
// never changes afterwards.
type Entity struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Guid string `gorm:"column:guid;size:36;uniqueIndex" json:"guid"`
}

// RecordID returns the store-assigned primary key.
func (e *Entity) RecordID() uint {
	return e.ID
}

// EnsureGuid assigns the secondary identifier if it has not been set yet.
func (e *Entity) EnsureGuid() {
	if e.Guid == "" {
		e.Guid = uuid.NewString()
	}
}

// Record is implemented by every entity pointer via the embedded Entity base.
type Record interface {
	RecordID() uint
	EnsureGuid()
}
