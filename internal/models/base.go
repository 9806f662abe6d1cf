package models

import "time"

// Base contains common columns for all tables. Deletes are permanent in
// Pennywise, so there is no soft-delete column.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the primary key. Embedding Base gives every model
// this accessor so generic helpers can work over any owned record.
func (b Base) RecordID() uint { return b.ID }

// Owned is implemented by every record that belongs to a profile. It is
// the single authorization predicate used by the services layer: a record
// may only be read or mutated by the profile that owns it.
type Owned interface {
	OwnerID() uint
}
