// Package entity holds the identity shared by every persisted record.
package entity

import (
	"imaut/internal/core/id"
)

// Identifiable is implemented by all persisted entities.
type Identifiable interface {
	GetID() id.ID
}

// Base contains the store-assigned identifier.
type Base struct {
	// ID is assigned on first save and never changes afterwards
	ID id.ID `db:"id" json:"id"`
}

// GetID returns the identifier, zero before the first save.
func (b Base) GetID() id.ID {
	return b.ID
}

// IsNew reports whether the entity has not been persisted yet.
func (b Base) IsNew() bool {
	return id.IsNil(b.ID)
}

// SameIdentity implements entity equality.
// Persisted entities are equal when their identifiers match. Unsaved entities
// are equal only to themselves.
func SameIdentity[E any](a, b *E, aID, bID id.ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if id.IsNil(aID) || id.IsNil(bID) {
		return false
	}
	return aID == bID
}

// Record is an entity that stores can copy and identify.
type Record[T any] interface {
	Identifiable
	Clone() T
	SetID(id.ID)
}

// Parent is implemented by entities that own child rows with their own identity.
type Parent interface {
	AssignChildIDs(next func() id.ID)
}
