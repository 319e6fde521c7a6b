// Package domain provides the resource service, its storage contract and lifecycle hooks.
package domain

import (
	"context"

	"imaut/internal/core/entity"
	"imaut/internal/core/id"
)

// --- Repository Interfaces ---

// Repository defines persistence for one resource type.
// T is a pointer to the entity struct.
type Repository[T entity.Identifiable] interface {
	// FindAll returns every stored entity ordered by id
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns apperror NotFound when id is absent
	FindByID(ctx context.Context, id id.ID) (T, error)

	// Save inserts a new entity (zero id) or replaces an existing one.
	// The returned value carries the store-assigned identifiers.
	Save(ctx context.Context, entity T) (T, error)

	// DeleteByID removes the entity and everything it owns
	DeleteByID(ctx context.Context, id id.ID) error

	// ExistsByID checks if entity with given ID exists
	ExistsByID(ctx context.Context, id id.ID) (bool, error)
}

// Pinger is implemented by stores that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}
