// Package memory provides an in-process implementation of domain.Repository.
// It backs STORAGE_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"imaut/internal/core/apperror"
	"imaut/internal/core/entity"
	"imaut/internal/core/id"
)

// Repository keeps entities in a map guarded by a RWMutex.
// Values are cloned on the way in and out so callers never share state with the store.
type Repository[T entity.Record[T]] struct {
	mu         sync.RWMutex
	entityName string
	rows       map[id.ID]T
	seq        id.ID
	childSeq   id.ID
}

// NewRepository creates an empty store for entityName.
func NewRepository[T entity.Record[T]](entityName string) *Repository[T] {
	return &Repository[T]{
		entityName: entityName,
		rows:       make(map[id.ID]T),
	}
}

// FindAll returns every entity ordered by id.
func (r *Repository[T]) FindAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]id.ID, 0, len(r.rows))
	for k := range r.rows {
		ids = append(ids, k)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, k := range ids {
		out = append(out, r.rows[k].Clone())
	}
	return out, nil
}

func (r *Repository[T]) FindByID(_ context.Context, entityID id.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[entityID]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(r.entityName, entityID)
	}
	return e.Clone(), nil
}

// Save inserts when the id is zero and replaces the stored value otherwise.
func (r *Repository[T]) Save(_ context.Context, e T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := e.Clone()
	if id.IsNil(stored.GetID()) {
		r.seq++
		stored.SetID(r.seq)
	} else if _, ok := r.rows[stored.GetID()]; !ok {
		var zero T
		return zero, apperror.NewNotFound(r.entityName, stored.GetID())
	}

	if p, ok := any(stored).(entity.Parent); ok {
		p.AssignChildIDs(r.nextChildID)
	}

	r.rows[stored.GetID()] = stored
	return stored.Clone(), nil
}

// DeleteByID removes the entity together with its owned children. Missing ids are ignored.
func (r *Repository[T]) DeleteByID(_ context.Context, entityID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, entityID)
	return nil
}

func (r *Repository[T]) ExistsByID(_ context.Context, entityID id.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rows[entityID]
	return ok, nil
}

// Ping always succeeds.
func (r *Repository[T]) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored entities.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// nextChildID must be called with mu held.
func (r *Repository[T]) nextChildID() id.ID {
	r.childSeq++
	return r.childSeq
}
