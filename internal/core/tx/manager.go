// Package tx defines the transaction boundary used by domain services.
// Storage drivers provide the implementation; domain code depends only on Manager.
package tx

import (
	"context"
)

// Manager runs a unit of work atomically.
type Manager interface {
	// RunInTransaction executes fn within a transaction.
	// An error from fn rolls back; success commits.
	// Nested calls reuse the transaction already in ctx.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ManagerFunc adapts a function to Manager.
type ManagerFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// RunInTransaction implements Manager.
func (f ManagerFunc) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Direct runs fn without a transaction. Used by stores that serialize writes themselves.
var Direct Manager = ManagerFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})

// ReadOnlyManager extends Manager with read-only transaction support.
type ReadOnlyManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnly runs fn read-only when m supports it, otherwise as a normal transaction.
func ReadOnly(ctx context.Context, m Manager, fn func(ctx context.Context) error) error {
	if ro, ok := m.(ReadOnlyManager); ok {
		return ro.ReadOnly(ctx, fn)
	}
	return m.RunInTransaction(ctx, fn)
}
