package domain

import (
	"context"
	"fmt"

	"imaut/internal/core/apperror"
	"imaut/internal/core/entity"
	"imaut/internal/core/id"
	"imaut/internal/core/tx"
	"imaut/pkg/logger"
)

// Mapper converts between wire DTOs and entities for one resource.
//   - C is the create request
//   - P is the merge patch document
//   - R is the response
type Mapper[T entity.Identifiable, C, P, R any] interface {
	// FromCreate builds an unsaved entity from a validated create request.
	FromCreate(req C) T

	// Merge applies patch to a copy of current and validates the result.
	// current is never modified.
	Merge(ctx context.Context, current T, patch P) (T, error)

	// ToResponse projects an entity to its response.
	ToResponse(entity T) R
}

// ResourceService implements list/get/create/update/delete for one resource.
type ResourceService[T entity.Identifiable, C, P, R any] struct {
	repo      Repository[T]
	mapper    Mapper[T, C, P, R]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// ResourceServiceConfig configures the resource service.
type ResourceServiceConfig[T entity.Identifiable, C, P, R any] struct {
	Repo       Repository[T]
	Mapper     Mapper[T, C, P, R]
	TxManager  tx.Manager // Optional, defaults to tx.Direct
	EntityName string
}

// NewResourceService creates a new resource service.
func NewResourceService[T entity.Identifiable, C, P, R any](cfg ResourceServiceConfig[T, C, P, R]) *ResourceService[T, C, P, R] {
	txm := cfg.TxManager
	if txm == nil {
		txm = tx.Direct
	}
	return &ResourceService[T, C, P, R]{
		repo:       cfg.Repo,
		mapper:     cfg.Mapper,
		txManager:  txm,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *ResourceService[T, C, P, R]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the resource name used in errors and events.
func (s *ResourceService[T, C, P, R]) EntityName() string {
	return s.entityName
}

func (s *ResourceService[T, C, P, R]) normalizeGetErr(err error, entityID id.ID) error {
	if err == nil {
		return nil
	}
	// Ensure not-found carries this resource's name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, entityID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewDatabase("find "+s.entityName, err)
}

// List returns every stored entity. An empty store yields an empty slice.
func (s *ResourceService[T, C, P, R]) List(ctx context.Context) ([]R, error) {
	var entities []T
	err := tx.ReadOnly(ctx, s.txManager, func(ctx context.Context) error {
		var err error
		entities, err = s.repo.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, apperror.NewDatabase("list "+s.entityName, err)
	}

	out := make([]R, 0, len(entities))
	for _, e := range entities {
		out = append(out, s.mapper.ToResponse(e))
	}
	return out, nil
}

// Get retrieves entity by ID.
func (s *ResourceService[T, C, P, R]) Get(ctx context.Context, entityID id.ID) (R, error) {
	var (
		zero R
		e    T
	)
	err := tx.ReadOnly(ctx, s.txManager, func(ctx context.Context) error {
		var err error
		e, err = s.repo.FindByID(ctx, entityID)
		return err
	})
	if err != nil {
		return zero, s.normalizeGetErr(err, entityID)
	}
	return s.mapper.ToResponse(e), nil
}

// Create persists a new entity built from an already validated request.
func (s *ResourceService[T, C, P, R]) Create(ctx context.Context, req C) (R, error) {
	var zero R
	var saved T

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		e := s.mapper.FromCreate(req)
		if err := s.hooks.Run(ctx, BeforeCreate, e); err != nil {
			return err
		}

		var err error
		if saved, err = s.repo.Save(ctx, e); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return zero, s.storageErr("create", err)
	}

	s.runAfter(ctx, AfterCreate, saved)
	return s.mapper.ToResponse(saved), nil
}

// Update applies a merge patch to the stored entity.
// The stored entity is left unchanged when the patched value is invalid.
func (s *ResourceService[T, C, P, R]) Update(ctx context.Context, entityID id.ID, patch P) (R, error) {
	var zero R
	var saved T

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, entityID)
		if err != nil {
			return s.normalizeGetErr(err, entityID)
		}

		merged, err := s.mapper.Merge(ctx, current, patch)
		if err != nil {
			return err
		}

		if err := s.hooks.Run(ctx, BeforeUpdate, merged); err != nil {
			return err
		}

		if saved, err = s.repo.Save(ctx, merged); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return zero, s.storageErr("update", err)
	}

	s.runAfter(ctx, AfterUpdate, saved)
	return s.mapper.ToResponse(saved), nil
}

// Delete removes the entity if it exists. A missing id is not an error.
func (s *ResourceService[T, C, P, R]) Delete(ctx context.Context, entityID id.ID) error {
	var (
		deleted T
		found   bool
	)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, entityID)
		if apperror.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return s.normalizeGetErr(err, entityID)
		}

		if err := s.hooks.Run(ctx, BeforeDelete, current); err != nil {
			return err
		}

		if err := s.repo.DeleteByID(ctx, entityID); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		deleted, found = current, true
		return nil
	})
	if err != nil {
		return s.storageErr("delete", err)
	}

	if found {
		s.runAfter(ctx, AfterDelete, deleted)
	}
	return nil
}

// storageErr keeps AppErrors and wraps anything else as a database error.
func (s *ResourceService[T, C, P, R]) storageErr(op string, err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewDatabase(op+" "+s.entityName, err)
}

// runAfter executes after-hooks. The change is already committed, so failures are only logged.
func (s *ResourceService[T, C, P, R]) runAfter(ctx context.Context, event HookEvent, e T) {
	if err := s.hooks.Run(ctx, event, e); err != nil {
		logger.Warn(ctx, "lifecycle hook failed",
			"entity", s.entityName,
			"event", string(event),
			"id", e.GetID(),
			"error", err,
		)
	}
}
