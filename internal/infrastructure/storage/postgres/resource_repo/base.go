// Package resource_repo provides PostgreSQL implementations of domain.Repository.
package resource_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"imaut/internal/core/apperror"
	"imaut/internal/core/entity"
	"imaut/internal/core/id"
	"imaut/internal/infrastructure/storage/postgres"
)

// querierSource yields the querier for ctx. *postgres.TxManager joins the
// transaction stored in ctx and falls back to the pool.
type querierSource interface {
	GetQuerier(ctx context.Context) postgres.Querier
	Ping(ctx context.Context) error
}

// BaseRepo provides CRUD over a single table keyed by a BIGSERIAL id.
// Embed it in resource repositories that need more than one table.
type BaseRepo[T entity.Record[T]] struct {
	txm        querierSource
	tableName  string
	entityName string
	selectCols []string
	newFn      func() T
}

// NewBaseRepo creates a repository for tableName. Columns come from T's db tags.
func NewBaseRepo[T entity.Record[T]](txm *postgres.TxManager, tableName, entityName string, newFn func() T) *BaseRepo[T] {
	return &BaseRepo[T]{
		txm:        txm,
		tableName:  tableName,
		entityName: entityName,
		selectCols: postgres.ExtractDBColumns[T](),
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseRepo[T]) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

func (r *BaseRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// FindAll returns every row ordered by id.
func (r *BaseRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	sql, args, err := r.baseSelect().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	out := make([]T, 0)
	if err := pgxscan.Select(ctx, r.querier(ctx), &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}
	return out, nil
}

// FindByID retrieves entity by ID.
func (r *BaseRepo[T]) FindByID(ctx context.Context, entityID id.ID) (T, error) {
	e := r.newFn()

	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return e, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return e, apperror.NewNotFound(r.entityName, entityID)
		}
		return e, fmt.Errorf("get %s by id: %w", r.tableName, err)
	}
	return e, nil
}

// Save inserts a new row or updates the existing one.
// The returned entity is a copy carrying the assigned id.
func (r *BaseRepo[T]) Save(ctx context.Context, e T) (T, error) {
	out := e.Clone()

	if id.IsNil(out.GetID()) {
		newID, err := r.insert(ctx, out)
		if err != nil {
			return out, err
		}
		out.SetID(newID)
		return out, nil
	}

	if err := r.update(ctx, out); err != nil {
		return out, err
	}
	return out, nil
}

// columnValues returns the writable columns of e; id is never written.
func (r *BaseRepo[T]) columnValues(e T) map[string]any {
	data := postgres.StructToMap(e)

	values := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			values[col] = val
		}
	}
	return values
}

func (r *BaseRepo[T]) insertQuery(e T) squirrel.InsertBuilder {
	return r.Builder().
		Insert(r.tableName).
		SetMap(r.columnValues(e)).
		Suffix("RETURNING id")
}

func (r *BaseRepo[T]) updateQuery(e T) squirrel.UpdateBuilder {
	return r.Builder().
		Update(r.tableName).
		SetMap(r.columnValues(e)).
		Where(squirrel.Eq{"id": e.GetID()})
}

func (r *BaseRepo[T]) insert(ctx context.Context, e T) (id.ID, error) {
	sql, args, err := r.insertQuery(e).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var newID id.ID
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return newID, nil
}

func (r *BaseRepo[T]) update(ctx context.Context, e T) error {
	sql, args, err := r.updateQuery(e).ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, e.GetID())
	}
	return nil
}

// DeleteByID removes the row. Owned rows go through ON DELETE CASCADE.
func (r *BaseRepo[T]) DeleteByID(ctx context.Context, entityID id.ID) error {
	sql, args, err := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName, err)
	}
	return nil
}

// ExistsByID checks if entity exists.
func (r *BaseRepo[T]) ExistsByID(ctx context.Context, entityID id.ID) (bool, error) {
	sql, args, err := r.Builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.tableName, err)
	}
	return true, nil
}

// Ping checks database connectivity.
func (r *BaseRepo[T]) Ping(ctx context.Context) error {
	return r.txm.Ping(ctx)
}
