package app

import (
	"imaut/internal/core/entity"
	"imaut/internal/core/tx"
	"imaut/internal/core/validation"
	"imaut/internal/domain"
	"imaut/internal/domain/account"
	"imaut/internal/domain/client"
	"imaut/internal/domain/product"
	"imaut/internal/infrastructure/events"
	v1 "imaut/internal/infrastructure/http/v1"
	"imaut/internal/infrastructure/http/v1/handlers"
	"imaut/internal/infrastructure/storage/memory"
	"imaut/internal/infrastructure/storage/postgres"
	"imaut/internal/infrastructure/storage/postgres/resource_repo"
)

// deps are the shared collaborators a Module wires its resource from.
type deps struct {
	validator *validation.Validator
	base      *handlers.BaseHandler
	publisher events.Publisher

	// txManager is nil when the in-memory store is selected
	txManager *postgres.TxManager
}

// store is a repository that can also report its health.
type store[T entity.Identifiable] interface {
	domain.Repository[T]
	domain.Pinger
}

// Module describes the single resource a service binary exposes.
type Module struct {
	// Name is the service name used in logs and metrics, e.g. "account-api"
	Name string

	// Path is the collection path, e.g. "/accounts"
	Path string

	mount func(d deps) (v1.ResourceRouteHandler, domain.Pinger)
}

// AccountModule serves /accounts.
func AccountModule() Module {
	return Module{
		Name: "account-api",
		Path: "/accounts",
		mount: func(d deps) (v1.ResourceRouteHandler, domain.Pinger) {
			repo := selectStore(d, account.EntityName, func(txm *postgres.TxManager) store[*account.Account] {
				return resource_repo.NewAccountRepo(txm)
			})
			mapper := account.NewMapper(d.validator)
			svc := newService[*account.Account, account.CreateRequest, account.Patch, account.Response](d, repo, mapper, account.EntityName)
			return handlers.NewAccountHandler(d.base, svc, d.validator), repo
		},
	}
}

// ClientModule serves /clients.
func ClientModule() Module {
	return Module{
		Name: "client-api",
		Path: "/clients",
		mount: func(d deps) (v1.ResourceRouteHandler, domain.Pinger) {
			repo := selectStore(d, client.EntityName, func(txm *postgres.TxManager) store[*client.Client] {
				return resource_repo.NewClientRepo(txm)
			})
			mapper := client.NewMapper(d.validator)
			svc := newService[*client.Client, client.CreateRequest, client.Patch, client.Response](d, repo, mapper, client.EntityName)
			return handlers.NewClientHandler(d.base, svc, d.validator), repo
		},
	}
}

// ProductModule serves /products.
func ProductModule() Module {
	return Module{
		Name: "product-api",
		Path: "/products",
		mount: func(d deps) (v1.ResourceRouteHandler, domain.Pinger) {
			repo := selectStore(d, product.EntityName, func(txm *postgres.TxManager) store[*product.Product] {
				return resource_repo.NewProductRepo(txm)
			})
			mapper := product.NewMapper(d.validator)
			svc := newService[*product.Product, product.CreateRequest, product.Patch, product.Response](d, repo, mapper, product.EntityName)
			return handlers.NewProductHandler(d.base, svc, d.validator), repo
		},
	}
}

// selectStore returns the postgres repository when a pool is configured, the in-memory one otherwise.
func selectStore[T entity.Record[T]](d deps, entityName string, pg func(*postgres.TxManager) store[T]) store[T] {
	if d.txManager != nil {
		return pg(d.txManager)
	}
	return memory.NewRepository[T](entityName)
}

// newService builds the resource service and binds lifecycle events to its hooks.
func newService[T entity.Identifiable, C, P, R any](
	d deps,
	repo domain.Repository[T],
	mapper domain.Mapper[T, C, P, R],
	entityName string,
) *domain.ResourceService[T, C, P, R] {
	var txm tx.Manager
	if d.txManager != nil {
		txm = d.txManager
	}

	svc := domain.NewResourceService(domain.ResourceServiceConfig[T, C, P, R]{
		Repo:       repo,
		Mapper:     mapper,
		TxManager:  txm,
		EntityName: entityName,
	})
	events.Bind(svc.Hooks(), d.publisher, entityName, mapper.ToResponse)
	return svc
}
