package resource_repo

import (
	"imaut/internal/domain/product"
	"imaut/internal/infrastructure/storage/postgres"
)

// ProductRepo stores products in the product table.
type ProductRepo struct {
	*BaseRepo[*product.Product]
}

func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseRepo: NewBaseRepo(txm, "product", product.EntityName, func() *product.Product { return &product.Product{} }),
	}
}
