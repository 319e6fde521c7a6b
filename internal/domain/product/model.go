// Package product implements the product resource.
package product

import (
	"imaut/internal/core/entity"
	"imaut/internal/core/id"
	"imaut/internal/core/types"
)

// Object names reported in constraint violations.
const (
	EntityName              = "product"
	CreateRequestObjectName = "createProductRequest"
)

// Product is a sellable item priced in a single currency.
type Product struct {
	entity.Base

	Name        *string      `db:"name" json:"name" validate:"required,notblank,max=255"`
	Description *string      `db:"description" json:"description" validate:"omitempty,max=255"`
	NetPrice    *types.Money `db:"net_price" json:"netPrice" validate:"required"`
	Currency    *string      `db:"currency" json:"currency" validate:"required,notblank,max=3"`
	Unit        *string      `db:"unit" json:"unit" validate:"required,notblank,max=15"`
}

// Equal reports identity equality.
func (p *Product) Equal(o *Product) bool {
	if p == nil || o == nil {
		return p == o
	}
	return entity.SameIdentity(p, o, p.ID, o.ID)
}

// Clone returns a deep copy.
func (p *Product) Clone() *Product {
	return &Product{
		Base:        p.Base,
		Name:        types.ClonePtr(p.Name),
		Description: types.ClonePtr(p.Description),
		NetPrice:    types.ClonePtr(p.NetPrice),
		Currency:    types.ClonePtr(p.Currency),
		Unit:        types.ClonePtr(p.Unit),
	}
}

// SetID assigns the store identifier.
func (p *Product) SetID(v id.ID) {
	p.ID = v
}
