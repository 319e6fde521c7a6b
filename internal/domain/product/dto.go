package product

import (
	"imaut/internal/core/id"
	"imaut/internal/core/patch"
	"imaut/internal/core/types"
)

// CreateRequest is the body of POST /products.
type CreateRequest struct {
	Name        *string      `json:"name" validate:"required,notblank,max=255"`
	Description *string      `json:"description" validate:"omitempty,max=255"`
	NetPrice    *types.Money `json:"netPrice" validate:"required"`
	Currency    *string      `json:"currency" validate:"required,notblank,max=3"`
	Unit        *string      `json:"unit" validate:"required,notblank,max=15"`
}

// Patch is a merge patch document for a product.
type Patch struct {
	Name        patch.Field[string]      `json:"name,omitzero"`
	Description patch.Field[string]      `json:"description,omitzero"`
	NetPrice    patch.Field[types.Money] `json:"netPrice,omitzero"`
	Currency    patch.Field[string]      `json:"currency,omitzero"`
	Unit        patch.Field[string]      `json:"unit,omitzero"`
}

// ApplyTo returns a patched copy of pr.
func (p Patch) ApplyTo(pr *Product) *Product {
	out := pr.Clone()
	out.Name = patch.Apply(p.Name, out.Name)
	out.Description = patch.Apply(p.Description, out.Description)
	out.NetPrice = patch.Apply(p.NetPrice, out.NetPrice)
	out.Currency = patch.Apply(p.Currency, out.Currency)
	out.Unit = patch.Apply(p.Unit, out.Unit)
	return out
}

// Response is the external projection of a product.
type Response struct {
	ID          id.ID        `json:"id"`
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	NetPrice    *types.Money `json:"netPrice"`
	Currency    *string      `json:"currency"`
	Unit        *string      `json:"unit"`
}

// Equal compares field by field; prices compare numerically.
func (r Response) Equal(o Response) bool {
	return r.ID == o.ID &&
		types.EqualPtr(r.Name, o.Name) &&
		types.EqualPtr(r.Description, o.Description) &&
		types.EqualMoney(r.NetPrice, o.NetPrice) &&
		types.EqualPtr(r.Currency, o.Currency) &&
		types.EqualPtr(r.Unit, o.Unit)
}
