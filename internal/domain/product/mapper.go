package product

import (
	"context"

	"imaut/internal/core/types"
	"imaut/internal/core/validation"
)

// Mapper converts product DTOs and applies merge patches.
type Mapper struct {
	validator *validation.Validator
}

func NewMapper(v *validation.Validator) *Mapper {
	return &Mapper{validator: v}
}

func (m *Mapper) FromCreate(req CreateRequest) *Product {
	return &Product{
		Name:        types.ClonePtr(req.Name),
		Description: types.ClonePtr(req.Description),
		NetPrice:    types.ClonePtr(req.NetPrice),
		Currency:    types.ClonePtr(req.Currency),
		Unit:        types.ClonePtr(req.Unit),
	}
}

func (m *Mapper) Merge(ctx context.Context, current *Product, p Patch) (*Product, error) {
	merged := p.ApplyTo(current)
	if err := m.validator.Check(ctx, EntityName, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (m *Mapper) ToResponse(p *Product) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		NetPrice:    p.NetPrice,
		Currency:    p.Currency,
		Unit:        p.Unit,
	}
}
