package client

import (
	"context"

	"imaut/internal/core/types"
	"imaut/internal/core/validation"
)

// Mapper converts client DTOs and applies merge patches.
type Mapper struct {
	validator *validation.Validator
}

func NewMapper(v *validation.Validator) *Mapper {
	return &Mapper{validator: v}
}

func (m *Mapper) FromCreate(req CreateRequest) *Client {
	return &Client{
		Name:          types.ClonePtr(req.Name),
		VatNumber:     types.ClonePtr(req.VatNumber),
		StreetAddress: types.ClonePtr(req.StreetAddress),
		Postcode:      types.ClonePtr(req.Postcode),
		City:          types.ClonePtr(req.City),
		Country:       types.ClonePtr(req.Country),
	}
}

func (m *Mapper) Merge(ctx context.Context, current *Client, p Patch) (*Client, error) {
	merged := p.ApplyTo(current)
	if err := m.validator.Check(ctx, EntityName, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (m *Mapper) ToResponse(c *Client) Response {
	return Response{
		ID:            c.ID,
		Name:          c.Name,
		VatNumber:     c.VatNumber,
		StreetAddress: c.StreetAddress,
		Postcode:      c.Postcode,
		City:          c.City,
		Country:       c.Country,
	}
}
