package client

import (
	"imaut/internal/core/id"
	"imaut/internal/core/patch"
	"imaut/internal/core/types"
)

// CreateRequest is the body of POST /clients.
type CreateRequest struct {
	Name          *string `json:"name" validate:"required,notblank,max=255"`
	VatNumber     *string `json:"vatNumber" validate:"required,notblank,max=31"`
	StreetAddress *string `json:"streetAddress" validate:"required,notblank,max=255"`
	Postcode      *string `json:"postcode" validate:"required,notblank,max=15"`
	City          *string `json:"city" validate:"required,notblank,max=127"`
	Country       *string `json:"country" validate:"required,notblank,max=127"`
}

// Patch is a merge patch document for a client.
type Patch struct {
	Name          patch.Field[string] `json:"name,omitzero"`
	VatNumber     patch.Field[string] `json:"vatNumber,omitzero"`
	StreetAddress patch.Field[string] `json:"streetAddress,omitzero"`
	Postcode      patch.Field[string] `json:"postcode,omitzero"`
	City          patch.Field[string] `json:"city,omitzero"`
	Country       patch.Field[string] `json:"country,omitzero"`
}

// ApplyTo returns a patched copy of c.
func (p Patch) ApplyTo(c *Client) *Client {
	out := c.Clone()
	out.Name = patch.Apply(p.Name, out.Name)
	out.VatNumber = patch.Apply(p.VatNumber, out.VatNumber)
	out.StreetAddress = patch.Apply(p.StreetAddress, out.StreetAddress)
	out.Postcode = patch.Apply(p.Postcode, out.Postcode)
	out.City = patch.Apply(p.City, out.City)
	out.Country = patch.Apply(p.Country, out.Country)
	return out
}

// Response is the external projection of a client.
type Response struct {
	ID            id.ID   `json:"id"`
	Name          *string `json:"name"`
	VatNumber     *string `json:"vatNumber"`
	StreetAddress *string `json:"streetAddress"`
	Postcode      *string `json:"postcode"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
}

// Equal compares field by field.
func (r Response) Equal(o Response) bool {
	return r.ID == o.ID &&
		types.EqualPtr(r.Name, o.Name) &&
		types.EqualPtr(r.VatNumber, o.VatNumber) &&
		types.EqualPtr(r.StreetAddress, o.StreetAddress) &&
		types.EqualPtr(r.Postcode, o.Postcode) &&
		types.EqualPtr(r.City, o.City) &&
		types.EqualPtr(r.Country, o.Country)
}
