// Package client implements the client resource.
package client

import (
	"imaut/internal/core/entity"
	"imaut/internal/core/id"
	"imaut/internal/core/types"
)

// Object names reported in constraint violations.
const (
	EntityName              = "client"
	CreateRequestObjectName = "createClientRequest"
)

// Client is a billed company with its postal address.
type Client struct {
	entity.Base

	Name          *string `db:"name" json:"name" validate:"required,notblank,max=255"`
	VatNumber     *string `db:"vat_number" json:"vatNumber" validate:"required,notblank,max=31"`
	StreetAddress *string `db:"street_address" json:"streetAddress" validate:"required,notblank,max=255"`
	Postcode      *string `db:"postcode" json:"postcode" validate:"required,notblank,max=15"`
	City          *string `db:"city" json:"city" validate:"required,notblank,max=127"`
	Country       *string `db:"country" json:"country" validate:"required,notblank,max=127"`
}

// Equal reports identity equality.
func (c *Client) Equal(o *Client) bool {
	if c == nil || o == nil {
		return c == o
	}
	return entity.SameIdentity(c, o, c.ID, o.ID)
}

// Clone returns a deep copy.
func (c *Client) Clone() *Client {
	return &Client{
		Base:          c.Base,
		Name:          types.ClonePtr(c.Name),
		VatNumber:     types.ClonePtr(c.VatNumber),
		StreetAddress: types.ClonePtr(c.StreetAddress),
		Postcode:      types.ClonePtr(c.Postcode),
		City:          types.ClonePtr(c.City),
		Country:       types.ClonePtr(c.Country),
	}
}

// SetID assigns the store identifier.
func (c *Client) SetID(v id.ID) {
	c.ID = v
}
