package account

import (
	"context"

	"imaut/internal/core/types"
	"imaut/internal/core/validation"
)

// Mapper converts account DTOs and applies merge patches.
type Mapper struct {
	validator *validation.Validator
}

// NewMapper creates a Mapper that validates patched accounts with v.
func NewMapper(v *validation.Validator) *Mapper {
	return &Mapper{validator: v}
}

// FromCreate builds an unsaved account.
func (m *Mapper) FromCreate(req CreateRequest) *Account {
	return &Account{
		Name:  types.ClonePtr(req.Name),
		Email: types.ClonePtr(req.Email),
		Phone: types.ClonePtr(req.Phone),
		Type:  types.ClonePtr(req.Type),
	}
}

// Merge applies p to a copy of current and validates the result.
func (m *Mapper) Merge(ctx context.Context, current *Account, p Patch) (*Account, error) {
	merged := p.ApplyTo(current)
	if err := m.validator.Check(ctx, EntityName, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// ToResponse projects a to its response.
func (m *Mapper) ToResponse(a *Account) Response {
	resp := Response{
		ID:                     a.ID,
		Name:                   a.Name,
		Email:                  a.Email,
		Phone:                  a.Phone,
		Type:                   a.Type,
		AccountDetailsClientID: a.AccountDetailsClientID,
		BankDetails:            make([]BankDetailsResponse, 0, len(a.BankDetails)),
	}
	for _, b := range a.BankDetails {
		resp.BankDetails = append(resp.BankDetails, BankDetailsResponse{
			ID:          b.ID,
			AccountName: b.AccountName,
			Iban:        b.Iban,
			Bic:         b.Bic,
			BankName:    b.BankName,
		})
	}
	return resp
}
