package account

import (
	"slices"

	"imaut/internal/core/id"
	"imaut/internal/core/patch"
	"imaut/internal/core/types"
)

// CreateRequest is the body of POST /accounts. Unknown fields are ignored.
type CreateRequest struct {
	Name  *string `json:"name" validate:"required,notblank,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=15"`
	Type  *string `json:"type" validate:"required,notblank,max=31"`
}

// BankDetailsInput is one element of a bankDetails array in a patch document.
// Elements replace the stored collection wholesale, so identifiers are not accepted.
type BankDetailsInput struct {
	AccountName *string `json:"accountName"`
	Iban        *string `json:"iban"`
	Bic         *string `json:"bic"`
	BankName    *string `json:"bankName"`
}

// Patch is a merge patch document for an account. It has no id member.
type Patch struct {
	Name                   patch.Field[string]             `json:"name,omitzero"`
	Email                  patch.Field[string]             `json:"email,omitzero"`
	Phone                  patch.Field[string]             `json:"phone,omitzero"`
	Type                   patch.Field[string]             `json:"type,omitzero"`
	AccountDetailsClientID patch.Field[id.ID]              `json:"accountDetailsClientId,omitzero"`
	BankDetails            patch.Field[[]BankDetailsInput] `json:"bankDetails,omitzero"`
}

// ApplyTo returns a patched copy of a. a itself is not modified.
func (p Patch) ApplyTo(a *Account) *Account {
	out := a.Clone()
	out.Name = patch.Apply(p.Name, out.Name)
	out.Email = patch.Apply(p.Email, out.Email)
	out.Phone = patch.Apply(p.Phone, out.Phone)
	out.Type = patch.Apply(p.Type, out.Type)
	out.AccountDetailsClientID = patch.Apply(p.AccountDetailsClientID, out.AccountDetailsClientID)

	if p.BankDetails.IsSet() {
		out.BankDetails = nil
		if items, ok := p.BankDetails.Get(); ok {
			out.BankDetails = make([]BankDetails, 0, len(items))
			for _, in := range items {
				out.BankDetails = append(out.BankDetails, BankDetails{
					AccountID:   out.ID,
					AccountName: types.ClonePtr(in.AccountName),
					Iban:        types.ClonePtr(in.Iban),
					Bic:         types.ClonePtr(in.Bic),
					BankName:    types.ClonePtr(in.BankName),
				})
			}
		}
	}
	return out
}

// Response is the external projection of an account.
type Response struct {
	ID                     id.ID                 `json:"id"`
	Name                   *string               `json:"name"`
	Email                  *string               `json:"email"`
	Phone                  *string               `json:"phone"`
	Type                   *string               `json:"type"`
	AccountDetailsClientID *id.ID                `json:"accountDetailsClientId"`
	BankDetails            []BankDetailsResponse `json:"bankDetails"`
}

// BankDetailsResponse omits the owning account.
type BankDetailsResponse struct {
	ID          id.ID   `json:"id"`
	AccountName *string `json:"accountName"`
	Iban        *string `json:"iban"`
	Bic         *string `json:"bic"`
	BankName    *string `json:"bankName"`
}

// Equal compares field by field.
func (r Response) Equal(o Response) bool {
	return r.ID == o.ID &&
		types.EqualPtr(r.Name, o.Name) &&
		types.EqualPtr(r.Email, o.Email) &&
		types.EqualPtr(r.Phone, o.Phone) &&
		types.EqualPtr(r.Type, o.Type) &&
		types.EqualPtr(r.AccountDetailsClientID, o.AccountDetailsClientID) &&
		slices.EqualFunc(r.BankDetails, o.BankDetails, BankDetailsResponse.Equal)
}

// Equal compares field by field.
func (r BankDetailsResponse) Equal(o BankDetailsResponse) bool {
	return r.ID == o.ID &&
		types.EqualPtr(r.AccountName, o.AccountName) &&
		types.EqualPtr(r.Iban, o.Iban) &&
		types.EqualPtr(r.Bic, o.Bic) &&
		types.EqualPtr(r.BankName, o.BankName)
}

// Equal compares field by field.
func (r CreateRequest) Equal(o CreateRequest) bool {
	return types.EqualPtr(r.Name, o.Name) &&
		types.EqualPtr(r.Email, o.Email) &&
		types.EqualPtr(r.Phone, o.Phone) &&
		types.EqualPtr(r.Type, o.Type)
}
