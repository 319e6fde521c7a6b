// Package account implements the account resource: model, DTOs and the merge patch mapper.
package account

import (
	"slices"

	"imaut/internal/core/entity"
	"imaut/internal/core/id"
	"imaut/internal/core/types"
)

// Object names reported in constraint violations.
const (
	EntityName              = "account"
	CreateRequestObjectName = "createAccountRequest"
)

// Account is a customer account with its bank details.
type Account struct {
	entity.Base

	Name                   *string `db:"name" json:"name" validate:"required,notblank,max=255"`
	Email                  *string `db:"email" json:"email" validate:"omitempty,email,max=255"`
	Phone                  *string `db:"phone" json:"phone" validate:"omitempty,max=15"`
	Type                   *string `db:"type" json:"type" validate:"required,notblank,max=31"`
	AccountDetailsClientID *id.ID  `db:"account_details_client_id" json:"accountDetailsClientId"`

	// BankDetails are owned by the account and stored in their own table
	BankDetails []BankDetails `db:"-" json:"bankDetails" validate:"dive"`
}

// BankDetails is one bank account attached to an Account.
type BankDetails struct {
	entity.Base

	AccountID   id.ID   `db:"account_id" json:"-"`
	AccountName *string `db:"account_name" json:"accountName" validate:"required,max=255"`
	Iban        *string `db:"iban" json:"iban" validate:"required,max=24"`
	Bic         *string `db:"bic" json:"bic" validate:"required,max=8"`
	BankName    *string `db:"bank_name" json:"bankName" validate:"required,max=255"`
}

// Equal reports identity equality.
func (a *Account) Equal(o *Account) bool {
	if a == nil || o == nil {
		return a == o
	}
	return entity.SameIdentity(a, o, a.ID, o.ID)
}

// Equal reports identity equality.
func (b *BankDetails) Equal(o *BankDetails) bool {
	if b == nil || o == nil {
		return b == o
	}
	return entity.SameIdentity(b, o, b.ID, o.ID)
}

// Clone returns a deep copy.
func (a *Account) Clone() *Account {
	c := *a
	c.Name = types.ClonePtr(a.Name)
	c.Email = types.ClonePtr(a.Email)
	c.Phone = types.ClonePtr(a.Phone)
	c.Type = types.ClonePtr(a.Type)
	c.AccountDetailsClientID = types.ClonePtr(a.AccountDetailsClientID)
	if a.BankDetails != nil {
		c.BankDetails = make([]BankDetails, len(a.BankDetails))
		for i := range a.BankDetails {
			c.BankDetails[i] = a.BankDetails[i].clone()
		}
	}
	return &c
}

func (b BankDetails) clone() BankDetails {
	b.AccountName = types.ClonePtr(b.AccountName)
	b.Iban = types.ClonePtr(b.Iban)
	b.Bic = types.ClonePtr(b.Bic)
	b.BankName = types.ClonePtr(b.BankName)
	return b
}

// SetID assigns the store identifier and re-links owned bank details.
func (a *Account) SetID(v id.ID) {
	a.ID = v
	for i := range a.BankDetails {
		a.BankDetails[i].AccountID = v
	}
}

// AssignChildIDs gives unsaved bank details an identifier from next.
func (a *Account) AssignChildIDs(next func() id.ID) {
	for i := range a.BankDetails {
		if a.BankDetails[i].IsNew() {
			a.BankDetails[i].ID = next()
		}
		a.BankDetails[i].AccountID = a.ID
	}
}

// SortBankDetails orders bank details by id for stable responses.
func (a *Account) SortBankDetails() {
	slices.SortFunc(a.BankDetails, func(x, y BankDetails) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		}
		return 0
	})
}
