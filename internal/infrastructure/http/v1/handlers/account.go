package handlers

import (
	"imaut/internal/core/validation"
	"imaut/internal/domain"
	"imaut/internal/domain/account"
)

// AccountService is the resource service for accounts.
type AccountService = domain.ResourceService[*account.Account, account.CreateRequest, account.Patch, account.Response]

// AccountHandler serves /accounts.
type AccountHandler = ResourceHandler[*account.Account, account.CreateRequest, account.Patch, account.Response]

// NewAccountHandler creates a new account handler.
func NewAccountHandler(base *BaseHandler, service *AccountService, v *validation.Validator) *AccountHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[*account.Account, account.CreateRequest, account.Patch, account.Response]{
		Service:          service,
		Validator:        v,
		CreateObjectName: account.CreateRequestObjectName,
	})
}
