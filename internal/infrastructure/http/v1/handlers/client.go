package handlers

import (
	"imaut/internal/core/validation"
	"imaut/internal/domain"
	"imaut/internal/domain/client"
)

// ClientService is the resource service for clients.
type ClientService = domain.ResourceService[*client.Client, client.CreateRequest, client.Patch, client.Response]

// ClientHandler serves /clients.
type ClientHandler = ResourceHandler[*client.Client, client.CreateRequest, client.Patch, client.Response]

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *ClientService, v *validation.Validator) *ClientHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[*client.Client, client.CreateRequest, client.Patch, client.Response]{
		Service:          service,
		Validator:        v,
		CreateObjectName: client.CreateRequestObjectName,
	})
}
