package handlers

import (
	"imaut/internal/core/validation"
	"imaut/internal/domain"
	"imaut/internal/domain/product"
)

// ProductService is the resource service for products.
type ProductService = domain.ResourceService[*product.Product, product.CreateRequest, product.Patch, product.Response]

// ProductHandler serves /products.
type ProductHandler = ResourceHandler[*product.Product, product.CreateRequest, product.Patch, product.Response]

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *ProductService, v *validation.Validator) *ProductHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[*product.Product, product.CreateRequest, product.Patch, product.Response]{
		Service:          service,
		Validator:        v,
		CreateObjectName: product.CreateRequestObjectName,
	})
}
