package client

import (
	"github.com/opencommercesearch/opencommercesearch/client/internal/types"
	"github.com/opencommercesearch/opencommercesearch/client/request"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SearchRequest  = request.SearchRequest
	ProductRequest = request.ProductRequest
	BrandRequest   = request.BrandRequest

	// Domain entities
	Brand              = types.Brand
	Product            = types.Product
	ProductTranslation = types.ProductTranslation

	// Responses
	Metadata        = types.Metadata
	SearchResponse  = types.SearchResponse
	ProductResponse = types.ProductResponse
)
