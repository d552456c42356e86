package api

import (
	"context"
	"fmt"

	"github.com/opencommercesearch/opencommercesearch/client/internal/types"
	"github.com/opencommercesearch/opencommercesearch/client/request"
)

// Search runs a product search against the backend.
func Search(ctx context.Context, httpClient HTTPClient, baseURL string, req *request.SearchRequest) (*types.SearchResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil search request", request.ErrInvalidArgument)
	}
	var sr types.SearchResponse
	if err := get(ctx, httpClient, baseURL, "search", req, &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}

// GetProduct looks up a single product.
func GetProduct(ctx context.Context, httpClient HTTPClient, baseURL string, req *request.ProductRequest) (*types.ProductResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil product request", request.ErrInvalidArgument)
	}
	var pr types.ProductResponse
	if err := get(ctx, httpClient, baseURL, "get product", req, &pr); err != nil {
		return nil, err
	}
	if len(pr.Products) == 0 {
		return nil, fmt.Errorf("get product %s: %w", req.Endpoint(), types.ErrNotFound)
	}
	return &pr, nil
}

// GetBrand looks up a single brand.
func GetBrand(ctx context.Context, httpClient HTTPClient, baseURL string, req *request.BrandRequest) (*types.Brand, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil brand request", request.ErrInvalidArgument)
	}
	var br types.BrandResponse
	if err := get(ctx, httpClient, baseURL, "get brand", req, &br); err != nil {
		return nil, err
	}
	if br.Brand == nil {
		return nil, fmt.Errorf("get brand %s: %w", req.Endpoint(), types.ErrNotFound)
	}
	return br.Brand, nil
}
