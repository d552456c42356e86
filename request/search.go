package request

import (
	"net/url"
	"strconv"
)

// FilterQuerySeparator joins filter queries in the fq parameter.
const FilterQuerySeparator = "|"

// Endpoint paths served by the product API.
const (
	ProductsEndpoint = "/v1/products"
	BrandsEndpoint   = "/v1/brands"
)

// SearchRequest is a full-text product search.
type SearchRequest struct{ *Base }

// NewSearchRequest returns a search for query.
func NewSearchRequest(query string, opts ...ParamsOption) *SearchRequest {
	r := &SearchRequest{Base: NewBase(ProductsEndpoint, opts...)}
	r.SetQuery(query)
	return r
}

// SetQuery replaces the search text sent as q.
func (r *SearchRequest) SetQuery(query string) { r.Set("q", query) }

// AddFilterQuery appends a filter query such as "brand:Nike". Filter queries
// may legitimately contain commas, hence the dedicated separator.
func (r *SearchRequest) AddFilterQuery(fq string) {
	r.AddSeparated("fq", fq, FilterQuerySeparator)
}

// SetOutlet restricts results to outlet (true) or regular (false) products.
func (r *SearchRequest) SetOutlet(outlet bool) { r.Set("outlet", strconv.FormatBool(outlet)) }

// SetPreview asks for results from the preview index.
func (r *SearchRequest) SetPreview(preview bool) { r.Set("preview", strconv.FormatBool(preview)) }

// ProductRequest fetches a single product by id.
type ProductRequest struct{ *Base }

// NewProductRequest returns a lookup for id.
func NewProductRequest(id string, opts ...ParamsOption) *ProductRequest {
	return &ProductRequest{Base: NewBase(ProductsEndpoint+"/"+url.PathEscape(id), opts...)}
}

// BrandRequest fetches a single brand.
type BrandRequest struct{ *Base }

// NewBrandRequest returns a lookup for the brand with id.
func NewBrandRequest(id string, opts ...ParamsOption) *BrandRequest {
	return &BrandRequest{Base: NewBase(BrandsEndpoint+"/"+url.PathEscape(id), opts...)}
}
