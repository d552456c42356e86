package types

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/opencommercesearch/opencommercesearch/client/summary"
)

// ------------------------------
// Response Types
// ------------------------------

// Metadata is the envelope metadata shared by every response
type Metadata struct {
	Found          int             `json:"found"`
	Time           int64           `json:"time"`
	ProductSummary json.RawMessage `json:"productSummary,omitempty"`
}

// SearchResponse wraps the product search result
type SearchResponse struct {
	Metadata Metadata  `json:"metadata"`
	Products []Product `json:"products"`
}

// Summary returns the aggregate statistics reported for productID. The
// result is empty (every accessor absent) when the response carries none.
func (r *SearchResponse) Summary(productID string) summary.Summary {
	return summaryFor(r.Metadata.ProductSummary, productID)
}

// ProductResponse wraps a product lookup result
type ProductResponse struct {
	Metadata Metadata  `json:"metadata"`
	Products []Product `json:"products"`
}

// Summary returns the aggregate statistics reported for productID.
func (r *ProductResponse) Summary(productID string) summary.Summary {
	return summaryFor(r.Metadata.ProductSummary, productID)
}

// BrandResponse wraps a brand lookup result
type BrandResponse struct {
	Metadata Metadata `json:"metadata"`
	Brand    *Brand   `json:"brand"`
}

func summaryFor(raw json.RawMessage, productID string) summary.Summary {
	if len(raw) == 0 {
		return summary.Summary{}
	}
	return summary.New(gjson.GetBytes(raw, gjson.Escape(productID)))
}
