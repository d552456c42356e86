package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Brand represents a product brand
type Brand struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	Logo           string            `json:"logo,omitempty"`
	URL            string            `json:"url,omitempty"`
	Sites          []string          `json:"sites,omitempty"`
	SiteAttributes map[string]string `json:"siteAttributes,omitempty"`
}

// ProductTranslation holds localized product copy
type ProductTranslation struct {
	Description string `json:"description,omitempty"`
	BottomLine  string `json:"bottomLine,omitempty"`
}

// Product represents a product as returned by the search API. Only the
// commonly requested fields are mapped; unknown fields are ignored.
type Product struct {
	ID          string              `json:"id"`
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Brand       *Brand              `json:"brand,omitempty"`
	Translation *ProductTranslation `json:"translation,omitempty"`
	ListRank    int                 `json:"listRank,omitempty"`
}
