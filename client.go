// Package client is the Go SDK for the product-search API.
//
// Requests are built with the request package, sent with a Client, and the
// aggregate statistics of a response are read with the summary package.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opencommercesearch/opencommercesearch/client/internal/api"
	"github.com/opencommercesearch/opencommercesearch/client/request"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client sends requests to a single search API deployment. It is safe for
// concurrent use; the requests passed to it are not and must not be shared.
type Client struct {
	baseURL string
	http    *http.Client
	site    string // applied to requests that do not set one
}

// New constructs a Client for baseURL (scheme and host, optionally a path
// prefix). Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: baseURL cannot be empty", ErrInvalidArgument)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the deployment this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// prepare sets the client's default site on p when p has none. The site is
// written into the caller's request and stays there.
func (c *Client) prepare(p *request.Params) {
	if c.site == "" {
		return
	}
	if _, ok := p.Get(request.SiteParam); !ok {
		p.SetSite(c.site)
	}
}

// --------------------------------------------------------------------
// Product operations - delegated to internal/api
// --------------------------------------------------------------------

// Search runs a product search.
//
// The client's default site is stored into req when it has none. A fresh
// X-Request-Id is sent on every call unless req sets one.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req != nil {
		c.prepare(req.Parameters())
		log.Debug().Str("request", req.String()).Msg("search")
	}
	start := time.Now()
	resp, err := api.Search(ctx, c.http, c.baseURL, req)
	observe("search", start, err)
	return resp, err
}

// GetProduct looks up a single product.
//
// The client's default site is stored into req when it has none. A fresh
// X-Request-Id is sent on every call unless req sets one.
func (c *Client) GetProduct(ctx context.Context, req *ProductRequest) (*ProductResponse, error) {
	if req != nil {
		c.prepare(req.Parameters())
		log.Debug().Str("request", req.String()).Msg("get product")
	}
	start := time.Now()
	resp, err := api.GetProduct(ctx, c.http, c.baseURL, req)
	observe("get_product", start, err)
	return resp, err
}

// --------------------------------------------------------------------
// Brand operations - delegated to internal/api
// --------------------------------------------------------------------

// GetBrand looks up a single brand.
//
// The client's default site is stored into req when it has none. A fresh
// X-Request-Id is sent on every call unless req sets one.
func (c *Client) GetBrand(ctx context.Context, req *BrandRequest) (*Brand, error) {
	if req != nil {
		c.prepare(req.Parameters())
		log.Debug().Str("request", req.String()).Msg("get brand")
	}
	start := time.Now()
	brand, err := api.GetBrand(ctx, c.http, c.baseURL, req)
	observe("get_brand", start, err)
	return brand, err
}
