package client

// Functional options applied by New, in order.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. Options applied after
// it (timeout, debug logging) modify the supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP exchange. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Do not enable this in production: dumps
// include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport}
		return nil
	}
}

// WithSite sets the site sent with every request that does not set its own.
func WithSite(site string) Option {
	return func(c *Client) error {
		c.site = site
		return nil
	}
}
