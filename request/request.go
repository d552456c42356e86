// Package request builds outgoing product-search API requests.
//
// Every request owns a Params store that accumulates query and header
// parameters while the request is being built. Requests are single-writer
// values: build one per call and do not share them across goroutines.
package request

// Request is anything the client can send: an endpoint path plus the
// parameters rendered after it.
type Request interface {
	Endpoint() string
	Parameters() *Params
}

// Render returns the request identity: endpoint, '?', and the query string.
func Render(r Request) string {
	return r.Endpoint() + "?" + r.Parameters().QueryString()
}

// Base is a Request backed by a Params store. Concrete requests embed it.
type Base struct {
	*Params
	endpoint string
}

// NewBase returns a request for endpoint with an empty parameter store.
func NewBase(endpoint string, opts ...ParamsOption) *Base {
	return &Base{Params: NewParams(opts...), endpoint: endpoint}
}

// Endpoint implements Request.
func (b *Base) Endpoint() string { return b.endpoint }

// Parameters implements Request.
func (b *Base) Parameters() *Params {
	if b.Params == nil {
		b.Params = NewParams()
	}
	return b.Params
}

// String is the human-readable form used in logs and debugging.
func (b *Base) String() string { return Render(b) }
