package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/opencommercesearch/opencommercesearch/client/optional"
)

// Well-known parameter and header names.
const (
	FieldsParam     = "fields"
	MetadataParam   = "metadata"
	SiteParam       = "site"
	RequestIDHeader = "X-Request-Id"

	// DefaultSeparator joins multi-valued parameters built with Add.
	DefaultSeparator = ","
)

var (
	// ErrInvalidArgument is returned when a required argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEncoding is returned by an Encoder that cannot escape a value.
	ErrEncoding = errors.New("cannot encode value")
)

// Encoder percent-encodes a single query value.
type Encoder func(string) (string, error)

// QueryEscape is the default Encoder. It percent-encodes every byte of v
// outside the unreserved set, so bytes that are not valid UTF-8 are escaped
// too. It never fails.
func QueryEscape(v string) (string, error) {
	return url.QueryEscape(v), nil
}

// ParamsOption configures a Params store in NewParams.
type ParamsOption func(*Params)

// WithEncoder replaces the value encoder used by QueryString.
func WithEncoder(enc Encoder) ParamsOption {
	return func(p *Params) {
		if enc != nil {
			p.encode = enc
		}
	}
}

// Params accumulates query and header parameters for a single outgoing
// request and renders them into a query string.
//
// Parameters render in the order their names were first set; replacing a
// value keeps the original position. A name may hold a null value (None),
// which is kept by Get but skipped by QueryString.
//
// Params is not safe for concurrent use. Build one per request.
type Params struct {
	params  *orderedmap.OrderedMap[string, optional.Option[string]]
	headers *orderedmap.OrderedMap[string, string]
	encode  Encoder
}

// NewParams returns an empty store.
func NewParams(opts ...ParamsOption) *Params {
	p := &Params{}
	p.init()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Params) init() {
	if p.params == nil {
		p.params = orderedmap.New[string, optional.Option[string]]()
	}
	if p.headers == nil {
		p.headers = orderedmap.New[string, string]()
	}
	if p.encode == nil {
		p.encode = QueryEscape
	}
}

// Set replaces the value of name unconditionally.
func (p *Params) Set(name, value string) {
	p.SetOption(name, optional.Some(value))
}

// SetOption replaces the value of name. None stores a null value.
func (p *Params) SetOption(name string, value optional.Option[string]) {
	p.init()
	p.params.Set(name, value)
}

// Get returns the current value of name and whether name was ever set.
// A name set to null yields (None, true).
func (p *Params) Get(name string) (optional.Option[string], bool) {
	p.init()
	return p.params.Get(name)
}

// Len returns the number of parameter names held, null values included.
func (p *Params) Len() int {
	p.init()
	return p.params.Len()
}

// Add appends value to name using DefaultSeparator.
func (p *Params) Add(name, value string) {
	p.AddOption(name, optional.Some(value), DefaultSeparator)
}

// AddSeparated appends value to name using sep.
func (p *Params) AddSeparated(name, value, sep string) {
	p.AddOption(name, optional.Some(value), sep)
}

// AddOption behaves like SetOption when name is unset or null. Otherwise a
// present value is appended as sep+value, and None leaves the current value
// untouched. The separator itself is never escaped.
func (p *Params) AddOption(name string, value optional.Option[string], sep string) {
	p.init()
	current, _ := p.params.Get(name)
	cur, ok := current.Get()
	if !ok {
		p.params.Set(name, value)
		return
	}
	if v, present := value.Get(); present {
		p.params.Set(name, optional.Some(cur+sep+v))
	}
}

// SetFields replaces the fields parameter with fields joined by commas.
// A nil slice is rejected with ErrInvalidArgument and nothing changes.
func (p *Params) SetFields(fields []string) error {
	if fields == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, FieldsParam)
	}
	p.Set(FieldsParam, strings.Join(fields, DefaultSeparator))
	return nil
}

// AddField appends a single field to the fields parameter.
func (p *Params) AddField(name string) { p.Add(FieldsParam, name) }

// SetMetadataFields replaces the metadata parameter with fields joined by
// commas. A nil slice is rejected with ErrInvalidArgument.
func (p *Params) SetMetadataFields(fields []string) error {
	if fields == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, MetadataParam)
	}
	p.Set(MetadataParam, strings.Join(fields, DefaultSeparator))
	return nil
}

// AddMetadataField appends a single field to the metadata parameter.
func (p *Params) AddMetadataField(name string) { p.Add(MetadataParam, name) }

// SetSite sets the site parameter.
func (p *Params) SetSite(site string) { p.Set(SiteParam, site) }

// SetHeader sets a header parameter. Headers never reach the query string.
func (p *Params) SetHeader(name, value string) {
	p.init()
	p.headers.Set(name, value)
}

// Header returns the header parameter for name.
func (p *Params) Header(name string) (string, bool) {
	p.init()
	return p.headers.Get(name)
}

// Headers returns a copy of all header parameters.
func (p *Params) Headers() map[string]string {
	p.init()
	out := make(map[string]string, p.headers.Len())
	for pair := p.headers.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// EachHeader calls fn for every header parameter in insertion order.
func (p *Params) EachHeader(fn func(name, value string)) {
	p.init()
	for pair := p.headers.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// SetRequestID stamps a fresh random request id header and returns it.
func (p *Params) SetRequestID() string {
	id := uuid.NewString()
	p.SetHeader(RequestIDHeader, id)
	return id
}

// QueryString renders every non-null parameter as name=value, in first-set
// order, joined by '&'. Values go through the store's Encoder. A custom
// Encoder that fails has its value written raw and logged, so rendering
// always completes.
func (p *Params) QueryString() string {
	p.init()
	var b strings.Builder
	first := true
	for pair := p.params.Oldest(); pair != nil; pair = pair.Next() {
		v, ok := pair.Value.Get()
		if !ok {
			continue
		}
		if !first {
			b.WriteByte('&')
		}
		first = false

		enc, err := p.encode(v)
		if err != nil {
			log.Warn().Err(err).Str("param", pair.Key).Msg("cannot encode query parameter, using raw value")
			encodeFailuresTotal.Inc()
			enc = v
		}
		b.WriteString(pair.Key)
		b.WriteByte('=')
		b.WriteString(enc)
	}
	return b.String()
}
