package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencommercesearch/opencommercesearch/client/request"
)

type captured struct {
	mu      sync.Mutex
	uris    []string
	headers []http.Header
}

func (c *captured) record(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uris = append(c.uris, r.URL.RequestURI())
	c.headers = append(c.headers, r.Header.Clone())
}

func (c *captured) last() (string, http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uris[len(c.uris)-1], c.headers[len(c.headers)-1]
}

func newTestServer(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	rec := &captured{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/products", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		_, _ = w.Write([]byte(`{"metadata":{"found":1,"productSummary":{"p1":{"color":{"families":["Red"]},"brand":{"buckets":{"Nike":2}}}}},"products":[{"id":"p1"}]}`))
	})
	mux.HandleFunc("/v1/products/p1", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		_, _ = w.Write([]byte(`{"products":[{"id":"p1","title":"Jacket"}]}`))
	})
	mux.HandleFunc("/v1/brands/88", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		_, _ = w.Write([]byte(`{"brand":{"id":"88","name":"Nike"}}`))
	})
	mux.HandleFunc("/v1/brands/down", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClient_SearchAppliesDefaults(t *testing.T) {
	srv, rec := newTestServer(t)
	c, err := New(srv.URL, WithSite("bcs"))
	require.NoError(t, err)

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("search", "ok"))

	req := request.NewSearchRequest("jacket")
	req.AddField("id")
	resp, err := c.Search(context.Background(), req)
	require.NoError(t, err)

	uri, hdr := rec.last()
	assert.Equal(t, "/v1/products?q=jacket&fields=id&site=bcs", uri)
	assert.NotEmpty(t, hdr.Get(request.RequestIDHeader))
	assert.Equal(t, before+1, testutil.ToFloat64(requestsTotal.WithLabelValues("search", "ok")))

	families, ok := resp.Summary("p1").ColorFamilies().Get()
	require.True(t, ok)
	assert.Equal(t, []string{"Red"}, families)
	assert.Equal(t, map[string]int{"Nike": 2}, resp.Summary("p1").Buckets("brand").OrElse(nil))
}

func TestClient_ReusedRequestGetsFreshRequestID(t *testing.T) {
	srv, rec := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	req := request.NewSearchRequest("jacket")
	_, err = c.Search(context.Background(), req)
	require.NoError(t, err)
	_, first := rec.last()

	_, err = c.Search(context.Background(), req)
	require.NoError(t, err)
	_, second := rec.last()

	require.NotEmpty(t, first.Get(request.RequestIDHeader))
	require.NotEmpty(t, second.Get(request.RequestIDHeader))
	assert.NotEqual(t, first.Get(request.RequestIDHeader), second.Get(request.RequestIDHeader))
	_, stamped := req.Header(request.RequestIDHeader)
	assert.False(t, stamped, "request id is not written into the caller's request")
}

func TestClient_RequestSiteAndIDWin(t *testing.T) {
	srv, rec := newTestServer(t)
	c, err := New(srv.URL, WithSite("bcs"))
	require.NoError(t, err)

	req := request.NewSearchRequest("jacket")
	req.SetSite("tgg")
	req.SetHeader(request.RequestIDHeader, "fixed-id")
	_, err = c.Search(context.Background(), req)
	require.NoError(t, err)

	uri, hdr := rec.last()
	assert.Equal(t, "/v1/products?q=jacket&site=tgg", uri)
	assert.Equal(t, "fixed-id", hdr.Get(request.RequestIDHeader))
}

func TestClient_GetProductAndBrand(t *testing.T) {
	srv, _ := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	pr, err := c.GetProduct(context.Background(), request.NewProductRequest("p1"))
	require.NoError(t, err)
	assert.Equal(t, "Jacket", pr.Products[0].Title)

	b, err := c.GetBrand(context.Background(), request.NewBrandRequest("88"))
	require.NoError(t, err)
	assert.Equal(t, "Nike", b.Name)

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("get_brand", "503"))
	_, err = c.GetBrand(context.Background(), request.NewBrandRequest("down"))
	require.Error(t, err)
	assert.True(t, IsRecoverable(err))
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	assert.Equal(t, before+1, testutil.ToFloat64(requestsTotal.WithLabelValues("get_brand", "503")))

	_, err = c.GetBrand(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "ok", outcomeOf(nil))
	assert.Equal(t, "error", outcomeOf(errors.New("x")))
}
