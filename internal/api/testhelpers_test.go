package api

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// stubTransport answers every request with body, or fails with err when set.
// Outgoing requests are kept for inspection.
type stubTransport struct {
	err  error
	body string

	mu   sync.Mutex
	sent []*http.Request
}

func (s *stubTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.sent = append(s.sent, r)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    r,
	}, nil
}

func (s *stubTransport) requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.sent...)
}
