package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/opencommercesearch/opencommercesearch/client/internal/errors"
	"github.com/opencommercesearch/opencommercesearch/client/request"
)

// maxErrorBody bounds how much of a failed response is kept for debugging.
const maxErrorBody = 4 << 10

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// get issues req as a GET against baseURL, forwards its header parameters as
// HTTP headers and decodes a 200 JSON body into out. Each call without an
// X-Request-Id header parameter sends a fresh id; req is not modified.
func get(ctx context.Context, httpClient HTTPClient, baseURL, operation string, req request.Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := baseURL + request.Render(req)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	req.Parameters().EachHeader(func(name, value string) {
		httpReq.Header.Set(name, value)
	})
	if httpReq.Header.Get(request.RequestIDHeader) == "" {
		httpReq.Header.Set(request.RequestIDHeader, uuid.NewString())
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.NewHTTPError(operation, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}
