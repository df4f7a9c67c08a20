package isdayoff

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transport performs a single GET and returns the full response body
type Transport interface {
	Get(ctx context.Context, url string, headers map[string]string) (string, error)
}

// HTTPTransport implements Transport over net/http
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport wraps httpClient; nil uses a client with no timeout override
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{httpClient: httpClient}
}

// Get issues one GET request. Every failure is a *TransportError.
func (t *HTTPTransport) Get(ctx context.Context, url string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("read response: %w", err)}
	}

	// isdayoff.ru answers 400 "100" for a bad date, 404 "101" for missing data
	// and 500 "199" on service errors.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return string(body), nil
}
