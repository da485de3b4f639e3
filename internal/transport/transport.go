// Package transport performs the single blocking HTTP GET the catalog
// client is built on.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

const userAgent = "walmart-recommend/1.0"

type Transport struct {
	httpClient *http.Client
}

// New returns a Transport. A zero timeout leaves requests unbounded.
func New(timeout time.Duration) *Transport {
	return &Transport{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get fetches rawURL and returns the body as text. Any status outside 2xx is
// a *domain.TransportError; there is no retry.
func (t *Transport) Get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	safeURL := redact(rawURL)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = safeURL
		}
		return "", &domain.TransportError{URL: safeURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &domain.TransportError{
			URL:        safeURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.TransportError{URL: safeURL, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	return string(body), nil
}

// redact masks credentials carried in the query string so URLs can be
// logged and returned in errors.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if !q.Has("apiKey") {
		return rawURL
	}
	q.Set("apiKey", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
