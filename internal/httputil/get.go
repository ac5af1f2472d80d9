// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrStatus matches any *StatusError with errors.Is.
var ErrStatus = errors.New("unexpected HTTP status")

// StatusError reports a non-2xx response. Requests are never retried;
// the caller decides whether to re-run the whole operation.
type StatusError struct {
	// URL is the full request URL, query included.
	URL        string
	StatusCode int
}

// Error omits the query string, which carries the contact email.
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", redact(e.URL), e.StatusCode)
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	return u.String()
}

// Is reports whether target is ErrStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Get issues a GET request and returns the full response body. Any status
// outside 200-299 yields a *StatusError; the body is drained and closed
// before returning in every case.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
