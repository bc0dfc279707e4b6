// Package gateway mediates between the UI layer and the data sources: a
// primary HTTP backend, static JSON fallback feeds, and locally persisted
// override patches. Read paths never fail: every list operation resolves
// to a (possibly empty) slice. Mutations hit the primary endpoint only;
// hard mutations (create/update) propagate failures, soft ones (delete,
// toggle, assign, review) swallow them, with assign/review/toggle falling
// back to a local override write.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client performs JSON calls against the primary backend.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// NewClient trims a trailing slash off base, matching how the admin page
// treats its configurable API base.
func NewClient(base string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// do issues one request. Bodies are JSON-encoded; responses with a JSON
// content type are returned as-is for the caller to decode, anything else
// is returned as opaque text bytes. A non-2xx status is an error.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s failed: %d", method, path, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
