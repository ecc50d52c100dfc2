package webapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/vk/formbridge/internal/ctxlog"
	"github.com/vk/formbridge/internal/operation"
)

// defaultTimeout bounds a single HTTP exchange when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// Client talks to one platform instance. It implements operation.Endpoint
// and storage.Store.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ operation.Endpoint = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying *http.Client, e.g. to inject a
// transport with custom TLS or authentication.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a client for the platform at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid endpoint url %q", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Execute implements operation.Endpoint: POST the request envelope to the
// operations endpoint and hand the status and body back untouched. Status
// interpretation belongs to the invoker.
func (c *Client) Execute(ctx context.Context, req *operation.Request) (*operation.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode operation request: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("POSTing operation request.", "url", c.baseURL+"/api/operations", "operation", req.Name)

	status, respBody, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/operations", body)
	if err != nil {
		return nil, err
	}
	return &operation.Response{Status: status, Body: respBody}, nil
}

// Retrieve implements storage.Store over the data endpoint. query is
// appended verbatim as the URL's query string when non-empty.
func (c *Client) Retrieve(ctx context.Context, entityType, id, query string) (map[string]any, error) {
	target := c.recordURL(entityType, id)
	if query != "" {
		target += "?" + query
	}

	status, body, err := c.do(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("retrieve %s(%s): endpoint returned status %d: %s", entityType, id, status, truncate(body))
	}

	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("retrieve %s(%s): failed to decode record: %w", entityType, id, err)
	}
	return record, nil
}

// Update implements storage.Store: PATCH the payload onto the record.
func (c *Client) Update(ctx context.Context, entityType, id string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("update %s(%s): failed to encode payload: %w", entityType, id, err)
	}

	status, respBody, err := c.do(ctx, http.MethodPatch, c.recordURL(entityType, id), body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("update %s(%s): endpoint returned status %d: %s", entityType, id, status, truncate(respBody))
	}
	return nil
}

func (c *Client) recordURL(entityType, id string) string {
	return c.baseURL + "/api/data/" + url.PathEscape(entityType) + "(" + url.PathEscape(id) + ")"
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// truncate keeps error messages readable when an endpoint returns a large
// body.
func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
