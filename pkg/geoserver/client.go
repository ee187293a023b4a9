// Package geoserver is a client for the GeoServer REST configuration API,
// the GeoWebCache REST API, the GeoServer ACL API and the OGC service
// endpoints (WMS/WFS) of a GeoServer instance.
//
// Methods return the response content, the HTTP status code and an error.
// The error is only non-nil when the request could not be built or executed;
// GeoServer-side rejections (4xx/5xx) are reported through the status code
// and body so callers can pass them through unmodified.
package geoserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/camptocamp/geoserver-mcp/pkg/config"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
	contentTypeSLD  = "application/vnd.ogc.sld+xml"
)

// Client talks to a single GeoServer instance. It is safe for concurrent use
// and is intended to be constructed once and shared for the process lifetime.
type Client struct {
	baseURL  string
	user     string
	password string
	client   *http.Client
}

// NewClient builds a client from the resolved configuration. The base URL is
// validated here so that a malformed endpoint fails startup rather than the
// first tool call.
func NewClient(cfg config.Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.URL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GeoServer URL %q: %w", cfg.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid GeoServer URL %q: missing scheme or host", cfg.URL)
	}

	return &Client{
		baseURL:  baseURL,
		user:     cfg.User,
		password: cfg.Password,
		client:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// BaseURL returns the configured GeoServer base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// User returns the configured GeoServer username.
func (c *Client) User() string {
	return c.user
}

// do executes one request against GeoServer and returns the response body and
// status code. Every request carries basic auth credentials.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (string, int, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return string(buf), resp.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (string, int, error) {
	return c.do(ctx, http.MethodGet, path, query, "", nil)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) (string, int, error) {
	return c.do(ctx, http.MethodDelete, path, query, "", nil)
}

func (c *Client) postJSON(ctx context.Context, path string, query url.Values, payload any) (string, int, error) {
	return c.sendJSON(ctx, http.MethodPost, path, query, payload)
}

func (c *Client) putJSON(ctx context.Context, path string, query url.Values, payload any) (string, int, error) {
	return c.sendJSON(ctx, http.MethodPut, path, query, payload)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, payload any) (string, int, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return c.do(ctx, method, path, query, contentTypeJSON, bytes.NewReader(buf))
}

// isSuccess reports whether an HTTP status code is in the 2xx range.
func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// messageOr returns the response body when GeoServer sent one, or the given
// fallback message for the empty bodies most write operations produce.
func messageOr(body, fallback string) string {
	if strings.TrimSpace(body) != "" {
		return body
	}
	return fallback
}
