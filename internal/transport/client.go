// Package transport is the HTTP adapter between the admin client and the
// flash-buy API. It owns the base URL, the session cookie jar, request
// encoding, and the classification of every failed response into an
// apierr.Error. It performs no retries: retry policy for reads lives in
// the query cache, and mutations are never retried.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/g-villarinho/flash-buy-admin/internal/apierr"
	"github.com/g-villarinho/flash-buy-admin/internal/metrics"
)

const maxResponseBody = 8 << 20

// Config configures the API client.
type Config struct {
	// BaseURL is the API root, including the version prefix.
	BaseURL string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// RequestsPerSecond caps outgoing throughput. Zero disables the cap.
	RequestsPerSecond float64
	// HTTPClient overrides the underlying client, mainly for tests.
	// When set, Timeout is ignored.
	HTTPClient *http.Client
	// Logger receives one debug line per request.
	Logger zerolog.Logger
}

// Client issues authenticated requests against the flash-buy API.
// The session cookie handed out by /login and /verify-code is held in the
// client's cookie jar and travels with every subsequent request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// New creates an API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("transport: BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter:    limiter,
		log:        cfg.Logger,
	}, nil
}

// Get issues a GET and decodes the JSON response into out.
// Query parameters with empty values are omitted from the request so the
// server does not over-filter on empty strings.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post issues a POST with a JSON body and decodes the response into out.
// Pass nil for out to discard the response body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, reader, "application/json", out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) error {
	reader, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, reader, "application/json", nil)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostForm issues a POST with a multipart body and decodes the response
// into out. Used by the billboard and product writes, which carry files.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// PutForm issues a PUT with a multipart body.
func (c *Client) PutForm(ctx context.Context, path string, form *Form) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, contentType, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if encoded := encodeQuery(query); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, 0, time.Since(start))
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return apierr.Network(err)
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return apierr.Network(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode >= 400 {
		return apierr.FromStatus(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// encodeQuery drops parameters whose value is empty. Filters that are not
// set must not reach the server at all.
func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	clean := url.Values{}
	for key, values := range query {
		for _, v := range values {
			if v != "" {
				clean.Add(key, v)
			}
		}
	}
	return clean.Encode()
}
