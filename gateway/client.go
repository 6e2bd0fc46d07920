// Package gateway provides the HTTP client for the Skyway AI Gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skyway-ai/skyway-go/chat"
)

const (
	// DefaultBaseURL is the hosted gateway endpoint.
	DefaultBaseURL = "https://api.skyway.ai/v1"

	// DefaultTimeout bounds each HTTP round trip (connect + read).
	DefaultTimeout = 60 * time.Second
)

// Client calls the Skyway AI Gateway. It is stateless apart from its
// configuration and safe for concurrent use.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	headers    http.Header
	httpClient *http.Client
}

// WithAPIKey sets the gateway API key. Sent as x-skyway-api-key.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-api-key", key)
	}
}

// WithVirtualKey routes through a stored provider key. Sent as
// x-skyway-virtual-key.
func WithVirtualKey(key string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-virtual-key", key)
	}
}

// WithProvider names the upstream provider for direct auth. Sent as
// x-skyway-provider.
func WithProvider(provider string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-provider", provider)
	}
}

// WithProviderAuth passes the provider token. Sent as
// Authorization: Bearer.
func WithProviderAuth(token string) Option {
	return func(c *clientConfig) {
		c.headers.Set("Authorization", "Bearer "+token)
	}
}

// WithConfig selects a stored gateway config. Sent as x-skyway-config.
func WithConfig(configID string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-config", configID)
	}
}

// WithCustomHost overrides the upstream host. Sent as
// x-skyway-custom-host.
func WithCustomHost(host string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-custom-host", host)
	}
}

// WithTraceID tags requests for observability. Sent as x-skyway-trace-id.
func WithTraceID(traceID string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-trace-id", traceID)
	}
}

// WithSpanID tags requests for observability. Sent as x-skyway-span-id.
func WithSpanID(spanID string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-span-id", spanID)
	}
}

// WithMetadata attaches logging metadata as JSON. Sent as
// x-skyway-metadata.
func WithMetadata(metadataJSON string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-metadata", metadataJSON)
	}
}

// WithCacheNamespace scopes gateway-side caching. Sent as
// x-skyway-cache-namespace.
func WithCacheNamespace(ns string) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-cache-namespace", ns)
	}
}

// WithCacheForceRefresh bypasses the gateway cache. Sent as
// x-skyway-cache-force-refresh.
func WithCacheForceRefresh(force bool) Option {
	return func(c *clientConfig) {
		c.headers.Set("x-skyway-cache-force-refresh", strconv.FormatBool(force))
	}
}

// WithHeader sets an arbitrary header on every request.
func WithHeader(name, value string) Option {
	return func(c *clientConfig) {
		c.headers.Set(name, value)
	}
}

// WithBaseURL overrides the gateway endpoint, for self-hosted gateways.
// A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout bounds the HTTP round trip. Ignored when WithHTTPClient is
// also given.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a custom HTTP client (pooling, TLS, proxies).
// The caller owns its timeout configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// New creates a gateway client. The API key is required; it falls back
// to the SKYWAY_API_KEY environment variable when no WithAPIKey option
// is given.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.headers.Get("x-skyway-api-key") == "" {
		if key := os.Getenv("SKYWAY_API_KEY"); key != "" {
			cfg.headers.Set("x-skyway-api-key", key)
		}
	}
	if cfg.headers.Get("x-skyway-api-key") == "" {
		return nil, ErrAPIKeyRequired
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    cfg.baseURL,
		headers:    cfg.headers,
		httpClient: httpClient,
	}, nil
}

// CreateChatCompletion sends a chat completion request and parses the
// response. The entire response body is buffered before parsing; there
// is no streaming. Errors are returned to the caller, never retried or
// logged.
func (c *Client) CreateChatCompletion(ctx context.Context, req *chat.Request) (*chat.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for name, values := range c.headers {
		for _, v := range values {
			httpReq.Header.Set(name, v)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, parseAPIError(httpResp.StatusCode, respBody)
	}

	var resp chat.Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return &resp, nil
}
