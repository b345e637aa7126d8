// Package registryapi fetches published stacks from the remote registry.
// It is an external collaborator of the restore engine: the engine itself
// only ever sees a parsed manifest.
package registryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Commands-com/claude-stacks/internal/stack"
)

const maxResponseSize = 10 << 20 // 10 MB

// DefaultBaseURL is the production registry endpoint.
const DefaultBaseURL = "https://backend.commands.com"

// Option configures a Client.
type Option func(*Client)

// Client fetches stack manifests from the registry.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a new registry client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      NewCache(5 * time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the registry base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithToken sets the auth token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// BaseURL returns the registry endpoint this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchStack fetches and parses the manifest published as org/name.
func (c *Client) FetchStack(ctx context.Context, org, name string) (*stack.Manifest, error) {
	ref := org + "/" + name
	if cached, ok := c.cache.Get(ref); ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/v1/stacks/%s/%s", c.baseURL, org, name)
	data, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching stack %s: %w", ref, err)
	}

	var m stack.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing stack %s: %w", ref, err)
	}

	c.cache.Set(ref, &m)
	return &m, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("received HTML response from %s (expected JSON); check the registry URL", url)
	}

	return data, nil
}
