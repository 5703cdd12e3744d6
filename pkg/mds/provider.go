package mds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jusunglee/mds-go/internal/models"
	"github.com/jusunglee/mds-go/internal/paging"
)

// ProviderClient implements the Client interface against one MDS provider
// Immutable after construction, so concurrent calls from independent
// callers are safe
type ProviderClient struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	maxPages   int
}

// New creates a new provider client from config
// Fails with ConfigurationError if the base URL is missing or not absolute
func New(cfg Config) (*ProviderClient, error) {
	if cfg.BaseURL == "" {
		return nil, &ConfigurationError{Reason: "base URL is required"}
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("base URL %q is not an absolute URL", cfg.BaseURL)}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = DefaultMaxPages
	}

	// Extra headers first, Authorization last so it can't be overridden
	headers := make(http.Header)
	for key, value := range cfg.Headers {
		headers.Set(key, value)
	}
	if cfg.Token != "" {
		headers.Set("Authorization", "Bearer "+cfg.Token)
	}

	return &ProviderClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    headers,
		httpClient: &http.Client{Timeout: timeout},
		maxPages:   maxPages,
	}, nil
}

func (c *ProviderClient) GetTrips(ctx context.Context, q Query) ([]Record, error) {
	return c.getResource(ctx, ResourceTrips, q)
}

func (c *ProviderClient) GetStatusChanges(ctx context.Context, q Query) ([]Record, error) {
	return c.getResource(ctx, ResourceStatusChanges, q)
}

func (c *ProviderClient) GetEvents(ctx context.Context, q Query) ([]Record, error) {
	return c.getResource(ctx, ResourceEvents, q)
}

// getResource builds the first page URL for a resource and drains the
// pagination chain. Subsequent page URLs come fully formed from the
// provider's links, so filters are only serialized once.
func (c *ProviderClient) getResource(ctx context.Context, resource string, q Query) ([]models.Record, error) {
	firstURL := c.baseURL + "/" + resource
	if params := q.values(); len(params) > 0 {
		firstURL += "?" + params.Encode()
	}

	pager := paging.New(c, firstURL, c.maxPages, q.FirstPageOnly)
	return paging.Collect(ctx, pager, resource)
}

// FetchPage implements paging.PageFetcher. It performs one GET with the
// configured headers and per-request timeout.
func (c *ProviderClient) FetchPage(ctx context.Context, pageURL string) (*models.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", pageURL, err)
	}
	req.Header = c.headers.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// transport errors (DNS, refused, timeout) propagate unchanged
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", pageURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: body, URL: pageURL}
	}

	var page models.Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &MalformedResponseError{Reason: "body is not valid JSON", Err: err}
	}

	return &page, nil
}
