// ABOUTME: DIP API client for the drucksache list and drucksache-text detail endpoints
// ABOUTME: Builds authenticated requests and memoises detail responses per run

package dip

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"dip-digest/core/domain"
	"dip-digest/core/interfaces"
)

const (
	listPath    = "drucksache"
	detailPath  = "drucksache-text/"
	cachePrefix = "drucksache-text:"
)

// Settings configures the API client
type Settings struct {
	// BaseURL is the API root, e.g. https://search.dip.bundestag.de/api/v1/
	BaseURL string

	// APIKey is sent as "Authorization: ApiKey <key>"
	APIKey string

	// UserAgent identifies the bot
	UserAgent string

	// DocumentType is sent as f.drucksachetyp when non-empty.
	// The server may ignore it; callers filter again.
	DocumentType string
}

// Client talks to the DIP API
type Client struct {
	settings Settings
	deps     interfaces.Dependencies
	logger   interfaces.Logger
}

// NewClient creates a new DIP API client
func NewClient(settings Settings, deps interfaces.Dependencies) *Client {
	if settings.BaseURL != "" && !strings.HasSuffix(settings.BaseURL, "/") {
		settings.BaseURL += "/"
	}
	return &Client{
		settings: settings,
		deps:     deps,
		logger:   interfaces.LoggerOrNop(deps.Logger),
	}
}

// Headers returns the headers sent with every request
func (c *Client) Headers() map[string]string {
	return map[string]string{
		"Authorization": "ApiKey " + c.settings.APIKey,
		"Accept":        "application/json",
		"User-Agent":    c.settings.UserAgent,
	}
}

// ListURL builds the list endpoint URL for the window and cursor
func (c *Client) ListURL(window domain.DateWindow, cursor string) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("f.datum.start", window.StartString())
	params.Set("f.datum.end", window.EndString())
	if c.settings.DocumentType != "" {
		params.Set("f.drucksachetyp", c.settings.DocumentType)
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	return c.settings.BaseURL + listPath + "?" + params.Encode()
}

// DetailURL builds the drucksache-text URL for a document
func (c *Client) DetailURL(id domain.DocumentID) string {
	return c.settings.BaseURL + detailPath + url.PathEscape(id.String()) + "?format=json"
}

// ListPage fetches one page of the list endpoint
func (c *Client) ListPage(ctx context.Context, window domain.DateWindow, cursor string) (*domain.ListPage, error) {
	return c.ListPageURL(ctx, c.ListURL(window, cursor))
}

// ListPageURL fetches a list page from an absolute URL such as links.next
func (c *Client) ListPageURL(ctx context.Context, pageURL string) (*domain.ListPage, error) {
	if c.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var page domain.ListPage
	if err := c.deps.HTTPClient.GetJSON(ctx, pageURL, c.Headers(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// TextDetail fetches the detail payload of a document, memoised by id
func (c *Client) TextDetail(ctx context.Context, id domain.DocumentID) (*domain.TextDetail, error) {
	if id == "" {
		return nil, errors.New("document id cannot be empty")
	}

	if cached, ok := c.cachedDetail(ctx, id); ok {
		c.logger.Debug("Detail served from cache", map[string]interface{}{"id": id.String()})
		return cached, nil
	}

	if c.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var detail domain.TextDetail
	if err := c.deps.HTTPClient.GetJSON(ctx, c.DetailURL(id), c.Headers(), &detail); err != nil {
		return nil, err
	}

	// Cache the detail (ignore cache errors)
	c.cacheDetail(ctx, id, &detail)

	return &detail, nil
}

func (c *Client) cachedDetail(ctx context.Context, id domain.DocumentID) (*domain.TextDetail, bool) {
	if c.deps.Cache == nil {
		return nil, false
	}
	data, err := c.deps.Cache.Get(ctx, cachePrefix+id.String())
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var detail domain.TextDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

func (c *Client) cacheDetail(ctx context.Context, id domain.DocumentID, detail *domain.TextDetail) {
	if c.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	// Zero TTL keeps the entry for the lifetime of the cache, i.e. one run
	if err := c.deps.Cache.Set(ctx, cachePrefix+id.String(), data, 0); err != nil {
		c.logger.Debug("Failed to cache detail", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
	}
}
