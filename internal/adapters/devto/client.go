// Package devto reads a user's published articles from the dev.to (Forem) API
package devto

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"devfeed/internal/adapters/upstream"
	"devfeed/internal/platform/metrics"
)

// SourceName tags errors, logs, metrics and cache keys
const SourceName = "blog"

const baseURLDefault = "https://dev.to/api"

// ClientOptions configures the API client
type ClientOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Metrics *metrics.Registry

	HTTPClient *http.Client
}

// Client is a thin dev.to articles client
type Client struct {
	up *upstream.Client
}

// NewClient creates a Client, the api key is optional for public articles
func NewClient(o ClientOptions) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	h := http.Header{}
	if o.APIKey != "" {
		h.Set("api-key", o.APIKey)
	}
	return &Client{up: upstream.NewClient(upstream.Options{
		Source:     SourceName,
		BaseURL:    o.BaseURL,
		UserAgent:  "devfeed-devto",
		Timeout:    o.Timeout,
		Header:     h,
		Metrics:    o.Metrics,
		HTTPClient: o.HTTPClient,
	})}
}

// Articles lists published articles of username, optionally by tag
func (c *Client) Articles(ctx context.Context, username, tag string) ([]articleDoc, error) {
	q := url.Values{"username": {username}}
	if tag != "" {
		q.Set("tag", tag)
	}
	var out []articleDoc
	if err := c.up.GetJSON(ctx, "/articles", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Article fetches one article by id
func (c *Client) Article(ctx context.Context, id string) (articleDoc, error) {
	var out articleDoc
	err := c.up.GetJSON(ctx, "/articles/"+url.PathEscape(id), nil, &out)
	return out, err
}
