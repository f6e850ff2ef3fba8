// Package stackexchange reads a user's Stack Overflow questions from the Stack Exchange API
package stackexchange

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"devfeed/internal/adapters/upstream"
	"devfeed/internal/platform/metrics"
)

// SourceName tags errors, logs, metrics and cache keys
const SourceName = "stackoverflow"

const (
	baseURLDefault = "https://api.stackexchange.com/2.3"
	siteDefault    = "stackoverflow"

	// questionFields is the saved API filter that includes the fields reduceQuestion reads
	questionFields = "!-*jbN-o8P3E5"
)

// ClientOptions configures the API client
type ClientOptions struct {
	BaseURL string
	Site    string
	Key     string
	Timeout time.Duration
	Metrics *metrics.Registry

	HTTPClient *http.Client
}

// Client is a thin Stack Exchange 2.3 client
type Client struct {
	up   *upstream.Client
	site string
	key  string
}

// NewClient creates a Client, the key only raises quota
func NewClient(o ClientOptions) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Site == "" {
		o.Site = siteDefault
	}
	return &Client{
		up: upstream.NewClient(upstream.Options{
			Source:     SourceName,
			BaseURL:    o.BaseURL,
			UserAgent:  "devfeed-stackexchange",
			Timeout:    o.Timeout,
			Metrics:    o.Metrics,
			HTTPClient: o.HTTPClient,
		}),
		site: o.Site,
		key:  o.Key,
	}
}

func (c *Client) params() url.Values {
	q := url.Values{}
	q.Set("site", c.site)
	q.Set("filter", questionFields)
	if c.key != "" {
		q.Set("key", c.key)
	}
	return q
}

// UserQuestions lists questions asked by userID, optionally tagged
func (c *Client) UserQuestions(ctx context.Context, userID, tagged string) ([]questionDoc, error) {
	q := c.params()
	if tagged != "" {
		q.Set("tagged", tagged)
	}
	var env envelope
	if err := c.up.GetJSON(ctx, "/users/"+url.PathEscape(userID)+"/questions", q, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// Question fetches one question, an unknown id yields an empty slice
func (c *Client) Question(ctx context.Context, id string) ([]questionDoc, error) {
	var env envelope
	if err := c.up.GetJSON(ctx, "/questions/"+url.PathEscape(id), c.params(), &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}
