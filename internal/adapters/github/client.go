// Package github reads a user's repositories and their language breakdowns
// from the GitHub REST API
package github

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"devfeed/internal/adapters/upstream"
	"devfeed/internal/platform/metrics"
)

// SourceName tags errors, logs, metrics and cache keys
const SourceName = "github"

const baseURLDefault = "https://api.github.com"

// ClientOptions configures the REST client
type ClientOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Metrics *metrics.Registry

	HTTPClient *http.Client
}

// Client is a thin GitHub REST v3 client
type Client struct {
	up *upstream.Client
}

// NewClient creates a Client, the token is optional but unauthenticated quota is tiny
func NewClient(o ClientOptions) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")
	if o.Token != "" {
		h.Set("Authorization", "token "+o.Token)
	}
	return &Client{up: upstream.NewClient(upstream.Options{
		Source:     SourceName,
		BaseURL:    o.BaseURL,
		UserAgent:  "devfeed-github",
		Timeout:    o.Timeout,
		Header:     h,
		Metrics:    o.Metrics,
		HTTPClient: o.HTTPClient,
	})}
}

// UserRepos lists the public repositories of user, first 100 only
func (c *Client) UserRepos(ctx context.Context, user string) ([]repoDoc, error) {
	var out []repoDoc
	q := url.Values{"per_page": {"100"}}
	if err := c.up.GetJSON(ctx, "/users/"+url.PathEscape(user)+"/repos", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoLanguages returns bytes of code per language for owner/repo
func (c *Client) RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	var out map[string]int64
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/languages"
	if err := c.up.GetJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
