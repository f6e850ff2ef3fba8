// Package upstream is the shared HTTP transport for the source APIs
package upstream

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "devfeed/internal/platform/errors"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"
	pnet "devfeed/internal/platform/net"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "devfeed"
	maxBody        = 4 << 20
)

// Options configures a Client for one source
type Options struct {
	// Source tags errors, logs and metrics: github, stackoverflow or blog
	Source    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Header is sent on every request, adapters put auth and accept headers here
	Header http.Header

	Metrics *metrics.Registry

	// HTTPClient overrides the default client, Timeout is ignored when set
	HTTPClient *http.Client
}

// Client issues GET requests against one source API and decodes JSON bodies
// it never retries, a failed call fails the caller
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with defaults for unset options
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Source(o.Source),
		now:  time.Now,
	}
}

// Source returns the source name the client is tagged with
func (c *Client) Source() string { return c.opts.Source }

// Do issues a GET for path with query and returns the response on 2xx
// non 2xx responses are drained and returned as source tagged errors
func (c *Client) Do(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.opts.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.WithSource(perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Source), c.opts.Source)
	}
	for k, vv := range c.opts.Header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		c.opts.Metrics.ObserveUpstream(c.opts.Source, 0, lat)
		c.log.Warn().Err(err).Str("path", path).Dur("latency", lat).Msg("upstream transport error")
		if cerr := ctx.Err(); cerr != nil {
			err = cerr
		}
		return nil, perr.FromTransport(err, c.opts.Source, c.opts.Source+" request failed")
	}

	c.opts.Metrics.ObserveUpstream(c.opts.Source, resp.StatusCode, lat)
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Str("request_id", reqID).
		Msg("upstream response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = drainAndClose(resp.Body)
	se := &StatusError{Source: c.opts.Source, Status: resp.StatusCode, Body: string(body)}
	return nil, perr.WrapStatus(se, resp.StatusCode, c.opts.Source, se.message())
}

// GetJSON issues a GET and decodes the 2xx body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.Do(ctx, path, query)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("upstream close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.FromTransport(err, c.opts.Source, c.opts.Source+" read body failed")
	}
	if err := sonic.Unmarshal(b, out); err != nil {
		return perr.WithSource(perr.Wrapf(err, perr.ErrorCodeUpstream, "%s returned malformed JSON", c.opts.Source), c.opts.Source)
	}
	return nil
}
