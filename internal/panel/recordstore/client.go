// Package recordstore is the HTTP client for the admin API.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const apiKeyHeader = "X-Api-Key"

// Client sends one request per call. It never retries, batches or caches.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
	log    *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authorized returns a copy of the client that attaches the bearer token
// from ts to every request.
func (c *Client) Authorized(ts oauth2.TokenSource) *Client {
	cp := *c
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.http
	hc.Transport = &oauth2.Transport{Source: ts, Base: base}
	cp.http = &hc
	return &cp
}

// Send performs one call against /api/admin/{resource}. verb names the
// operation in the returned *Failure ("fetch", "save", ...). body is sent
// as JSON when non-nil; out receives the decoded reply when non-nil.
func (c *Client) Send(ctx context.Context, verb, method, resource string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Failure{Verb: verb, Resource: resource, Err: err}
		}
		payload = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, resource, query, payload)
	if err != nil {
		return &Failure{Verb: verb, Resource: resource, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, verb, resource, out)
}

func (c *Client) newRequest(ctx context.Context, method, resource string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.base + "/api/admin/" + strings.TrimLeft(resource, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	return req, nil
}

func (c *Client) do(req *http.Request, verb, resource string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", req.Method), zap.String("resource", resource), zap.Error(err))
		return &Failure{Verb: verb, Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("method", req.Method),
		zap.String("resource", resource),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var reply struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&reply)
		return &Failure{Verb: verb, Resource: resource, Status: resp.StatusCode, Detail: reply.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Failure{Verb: verb, Resource: resource, Status: resp.StatusCode, Err: err}
	}
	return nil
}
