// Package indexnow submits changed URLs to the IndexNow protocol so Bing and
// friends recrawl them quickly.
package indexnow

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"endpointmedia.co.za/web/internal/site"
)

const (
	// DefaultEndpoint is the shared IndexNow endpoint.
	DefaultEndpoint = "https://api.indexnow.org/indexnow"
	defaultTimeout  = 8 * time.Second
	maxURLs         = 10000
)

var (
	// ErrNoURLs is returned when nothing usable was submitted.
	ErrNoURLs = errors.New("indexnow: no urls")
	// ErrNotConfigured is returned when no key is set.
	ErrNotConfigured = errors.New("indexnow: key not configured")
)

// Options configures a Client.
type Options struct {
	Endpoint string
	Key      string
	// BaseURL is the canonical site URL; the key file lives at BaseURL/{key}.txt.
	BaseURL string
	// Host defaults to the BaseURL host.
	Host    string
	Timeout time.Duration
	HTTP    *http.Client
}

// Client posts URL batches to IndexNow.
type Client struct {
	endpoint string
	key      string
	baseURL  string
	host     string
	http     *http.Client
}

// Result reports how IndexNow answered.
type Result struct {
	OK     bool
	Status int
}

// NewClient constructs a Client.
func NewClient(opts Options) *Client {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	host := strings.TrimSpace(opts.Host)
	if host == "" {
		if u, err := url.Parse(baseURL); err == nil {
			host = u.Host
		}
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint: endpoint,
		key:      strings.TrimSpace(opts.Key),
		baseURL:  baseURL,
		host:     host,
		http:     httpClient,
	}
}

// Key returns the verification key served at /{key}.txt.
func (c *Client) Key() string { return c.key }

// KeyLocation is the absolute URL of the key file.
func (c *Client) KeyLocation() string { return site.URL(c.baseURL, "/"+c.key+".txt") }

type payload struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Submit notifies IndexNow about urls. Relative paths resolve against the base
// URL and URLs for other hosts are dropped.
func (c *Client) Submit(ctx context.Context, urls []string) (Result, error) {
	if c == nil || c.key == "" {
		return Result{}, ErrNotConfigured
	}
	list := c.normalize(urls)
	if len(list) == 0 {
		return Result{}, ErrNoURLs
	}

	body, err := json.Marshal(payload{
		Host:        c.host,
		Key:         c.key,
		KeyLocation: c.KeyLocation(),
		URLList:     list,
	})
	if err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("indexnow: submit: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return Result{
		OK:     resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted,
		Status: resp.StatusCode,
	}, nil
}

func (c *Client) normalize(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		abs := site.URL(c.baseURL, raw)
		u, err := url.Parse(abs)
		if err != nil || u.Host == "" || !strings.EqualFold(u.Host, c.host) {
			continue
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
		if len(out) == maxURLs {
			break
		}
	}
	return out
}

// ErrUnauthorized is returned by CheckBearer when the caller is not allowed to
// trigger a submission.
var ErrUnauthorized = errors.New("indexnow: unauthorized")

// CheckBearer validates an Authorization header against secret. An empty
// secret rejects every caller.
func CheckBearer(authorization, secret string) error {
	if secret == "" {
		return ErrUnauthorized
	}
	token, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
