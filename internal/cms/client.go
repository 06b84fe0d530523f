package cms

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

const defaultCacheTTL = 5 * time.Minute

// Client reads articles from an optional remote CMS and falls back to the
// embedded markdown tree. Rendered articles are cached in memory.
type Client struct {
	baseURL string
	http    *http.Client
	fsys    fs.FS
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	article Article
	expires time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the remote CMS HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithCacheTTL sets how long rendered articles stay cached. Zero disables
// caching, which dev mode uses so edits show on reload.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		if d < 0 {
			d = 0
		}
		c.ttl = d
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient constructs a Client. baseURL may be empty, in which case only the
// embedded content in fsys is served.
func NewClient(baseURL string, fsys fs.FS, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		fsys:    fsys,
		ttl:     defaultCacheTTL,
		now:     time.Now,
		cache:   map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) cached(key string) (Article, bool) {
	if c.ttl == 0 {
		return Article{}, false
	}
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return Article{}, false
	}
	return entry.article.clone(), true
}

func (c *Client) store(key string, a Article) {
	if c.ttl == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{article: a.clone(), expires: c.now().Add(c.ttl)}
}

// Purge drops every cached article.
func (c *Client) Purge() {
	c.mu.Lock()
	c.cache = map[string]cacheEntry{}
	c.mu.Unlock()
}
