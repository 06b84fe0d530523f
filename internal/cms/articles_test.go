package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endpointmedia.co.za/web/content"
)

func TestArticlesEmbeddedBlogNewestFirst(t *testing.T) {
	c := NewClient("", content.FS)

	posts, err := c.Articles(context.Background(), KindBlog)
	require.NoError(t, err)
	require.Len(t, posts, 5)

	assert.Equal(t, "how-much-does-website-cost-south-africa-2025", posts[0].Slug)
	assert.Equal(t, "the-schema-vacuum-technical-seo-advantage", posts[4].Slug)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].Date.After(posts[i-1].Date), "posts out of order at %d", i)
	}
}

func TestArticlesEmbeddedCaseStudiesBySlug(t *testing.T) {
	c := NewClient("", content.FS)

	studies, err := c.Articles(context.Background(), KindCaseStudy)
	require.NoError(t, err)
	require.Len(t, studies, 6)
	assert.Equal(t, "alberton-battery-mart", studies[0].Slug)
	assert.Equal(t, "sakana-no-ichi", studies[5].Slug)
	assert.Equal(t, "Alberton Battery Mart", studies[0].Client)
	assert.NotEmpty(t, studies[0].Results)
}

func TestArticleEmbeddedFrontMatter(t *testing.T) {
	c := NewClient("", content.FS)

	a, err := c.Article(context.Background(), KindBlog, "the-true-cost-of-a-website-in-johannesburg")
	require.NoError(t, err)

	assert.Equal(t, "The True Cost of a Website in Johannesburg: 2025 Price Guide", a.Title)
	assert.Equal(t, "Pricing & ROI", a.Category)
	assert.Equal(t, time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC), a.Date)
	assert.Equal(t, a.Date, a.Modified())
	assert.Equal(t, "/blog/the-true-cost-of-a-website-in-johannesburg", a.Path())
	assert.NotEmpty(t, a.TOC)
	assert.Equal(t, "what-influences-johannesburg-website-prices", a.TOC[0].ID)
	assert.Positive(t, a.ReadingMinutes)

	schema, err := c.Article(context.Background(), KindBlog, "the-schema-vacuum-technical-seo-advantage")
	require.NoError(t, err)
	assert.Equal(t, "The Schema Vacuum: Technical SEO Johannesburg Competitors Miss", schema.MetaTitle())
	assert.Equal(t, schema.Summary, schema.MetaDescription())
}

func TestArticleRejectsTraversalAndUnknown(t *testing.T) {
	c := NewClient("", content.FS)
	ctx := context.Background()

	for _, slug := range []string{"", "../catalog/services", `..\x`, "a/b", "does-not-exist"} {
		_, err := c.Article(ctx, KindBlog, slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
	_, err := c.Article(ctx, Kind("guides"), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleCacheHonoursTTL(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/post.md": {Data: []byte("---\ntitle: First\n---\nBody")},
	}
	now := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)
	c := NewClient("", fsys, WithCacheTTL(time.Minute), WithClock(func() time.Time { return now }))
	ctx := context.Background()

	a, err := c.Article(ctx, KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "First", a.Title)

	fsys["blog/post.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Second\n---\nBody")}

	a, err = c.Article(ctx, KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "First", a.Title)

	now = now.Add(2 * time.Minute)
	a, err = c.Article(ctx, KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "Second", a.Title)

	fsys["blog/post.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Third\n---\nBody")}
	c.Purge()
	a, err = c.Article(ctx, KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "Third", a.Title)
}

func TestArticleCacheDisabled(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/post.md": {Data: []byte("no front matter here")},
	}
	c := NewClient("", fsys, WithCacheTTL(0))

	a, err := c.Article(context.Background(), KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "Post", a.Title)

	fsys["blog/post.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Changed\n---\n")}
	a, err = c.Article(context.Background(), KindBlog, "post")
	require.NoError(t, err)
	assert.Equal(t, "Changed", a.Title)
}

func TestArticleRemoteThenFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/blog/remote-post":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"title":  "From the CMS",
				"body":   "<h2 id=\"intro\">Intro</h2><p>Remote body</p><script>x()</script>",
				"format": "html",
				"date":   "2025-11-20T00:00:00Z",
			})
		case "/content/blog/local":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fsys := fstest.MapFS{
		"blog/local.md": {Data: []byte("---\ntitle: Local\n---\nLocal body")},
	}
	c := NewClient(srv.URL+"/", fsys, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	a, err := c.Article(ctx, KindBlog, "remote-post")
	require.NoError(t, err)
	assert.Equal(t, "From the CMS", a.Title)
	assert.NotContains(t, a.HTML, "<script")
	require.Len(t, a.TOC, 1)
	assert.Equal(t, "intro", a.TOC[0].ID)

	a, err = c.Article(ctx, KindBlog, "local")
	require.NoError(t, err)
	assert.Equal(t, "Local", a.Title)

	_, err = c.Article(ctx, KindBlog, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilterArticles(t *testing.T) {
	list := []Article{
		{Slug: "a", Title: "Wix vs WordPress", Category: "Business Strategy"},
		{Slug: "b", Title: "Schema", Keywords: []string{"structured data seo"}},
		{Slug: "c", Title: "Pricing guide", Summary: "What a website costs"},
	}

	assert.Len(t, FilterArticles(list, ""), 3)
	assert.Equal(t, "a", FilterArticles(list, "WIX")[0].Slug)
	assert.Equal(t, "b", FilterArticles(list, "structured seo")[0].Slug)
	assert.Equal(t, "c", FilterArticles(list, "website costs")[0].Slug)
	assert.Empty(t, FilterArticles(list, "wix schema"))
}

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "sandton", sanitizeSlug(" /Sandton/ "))
	assert.Empty(t, sanitizeSlug("../etc/passwd"))
	assert.Empty(t, sanitizeSlug(`a\b`))
	assert.Empty(t, sanitizeSlug("a/b"))
}
