package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"endpointmedia.co.za/web/internal/observability"
)

// Kind selects an article collection.
type Kind string

const (
	KindBlog      Kind = "blog"
	KindCaseStudy Kind = "case-studies"
)

const defaultFormat = "markdown"

// Valid reports whether k names a known collection.
func (k Kind) Valid() bool { return k == KindBlog || k == KindCaseStudy }

// Article is a blog post or case study with its rendered body.
type Article struct {
	Kind      Kind
	Slug      string
	Title     string
	Summary   string
	Body      string
	Format    string
	Date      time.Time
	UpdatedAt time.Time
	Category  string
	Keywords  []string
	Image     string
	Related   []string

	// case studies only
	Client   string
	Industry string
	Region   string
	Results  []Stat
	Services []string

	SEO ArticleSEO

	Rendered
}

// ArticleSEO holds optional metadata overrides.
type ArticleSEO struct {
	Title       string
	Description string
}

// Path is the article URL path.
func (a Article) Path() string { return "/" + string(a.Kind) + "/" + a.Slug }

// MetaTitle prefers the SEO override.
func (a Article) MetaTitle() string { return firstNonEmpty(a.SEO.Title, a.Title) }

// MetaDescription prefers the SEO override.
func (a Article) MetaDescription() string { return firstNonEmpty(a.SEO.Description, a.Summary) }

// Modified is the last-modified date, falling back to the publish date.
func (a Article) Modified() time.Time {
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt
	}
	return a.Date
}

func (a Article) clone() Article {
	cp := a
	cp.Keywords = append([]string(nil), a.Keywords...)
	cp.Related = append([]string(nil), a.Related...)
	cp.Results = append([]Stat(nil), a.Results...)
	cp.Services = append([]string(nil), a.Services...)
	cp.TOC = append([]Heading(nil), a.TOC...)
	return cp
}

type articleFrontMatter struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Format    string   `yaml:"format"`
	Date      string   `yaml:"date"`
	UpdatedAt string   `yaml:"updated_at"`
	Category  string   `yaml:"category"`
	Keywords  []string `yaml:"keywords"`
	Image     string   `yaml:"image"`
	Related   []string `yaml:"related"`
	Client    string   `yaml:"client"`
	Industry  string   `yaml:"industry"`
	Region    string   `yaml:"region"`
	Results   []Stat   `yaml:"results"`
	Services  []string `yaml:"services"`
	SEO       struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

// Article fetches one article, consulting the cache, then the remote CMS when
// configured, then the embedded markdown.
func (c *Client) Article(ctx context.Context, kind Kind, slug string) (Article, error) {
	if !kind.Valid() {
		return Article{}, ErrNotFound
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Article{}, ErrNotFound
	}

	key := string(kind) + "|" + slug
	if a, ok := c.cached(key); ok {
		return a, nil
	}

	a, err := c.fetchArticle(ctx, kind, slug)
	if err != nil {
		return Article{}, err
	}
	c.store(key, a)
	return a.clone(), nil
}

func (c *Client) fetchArticle(ctx context.Context, kind Kind, slug string) (Article, error) {
	if c.baseURL != "" {
		a, err := c.fetchArticleRemote(ctx, kind, slug)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, ErrNotFound) {
			observability.FromContext(ctx).Warn("cms remote fetch failed; using embedded content",
				zap.String("kind", string(kind)),
				zap.String("slug", slug),
				zap.Error(err),
			)
		}
	}
	return readArticle(c.fsys, kind, slug)
}

func (c *Client) fetchArticleRemote(ctx context.Context, kind Kind, slug string) (Article, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", string(kind), slug)
	if err != nil {
		return Article{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Article{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Article{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Article{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Article{}, fmt.Errorf("cms: remote status %d", resp.StatusCode)
	}

	var payload struct {
		Title     string    `json:"title"`
		Summary   string    `json:"summary"`
		Body      string    `json:"body"`
		Format    string    `json:"format"`
		Date      time.Time `json:"date"`
		UpdatedAt time.Time `json:"updated_at"`
		Category  string    `json:"category"`
		Keywords  []string  `json:"keywords"`
		Image     string    `json:"image"`
		Related   []string  `json:"related"`
		Client    string    `json:"client"`
		Industry  string    `json:"industry"`
		Region    string    `json:"region"`
		Results   []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"results"`
		Services []string `json:"services"`
		SEO      struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"seo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Article{}, fmt.Errorf("cms: decode remote %s/%s: %w", kind, slug, err)
	}
	if strings.TrimSpace(payload.Body) == "" {
		return Article{}, fmt.Errorf("cms: empty body for %s/%s", kind, slug)
	}

	a := Article{
		Kind:      kind,
		Slug:      slug,
		Title:     firstNonEmpty(payload.Title, prettifySlug(slug)),
		Summary:   payload.Summary,
		Body:      payload.Body,
		Format:    firstNonEmpty(payload.Format, defaultFormat),
		Date:      payload.Date,
		UpdatedAt: payload.UpdatedAt,
		Category:  payload.Category,
		Keywords:  payload.Keywords,
		Image:     payload.Image,
		Related:   payload.Related,
		Client:    payload.Client,
		Industry:  payload.Industry,
		Region:    payload.Region,
		Services:  payload.Services,
		SEO:       ArticleSEO{Title: payload.SEO.Title, Description: payload.SEO.Description},
	}
	for _, r := range payload.Results {
		a.Results = append(a.Results, Stat{Value: r.Value, Label: r.Label})
	}
	if a.Rendered, err = Render(a.Body, a.Format); err != nil {
		return Article{}, err
	}
	return a, nil
}

func readArticle(fsys fs.FS, kind Kind, slug string) (Article, error) {
	if fsys == nil {
		return Article{}, ErrNotFound
	}
	file := path.Join(string(kind), slug+".md")
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	return parseArticle(kind, slug, string(data))
}

func parseArticle(kind Kind, slug, data string) (Article, error) {
	fm, body := splitFrontMatter(data)
	front := articleFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Article{}, fmt.Errorf("cms: parse front matter %s/%s: %w", kind, slug, err)
		}
	}
	a := Article{
		Kind:      kind,
		Slug:      slug,
		Title:     strings.TrimSpace(front.Title),
		Summary:   strings.TrimSpace(front.Summary),
		Body:      body,
		Format:    firstNonEmpty(strings.TrimSpace(front.Format), defaultFormat),
		Date:      parseContentDate(front.Date),
		UpdatedAt: parseContentDate(front.UpdatedAt),
		Category:  strings.TrimSpace(front.Category),
		Keywords:  front.Keywords,
		Image:     strings.TrimSpace(front.Image),
		Related:   front.Related,
		Client:    strings.TrimSpace(front.Client),
		Industry:  strings.TrimSpace(front.Industry),
		Region:    strings.TrimSpace(front.Region),
		Results:   front.Results,
		Services:  front.Services,
		SEO: ArticleSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if a.Title == "" {
		// fall back to slug prettified
		a.Title = prettifySlug(slug)
	}
	var err error
	if a.Rendered, err = Render(a.Body, a.Format); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Articles lists the embedded articles of a kind: blog posts newest first,
// case studies by slug.
func (c *Client) Articles(ctx context.Context, kind Kind) ([]Article, error) {
	if !kind.Valid() {
		return nil, ErrNotFound
	}
	if c.fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(c.fsys, string(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cms: list %s: %w", kind, err)
	}
	out := make([]Article, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		if a, ok := c.cached(string(kind) + "|" + slug); ok {
			out = append(out, a)
			continue
		}
		a, err := readArticle(c.fsys, kind, slug)
		if err != nil {
			return nil, err
		}
		c.store(string(kind)+"|"+slug, a)
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if kind == KindBlog && !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// FilterArticles keeps articles whose title, summary, category or keywords
// contain every word of q. An empty query keeps everything.
func FilterArticles(list []Article, q string) []Article {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return list
	}
	out := make([]Article, 0, len(list))
	for _, a := range list {
		hay := strings.ToLower(strings.Join(append([]string{a.Title, a.Summary, a.Category}, a.Keywords...), " "))
		match := true
		for _, t := range terms {
			if !strings.Contains(hay, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, a)
		}
	}
	return out
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
