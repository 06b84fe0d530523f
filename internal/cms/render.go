package cms

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const wordsPerMinute = 200

// Heading is one table of contents entry.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Rendered is sanitized article HTML plus what was learned while walking it.
type Rendered struct {
	HTML           string
	TOC            []Heading
	Words          int
	ReadingMinutes int
}

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	articlePolicy = newArticlePolicy()
)

func newArticlePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").Globally()
	policy.AllowAttrs("loading").OnElements("img")
	// own links stay followable; only off-site links get nofollow
	policy.RequireNoFollowOnLinks(false)
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// Render converts an article body to safe HTML. Bodies with format "html" skip
// markdown and are only sanitized.
func Render(body, format string) (Rendered, error) {
	var raw string
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html":
		raw = body
	case "", "markdown", "md":
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(body), &buf); err != nil {
			return Rendered{}, fmt.Errorf("cms: render markdown: %w", err)
		}
		raw = buf.String()
	default:
		return Rendered{}, fmt.Errorf("cms: unknown body format %q", format)
	}

	safe := strings.TrimSpace(articlePolicy.Sanitize(raw))
	out := Rendered{HTML: safe}
	if safe == "" {
		return out, nil
	}

	doc, err := html.Parse(strings.NewReader(safe))
	if err != nil {
		return Rendered{}, fmt.Errorf("cms: parse rendered html: %w", err)
	}
	walkArticle(doc, &out)
	if out.Words > 0 {
		out.ReadingMinutes = int(math.Ceil(float64(out.Words) / wordsPerMinute))
	}
	return out, nil
}

func walkArticle(n *html.Node, out *Rendered) {
	switch n.Type {
	case html.TextNode:
		out.Words += len(strings.Fields(n.Data))
		return
	case html.ElementNode:
		if n.DataAtom == atom.H2 || n.DataAtom == atom.H3 {
			if id := attr(n, "id"); id != "" {
				level := 2
				if n.DataAtom == atom.H3 {
					level = 3
				}
				out.TOC = append(out.TOC, Heading{ID: id, Text: strings.Join(strings.Fields(textContent(n)), " "), Level: level})
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkArticle(c, out)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
