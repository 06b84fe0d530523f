// Package seo builds page metadata, schema.org JSON-LD payloads and the crawler
// documents (sitemap, robots, manifest, KML).
package seo

import (
	"strings"

	"endpointmedia.co.za/web/internal/site"
)

const (
	robotsIndex   = "index, follow"
	robotsNoIndex = "noindex, nofollow"
)

// MetaInput is what a page knows about itself.
type MetaInput struct {
	Title       string
	Description string
	Path        string
	Keywords    []string
	Image       string
	NoIndex     bool
	// Type is the OpenGraph type; empty means "website".
	Type string
}

// Alternate is one hreflang link.
type Alternate struct {
	HrefLang string
	Href     string
}

// Image is a social preview image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Locale      string
	Type        string
	Image       Image
}

// Twitter holds twitter:* properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Meta is everything the document head needs.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	Alternates  []Alternate
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// Build derives the head metadata for a page. The canonical never carries a
// trailing slash and every alternate points at it.
func Build(base string, in MetaInput) Meta {
	canonical := site.URL(base, in.Path)

	ogType := strings.TrimSpace(in.Type)
	if ogType == "" {
		ogType = "website"
	}

	img := Image{
		URL:    site.URL(base, site.OGImagePath),
		Width:  site.OGImageW,
		Height: site.OGImageH,
		Alt:    in.Title,
	}
	if strings.TrimSpace(in.Image) != "" {
		img.URL = site.URL(base, in.Image)
	}

	robots := robotsIndex
	if in.NoIndex {
		robots = robotsNoIndex
	}

	return Meta{
		Title:       in.Title,
		Description: in.Description,
		Canonical:   canonical,
		Keywords:    in.Keywords,
		Alternates: []Alternate{
			{HrefLang: site.Language, Href: canonical},
			{HrefLang: "en", Href: canonical},
			{HrefLang: "x-default", Href: canonical},
		},
		Robots: robots,
		OG: OpenGraph{
			Title:       in.Title,
			Description: in.Description,
			URL:         canonical,
			SiteName:    site.Name,
			Locale:      site.Locale,
			Type:        ogType,
			Image:       img,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       in.Title,
			Description: in.Description,
			Image:       img.URL,
		},
	}
}

// KeywordList joins keywords for the meta keywords tag.
func (m Meta) KeywordList() string { return strings.Join(m.Keywords, ", ") }
