package seo

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"endpointmedia.co.za/web/internal/site"
)

// Change frequencies accepted by sitemap consumers.
const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

// SitemapEntry is one page in sitemap.xml.
type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders sitemap.xml. Entries resolving to the same URL keep the first.
func Sitemap(base string, entries []SitemapEntry) ([]byte, error) {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		loc := site.URL(base, e.Path)
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		u := sitemapURL{Loc: loc, ChangeFreq: e.ChangeFreq}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		if e.Priority > 0 {
			u.Priority = fmt.Sprintf("%.2f", e.Priority)
		}
		set.URLs = append(set.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("seo: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

var (
	crawlers   = []string{"*", "Googlebot", "Bingbot"}
	disallowed = []string{"/api/", "/admin/", "/private/"}
)

// Robots renders robots.txt. Anything but production blocks every crawler.
func Robots(base string, production bool) string {
	var b strings.Builder
	if !production {
		b.WriteString("User-agent: *\nDisallow: /\n")
		return b.String()
	}
	for _, agent := range crawlers {
		fmt.Fprintf(&b, "User-agent: %s\nAllow: /\n", agent)
		for _, d := range disallowed {
			fmt.Fprintf(&b, "Disallow: %s\n", d)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Sitemap: %s\n", site.URL(base, "/sitemap.xml"))
	fmt.Fprintf(&b, "Sitemap: %s\n", site.URL(base, ServiceAreaKMLPath))
	return b.String()
}

// ManifestIcon is one web app manifest icon.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// WebManifest is the installable app description.
type WebManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// Manifest renders manifest.webmanifest.
func Manifest() ([]byte, error) {
	m := WebManifest{
		Name:            site.Name,
		ShortName:       "Endpoint",
		Description:     site.Tagline,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#111827",
		ThemeColor:      site.ThemeColor,
		Icons: []ManifestIcon{
			{Src: "/favicon.ico", Sizes: "any", Type: "image/x-icon"},
			{Src: site.LogoPath, Sizes: "512x512", Type: "image/png"},
		},
	}
	return json.MarshalIndent(m, "", "  ")
}

// ServiceAreaKMLPath is where the service area map is published.
const ServiceAreaKMLPath = "/alberton-service-area.kml"

// Placemark is one pin on the service area map.
type Placemark struct {
	Name        string
	Description string
	URL         string
	Latitude    float64
	Longitude   float64
}

type kmlDoc struct {
	XMLName  xml.Name `xml:"kml"`
	XMLNS    string   `xml:"xmlns,attr"`
	Document kmlBody  `xml:"Document"`
}

type kmlBody struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description,omitempty"`
	Placemarks  []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string   `xml:"name"`
	Description string   `xml:"description,omitempty"`
	Point       kmlPoint `xml:"Point"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

// ServiceAreaKML renders a KML document with one placemark per location.
// KML coordinates are longitude first.
func ServiceAreaKML(name string, placemarks []Placemark) ([]byte, error) {
	doc := kmlDoc{
		XMLNS: "http://www.opengis.net/kml/2.2",
		Document: kmlBody{
			Name:        name,
			Description: site.Name + " service area",
		},
	}
	for _, p := range placemarks {
		desc := p.Description
		if p.URL != "" {
			desc = strings.TrimSpace(desc + " " + p.URL)
		}
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			Name:        p.Name,
			Description: desc,
			Point:       kmlPoint{Coordinates: fmt.Sprintf("%.4f,%.4f,0", p.Longitude, p.Latitude)},
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("seo: encode kml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
