package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	mw "endpointmedia.co.za/web/internal/middleware"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/seo"
)

// PageData is the view model every page hands to the shared layout.
type PageData struct {
	Meta seo.Meta
	// SiteJSONLD and JSONLD are already escaped for a script element.
	SiteJSONLD []string
	JSONLD     []string
	Analytics  Analytics

	Path        string
	Nav         []nav.RenderedItem
	Contact     nav.RenderedItem
	Breadcrumbs []nav.Crumb
	CSRFToken   string
	HTMX        bool
	Environment string
	Production  bool
	Year        int

	FooterServices  []nav.Link
	FooterLocations []nav.Link
}

// PageInput describes one page to Builder.Page.
type PageInput struct {
	Meta    seo.MetaInput
	Schemas []map[string]any
	// CrumbLabel overrides the label of the last breadcrumb.
	CrumbLabel string
	// Crumbs replaces the trail derived from the path, for pages nested under
	// segments that have no page of their own.
	Crumbs []nav.Crumb
	// NoBreadcrumbs hides the trail and skips BreadcrumbList markup.
	NoBreadcrumbs bool
}

// Builder assembles PageData for a request.
type Builder struct {
	BaseURL     string
	Environment string
	Production  bool
	Analytics   Analytics
	// Labels resolves slugs in breadcrumb trails.
	Labels map[string]string
	Now    func() time.Time

	FooterServices  []nav.Link
	FooterLocations []nav.Link

	siteJSONLD []string
}

// NewBuilder precomputes the site-wide structured data.
func NewBuilder(b Builder) (Builder, error) {
	if b.Now == nil {
		b.Now = time.Now
	}
	site, err := encodeAll([]map[string]any{
		seo.Organization(b.BaseURL),
		seo.LocalBusiness(b.BaseURL),
		seo.WebSite(b.BaseURL),
		seo.Person(b.BaseURL),
	})
	if err != nil {
		return Builder{}, err
	}
	b.siteJSONLD = site
	return b, nil
}

// Page builds the view model for r.
func (b Builder) Page(r *http.Request, in PageInput) (PageData, error) {
	path := in.Meta.Path
	if path == "" {
		path = r.URL.Path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	in.Meta.Path = path
	if !b.Production {
		in.Meta.NoIndex = true
	}

	schemas := in.Schemas
	var crumbs []nav.Crumb
	if !in.NoBreadcrumbs && path != "/" {
		crumbs = in.Crumbs
		if len(crumbs) == 0 {
			crumbs = nav.Breadcrumbs(path, b.Labels)
		}
		if in.CrumbLabel != "" {
			crumbs[len(crumbs)-1].Label = in.CrumbLabel
		}
		schemas = append(schemas, seo.BreadcrumbList(nav.BreadcrumbItems(b.BaseURL, crumbs)))
	}
	payloads, err := encodeAll(schemas)
	if err != nil {
		return PageData{}, err
	}

	now := b.Now
	if now == nil {
		now = time.Now
	}
	return PageData{
		Meta:        seo.Build(b.BaseURL, in.Meta),
		SiteJSONLD:  b.siteJSONLD,
		JSONLD:      payloads,
		Analytics:   b.Analytics,
		Path:        path,
		Nav:         nav.Build(path),
		Contact:     nav.RenderedItem{Href: nav.Contact.Path, Label: nav.Contact.Label, Active: path == nav.Contact.Path},
		Breadcrumbs: crumbs,
		CSRFToken:   mw.CSRFToken(r.Context()),
		HTMX:        mw.IsHTMX(r.Context()),
		Environment: b.Environment,
		Production:  b.Production,
		Year:        now().Year(),

		FooterServices:  b.FooterServices,
		FooterLocations: b.FooterLocations,
	}, nil
}

func encodeAll(schemas []map[string]any) ([]string, error) {
	out := make([]string, 0, len(schemas))
	for _, s := range schemas {
		if s == nil {
			continue
		}
		raw, err := seo.SecureJSON(s)
		if err != nil {
			return nil, fmt.Errorf("handlers: encode json-ld: %w", err)
		}
		out = append(out, raw)
	}
	return out, nil
}
