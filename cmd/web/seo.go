package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
	"endpointmedia.co.za/web/public"
)

type staticPage struct {
	path     string
	freq     string
	priority float64
}

// staticPages are the routes that do not come from the catalog or articles.
var staticPages = []staticPage{
	{"/", seo.Weekly, 1.0},
	{"/services", seo.Weekly, 0.9},
	{pricesPath, seo.Monthly, 0.9},
	{"/pricing", seo.Monthly, 0.9},
	{"/process", seo.Monthly, 0.7},
	{"/locations", seo.Monthly, 0.8},
	{"/industries", seo.Monthly, 0.8},
	{"/case-studies", seo.Weekly, 0.8},
	{"/blog", seo.Weekly, 0.8},
	{"/contact", seo.Yearly, 0.7},
	{"/december-special", seo.Daily, 0.7},
	{site.Founder.Path, seo.Yearly, 0.5},
	{"/alberton-business-heritage", seo.Yearly, 0.5},
}

func (a *app) sitemapEntries(r *http.Request) ([]seo.SitemapEntry, error) {
	ctx := r.Context()
	posts, err := a.content.Articles(ctx, cms.KindBlog)
	if err != nil {
		return nil, err
	}
	cases, err := a.content.Articles(ctx, cms.KindCaseStudy)
	if err != nil {
		return nil, err
	}

	today := a.now().In(time.UTC)
	entries := make([]seo.SitemapEntry, 0, len(staticPages)+len(a.catalog.Services)+len(a.catalog.Locations)+len(a.catalog.Industries)+len(posts)+len(cases))
	for _, p := range staticPages {
		entries = append(entries, seo.SitemapEntry{Path: p.path, LastMod: today, ChangeFreq: p.freq, Priority: p.priority})
	}
	for _, s := range a.catalog.Services {
		entries = append(entries, seo.SitemapEntry{Path: s.Path(), LastMod: today, ChangeFreq: seo.Monthly, Priority: 0.8})
	}
	for _, l := range a.catalog.Locations {
		entries = append(entries, seo.SitemapEntry{Path: l.Path(), LastMod: today, ChangeFreq: seo.Monthly, Priority: 0.8})
	}
	for _, i := range a.catalog.Industries {
		entries = append(entries, seo.SitemapEntry{Path: i.Path(), LastMod: today, ChangeFreq: seo.Monthly, Priority: 0.7})
	}
	for _, list := range [][]cms.Article{posts, cases} {
		for _, art := range list {
			entries = append(entries, seo.SitemapEntry{Path: art.Path(), LastMod: art.Modified(), ChangeFreq: seo.Monthly, Priority: 0.6})
		}
	}
	return entries, nil
}

func (a *app) handleSitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := a.sitemapEntries(r)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	body, err := seo.Sitemap(a.base(), entries)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(body)
}

func (a *app) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(seo.Robots(a.base(), a.cfg.Site.IsProduction())))
}

func (a *app) handleManifest(w http.ResponseWriter, r *http.Request) {
	body, err := seo.Manifest()
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/manifest+json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(body)
}

func (a *app) handleServiceAreaKML(w http.ResponseWriter, r *http.Request) {
	marks := make([]seo.Placemark, 0, len(a.catalog.Locations))
	for _, l := range a.catalog.Locations {
		marks = append(marks, seo.Placemark{
			Name:        site.Name + " " + l.Name,
			Description: l.Summary,
			URL:         site.URL(a.base(), l.Path()),
			Latitude:    l.Latitude,
			Longitude:   l.Longitude,
		})
	}
	body, err := seo.ServiceAreaKML(site.Name+" Service Area", marks)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(body)
}

// handleIndexNowKey serves /{key}.txt for the configured key only.
func (a *app) handleIndexNowKey(w http.ResponseWriter, r *http.Request) {
	key := a.indexnowKey()
	if key == "" || chi.URLParam(r, "key") != key {
		a.notFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(key))
}

func (a *app) indexnowKey() string {
	if a.indexnow == nil {
		return ""
	}
	return a.indexnow.Key()
}

func (a *app) handleFavicon(w http.ResponseWriter, r *http.Request) {
	body, err := fs.ReadFile(public.FS, "favicon.ico")
	if err != nil {
		a.notFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/x-icon")
	w.Header().Set("Cache-Control", "public, max-age=604800")
	_, _ = w.Write(body)
}
