package main

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/config"
	"endpointmedia.co.za/web/internal/countdown"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/indexnow"
	"endpointmedia.co.za/web/internal/leads"
	"endpointmedia.co.za/web/internal/observability"
	"endpointmedia.co.za/web/internal/ogimage"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
	"endpointmedia.co.za/web/internal/views"
)

type appDeps struct {
	Config   config.Config
	Logger   *zap.Logger
	Catalog  *cms.Catalog
	Content  *cms.Client
	Leads    *leads.Service
	IndexNow *indexnow.Client
	OGImages *ogimage.Renderer
	Clock    func() time.Time
}

// app holds everything the handlers share.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	catalog  *cms.Catalog
	content  *cms.Client
	leads    *leads.Service
	indexnow *indexnow.Client
	og       *ogimage.Renderer
	pages    handlers.Builder
	special  countdown.Clock
	now      func() time.Time
}

func newApp(deps appDeps) (*app, error) {
	if deps.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if deps.Content == nil {
		return nil, errors.New("web: content client is required")
	}
	if deps.Leads == nil {
		return nil, errors.New("web: lead service is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	og := deps.OGImages
	if og == nil {
		var err error
		if og, err = ogimage.New(); err != nil {
			return nil, err
		}
	}

	services, locations := handlers.CatalogLinks(deps.Catalog)
	builder, err := handlers.NewBuilder(handlers.Builder{
		BaseURL:         deps.Config.Site.BaseURL,
		Environment:     deps.Config.Site.Environment,
		Production:      deps.Config.Site.IsProduction(),
		Analytics:       handlers.NewAnalytics(deps.Config.Analytics),
		Labels:          deps.Catalog.Labels(),
		Now:             now,
		FooterServices:  services,
		FooterLocations: locations,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      deps.Config,
		logger:   logger,
		catalog:  deps.Catalog,
		content:  deps.Content,
		leads:    deps.Leads,
		indexnow: deps.IndexNow,
		og:       og,
		pages:    builder,
		special:  countdown.New(deps.Config.Special.EndsAt, now),
		now:      now,
	}, nil
}

func (a *app) base() string { return a.cfg.Site.BaseURL }

// render buffers n so that a rendering failure can still become a 500.
func (a *app) render(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// page builds the view model or answers with an error page.
func (a *app) page(w http.ResponseWriter, r *http.Request, in handlers.PageInput) (handlers.PageData, bool) {
	p, err := a.pages.Page(r, in)
	if err != nil {
		a.serverError(w, r, err)
		return handlers.PageData{}, false
	}
	return p, true
}

func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	p, err := a.pages.Page(r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Page Not Found | " + site.Name,
			Description: "The page you're looking for doesn't exist or has moved.",
			NoIndex:     true,
		},
		NoBreadcrumbs: true,
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}
	a.render(w, r, http.StatusNotFound, views.NotFoundPage(p))
}

func (a *app) serverError(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("request failed", zap.Error(err))
	p, perr := a.pages.Page(r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Something went wrong | " + site.Name,
			Description: "An unexpected error occurred.",
			NoIndex:     true,
		},
		NoBreadcrumbs: true,
	})
	if perr != nil || p.HTMX {
		a.render(w, r, http.StatusInternalServerError, views.ErrorFragment("Something went wrong. Please try again."))
		return
	}
	a.render(w, r, http.StatusInternalServerError, views.ErrorPage(p))
}

// lookupFailed answers 404 for unknown slugs and 500 for anything else.
func (a *app) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cms.ErrNotFound) {
		a.notFound(w, r)
		return
	}
	a.serverError(w, r, err)
}
