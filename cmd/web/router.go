package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"endpointmedia.co.za/web/internal/leads"
	mw "endpointmedia.co.za/web/internal/middleware"
	"endpointmedia.co.za/web/internal/observability"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
	"endpointmedia.co.za/web/internal/views"
	"endpointmedia.co.za/web/public"
)

const defaultRequestTimeout = 30 * time.Second

func newRouter(a *app) http.Handler {
	cfg := a.cfg
	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	var limiter *mw.KeyedLimiter
	if cfg.Leads.RatePerMinute > 0 {
		limiter = mw.NewKeyedLimiter(cfg.Leads.RatePerMinute, cfg.Leads.RateBurst, nil)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only a trusted load balancer may sit in front.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLogger(a.logger))
	r.Use(observability.TraceMiddleware(cfg.Observability.ProjectID))
	r.Use(observability.RequestLogger)
	r.Use(observability.Recovery)
	r.Use(mw.SecurityHeaders(cfg.Site.IsProduction()))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(timeout))
	r.Use(chimw.StripSlashes)
	r.Use(mw.HTMX)

	r.NotFound(a.notFound)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(subFS("assets"), cfg.Site.Dev)))
	r.Handle("/images/*", http.StripPrefix("/images", mw.AssetsWithCache(subFS("images"), cfg.Site.Dev)))
	r.Get("/favicon.ico", a.handleFavicon)

	r.Get("/sitemap.xml", a.handleSitemap)
	r.Get("/robots.txt", a.handleRobots)
	r.Get("/manifest.webmanifest", a.handleManifest)
	r.Get("/manifest.json", a.handleManifest)
	r.Get(seo.ServiceAreaKMLPath, a.handleServiceAreaKML)
	r.Get("/{key}.txt", a.handleIndexNowKey)
	r.Get("/blog/{slug}"+ogImageSuffix, a.handleBlogOGImage)

	// programmatic clients; no session or CSRF
	r.Route("/api", func(r chi.Router) {
		r.Use(mw.RateLimit(limiter))
		r.Use(mw.LimitBody(maxJSONBytes))
		r.Post("/contact", a.handleAPIContact)
		r.Post("/indexnow", a.handleAPIIndexNow)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.LimitBody(maxFormBytes))
		r.Use(mw.Session(mw.SessionOptions{SigningKey: cfg.Session.SigningKey, Secure: cfg.Session.Secure}))
		r.Use(mw.CSRF(cfg.Session.Secure))

		r.Get("/", a.handleHome)
		r.Get("/services", a.handleServices)
		r.Get(pricesPath, a.handleWebsiteDesignPrices)
		r.Get(views.CalculatorPath, a.handleCalculator)
		r.Get("/services/{slug}", a.handleService)
		r.Get("/locations", a.handleLocations)
		r.Get("/locations/{slug}", a.handleLocation)
		r.Get("/industries", a.handleIndustries)
		r.Get("/industries/{slug}", a.handleIndustry)
		r.Get("/case-studies", a.handleCaseStudies)
		r.Get("/case-studies/{slug}", a.handleCaseStudy)
		r.Get("/blog", a.handleBlog)
		r.Get("/blog/{slug}", a.handleBlogPost)
		r.Get("/pricing", a.handlePricing)
		r.Get("/process", a.handleProcess)
		r.Get(site.Founder.Path, a.handleAuthor)
		r.Get("/alberton-business-heritage", a.handleHeritage)
		r.Get("/december-special", a.handleSpecial)
		r.Get(views.CountdownPath, a.handleCountdown)
		r.Get("/contact", a.handleContact)

		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(limiter))
			r.Post("/contact", a.handleLeadForm(leads.KindContact))
			r.Post("/audit", a.handleLeadForm(leads.KindAudit))
			r.Post("/december-special/book", a.handleLeadForm(leads.KindBooking))
		})
	})

	return r
}

func subFS(dir string) fs.FS {
	sub, err := fs.Sub(public.FS, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
