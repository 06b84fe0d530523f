package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"endpointmedia.co.za/web/internal/calculator"
	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
	"endpointmedia.co.za/web/internal/views"
)

const (
	pricesPath    = "/services/website-design-prices"
	ogImageSuffix = "/opengraph-image"
)

func (a *app) handleHome(w http.ResponseWriter, r *http.Request) {
	cases, err := a.content.Articles(r.Context(), cms.KindCaseStudy)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Web Design Johannesburg | High-Performance Websites & Local SEO | " + site.Name,
			Description: "Johannesburg web design for service businesses. Fast, mobile-first websites engineered for local SEO and lead generation. Get a free growth audit.",
			Path:        "/",
			Keywords:    []string{"web design johannesburg", "website design johannesburg", "local seo johannesburg", "small business website south africa"},
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.HomePage(p, handlers.BuildHomeData(a.catalog, cases), views.FormState{}))
}

func (a *app) handleServices(w http.ResponseWriter, r *http.Request) {
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Web Design & SEO Services Johannesburg | " + site.Name,
			Description: "Website design, redesign, e-commerce, local SEO and technical SEO services for Johannesburg businesses. Engineered for speed, rankings and leads.",
			Keywords:    []string{"web design services johannesburg", "seo services johannesburg", "website redesign johannesburg"},
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.ServicesHubPage(p, a.catalog.Services))
}

func (a *app) handleService(w http.ResponseWriter, r *http.Request) {
	s, err := a.catalog.Service(chi.URLParam(r, "slug"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{Title: s.Title, Description: s.Description, Path: s.Path(), Keywords: s.Keywords},
		Schemas: []map[string]any{
			seo.Service(a.base(), seo.ServiceInput{
				Path:        s.Path(),
				Name:        s.Name,
				Description: s.Description,
				ServiceType: s.ServiceType,
				Audience:    s.Audience,
				Price:       s.Price,
			}),
			seo.FAQPage(a.base(), s.Path(), s.FAQs),
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.ServicePage(p, s))
}

func (a *app) handleWebsiteDesignPrices(w http.ResponseWriter, r *http.Request) {
	res := calculator.Compute(calculator.ParseInputs(r.URL.Query()))
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Website Design Prices Johannesburg | Per-Page Pricing Is Dead | " + site.Name,
			Description: "Why per-page website pricing is dead. Compare a R15,000 template site with a R35,000 performance build using our ROI calculator.",
			Path:        pricesPath,
			Keywords:    []string{"website design prices johannesburg", "website cost south africa", "web design roi calculator"},
		},
		Schemas: []map[string]any{
			seo.Service(a.base(), seo.ServiceInput{
				Path:        pricesPath,
				Name:        "Website Design Johannesburg",
				Description: "Performance website builds priced by return on investment rather than page count.",
				ServiceType: "Web Design",
			}),
			seo.OfferCatalog(a.base(), pricesPath, "Website Design Packages", a.catalog.Pricing.Tiers),
		},
		CrumbLabel: "Website Design Prices",
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.WebsiteDesignPricesPage(p, a.catalog.Pricing, res))
}

func (a *app) handleCalculator(w http.ResponseWriter, r *http.Request) {
	res := calculator.Compute(calculator.ParseInputs(r.URL.Query()))
	w.Header().Set("Cache-Control", "no-store")
	a.render(w, r, http.StatusOK, views.CalculatorResults(res))
}

func (a *app) handleLocations(w http.ResponseWriter, r *http.Request) {
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Web Design Across Johannesburg & Ekurhuleni | Service Areas | " + site.Name,
			Description: "Local web design and SEO for businesses in Sandton, Randburg, Midrand, Alberton, Alrode and across Johannesburg.",
			Keywords:    []string{"web design sandton", "web design alberton", "web design randburg"},
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.LocationsPage(p, a.catalog.Locations))
}

func (a *app) handleLocation(w http.ResponseWriter, r *http.Request) {
	l, err := a.catalog.Location(chi.URLParam(r, "slug"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{Title: l.Title, Description: l.Description, Path: l.Path(), Keywords: l.Keywords},
		Schemas: []map[string]any{
			seo.LocationBusiness(a.base(), seo.LocationInput{
				Path:          l.Path(),
				Name:          site.Name + " " + l.Name,
				Description:   l.Description,
				StreetAddress: l.StreetAddress,
				Latitude:      l.Latitude,
				Longitude:     l.Longitude,
			}),
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.LocationPage(p, l))
}

func (a *app) handleIndustries(w http.ResponseWriter, r *http.Request) {
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Industries We Serve | Web Design for Professional Firms | " + site.Name,
			Description: "Specialist websites for law firms, real estate, financial services, medical practices and manufacturers in Johannesburg.",
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.IndustriesPage(p, a.catalog.Industries))
}

func (a *app) handleIndustry(w http.ResponseWriter, r *http.Request) {
	i, err := a.catalog.Industry(chi.URLParam(r, "slug"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{Title: i.Title, Description: i.Description, Path: i.Path(), Keywords: i.Keywords},
		Schemas: []map[string]any{
			seo.Service(a.base(), seo.ServiceInput{
				Path:        i.Path(),
				Name:        i.ServiceType,
				Description: i.Description,
				ServiceType: i.ServiceType,
				Audience:    i.Audience,
			}),
			seo.FAQPage(a.base(), i.Path(), i.FAQs),
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.IndustryPage(p, i))
}

func (a *app) handleCaseStudies(w http.ResponseWriter, r *http.Request) {
	cases, err := a.content.Articles(r.Context(), cms.KindCaseStudy)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Case Studies | Johannesburg Web Design Results | " + site.Name,
			Description: "Real results for Johannesburg and Alberton businesses: faster websites, higher rankings and more enquiries.",
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.CaseStudiesPage(p, cases))
}

func (a *app) handleCaseStudy(w http.ResponseWriter, r *http.Request) {
	a.article(w, r, cms.KindCaseStudy, "Article")
}

func (a *app) handleBlog(w http.ResponseWriter, r *http.Request) {
	posts, err := a.content.Articles(r.Context(), cms.KindBlog)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	refs := make([]seo.BlogPostRef, 0, len(posts))
	for _, post := range posts {
		refs = append(refs, seo.BlogPostRef{Path: post.Path(), Headline: post.Title, Published: post.Date})
	}
	in := handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Blog | Web Design & SEO Insights for Johannesburg Businesses | " + site.Name,
			Description: "Practical guides on website costs, local SEO and technical SEO for Johannesburg small businesses.",
			Path:        "/blog",
			// search results are not canonical content
			NoIndex: query != "",
		},
		Schemas: []map[string]any{seo.Blog(a.base(), "/blog", refs)},
	}
	p, ok := a.page(w, r, in)
	if !ok {
		return
	}
	if query != "" {
		posts = cms.FilterArticles(posts, query)
	}
	a.render(w, r, http.StatusOK, views.BlogPage(p, posts, query))
}

func (a *app) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	a.article(w, r, cms.KindBlog, "BlogPosting")
}

func (a *app) article(w http.ResponseWriter, r *http.Request, kind cms.Kind, schemaType string) {
	art, err := a.content.Article(r.Context(), kind, chi.URLParam(r, "slug"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	section := art.Category
	if kind == cms.KindCaseStudy {
		section = "Case Studies"
	}
	image := art.Image
	if image == "" && kind == cms.KindBlog {
		image = art.Path() + ogImageSuffix
	}
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       art.MetaTitle(),
			Description: art.MetaDescription(),
			Path:        art.Path(),
			Keywords:    art.Keywords,
			Image:       image,
			Type:        "article",
		},
		Schemas: []map[string]any{
			seo.Article(a.base(), seo.ArticleInput{
				Type:        schemaType,
				Path:        art.Path(),
				Headline:    art.Title,
				Description: art.MetaDescription(),
				Image:       image,
				Section:     section,
				Keywords:    art.Keywords,
				Published:   art.Date,
				Modified:    art.Modified(),
				Words:       art.Words,
			}),
		},
		CrumbLabel: art.Title,
	})
	if !ok {
		return
	}
	if kind == cms.KindCaseStudy {
		a.render(w, r, http.StatusOK, views.CaseStudyPage(p, art))
		return
	}
	a.render(w, r, http.StatusOK, views.BlogPostPage(p, art))
}

// handleBlogOGImage serves the generated social card for a post.
func (a *app) handleBlogOGImage(w http.ResponseWriter, r *http.Request) {
	art, err := a.content.Article(r.Context(), cms.KindBlog, chi.URLParam(r, "slug"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	b, err := a.og.PNG(art.Title)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (a *app) handlePricing(w http.ResponseWriter, r *http.Request) {
	pricing := a.catalog.Pricing
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Website Design Pricing Johannesburg | Once-Off Packages | " + site.Name,
			Description: "Transparent once-off website packages from R5,500. Foundation, Growth Engine and Market Leader packages engineered for local ROI.",
			Keywords:    []string{"website design pricing johannesburg", "website packages south africa", "affordable web design johannesburg"},
		},
		Schemas: []map[string]any{
			seo.OfferCatalog(a.base(), "/pricing", "Website Design Packages", pricing.Tiers),
			seo.FAQPage(a.base(), "/pricing", pricing.FAQs),
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.PricingPage(p, pricing))
}

func (a *app) handleProcess(w http.ResponseWriter, r *http.Request) {
	process := a.catalog.Process
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Our Process | From Audit to Launch | " + site.Name,
			Description: process.Intro,
		},
		Schemas: []map[string]any{
			seo.HowTo(a.base(), "/process", process.Headline, process.Intro, process.Steps),
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.ProcessPage(p, process))
}

func (a *app) handleAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := a.content.Articles(r.Context(), cms.KindBlog)
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	f := site.Founder
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       f.Name + " | " + f.JobTitle + " | " + site.Name,
			Description: f.Bio,
			Path:        f.Path,
			Type:        "profile",
		},
		Schemas: []map[string]any{seo.ProfilePage(a.base())},
		// /about and /about/author do not exist
		Crumbs: []nav.Crumb{
			{Href: "/", Label: "Home"},
			{Href: f.Path, Label: f.Name, Active: true},
		},
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.AuthorPage(p, posts))
}

func (a *app) handleHeritage(w http.ResponseWriter, r *http.Request) {
	const path = "/alberton-business-heritage"
	title := "History of Business in Alberton (1904-2025)"
	description := "A digital archive of Alberton's commercial evolution, from General Alberts' farm to the industrial powerhouse of Alrode."
	p, ok := a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       title + " | " + site.Name,
			Description: description,
			Type:        "article",
		},
		Schemas: []map[string]any{
			seo.Article(a.base(), seo.ArticleInput{
				Path:        path,
				Headline:    title,
				Description: description,
				Section:     "Local History",
			}),
		},
		CrumbLabel: "Alberton Business Heritage",
	})
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.HeritagePage(p))
}

func (a *app) handleSpecial(w http.ResponseWriter, r *http.Request) {
	sp := a.catalog.Special
	p, ok := a.specialPage(w, r)
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.SpecialPage(p, sp, a.special.Remaining(), a.specialSpots(), views.FormState{}))
}

func (a *app) specialPage(w http.ResponseWriter, r *http.Request) (handlers.PageData, bool) {
	sp := a.catalog.Special
	return a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       sp.Headline + " | December Special | " + site.Name,
			Description: sp.Description,
			Path:        "/december-special",
		},
		Schemas: []map[string]any{
			seo.SpecialOffer(a.base(), "/december-special", sp, a.special.End),
			seo.FAQPage(a.base(), "/december-special", sp.FAQs),
		},
		NoBreadcrumbs: true,
	})
}

func (a *app) specialSpots() int {
	if a.cfg.Special.Spots > 0 {
		return a.cfg.Special.Spots
	}
	return a.catalog.Special.Spots
}

func (a *app) handleCountdown(w http.ResponseWriter, r *http.Request) {
	rem := a.special.Remaining()
	w.Header().Set("Cache-Control", "no-store")
	if rem.Expired {
		// reload so the booking form gives way to the closed notice
		w.Header().Set("HX-Refresh", "true")
	}
	a.render(w, r, http.StatusOK, views.Countdown(rem))
}

func (a *app) handleContact(w http.ResponseWriter, r *http.Request) {
	p, ok := a.contactPage(w, r)
	if !ok {
		return
	}
	a.render(w, r, http.StatusOK, views.ContactPage(p, views.FormState{}))
}

func (a *app) contactPage(w http.ResponseWriter, r *http.Request) (handlers.PageData, bool) {
	return a.page(w, r, handlers.PageInput{
		Meta: seo.MetaInput{
			Title:       "Contact " + site.Name + " | Free Website Audit Johannesburg",
			Description: "Get in touch for a free website audit. Call, WhatsApp or email Endpoint Media in Johannesburg.",
			Path:        "/contact",
		},
		Schemas: []map[string]any{seo.ContactPage(a.base(), "/contact")},
	})
}
