package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/site"
)

// CaseStudiesPage is the case study grid.
func CaseStudiesPage(p handlers.PageData, cases []cms.Article) g.Node {
	return Layout(p,
		hero("Case Studies", "Real Results for Johannesburg Businesses",
			"How local service businesses turned their websites into lead generators.",
			primaryButton("/contact", "Get a Free Audit"),
		),
		section("", "",
			Div(Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"), g.Group(g.Map(cases, articleCard))),
		),
	)
}

// CaseStudyPage renders one case study.
func CaseStudyPage(p handlers.PageData, a cms.Article) g.Node {
	facts := []struct{ label, value string }{
		{"Client", a.Client},
		{"Industry", a.Industry},
		{"Region", a.Region},
	}
	return Layout(p,
		Article(
			Class("container mx-auto max-w-4xl px-4 py-12"),
			g.Attr("data-case-study", a.Slug),
			Header(
				P(Class("text-sm font-semibold uppercase tracking-wide text-teal-700"), g.Text("Case Study")),
				H1(Class("mt-2 text-4xl font-extrabold"), g.Text(a.Title)),
				g.If(a.Summary != "", P(Class("mt-4 text-lg text-slate-600"), g.Text(a.Summary))),
				Dl(
					Class("mt-6 flex flex-wrap gap-6 text-sm"),
					g.Group(g.Map(facts, func(f struct{ label, value string }) g.Node {
						if f.value == "" {
							return nil
						}
						return Div(Dt(Class("text-slate-500"), g.Text(f.label)), Dd(Class("font-medium"), g.Text(f.value)))
					})),
				),
			),
			g.If(len(a.Results) > 0, Div(Class("mt-10"), statGrid(a.Results))),
			g.If(len(a.Services) > 0, Div(
				Class("mt-8"),
				H2(Class("text-sm font-semibold uppercase tracking-wide text-slate-500"), g.Text("Services delivered")),
				Ul(Class("mt-2 flex flex-wrap gap-2"),
					g.Group(g.Map(a.Services, func(s string) g.Node {
						return Li(Class("rounded-full bg-slate-100 px-3 py-1 text-sm"), g.Text(s))
					})),
				),
			)),
			Div(Class("prose prose-slate mt-10 max-w-none"), g.Raw(a.HTML)),
			InternalLinks(nav.NewLinkSet("More Results", nav.VariantCompact, []nav.Link{
				{Href: "/case-studies", Title: "All Case Studies"},
				{Href: "/pricing", Title: "Pricing"},
				{Href: "/services", Title: "Services"},
			})),
		),
		ctaBlock(cms.CTA{Heading: "Want Results Like These?", Body: "Get a free audit of your website and local search visibility.", Label: "Get a Free Audit"}, "/contact"),
	)
}

// BlogPage lists posts, optionally filtered by the q search parameter.
func BlogPage(p handlers.PageData, posts []cms.Article, query string) g.Node {
	return Layout(p,
		hero("Blog", "Web Design & SEO Insights for Johannesburg Businesses",
			"Practical guides on website costs, platforms and local search."),
		section("", "",
			Form(
				Method("get"),
				Action("/blog"),
				g.Attr("role", "search"),
				Class("mx-auto flex max-w-xl gap-2"),
				Label(For("blog-q"), Class("sr-only"), g.Text("Search articles")),
				Input(ID("blog-q"), Type("search"), Name("q"), Value(query), Placeholder("Search articles"), Class("w-full rounded border border-slate-300 px-3 py-2")),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Search")),
			),
			g.If(query != "", P(Class("mt-6 text-center text-slate-600"), g.Attr("data-results", strconv.Itoa(len(posts))),
				g.Textf("%d result(s) for %q", len(posts), query))),
			g.If(len(posts) == 0, P(Class("mt-10 text-center"), g.Text("No articles found. "), A(Href("/blog"), Class("text-teal-700 underline"), g.Text("Browse all articles")))),
			Div(Class("mt-10 grid gap-6 md:grid-cols-2 lg:grid-cols-3"), g.Group(g.Map(posts, articleCard))),
		),
	)
}

// BlogPostPage renders a post with its table of contents and related links.
func BlogPostPage(p handlers.PageData, a cms.Article) g.Node {
	return Layout(p,
		Div(
			Class("container mx-auto grid gap-10 px-4 py-12 lg:grid-cols-[1fr_18rem]"),
			Article(
				g.Attr("data-post", a.Slug),
				Header(
					g.If(a.Category != "", P(Class("text-sm font-semibold uppercase tracking-wide text-teal-700"), g.Text(a.Category))),
					H1(Class("mt-2 text-4xl font-extrabold"), g.Text(a.Title)),
					P(Class("mt-4 text-sm text-slate-500"),
						g.Text("By "), A(Href(site.Founder.Path), Class("underline"), g.Text(site.Founder.Name)),
						g.If(!a.Date.IsZero(), g.Group([]g.Node{g.Text(" · "), dateTime(a)})),
						g.Textf(" · %d min read", a.ReadingMinutes),
					),
				),
				Div(Class("prose prose-slate mt-8 max-w-none"), g.Raw(a.HTML)),
				InternalLinks(nav.NewLinkSet("", nav.VariantDefault, nav.RelatedForPost(a.Slug))),
			),
			g.El("aside",
				Class("space-y-6 lg:sticky lg:top-24 lg:self-start"),
				tableOfContents(a.TOC),
				InternalLinks(nav.NewLinkSet("Services", nav.VariantSidebar, nav.ServiceHub())),
			),
		),
	)
}

func tableOfContents(toc []cms.Heading) g.Node {
	if len(toc) == 0 {
		return nil
	}
	return Nav(
		g.Attr("aria-label", "Table of contents"),
		Class("rounded-xl border border-slate-200 p-5"),
		P(Class("font-semibold"), g.Text("On this page")),
		Ol(Class("mt-3 space-y-2 text-sm"),
			g.Group(g.Map(toc, func(h cms.Heading) g.Node {
				class := "text-slate-700 hover:text-teal-700"
				if h.Level > 2 {
					class += " ml-4"
				}
				return Li(A(Href("#"+h.ID), Class(class), g.Attr("data-toc", h.ID), g.Text(h.Text)))
			})),
		),
	)
}
