package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
)

// LocationsPage is the location index.
func LocationsPage(p handlers.PageData, locations []cms.Location) g.Node {
	return Layout(p,
		hero("Service Areas", "Web Design Across Johannesburg",
			"Local websites and SEO for businesses from Sandton to the East Rand.",
			primaryButton("/contact", "Get a Free Audit"),
		),
		section("", "",
			Div(
				Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(locations, func(l cms.Location) g.Node {
					return A(
						Href(l.Path()),
						Class("block rounded-xl border border-slate-200 p-6 hover:border-teal-500"),
						g.Attr("data-location", l.Slug),
						H2(Class("text-lg font-semibold"), g.Text("Web Design "+l.Name)),
						P(Class("mt-2 text-slate-600"), g.Text(l.Summary)),
					)
				})),
			),
		),
	)
}

// LocationPage is a suburb landing page.
func LocationPage(p handlers.PageData, l cms.Location) g.Node {
	return Layout(p,
		hero("Web Design "+l.Name, l.Headline, l.Intro,
			primaryButton("/contact", firstNonEmpty(l.CTA.Label, "Get a Free Audit")),
			secondaryButton("/case-studies", "See Our Work"),
		),
		g.If(len(l.Reasons) > 0, section("why", "",
			sectionHeading("Why Local Businesses Choose Us", "Why "+l.Name+" Businesses Choose Endpoint Media", ""),
			cardGrid(l.Reasons),
		)),
		g.If(len(l.Areas) > 0, section("areas", "bg-slate-50",
			sectionHeading("Areas We Serve", "Serving "+l.Name+" and Surrounds", ""),
			Ul(
				Class("mt-10 grid gap-4 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(l.Areas, func(a cms.Area) g.Node {
					return Li(
						Class("rounded-xl bg-white p-5"),
						g.Attr("data-area", a.Name),
						H3(Class("font-semibold"), g.Text(a.Name)),
						g.If(a.Description != "", P(Class("mt-1 text-sm text-slate-600"), g.Text(a.Description))),
					)
				})),
			),
		)),
		g.If(len(l.Offerings) > 0, section("services", "",
			sectionHeading("Services", "What We Build for "+l.Name+" Businesses", ""),
			stepList(l.Offerings),
		)),
		section("", "", InternalLinks(nav.NewLinkSet("Popular Services", nav.VariantDefault, nav.ServiceHub()))),
		ctaBlock(l.CTA, "/contact"),
	)
}

// IndustriesPage is the industry index.
func IndustriesPage(p handlers.PageData, industries []cms.Industry) g.Node {
	return Layout(p,
		hero("Industries", "Websites Built for Your Industry",
			"Specialist websites for the sectors where trust and local visibility win the work.",
			primaryButton("/contact", "Get a Free Audit"),
		),
		section("", "",
			Div(
				Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(industries, func(i cms.Industry) g.Node {
					return A(
						Href(i.Path()),
						Class("block rounded-xl border border-slate-200 p-6 hover:border-teal-500"),
						g.Attr("data-industry", i.Slug),
						H2(Class("text-lg font-semibold"), g.Text(i.Name)),
						P(Class("mt-2 text-slate-600"), g.Text(i.Summary)),
					)
				})),
			),
		),
	)
}

// IndustryPage is an industry landing page.
func IndustryPage(p handlers.PageData, i cms.Industry) g.Node {
	return Layout(p,
		hero(i.ServiceType, i.Headline, i.Intro,
			primaryButton("/contact", firstNonEmpty(i.CTA.Label, "Get a Free Audit")),
		),
		g.If(len(i.PainPoints) > 0, section("challenges", "bg-slate-50",
			sectionHeading("The Challenge", "What Holds "+i.Name+" Websites Back", ""),
			cardGrid(i.PainPoints),
		)),
		g.If(len(i.Solutions) > 0, section("solutions", "",
			sectionHeading("The Solution", "What We Build", ""),
			cardGrid(i.Solutions),
		)),
		FAQAccordion("Frequently Asked Questions", i.FAQs),
		section("", "", InternalLinks(nav.NewLinkSet("", nav.VariantCompact, nav.ServiceHub()))),
		ctaBlock(i.CTA, "/contact"),
	)
}
