package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/calculator"
	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
)

// ServicesHubPage lists every service grouped by category.
func ServicesHubPage(p handlers.PageData, services []cms.Service) g.Node {
	var (
		order  []string
		groups = map[string][]cms.Service{}
	)
	for _, s := range services {
		if _, ok := groups[s.Category]; !ok {
			order = append(order, s.Category)
		}
		groups[s.Category] = append(groups[s.Category], s)
	}
	blocks := make([]g.Node, 0, len(order))
	for _, cat := range order {
		blocks = append(blocks, Div(
			Class("mt-12"),
			g.Attr("data-category", cat),
			H2(Class("text-2xl font-bold"), g.Text(cat)),
			Div(
				Class("mt-6 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(groups[cat], serviceCard)),
			),
		))
	}
	return Layout(p,
		hero("Services", "Web Design, Development & Growth Services in Johannesburg",
			"Everything a local service business needs to be found, trusted and chosen online.",
			primaryButton("/contact", "Get a Free Audit"),
			secondaryButton("/services/website-design-prices", "Website Design Prices"),
		),
		section("", "", g.Group(blocks)),
	)
}

func serviceCard(s cms.Service) g.Node {
	return A(
		Href(s.Path()),
		Class("block rounded-xl border border-slate-200 p-6 hover:border-teal-500"),
		g.Attr("data-service", s.Slug),
		H3(Class("text-lg font-semibold"), g.Text(s.Name)),
		P(Class("mt-2 text-slate-600"), g.Text(s.Summary)),
	)
}

// ServicePage is a service detail page.
func ServicePage(p handlers.PageData, s cms.Service) g.Node {
	links := make([]nav.Link, 0, len(s.Links))
	for _, l := range s.Links {
		links = append(links, nav.Link{Href: l.Href, Title: l.Title, Description: l.Description})
	}
	if len(links) == 0 {
		links = nav.ServiceHub()
	}
	return Layout(p,
		hero(s.ServiceType, s.Headline, s.Intro,
			primaryButton("/contact", firstNonEmpty(s.CTA.Label, "Get a Free Audit")),
			secondaryButton("/pricing", "See Pricing"),
		),
		g.If(len(s.Stats) > 0, section("results", "", statGrid(s.Stats))),
		g.If(len(s.Levers) > 0, section("levers", "bg-slate-50",
			sectionHeading("How We Deliver", "What Moves the Needle", ""),
			cardGrid(s.Levers),
		)),
		g.If(len(s.Steps) > 0, section("process", "",
			sectionHeading("Process", "How It Works", ""),
			stepList(s.Steps),
		)),
		FAQAccordion("Frequently Asked Questions", s.FAQs),
		section("", "", InternalLinks(nav.NewLinkSet("Related Services", nav.VariantDefault, links))),
		ctaBlock(s.CTA, "/contact"),
	)
}

var (
	perPageFlaws = []string{
		"A homepage with hero sections, CTAs and conversion optimisation takes 8-12 hours",
		"A simple contact page takes 1-2 hours",
		"An e-commerce product page with variants and integrations takes 4-6 hours",
	}
	valuePricing = []string{
		"Core Web Vitals performance: every site targets 100/100 scores",
		"Semantic SEO architecture with structured data built in",
		"Conversion optimisation: every page designed for lead generation",
		"Low maintenance: no plugin subscriptions to keep paying for",
	}
)

// WebsiteDesignPricesPage explains value pricing around the ROI calculator.
func WebsiteDesignPricesPage(p handlers.PageData, pricing cms.Pricing, res calculator.Result) g.Node {
	return Layout(p,
		hero("Transparent Pricing", `Why "Per Page" Pricing is Dead.`,
			"You aren't paying for pages of HTML. You're investing in a revenue asset. Stop comparing generic packages. Start calculating ROI.",
			primaryButton("#calculator", "Calculate Your ROI"),
			secondaryButton("/contact", "Get Custom Quote"),
		),
		section("calculator", "bg-slate-50",
			sectionHeading("ROI Calculator", "Performance vs. Price",
				"See what a faster website is worth to your business. Adjust the sliders to match your numbers."),
			Div(Class("mt-10"), Calculator(res)),
		),
		section("average-cost", "",
			H2(Class("text-3xl font-bold"), g.Text("What is the Average Cost of a Website in South Africa?")),
			P(Class("mt-6 rounded-r-lg border-l-4 border-teal-600 bg-teal-50 p-6 text-lg"),
				g.Text("Website costs in South Africa range from R2,500 for basic template sites to R150,000+ for enterprise builds. "+
					"The average small business website costs R15,000-R45,000, but the true cost includes maintenance, hosting "+
					"and the revenue a slow site loses every month."),
			),
		),
		section("per-page", "bg-slate-50",
			H2(Class("text-3xl font-bold"), g.Text(`Why "Per Page" Pricing Doesn't Work`)),
			Div(Class("mt-8 grid gap-6 md:grid-cols-2"),
				Div(Class("rounded-xl border border-red-200 bg-red-50 p-6"),
					H3(Class("text-xl font-semibold"), g.Text("The Flawed Logic")),
					bulletList(perPageFlaws),
				),
				Div(Class("rounded-xl border border-green-200 bg-green-50 p-6"),
					H3(Class("text-xl font-semibold"), g.Text("Our Approach: Value-Based Pricing")),
					bulletList(valuePricing),
				),
			),
		),
		section("packages", "",
			sectionHeading("Packages", pricing.Headline, pricing.Intro),
			TierGrid(pricing.Tiers),
			g.If(pricing.Footnote != "", P(Class("mt-6 text-center text-sm text-slate-500"), g.Text(pricing.Footnote))),
		),
		FAQAccordion("Frequently Asked Questions About Website Pricing", pricing.FAQs),
		section("", "", InternalLinks(nav.NewLinkSet("Related Content", nav.VariantCompact, []nav.Link{
			{Href: "/pricing", Title: "Pricing"},
			{Href: "/blog/the-true-cost-of-a-website-in-johannesburg", Title: "The True Cost of a Website in Johannesburg"},
			{Href: "/services/custom-development", Title: "Custom Web Development"},
			{Href: "/case-studies", Title: "Case Studies"},
		}))),
		ctaBlock(cms.CTA{
			Heading: "Ready to Invest in a Digital Asset, Not Just a Website?",
			Body:    "Get a free audit and a custom quote based on what your site needs to earn.",
			Label:   "Get Custom Quote",
		}, "/contact"),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
