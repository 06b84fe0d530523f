package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/handlers"
)

var (
	homeProblems = []cms.Card{
		{Title: `The "Looks Good, Does Nothing" Trap`, Body: "You invested in a visually appealing website that delivers zero ROI. No calls, no form submissions, just silence. It's an expensive digital brochure collecting virtual dust."},
		{Title: "Invisible in Johannesburg", Body: "Your potential customers in Sandton, Randburg and Midrand are searching online right now. If your site isn't on Google's first page, especially in the Map Pack, they are finding and paying your competitors."},
		{Title: "The Agency Disappointment", Body: "Maybe you've been burned by faceless agencies, outsourced developers and broken promises. It's not your fault you have an underperforming website."},
	}
	homeSolutions = []cms.Card{
		{Title: "Radical Transparency", Body: "A straightforward process, clear pricing and measurable results: qualified leads, increased calls, new customers."},
		{Title: "Performance Engineered", Body: "Blazing-fast, mobile-first websites optimised to dominate local Johannesburg Google searches and convert visitors effectively."},
		{Title: "Rapid Deployment", Body: "See a custom mockup in 48 hours. Launch your revenue-generating website in days, not months."},
	}
	homeVetting = []cms.Card{
		{Title: "Hyper-Local Focus", Body: "You serve customers in Johannesburg and want more of them, not clicks from the other side of the world."},
		{Title: "Mastery Driven", Body: "You are excellent at your trade and want a website that proves it before the first phone call."},
		{Title: "Growth Mindset", Body: "You see your website as a lead-generation investment, not a box to tick."},
	}
	homeToolkit = []cms.Card{
		{Title: "Automated Online Booking", Body: "Calendars that fill themselves for salons, consultants and professionals."},
		{Title: "Instant-Response Conversion Tools", Body: "Click-to-call, WhatsApp and quote forms for plumbers, electricians and trades."},
		{Title: "Authoritative Visual Proof", Body: "Galleries and reviews that build instant trust and prove your quality."},
	}
)

// HomePage is the landing page.
func HomePage(p handlers.PageData, home handlers.HomeData, audit FormState) g.Node {
	return Layout(p,
		hero("Johannesburg Web Design & Local SEO",
			"Your Website Should Generate Revenue. Not Excuses.",
			"Endpoint Media builds high-performance websites for Johannesburg's service industry, engineered for one purpose: to generate qualified leads that convert into paying customers.",
			primaryButton("#audit", "Get Your Free Growth Audit"),
			secondaryButton("/pricing", "See Pricing"),
		),
		section("problem", "bg-slate-900 text-white",
			sectionHeading("", "Let's Be Honest About Your Website's Performance.",
				"If your site isn't actively generating leads and making your phone ring, it's not an asset. It's an online expense."),
			cardGrid(homeProblems),
		),
		section("solution", "",
			sectionHeading("The Endpoint Difference", "Your Dedicated Johannesburg Growth Partner", ""),
			cardGrid(homeSolutions),
		),
		section("who-we-serve", "bg-slate-50",
			sectionHeading("Who We Serve", "Built for Johannesburg's Service Businesses", ""),
			Div(
				Class("mt-10 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(home.Industries, func(i cms.Industry) g.Node {
					return A(
						Href(i.Path()),
						Class("block rounded-xl border border-slate-200 bg-white p-6 hover:border-teal-500"),
						g.Attr("data-industry", i.Slug),
						H3(Class("text-lg font-semibold"), g.Text(i.Name)),
						P(Class("mt-2 text-slate-600"), g.Text(i.Summary)),
					)
				})),
			),
		),
		section("blueprint", "",
			sectionHeading("The Blueprint", "Our Proven Process", ""),
			stepList(home.Process),
			Div(Class("mt-8 text-center"), secondaryButton("/process", "See the full process")),
		),
		section("proof", "bg-slate-50",
			sectionHeading("Proof", "Results for Businesses Like Yours", ""),
			Div(
				Class("mt-10 grid gap-6 md:grid-cols-3"),
				g.Group(g.Map(home.CaseStudies, articleCard)),
			),
			Div(Class("mt-8 text-center"), secondaryButton("/case-studies", "View all case studies")),
		),
		section("vetting", "",
			sectionHeading("Is This You?", "We Partner With Ambitious Local Businesses", ""),
			cardGrid(homeVetting),
		),
		section("pricing", "bg-slate-50",
			sectionHeading("Pricing", "Website Packages Engineered for Local ROI", "Once-off pricing. No retainers, no hidden fees."),
			TierGrid(home.Tiers),
		),
		section("toolkit", "",
			sectionHeading("The Toolkit", "Conversion Tools Built In", ""),
			cardGrid(homeToolkit),
		),
		section("audit", "bg-teal-50",
			Div(
				Class("mx-auto max-w-xl"),
				sectionHeading("", "100% Free, No-Obligation Digital Growth Audit",
					"Secure your spot. Limited audit spots are available each month."),
				Div(Class("mt-8 rounded-2xl bg-white p-6 shadow"), AuditForm(p.CSRFToken, audit)),
			),
		),
	)
}
