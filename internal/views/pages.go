package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/countdown"
	"endpointmedia.co.za/web/internal/format"
	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/site"
)

// PricingPage shows the packages and pricing FAQ.
func PricingPage(p handlers.PageData, pricing cms.Pricing) g.Node {
	return Layout(p,
		hero("Pricing", pricing.Headline, pricing.Intro,
			primaryButton("/contact", "Get a Free Audit"),
			secondaryButton("/services/website-design-prices", "Calculate Your ROI"),
		),
		section("packages", "",
			TierGrid(pricing.Tiers),
			g.If(pricing.Footnote != "", P(Class("mt-6 text-center text-sm text-slate-500"), g.Text(pricing.Footnote))),
		),
		FAQAccordion("Pricing Questions", pricing.FAQs),
		section("", "", InternalLinks(nav.NewLinkSet("", nav.VariantCompact, []nav.Link{
			{Href: "/services/website-design-prices", Title: "Website Design Prices & ROI Calculator"},
			{Href: "/blog/the-true-cost-of-a-website-in-johannesburg", Title: "Website Cost Guide"},
			{Href: "/december-special", Title: "December Special"},
		}))),
	)
}

// ProcessPage describes the delivery process.
func ProcessPage(p handlers.PageData, process cms.Process) g.Node {
	return Layout(p,
		hero("Our Process", process.Headline, process.Intro,
			primaryButton("/contact", "Start With a Free Audit"),
		),
		section("steps", "", stepList(process.Steps)),
		FAQAccordion("Process Questions", process.FAQs),
		ctaBlock(cms.CTA{Heading: "Ready to Start?", Body: "Step one is a free audit of your current website and local rankings.", Label: "Get a Free Audit"}, "/contact"),
	)
}

// AuthorPage is the founder's profile.
func AuthorPage(p handlers.PageData, posts []cms.Article) g.Node {
	f := site.Founder
	return Layout(p,
		section("", "",
			Div(
				Class("mx-auto max-w-3xl"),
				g.Attr("data-author", ""),
				H1(Class("text-4xl font-extrabold"), g.Text(f.Name)),
				P(Class("mt-2 text-lg text-teal-700"), g.Text(f.JobTitle+", "+site.Name)),
				P(Class("mt-6 text-lg text-slate-700"), g.Text(f.Bio)),
				H2(Class("mt-10 text-2xl font-bold"), g.Text("Expertise")),
				bulletList(f.Knows),
				g.If(len(posts) > 0, g.Group([]g.Node{
					H2(Class("mt-10 text-2xl font-bold"), g.Text("Articles by "+f.Name)),
					Ul(Class("mt-4 space-y-2"),
						g.Group(g.Map(posts, func(a cms.Article) g.Node {
							return Li(A(Href(a.Path()), Class("text-teal-700 hover:underline"), g.Text(a.Title)))
						})),
					),
				})),
			),
		),
	)
}

type milestone struct {
	Year  string
	Title string
	Body  string
}

var heritageTimeline = []milestone{
	{"1904", "The General's Vision", "General Hendrik Abraham Alberts purchases a portion of the farm Elandsfontein. The agrarian root is why Alberton businesses still value honour and handshake deals."},
	{"1938", "The Town Hall & Identity", "Construction begins on the Town Hall, and the street names of Alberton North are dedicated, cementing a distinct identity. Consistency builds brands."},
	{"1943", "The Birth of Alrode", "Established to drive industrial independence, Alrode became the economic engine of the South. Legacy businesses such as the ABC Store (1943) and Blou Meul (1954) emerged from this era."},
	{"1961", "Marais Viljoen & Community", "Hoërskool Marais Viljoen is established. Along with the Reading Country Club (est. 1923), these institutions prove that Alberton competes at a national level."},
	{"Today", "Modern Alrode", "Alrode demands digital infrastructure as robust as its physical infrastructure."},
}

// HeritagePage is the Alberton business history article.
func HeritagePage(p handlers.PageData) g.Node {
	return Layout(p,
		Article(
			Class("container mx-auto max-w-3xl px-4 py-12"),
			H1(Class("text-4xl font-extrabold"), g.Text("History of Business in Alberton (1904-2025)")),
			P(Class("mt-4 text-lg text-slate-600"), g.Text("A digital archive of Alberton's commercial evolution, from General Alberts' farm to the industrial powerhouse of Alrode.")),
			Ol(
				Class("mt-10 space-y-8 border-l-2 border-teal-600 pl-6"),
				g.Group(g.Map(heritageTimeline, func(m milestone) g.Node {
					return Li(
						g.Attr("data-year", m.Year),
						H2(Class("text-2xl font-bold"), g.Text(m.Year+": "+m.Title)),
						P(Class("mt-2 text-slate-700"), g.Text(m.Body)),
					)
				})),
			),
		),
		ctaBlock(cms.CTA{
			Heading: "Your Business is Part of this History.",
			Body:    "Endpoint Media helps established Alberton businesses modernise without losing their heritage.",
			Label:   "Modernize My Legacy Brand",
		}, "/contact"),
	)
}

// SpecialPage is the December special landing page.
func SpecialPage(p handlers.PageData, sp cms.Special, rem countdown.Remaining, spots int, booking FormState) g.Node {
	var form g.Node
	if rem.Expired {
		form = Div(
			Class("rounded-xl bg-slate-50 p-6 text-center"),
			g.Attr("data-special-closed", ""),
			P(Class("text-lg font-semibold"), g.Text("Bookings for this special are closed.")),
			P(Class("mt-2 text-slate-600"), g.Text("We still build fast, affordable websites all year round.")),
			Div(Class("mt-6"), primaryButton("/contact", "Contact Us")),
		)
	} else {
		form = BookingForm(p.CSRFToken, booking)
	}
	return Layout(p,
		Section(
			Class("bg-slate-900 py-20 text-center text-white"),
			container(
				g.If(sp.Badge != "", Span(Class("inline-block rounded-full bg-amber-400 px-3 py-1 text-sm font-bold text-slate-900"), g.Text(sp.Badge))),
				H1(Class("mt-6 text-4xl font-extrabold md:text-5xl"), g.Text(sp.Headline)),
				P(Class("mt-4 text-xl text-slate-300"), g.Text(sp.Intro)),
				P(Class("mt-6"),
					Span(Class("text-5xl font-bold"), g.Attr("data-price", ""), g.Text(format.Rand(float64(sp.Price)))),
					Span(Class("ml-2 text-slate-300"), g.Text(sp.PriceNote)),
				),
				P(Class("mt-2 text-amber-300"), g.Attr("data-spots", ""), g.Textf("Only %d spots available", spots)),
				Div(Class("mt-8"), Countdown(rem)),
				g.If(!rem.Expired, Div(Class("mt-8"), primaryButton("#book", "Claim Your Spot"))),
			),
		),
		section("features", "",
			sectionHeading("What You Get", sp.Name, sp.Description),
			Div(
				Class("mt-10 grid gap-6 md:grid-cols-3"),
				g.Group(g.Map(sp.Features, func(f cms.Step) g.Node {
					return Div(Class("rounded-xl border border-slate-200 p-6"), H3(Class("text-lg font-semibold"), g.Text(f.Title)), bulletList(f.Bullets))
				})),
			),
			Div(Class("mx-auto mt-10 max-w-2xl"), H3(Class("text-lg font-semibold"), g.Text("Also included")), bulletList(sp.Included)),
		),
		section("how-it-works", "bg-slate-50",
			sectionHeading("How It Works", "From Booking to Launch", ""),
			stepList(sp.Steps),
		),
		section("fit", "",
			Div(Class("grid gap-6 md:grid-cols-2"),
				Div(Class("rounded-xl border border-green-200 bg-green-50 p-6"), H3(Class("text-lg font-semibold"), g.Text("Perfect for")), bulletList(sp.Ideal)),
				Div(Class("rounded-xl border border-slate-200 p-6"),
					H3(Class("text-lg font-semibold"), g.Text("Not suitable for")),
					Ul(Class("mt-3 space-y-2 text-slate-700"), g.Group(g.Map(sp.NotSuitable, func(s string) g.Node { return Li(g.Text("✗ " + s)) }))),
				),
			),
		),
		FAQAccordion("December Special Questions", sp.FAQs),
		section("book", "bg-teal-50",
			Div(Class("mx-auto max-w-xl"),
				sectionHeading("", "Book Your Spot", "Fill in your details and we'll send your invoice."),
				Div(Class("mt-8 rounded-2xl bg-white p-6 shadow"), form),
			),
		),
	)
}

// ContactPage shows the contact form and business details.
func ContactPage(p handlers.PageData, contact FormState) g.Node {
	return Layout(p,
		hero("Contact", "Let's Talk About Your Website",
			"Tell us about your business and we'll reply within 24 hours with honest advice."),
		section("", "",
			Div(
				Class("grid gap-10 lg:grid-cols-[2fr_1fr]"),
				Div(Class("rounded-2xl border border-slate-200 p-6"), ContactForm(p.CSRFToken, contact)),
				g.El("address",
					Class("not-italic space-y-3"),
					g.Attr("data-nap", ""),
					P(Class("font-semibold"), g.Text(site.Name)),
					P(g.Text(site.Locality+", "+site.Region+", South Africa")),
					P(phoneLink(p.Analytics, "text-teal-700 hover:underline")),
					P(A(Href("mailto:"+site.Email), Class("text-teal-700 hover:underline"), g.Text(site.Email))),
					P(A(Href(site.WhatsAppURL), Target("_blank"), Rel("noopener noreferrer"), Class("text-teal-700 hover:underline"),
						conversionAttr(p.Analytics.SendTo(handlers.ConversionWhatsApp)), g.Text("Chat on WhatsApp"))),
					P(Class("text-sm text-slate-500"), g.Text("Monday to Friday, "+site.OpensAt+" - "+site.ClosesAt)),
				),
			),
		),
	)
}

// FormResultPage wraps a form outcome in a full page for posts made without htmx.
func FormResultPage(p handlers.PageData, title string, form g.Node) g.Node {
	return Layout(p,
		section("", "",
			Div(Class("mx-auto max-w-xl"),
				H1(Class("text-3xl font-bold"), g.Text(title)),
				Div(Class("mt-8"), form),
			),
		),
	)
}

// NotFoundPage is rendered for unknown routes and slugs.
func NotFoundPage(p handlers.PageData) g.Node {
	return Layout(p,
		section("", "text-center",
			g.Attr("data-not-found", ""),
			P(Class("text-6xl font-extrabold text-teal-700"), g.Text("404")),
			H1(Class("mt-4 text-3xl font-bold"), g.Text("Page Not Found")),
			P(Class("mt-4 text-slate-600"), g.Text("The page you're looking for doesn't exist or has moved.")),
			Div(Class("mt-8 flex justify-center gap-3"),
				primaryButton("/services", "Browse Services"),
				secondaryButton("/contact", "Contact Us"),
			),
		),
	)
}

// ErrorPage is rendered when a handler fails.
func ErrorPage(p handlers.PageData) g.Node {
	return Layout(p,
		section("", "text-center",
			H1(Class("text-3xl font-bold"), g.Text("Something went wrong")),
			P(Class("mt-4 text-slate-600"), g.Text("Please try again in a moment, or reach us directly on WhatsApp.")),
			Div(Class("mt-8"), primaryButton("/", "Back to Home")),
		),
	)
}

// ErrorFragment answers htmx requests that failed.
func ErrorFragment(message string) g.Node {
	return Div(g.Attr("role", "alert"), Class("rounded bg-red-50 p-3 text-sm text-red-700"), g.Attr("data-error", ""), g.Text(message))
}
