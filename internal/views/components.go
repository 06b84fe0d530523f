package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/format"
	"endpointmedia.co.za/web/internal/nav"
)

func container(children ...g.Node) g.Node {
	return Div(Class("container mx-auto px-4"), g.Group(children))
}

func section(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("py-16 "+class),
		container(children...),
	)
}

func sectionHeading(eyebrow, title, intro string) g.Node {
	return Div(
		Class("mx-auto max-w-3xl text-center"),
		g.If(eyebrow != "", P(Class("text-sm font-semibold uppercase tracking-wide text-teal-700"), g.Text(eyebrow))),
		H2(Class("mt-2 text-3xl font-bold md:text-4xl"), g.Text(title)),
		g.If(intro != "", P(Class("mt-4 text-lg text-slate-600"), g.Text(intro))),
	)
}

func hero(badge, headline, intro string, actions ...g.Node) g.Node {
	return Section(
		Class("bg-gradient-to-b from-teal-50 to-white py-20"),
		container(
			Div(
				Class("mx-auto max-w-4xl text-center"),
				g.If(badge != "", Span(Class("inline-block rounded-full bg-teal-100 px-3 py-1 text-sm font-medium text-teal-800"), g.Text(badge))),
				H1(Class("mt-4 text-4xl font-extrabold tracking-tight md:text-5xl"), g.Text(headline)),
				g.If(intro != "", P(Class("mt-6 text-lg text-slate-600 md:text-xl"), g.Text(intro))),
				g.If(len(actions) > 0, Div(Class("mt-8 flex flex-wrap justify-center gap-3"), g.Group(actions))),
			),
		),
	)
}

func primaryButton(href, label string, extra ...g.Node) g.Node {
	return A(Href(href), Class("btn btn-primary"), g.Group(extra), g.Text(label))
}

func secondaryButton(href, label string) g.Node {
	return A(Href(href), Class("btn btn-ghost"), g.Text(label))
}

func statGrid(stats []cms.Stat) g.Node {
	if len(stats) == 0 {
		return nil
	}
	return Div(
		Class("grid gap-6 text-center sm:grid-cols-2 lg:grid-cols-4"),
		g.Group(g.Map(stats, func(s cms.Stat) g.Node {
			return Div(
				Class("rounded-xl border border-slate-200 p-6"),
				g.Attr("data-stat", ""),
				P(Class("text-3xl font-bold text-teal-700"), g.Text(s.Value)),
				P(Class("mt-2 text-sm text-slate-600"), g.Text(s.Label)),
			)
		})),
	)
}

func cardGrid(cards []cms.Card) g.Node {
	if len(cards) == 0 {
		return nil
	}
	return Div(
		Class("mt-10 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
		g.Group(g.Map(cards, func(c cms.Card) g.Node {
			return Article(
				Class("card rounded-xl border border-slate-200 p-6"),
				g.If(c.Icon != "", Span(Class("icon"), g.Attr("data-icon", c.Icon), g.Attr("aria-hidden", "true"))),
				H3(Class("text-lg font-semibold"), g.Text(c.Title)),
				P(Class("mt-2 text-slate-600"), g.Text(c.Body)),
			)
		})),
	)
}

func stepList(steps []cms.Step) g.Node {
	if len(steps) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		items = append(items, Li(
			Class("rounded-xl border border-slate-200 p-6"),
			g.Attr("data-step", strconv.Itoa(i+1)),
			Div(
				Class("flex items-baseline gap-3"),
				Span(Class("text-2xl font-bold text-teal-700"), g.Text(strconv.Itoa(i+1))),
				H3(Class("text-lg font-semibold"), g.Text(s.Title)),
				g.If(s.Duration != "", Span(Class("ml-auto text-sm text-slate-500"), g.Text(s.Duration))),
			),
			g.If(s.Body != "", P(Class("mt-2 text-slate-600"), g.Text(s.Body))),
			bulletList(s.Bullets),
		))
	}
	return Ol(Class("mt-10 grid gap-6 md:grid-cols-2"), g.Group(items))
}

func bulletList(items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Ul(
		Class("mt-3 space-y-2 text-slate-700"),
		g.Group(g.Map(items, func(s string) g.Node {
			return Li(Class("flex gap-2"), Span(Class("text-teal-600"), g.Attr("aria-hidden", "true"), g.Text("✓")), g.Text(s))
		})),
	)
}

// FAQAccordion renders questions as native disclosure widgets.
func FAQAccordion(title string, faqs []cms.FAQ) g.Node {
	if len(faqs) == 0 {
		return nil
	}
	return section("faq", "bg-slate-50",
		sectionHeading("FAQ", title, ""),
		Div(
			Class("mx-auto mt-10 max-w-3xl divide-y divide-slate-200"),
			g.Attr("data-faq", ""),
			g.Group(g.Map(faqs, func(f cms.FAQ) g.Node {
				return g.El("details",
					Class("group py-4"),
					g.El("summary", Class("cursor-pointer text-lg font-medium"), g.Text(f.Question)),
					P(Class("mt-3 text-slate-600"), g.Text(f.Answer)),
				)
			})),
		),
	)
}

// InternalLinks renders a related-content link set in one of its variants.
func InternalLinks(ls nav.LinkSet) g.Node {
	if len(ls.Links) == 0 {
		return nil
	}
	wrapper := func(class string, children ...g.Node) g.Node {
		return g.El("aside",
			Class(class),
			g.Attr("data-internal-links", string(ls.Variant)),
			g.Attr("aria-label", ls.Title),
			g.Group(children),
		)
	}
	switch ls.Variant {
	case nav.VariantCompact:
		return wrapper("mt-10 rounded-xl bg-slate-50 p-6",
			H2(Class("text-sm font-semibold uppercase tracking-wide text-slate-500"), g.Text(ls.Title)),
			Ul(Class("mt-3 flex flex-wrap gap-x-6 gap-y-2"),
				g.Group(g.Map(ls.Links, func(l nav.Link) g.Node {
					return Li(A(Href(l.Href), Class("text-teal-700 hover:underline"), g.Text(l.Title)))
				})),
			),
		)
	case nav.VariantSidebar:
		return wrapper("rounded-xl border border-slate-200 p-5",
			H2(Class("font-semibold"), g.Text(ls.Title)),
			Ul(Class("mt-3 space-y-3 text-sm"),
				g.Group(g.Map(ls.Links, func(l nav.Link) g.Node {
					return Li(
						A(Href(l.Href), Class("font-medium text-teal-700 hover:underline"), g.Text(l.Title)),
						g.If(l.Description != "", P(Class("text-slate-500"), g.Text(l.Description))),
					)
				})),
			),
		)
	default:
		return wrapper("mt-16",
			H2(Class("text-2xl font-bold"), g.Text(ls.Title)),
			Div(Class("mt-6 grid gap-6 md:grid-cols-2"),
				g.Group(g.Map(ls.Links, func(l nav.Link) g.Node {
					return A(
						Href(l.Href),
						Class("block rounded-xl border border-slate-200 p-5 hover:border-teal-500"),
						H3(Class("font-semibold"), g.Text(l.Title)),
						g.If(l.Description != "", P(Class("mt-1 text-sm text-slate-600"), g.Text(l.Description))),
					)
				})),
			),
		)
	}
}

func ctaBlock(cta cms.CTA, href string) g.Node {
	if cta.Heading == "" {
		return nil
	}
	label := cta.Label
	if label == "" {
		label = nav.Contact.Label
	}
	return Section(
		Class("py-16"),
		container(
			Div(
				Class("rounded-2xl bg-teal-700 px-6 py-12 text-center text-white"),
				g.Attr("data-cta", ""),
				H2(Class("text-3xl font-bold"), g.Text(cta.Heading)),
				g.If(cta.Body != "", P(Class("mt-4 text-lg text-teal-50"), g.Text(cta.Body))),
				Div(Class("mt-8"), A(Href(href), Class("btn bg-white text-teal-800"), g.Text(label))),
			),
		),
	)
}

// TierGrid renders the package cards. The popular tier is highlighted.
func TierGrid(tiers []cms.Tier) g.Node {
	return Div(
		Class("mt-10 grid gap-6 lg:grid-cols-3"),
		g.Group(g.Map(tiers, func(t cms.Tier) g.Node {
			class := "relative rounded-2xl border p-8"
			if t.Popular {
				class += " border-teal-600 shadow-xl"
			} else {
				class += " border-slate-200"
			}
			return Div(
				Class(class),
				g.Attr("data-tier", t.Slug),
				g.If(t.Popular, Span(Class("absolute -top-3 left-1/2 -translate-x-1/2 rounded-full bg-teal-600 px-3 py-1 text-xs font-semibold text-white"), g.Text("Most Popular"))),
				H3(Class("text-xl font-semibold"), g.Text(t.Name)),
				P(Class("mt-2 text-slate-600"), g.Text(t.Tagline)),
				P(Class("mt-6"),
					Span(Class("text-4xl font-bold"), g.Attr("data-price", strconv.Itoa(t.Price)), g.Text(format.Rand(float64(t.Price)))),
					Span(Class("ml-1 text-sm text-slate-500"), g.Text("once-off")),
				),
				bulletList(t.Features),
				Div(Class("mt-8"), primaryButton("/contact?package="+t.Slug, t.CTALabel)),
			)
		})),
	)
}

func articleCard(a cms.Article) g.Node {
	return Article(
		Class("rounded-xl border border-slate-200 p-6"),
		g.Attr("data-article", a.Slug),
		g.If(a.Category != "", P(Class("text-xs font-semibold uppercase tracking-wide text-teal-700"), g.Text(a.Category))),
		g.If(a.Industry != "", P(Class("text-xs font-semibold uppercase tracking-wide text-teal-700"), g.Text(a.Industry))),
		H3(Class("mt-2 text-xl font-semibold"), A(Href(a.Path()), Class("hover:underline"), g.Text(a.Title))),
		g.If(a.Summary != "", P(Class("mt-3 text-slate-600"), g.Text(a.Summary))),
		g.If(!a.Date.IsZero(), P(Class("mt-4 text-sm text-slate-500"), dateTime(a))),
	)
}

func dateTime(a cms.Article) g.Node {
	return g.El("time", g.Attr("datetime", format.ISODate(a.Date)), g.Text(format.Date(a.Date)))
}
