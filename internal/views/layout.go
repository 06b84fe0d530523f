// Package views renders every page of the site as gomponents node trees.
package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"endpointmedia.co.za/web/internal/handlers"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
)

const htmxSrc = "https://unpkg.com/htmx.org@1.9.12"

// Layout wraps page content in the document shell: head metadata, structured
// data, header, breadcrumbs, footer and the floating WhatsApp button.
func Layout(p handlers.PageData, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(site.Language),
			documentHead(p),
			Body(
				Class("bg-white text-slate-900 antialiased"),
				g.If(p.CSRFToken != "", g.Attr("hx-headers", fmt.Sprintf(`{"X-CSRF-Token": %q}`, p.CSRFToken))),
				A(Href("#main"), Class("sr-only focus:not-sr-only focus:absolute focus:top-2 focus:left-2 bg-white px-4 py-2 rounded"), g.Text("Skip to content")),
				siteHeader(p),
				g.If(len(p.Breadcrumbs) > 0, breadcrumbTrail(p.Breadcrumbs)),
				Main(ID("main"), g.Group(content)),
				siteFooter(p),
				whatsAppButton(p.Analytics),
				Script(Src(htmxSrc), Defer()),
				Script(Src("/assets/js/site.js"), Defer()),
			),
		),
	})
}

func documentHead(p handlers.PageData) g.Node {
	m := p.Meta
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(g.Text(m.Title)),
		Meta(Name("description"), Content(m.Description)),
		g.If(len(m.Keywords) > 0, Meta(Name("keywords"), Content(m.KeywordList()))),
		Meta(Name("robots"), Content(m.Robots)),
		Link(Rel("canonical"), Href(m.Canonical)),
		g.Group(g.Map(m.Alternates, func(a seo.Alternate) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", a.HrefLang), Href(a.Href))
		})),

		Meta(g.Attr("property", "og:title"), Content(m.OG.Title)),
		Meta(g.Attr("property", "og:description"), Content(m.OG.Description)),
		Meta(g.Attr("property", "og:url"), Content(m.OG.URL)),
		Meta(g.Attr("property", "og:site_name"), Content(m.OG.SiteName)),
		Meta(g.Attr("property", "og:locale"), Content(m.OG.Locale)),
		Meta(g.Attr("property", "og:type"), Content(m.OG.Type)),
		Meta(g.Attr("property", "og:image"), Content(m.OG.Image.URL)),
		Meta(g.Attr("property", "og:image:width"), Content(strconv.Itoa(m.OG.Image.Width))),
		Meta(g.Attr("property", "og:image:height"), Content(strconv.Itoa(m.OG.Image.Height))),
		Meta(g.Attr("property", "og:image:alt"), Content(m.OG.Image.Alt)),
		Meta(Name("twitter:card"), Content(m.Twitter.Card)),
		Meta(Name("twitter:title"), Content(m.Twitter.Title)),
		Meta(Name("twitter:description"), Content(m.Twitter.Description)),
		Meta(Name("twitter:image"), Content(m.Twitter.Image)),

		Meta(Name("theme-color"), Content(site.ThemeColor)),
		Link(Rel("manifest"), Href("/manifest.webmanifest")),
		Link(Rel("icon"), Href("/favicon.ico")),
		Link(Rel("stylesheet"), Href("/assets/css/site.css")),

		analyticsTags(p.Analytics),
		g.Group(g.Map(p.SiteJSONLD, jsonLD)),
		g.Group(g.Map(p.JSONLD, jsonLD)),
	)
}

func jsonLD(payload string) g.Node {
	return Script(Type("application/ld+json"), g.Raw(payload))
}

func analyticsTags(a handlers.Analytics) g.Node {
	if !a.Enabled() {
		return nil
	}
	config := ""
	for _, id := range []string{a.GA4MeasurementID, a.GoogleAdsID} {
		if id == "" {
			continue
		}
		if a.Debug {
			config += fmt.Sprintf("gtag('config', %q, {debug_mode: true});", id)
		} else {
			config += fmt.Sprintf("gtag('config', %q);", id)
		}
	}
	return g.Group([]g.Node{
		Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+a.TagID())),
		Script(g.Raw("window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js', new Date());" + config)),
	})
}

func siteHeader(p handlers.PageData) g.Node {
	return Header(
		Class("sticky top-0 z-40 border-b border-slate-200 bg-white/90 backdrop-blur"),
		Div(
			Class("container mx-auto flex items-center justify-between gap-6 px-4 py-3"),
			A(Href("/"), Class("flex items-center gap-2 font-bold text-lg"),
				Img(Src(site.LogoPath), Alt(site.Name+" logo"), Width("36"), Height("36")),
				Span(g.Text(site.Name)),
			),
			Nav(
				g.Attr("aria-label", "Primary"),
				Ul(
					Class("hidden md:flex items-center gap-5 text-sm font-medium"),
					g.Group(g.Map(p.Nav, func(it nav.RenderedItem) g.Node {
						return Li(A(
							Href(it.Href),
							g.If(it.Active, g.Group([]g.Node{Class("text-teal-700"), g.Attr("aria-current", "page")})),
							g.If(!it.Active, Class("hover:text-teal-700")),
							g.Text(it.Label),
						))
					})),
				),
			),
			A(Href(p.Contact.Href), Class("btn btn-primary"), g.Text(p.Contact.Label)),
		),
	)
}

func breadcrumbTrail(crumbs []nav.Crumb) g.Node {
	return Nav(
		g.Attr("aria-label", "Breadcrumb"),
		Class("container mx-auto px-4 pt-4 text-sm text-slate-500"),
		Ol(
			Class("flex flex-wrap items-center gap-2"),
			g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
				if c.Active {
					return Li(Span(g.Attr("aria-current", "page"), Class("text-slate-800"), g.Text(c.Label)))
				}
				return Li(A(Href(c.Href), Class("hover:underline"), g.Text(c.Label)), Span(g.Attr("aria-hidden", "true"), g.Text(" / ")))
			})),
		),
	)
}

func siteFooter(p handlers.PageData) g.Node {
	return Footer(
		Class("mt-24 bg-slate-900 text-slate-300"),
		Div(
			Class("container mx-auto grid gap-10 px-4 py-12 md:grid-cols-4"),
			Div(
				P(Class("font-semibold text-white"), g.Text(site.Name)),
				P(Class("mt-2 text-sm"), g.Text(site.Tagline)),
				g.El("address",
					Class("mt-4 not-italic text-sm space-y-1"),
					P(g.Text(site.Locality+", "+site.Region+", South Africa")),
					P(phoneLink(p.Analytics, "hover:text-white")),
					P(A(Href("mailto:"+site.Email), Class("hover:text-white"), g.Text(site.Email))),
				),
				P(Class("mt-2 text-sm"), g.Text("Mon-Fri "+site.OpensAt+"-"+site.ClosesAt)),
			),
			footerLinks("Services", p.FooterServices),
			footerLinks("Locations", p.FooterLocations),
			footerLinks("Company", []nav.Link{
				{Href: "/process", Title: "Our Process"},
				{Href: "/pricing", Title: "Pricing"},
				{Href: "/case-studies", Title: "Case Studies"},
				{Href: "/blog", Title: "Blog"},
				{Href: site.Founder.Path, Title: "About " + site.Founder.Name},
				{Href: "/alberton-business-heritage", Title: "Alberton Business Heritage"},
				{Href: "/contact", Title: "Contact"},
			}),
		),
		Div(
			Class("border-t border-slate-800 py-6 text-center text-xs"),
			g.Textf("© %d %s. All rights reserved.", p.Year, site.Name),
		),
	)
}

func footerLinks(title string, links []nav.Link) g.Node {
	if len(links) == 0 {
		return nil
	}
	return Div(
		P(Class("font-semibold text-white"), g.Text(title)),
		Ul(
			Class("mt-3 space-y-2 text-sm"),
			g.Group(g.Map(links, func(l nav.Link) g.Node {
				return Li(A(Href(l.Href), Class("hover:text-white"), g.Text(l.Title)))
			})),
		),
	)
}

func phoneLink(a handlers.Analytics, class string) g.Node {
	return A(
		Href(site.TelephoneHref),
		Class(class),
		conversionAttr(a.SendTo(handlers.ConversionPhone)),
		g.Text(site.Telephone),
	)
}

func whatsAppButton(a handlers.Analytics) g.Node {
	return A(
		Href(site.WhatsAppURL),
		Target("_blank"),
		Rel("noopener noreferrer"),
		g.Attr("aria-label", "Chat with us on WhatsApp"),
		Class("fixed bottom-5 right-5 z-50 rounded-full bg-green-500 px-4 py-3 font-semibold text-white shadow-lg hover:bg-green-600"),
		conversionAttr(a.SendTo(handlers.ConversionWhatsApp)),
		g.Text("WhatsApp"),
	)
}

// conversionAttr tags an element for site.js to report a Google Ads conversion.
func conversionAttr(sendTo string) g.Node {
	if sendTo == "" {
		return nil
	}
	return g.Attr("data-conversion", sendTo)
}
