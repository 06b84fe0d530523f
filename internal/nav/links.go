package nav

import "strings"

// Variant selects how a link set renders.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantCompact Variant = "compact"
	VariantSidebar Variant = "sidebar"
)

// Link is one internal cross link.
type Link struct {
	Href        string
	Title       string
	Description string
}

// LinkSet is a titled group of internal links.
type LinkSet struct {
	Title   string
	Variant Variant
	Links   []Link
}

const defaultLinkSetTitle = "Related Content"

// NewLinkSet normalises the title and variant.
func NewLinkSet(title string, variant Variant, links []Link) LinkSet {
	if strings.TrimSpace(title) == "" {
		title = defaultLinkSetTitle
	}
	switch variant {
	case VariantCompact, VariantSidebar:
	default:
		variant = VariantDefault
	}
	return LinkSet{Title: title, Variant: variant, Links: links}
}

var (
	linkPricing = Link{
		Href:        "/pricing",
		Title:       "Website Design Pricing Johannesburg",
		Description: "Transparent pricing for professional websites. See our packages and pricing structure.",
	}
	linkRedesign = Link{
		Href:        "/services/website-redesign",
		Title:       "Website Redesign Services",
		Description: "Transform your outdated website into a high-converting, modern asset.",
	}
	linkShopify = Link{
		Href:        "/services/shopify-expert",
		Title:       "Shopify Expert Services",
		Description: "Speed-to-market e-commerce solutions for Johannesburg businesses.",
	}
	linkSandton = Link{
		Href:        "/locations/sandton",
		Title:       "Web Design Sandton",
		Description: "Professional web design services for Sandton businesses.",
	}
	linkLawFirms = Link{
		Href:        "/industries/law-firms",
		Title:       "Web Design for Law Firms",
		Description: "Specialized web design for Johannesburg law firms.",
	}
	linkCostGuide = Link{
		Href:        "/blog/the-true-cost-of-a-website-in-johannesburg",
		Title:       "Website Cost Guide",
		Description: "Complete guide to website costs in Johannesburg.",
	}
	linkWixGuide = Link{
		Href:        "/blog/wix-vs-wordpress-guide-johannesburg-small-businesses",
		Title:       "Wix vs WordPress Guide",
		Description: "DIY builders vs professional development - make the right choice.",
	}
	linkCaseStudies = Link{
		Href:        "/case-studies",
		Title:       "Case Studies",
		Description: "See how we've helped Johannesburg businesses dominate their markets.",
	}
)

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// RelatedForPost picks the related links shown under a blog post. The post
// itself is never included.
func RelatedForPost(slug string) []Link {
	var picks []Link
	switch {
	case containsAny(slug, "cost", "pricing"):
		picks = []Link{linkPricing, linkCostGuide, linkRedesign, linkLawFirms}
	case containsAny(slug, "wix", "wordpress", "diy"):
		picks = []Link{linkRedesign, linkPricing, linkCaseStudies, linkShopify}
	case containsAny(slug, "schema", "seo", "technical"):
		picks = []Link{linkRedesign, linkSandton, linkWixGuide, linkCaseStudies}
	default:
		picks = []Link{linkPricing, linkRedesign, linkCaseStudies, linkSandton}
	}
	self := "/blog/" + slug
	out := make([]Link, 0, len(picks))
	for _, l := range picks {
		if l.Href != self {
			out = append(out, l)
		}
	}
	return out
}

// ServiceHub links the most requested services from landing pages.
func ServiceHub() []Link {
	return []Link{linkRedesign, linkShopify, linkPricing, linkCaseStudies}
}
