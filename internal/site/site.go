// Package site holds the business facts that every page and structured data
// payload repeats: name, address, phone, hours and founder.
package site

import "strings"

const (
	Name          = "Endpoint Media"
	AlternateName = "Endpoint Media Johannesburg"
	Tagline       = "High-performance websites and local SEO for Johannesburg service businesses."

	Telephone     = "+27-76-972-4559"
	TelephoneHref = "tel:+27769724559"
	WhatsAppURL   = "https://wa.me/27769724559"
	Email         = "hello@endpointmedia.co.za"

	Locality   = "Johannesburg"
	Region     = "Gauteng"
	Country    = "ZA"
	Latitude   = -26.2041
	Longitude  = 28.0473
	PriceRange = "R5,500 - R15,000"
	BranchCode = "06180556288562610524"

	OpensAt  = "09:00"
	ClosesAt = "17:00"

	LogoPath    = "/images/logo.png"
	OGImagePath = "/images/og.png"
	OGImageW    = 1200
	OGImageH    = 630

	ThemeColor = "#0d9488"
	Locale     = "en_ZA"
	Language   = "en-ZA"
)

// OpeningDays are the schema.org days the office answers the phone.
var OpeningDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// SocialProfiles feed the sameAs arrays.
var SocialProfiles = []string{
	"https://www.facebook.com/endpointmedia",
	"https://www.linkedin.com/company/endpoint-media",
	"https://www.instagram.com/endpointmedia",
}

// Person describes the founder.
type Person struct {
	Name     string
	JobTitle string
	Path     string
	Bio      string
	Knows    []string
}

// Founder is the author of every article on the site.
var Founder = Person{
	Name:     "Frank Smit",
	JobTitle: "Founder & Lead Developer",
	Path:     "/about/author/frank-smit",
	Bio: "Frank Smit founded Endpoint Media to give Johannesburg service businesses the kind of " +
		"fast, search-ready websites usually reserved for enterprise budgets. He has spent more than a " +
		"decade building conversion-focused sites, technical SEO systems and Google Business Profile " +
		"strategies for trades, law firms and medical practices across Gauteng.",
	Knows: []string{"Web Development", "Technical SEO", "Local SEO", "Conversion Rate Optimization", "Next.js", "Go"},
}

// OrganizationID is the stable @id every schema payload links back to.
func OrganizationID(base string) string { return trimBase(base) + "/#organization" }

// WebsiteID identifies the WebSite node.
func WebsiteID(base string) string { return trimBase(base) + "/#website" }

// PersonID identifies the founder's Person node.
func PersonID(base string) string { return trimBase(base) + Founder.Path + "#person" }

// URL joins base and path into an absolute URL without a trailing slash.
func URL(base, path string) string {
	base = trimBase(base)
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return base
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + strings.TrimRight(path, "/")
}

func trimBase(base string) string { return strings.TrimRight(strings.TrimSpace(base), "/") }
