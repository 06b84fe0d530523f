package seo

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/site"
)

const schemaContext = "https://schema.org"

// SecureJSON marshals a JSON-LD payload for a script tag. Every "<" becomes
// \u003c so the payload can never close the tag it sits in.
func SecureJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	out := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(out, "<", `\u003c`), nil
}

func ref(id string) map[string]any { return map[string]any{"@id": id} }

func city(name string) map[string]any {
	return map[string]any{"@type": "City", "name": name}
}

func postalAddress(street, locality string) map[string]any {
	m := map[string]any{
		"@type":           "PostalAddress",
		"addressLocality": locality,
		"addressRegion":   site.Region,
		"addressCountry":  site.Country,
	}
	if street != "" {
		m["streetAddress"] = street
	}
	return m
}

func geo(lat, lng float64) map[string]any {
	return map[string]any{"@type": "GeoCoordinates", "latitude": lat, "longitude": lng}
}

// Organization is the site-wide publisher node.
func Organization(base string) map[string]any {
	return map[string]any{
		"@context":      schemaContext,
		"@type":         "Organization",
		"@id":           site.OrganizationID(base),
		"name":          site.Name,
		"alternateName": site.AlternateName,
		"url":           site.URL(base, "/"),
		"logo":          site.URL(base, site.LogoPath),
		"email":         site.Email,
		"telephone":     site.Telephone,
		"founder":       ref(site.PersonID(base)),
		"address":       postalAddress("", site.Locality),
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"telephone":         site.Telephone,
			"contactType":       "Sales",
			"areaServed":        site.Country,
			"availableLanguage": []string{"English", "Afrikaans"},
		},
		"sameAs": site.SocialProfiles,
	}
}

var servedCities = []string{"Johannesburg", "Sandton", "Randburg", "Bryanston", "Rivonia", "Midrand", "Roodepoort"}

// LocalBusiness is the head office listing with hours and geo.
func LocalBusiness(base string) map[string]any {
	areas := make([]map[string]any, 0, len(servedCities))
	for _, c := range servedCities {
		areas = append(areas, city(c))
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "LocalBusiness",
		"@id":        site.URL(base, "/") + "/#localbusiness",
		"name":       site.Name,
		"image":      site.URL(base, site.LogoPath),
		"url":        site.URL(base, "/"),
		"telephone":  site.Telephone,
		"email":      site.Email,
		"priceRange": site.PriceRange,
		"branchCode": site.BranchCode,
		"address":    postalAddress("", site.Locality),
		"geo":        geo(site.Latitude, site.Longitude),
		"openingHoursSpecification": map[string]any{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": site.OpeningDays,
			"opens":     site.OpensAt,
			"closes":    site.ClosesAt,
		},
		"areaServed":         areas,
		"parentOrganization": ref(site.OrganizationID(base)),
	}
}

// WebSite carries the blog SearchAction.
func WebSite(base string) map[string]any {
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "WebSite",
		"@id":        site.WebsiteID(base),
		"url":        site.URL(base, "/"),
		"name":       site.Name,
		"inLanguage": site.Language,
		"publisher":  ref(site.OrganizationID(base)),
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": site.URL(base, "/blog") + "?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// Person is the founder node.
func Person(base string) map[string]any {
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "Person",
		"@id":         site.PersonID(base),
		"name":        site.Founder.Name,
		"jobTitle":    site.Founder.JobTitle,
		"url":         site.URL(base, site.Founder.Path),
		"description": site.Founder.Bio,
		"worksFor":    ref(site.OrganizationID(base)),
		"knowsAbout":  site.Founder.Knows,
		"sameAs":      site.SocialProfiles,
	}
}

// ProfilePage wraps the founder for the author page.
func ProfilePage(base string) map[string]any {
	person := Person(base)
	delete(person, "@context")
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "ProfilePage",
		"url":        site.URL(base, site.Founder.Path),
		"mainEntity": person,
	}
}

// ServiceInput describes one offered service.
type ServiceInput struct {
	Path        string
	Name        string
	Description string
	ServiceType string
	Audience    string
	// Price in rand; zero omits the offer.
	Price int
}

// Service is a schema.org Service provided by the organisation in Johannesburg.
func Service(base string, in ServiceInput) map[string]any {
	url := site.URL(base, in.Path)
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Service",
		"@id":         url + "#service",
		"name":        in.Name,
		"description": in.Description,
		"url":         url,
		"serviceType": firstNonEmpty(in.ServiceType, in.Name),
		"provider":    ref(site.OrganizationID(base)),
		"areaServed":  city(site.Locality),
	}
	if in.Audience != "" {
		m["audience"] = map[string]any{"@type": "Audience", "audienceType": in.Audience}
	}
	if in.Price > 0 {
		m["offers"] = offer(url, in.Price)
	}
	return m
}

func offer(url string, price int) map[string]any {
	return map[string]any{
		"@type":         "Offer",
		"price":         price,
		"priceCurrency": "ZAR",
		"url":           url,
		"availability":  "https://schema.org/InStock",
	}
}

// FAQPage marks up an accordion. It returns nil when there is nothing to mark up.
func FAQPage(base, path string, faqs []cms.FAQ) map[string]any {
	if len(faqs) == 0 {
		return nil
	}
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"@id":        site.URL(base, path) + "#faq",
		"mainEntity": entities,
	}
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ArticleInput describes a blog post or case study.
type ArticleInput struct {
	// Type is "Article" or "BlogPosting".
	Type        string
	Path        string
	Headline    string
	Description string
	Image       string
	Section     string
	Keywords    []string
	Published   time.Time
	Modified    time.Time
	Words       int
}

// Article marks up a written page authored by the founder.
func Article(base string, in ArticleInput) map[string]any {
	url := site.URL(base, in.Path)
	image := site.URL(base, site.OGImagePath)
	if in.Image != "" {
		image = site.URL(base, in.Image)
	}
	m := map[string]any{
		"@context":         schemaContext,
		"@type":            firstNonEmpty(in.Type, "Article"),
		"@id":              url + "#article",
		"headline":         in.Headline,
		"description":      in.Description,
		"url":              url,
		"mainEntityOfPage": url,
		"image":            image,
		"inLanguage":       site.Language,
		"author":           ref(site.PersonID(base)),
		"publisher":        ref(site.OrganizationID(base)),
	}
	if in.Section != "" {
		m["articleSection"] = in.Section
	}
	if len(in.Keywords) > 0 {
		m["keywords"] = strings.Join(in.Keywords, ", ")
	}
	if !in.Published.IsZero() {
		m["datePublished"] = in.Published.Format("2006-01-02")
		modified := in.Modified
		if modified.IsZero() {
			modified = in.Published
		}
		m["dateModified"] = modified.Format("2006-01-02")
	}
	if in.Words > 0 {
		m["wordCount"] = in.Words
	}
	return m
}

// BlogPostRef is a post listed on the blog index.
type BlogPostRef struct {
	Path      string
	Headline  string
	Published time.Time
}

// Blog marks up the blog index.
func Blog(base, path string, posts []BlogPostRef) map[string]any {
	items := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		item := map[string]any{
			"@type":    "BlogPosting",
			"headline": p.Headline,
			"url":      site.URL(base, p.Path),
			"author":   ref(site.PersonID(base)),
		}
		if !p.Published.IsZero() {
			item["datePublished"] = p.Published.Format("2006-01-02")
		}
		items = append(items, item)
	}
	return map[string]any{
		"@context":  schemaContext,
		"@type":     "Blog",
		"@id":       site.URL(base, path) + "#blog",
		"url":       site.URL(base, path),
		"name":      site.Name + " Insights",
		"publisher": ref(site.OrganizationID(base)),
		"blogPost":  items,
	}
}

// serviceRadiusMetres is how far from a suburb centre we advertise service.
const serviceRadiusMetres = 10000

// LocationInput describes a suburb landing page.
type LocationInput struct {
	Path          string
	Name          string
	Description   string
	StreetAddress string
	Latitude      float64
	Longitude     float64
}

// LocationBusiness is a LocalBusiness for one suburb with a 10 km GeoCircle.
func LocationBusiness(base string, in LocationInput) map[string]any {
	url := site.URL(base, in.Path)
	point := geo(in.Latitude, in.Longitude)
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "LocalBusiness",
		"@id":         url + "#localbusiness",
		"name":        site.Name + " - Web Design " + in.Name,
		"description": in.Description,
		"url":         url,
		"image":       site.URL(base, site.LogoPath),
		"telephone":   site.Telephone,
		"email":       site.Email,
		"priceRange":  site.PriceRange,
		"address":     postalAddress(in.StreetAddress, in.Name),
		"geo":         point,
		"areaServed":  city(in.Name),
		"serviceArea": map[string]any{
			"@type":       "GeoCircle",
			"geoMidpoint": point,
			"geoRadius":   serviceRadiusMetres,
		},
		"parentOrganization": ref(site.OrganizationID(base)),
	}
}

// OfferCatalog lists the website packages as offers.
func OfferCatalog(base, path, name string, tiers []cms.Tier) map[string]any {
	url := site.URL(base, path)
	items := make([]map[string]any, 0, len(tiers))
	for _, t := range tiers {
		o := offer(url, t.Price)
		o["name"] = t.Name
		o["description"] = t.Tagline
		o["itemOffered"] = map[string]any{
			"@type":    "Service",
			"name":     t.Name + " Website Package",
			"provider": ref(site.OrganizationID(base)),
		}
		items = append(items, o)
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "OfferCatalog",
		"@id":             url + "#offers",
		"name":            name,
		"url":             url,
		"itemListElement": items,
	}
}

// HowTo marks up the delivery process.
func HowTo(base, path, name, description string, steps []cms.Step) map[string]any {
	url := site.URL(base, path)
	el := make([]map[string]any, 0, len(steps))
	for i, s := range steps {
		el = append(el, map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Title,
			"text":     s.Body,
		})
	}
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "HowTo",
		"@id":         url + "#howto",
		"name":        name,
		"description": description,
		"step":        el,
	}
}

// ContactPage marks up the contact page.
func ContactPage(base, path string) map[string]any {
	return map[string]any{
		"@context": schemaContext,
		"@type":    "ContactPage",
		"url":      site.URL(base, path),
		"about":    ref(site.OrganizationID(base)),
	}
}

// SpecialOffer marks up a limited-time offer ending at validThrough.
func SpecialOffer(base, path string, sp cms.Special, validThrough time.Time) map[string]any {
	url := site.URL(base, path)
	m := map[string]any{
		"@context":      schemaContext,
		"@type":         "Offer",
		"@id":           url + "#offer",
		"name":          sp.Name,
		"description":   sp.Description,
		"url":           url,
		"price":         sp.Price,
		"priceCurrency": "ZAR",
		"availability":  "https://schema.org/LimitedAvailability",
		"seller":        ref(site.OrganizationID(base)),
	}
	if !validThrough.IsZero() {
		m["validThrough"] = validThrough.Format(time.RFC3339)
	}
	if sp.Spots > 0 {
		m["inventoryLevel"] = map[string]any{"@type": "QuantitativeValue", "value": sp.Spots}
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
