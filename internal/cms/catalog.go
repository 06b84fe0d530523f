package cms

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FAQ is one question on an accordion and in FAQPage markup.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Stat is a headline number with its caption.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Card is an icon, title and paragraph block.
type Card struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Step is a numbered stage with optional bullet points.
type Step struct {
	Title    string   `yaml:"title"`
	Duration string   `yaml:"duration"`
	Body     string   `yaml:"body"`
	Bullets  []string `yaml:"bullets"`
}

// Link is an internal cross link.
type Link struct {
	Href        string `yaml:"href"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// CTA closes a landing page.
type CTA struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Label   string `yaml:"label"`
}

// Service is one /services/{slug} page.
type Service struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	ServiceType string   `yaml:"service_type"`
	Audience    string   `yaml:"audience"`
	Price       int      `yaml:"price"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Summary     string   `yaml:"summary"`
	Keywords    []string `yaml:"keywords"`
	Headline    string   `yaml:"headline"`
	Intro       string   `yaml:"intro"`
	Stats       []Stat   `yaml:"stats"`
	Levers      []Card   `yaml:"levers"`
	Steps       []Step   `yaml:"steps"`
	FAQs        []FAQ    `yaml:"faqs"`
	Links       []Link   `yaml:"links"`
	CTA         CTA      `yaml:"cta"`
}

// Path is the page URL path.
func (s Service) Path() string { return "/services/" + s.Slug }

// Area is a neighbourhood served from a location page.
type Area struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Location is one /locations/{slug} landing page.
type Location struct {
	Slug          string   `yaml:"slug"`
	Name          string   `yaml:"name"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Summary       string   `yaml:"summary"`
	Keywords      []string `yaml:"keywords"`
	Headline      string   `yaml:"headline"`
	Intro         string   `yaml:"intro"`
	StreetAddress string   `yaml:"street_address"`
	Latitude      float64  `yaml:"latitude"`
	Longitude     float64  `yaml:"longitude"`
	Reasons       []Card   `yaml:"reasons"`
	Areas         []Area   `yaml:"areas"`
	Offerings     []Step   `yaml:"offerings"`
	CTA           CTA      `yaml:"cta"`
}

// Path is the page URL path.
func (l Location) Path() string { return "/locations/" + l.Slug }

// Industry is one /industries/{slug} page.
type Industry struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	ServiceType string   `yaml:"service_type"`
	Audience    string   `yaml:"audience"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Summary     string   `yaml:"summary"`
	Keywords    []string `yaml:"keywords"`
	Headline    string   `yaml:"headline"`
	Intro       string   `yaml:"intro"`
	PainPoints  []Card   `yaml:"pain_points"`
	Solutions   []Card   `yaml:"solutions"`
	FAQs        []FAQ    `yaml:"faqs"`
	CTA         CTA      `yaml:"cta"`
}

// Path is the page URL path.
func (i Industry) Path() string { return "/industries/" + i.Slug }

// Tier is a once-off website package.
type Tier struct {
	Slug     string   `yaml:"slug"`
	Name     string   `yaml:"name"`
	Price    int      `yaml:"price"`
	Tagline  string   `yaml:"tagline"`
	Features []string `yaml:"features"`
	CTALabel string   `yaml:"cta_label"`
	Popular  bool     `yaml:"popular"`
}

// Pricing is the package table with its FAQ.
type Pricing struct {
	Headline string `yaml:"headline"`
	Intro    string `yaml:"intro"`
	Tiers    []Tier `yaml:"tiers"`
	Footnote string `yaml:"footnote"`
	FAQs     []FAQ  `yaml:"faqs"`
}

// Popular returns the highlighted tier.
func (p Pricing) Popular() (Tier, bool) {
	for _, t := range p.Tiers {
		if t.Popular {
			return t, true
		}
	}
	return Tier{}, false
}

// Special is the limited December offer.
type Special struct {
	Name        string   `yaml:"name"`
	Badge       string   `yaml:"badge"`
	Headline    string   `yaml:"headline"`
	Intro       string   `yaml:"intro"`
	Description string   `yaml:"description"`
	Price       int      `yaml:"price"`
	PriceNote   string   `yaml:"price_note"`
	Spots       int      `yaml:"spots"`
	Features    []Step   `yaml:"features"`
	Included    []string `yaml:"included"`
	Steps       []Step   `yaml:"steps"`
	Ideal       []string `yaml:"ideal"`
	NotSuitable []string `yaml:"not_suitable"`
	FAQs        []FAQ    `yaml:"faqs"`
}

// Process is the delivery process page.
type Process struct {
	Headline string `yaml:"headline"`
	Intro    string `yaml:"intro"`
	Steps    []Step `yaml:"steps"`
	FAQs     []FAQ  `yaml:"faqs"`
}

// Catalog is every structured page source, loaded once from YAML.
type Catalog struct {
	Services   []Service
	Locations  []Location
	Industries []Industry
	Pricing    Pricing
	Special    Special
	Process    Process
}

const catalogDir = "catalog"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// South Africa's bounding box, generous on every side.
const (
	minLatitude  = -35.0
	maxLatitude  = -22.0
	minLongitude = 16.0
	maxLongitude = 33.0
)

// LoadCatalog parses catalog/*.yaml from fsys and validates the result.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	var (
		c        Catalog
		services struct {
			Services []Service `yaml:"services"`
		}
		locations struct {
			Locations []Location `yaml:"locations"`
		}
		industries struct {
			Industries []Industry `yaml:"industries"`
		}
	)
	files := []struct {
		name string
		dst  any
	}{
		{"services.yaml", &services},
		{"locations.yaml", &locations},
		{"industries.yaml", &industries},
		{"pricing.yaml", &c.Pricing},
		{"special.yaml", &c.Special},
		{"process.yaml", &c.Process},
	}
	for _, f := range files {
		if err := decodeYAML(fsys, path.Join(catalogDir, f.name), f.dst); err != nil {
			return nil, err
		}
	}
	c.Services = services.Services
	c.Locations = locations.Locations
	c.Industries = industries.Industries

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeYAML(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("cms: read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cms: parse %s: %w", name, err)
	}
	return nil
}

// CatalogError lists every problem found while validating a catalog.
type CatalogError struct {
	Problems []string
}

func (e *CatalogError) Error() string {
	return "cms: invalid catalog: " + strings.Join(e.Problems, "; ")
}

func (c *Catalog) validate() error {
	var problems []string
	checkSlugs := func(kind string, slugs []string) {
		seen := make(map[string]struct{}, len(slugs))
		for i, s := range slugs {
			switch {
			case s == "":
				problems = append(problems, fmt.Sprintf("%s[%d]: empty slug", kind, i))
			case !slugPattern.MatchString(s):
				problems = append(problems, fmt.Sprintf("%s[%d]: malformed slug %q", kind, i, s))
			}
			if _, dup := seen[s]; dup && s != "" {
				problems = append(problems, fmt.Sprintf("%s: duplicate slug %q", kind, s))
			}
			seen[s] = struct{}{}
		}
	}

	slugs := make([]string, 0, len(c.Services))
	for _, s := range c.Services {
		slugs = append(slugs, s.Slug)
	}
	checkSlugs("services", slugs)

	slugs = slugs[:0]
	for _, l := range c.Locations {
		slugs = append(slugs, l.Slug)
		if l.Latitude < minLatitude || l.Latitude > maxLatitude || l.Longitude < minLongitude || l.Longitude > maxLongitude {
			problems = append(problems, fmt.Sprintf("locations: %q coordinates %.4f,%.4f outside South Africa", l.Slug, l.Latitude, l.Longitude))
		}
	}
	checkSlugs("locations", slugs)

	slugs = slugs[:0]
	for _, i := range c.Industries {
		slugs = append(slugs, i.Slug)
	}
	checkSlugs("industries", slugs)

	popular := 0
	for _, t := range c.Pricing.Tiers {
		if t.Popular {
			popular++
		}
	}
	if popular != 1 {
		problems = append(problems, fmt.Sprintf("pricing: want exactly one popular tier, got %d", popular))
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return &CatalogError{Problems: problems}
	}
	return nil
}

// Service looks up a service page by slug.
func (c *Catalog) Service(slug string) (Service, error) {
	for _, s := range c.Services {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Service{}, ErrNotFound
}

// Location looks up a location page by slug.
func (c *Catalog) Location(slug string) (Location, error) {
	for _, l := range c.Locations {
		if l.Slug == slug {
			return l, nil
		}
	}
	return Location{}, ErrNotFound
}

// Industry looks up an industry page by slug.
func (c *Catalog) Industry(slug string) (Industry, error) {
	for _, i := range c.Industries {
		if i.Slug == slug {
			return i, nil
		}
	}
	return Industry{}, ErrNotFound
}

// Labels maps path segments to display names for breadcrumbs.
func (c *Catalog) Labels() map[string]string {
	out := make(map[string]string, len(c.Services)+len(c.Locations)+len(c.Industries))
	for _, s := range c.Services {
		out[s.Slug] = s.Name
	}
	for _, l := range c.Locations {
		out[l.Slug] = l.Name
	}
	for _, i := range c.Industries {
		out[i.Slug] = i.Name
	}
	return out
}
