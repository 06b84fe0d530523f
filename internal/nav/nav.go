package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"endpointmedia.co.za/web/internal/seo"
	"endpointmedia.co.za/web/internal/site"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition. The contact CTA sits apart.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/services", Label: "Services"},
	{Path: "/process", Label: "Our Process"},
	{Path: "/case-studies", Label: "Case Studies"},
	{Path: "/pricing", Label: "Pricing"},
	{Path: "/blog", Label: "Blog"},
}

// Contact is the header call to action.
var Contact = Item{Path: "/contact", Label: "Get a Free Audit"}

// sections label top-level segments that are not all in Main.
var sections = map[string]string{
	"services":     "Services",
	"locations":    "Locations",
	"industries":   "Industries",
	"case-studies": "Case Studies",
	"blog":         "Blog",
	"pricing":      "Pricing",
	"process":      "Our Process",
	"contact":      "Contact",
	"about":        "About",
	"author":       "Author",
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/blog" or "/blog/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. Known sections
// use fixed labels, deeper segments are looked up in labels (catalog names)
// and anything else is title-cased from the slug.
func Breadcrumbs(currentPath string, labels map[string]string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	clean := path.Clean("/" + strings.TrimSpace(currentPath))
	if clean == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, seg := range parts {
		href += "/" + seg
		label, ok := labels[seg]
		if !ok || i == 0 {
			if section, known := sections[seg]; known {
				label, ok = section, true
			}
		}
		if !ok {
			label = titleFromSegment(seg)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

// BreadcrumbItems converts crumbs to absolute schema.org list items.
func BreadcrumbItems(base string, crumbs []Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: site.URL(base, c.Href)})
	}
	return items
}

var titleCaser = cases.Title(language.English)

func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return titleCaser.String(strings.TrimSpace(s))
}
