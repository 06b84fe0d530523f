package handlers

import (
	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/nav"
)

const homeCaseStudies = 3

// HomeData is the view model for the landing page sections that come from
// the catalog rather than from fixed copy.
type HomeData struct {
	Industries  []cms.Industry
	Process     []cms.Step
	CaseStudies []cms.Article
	Tiers       []cms.Tier
	Services    []cms.Service
}

// BuildHomeData picks what the landing page shows from the catalog and the
// case study list.
func BuildHomeData(cat *cms.Catalog, cases []cms.Article) HomeData {
	if len(cases) > homeCaseStudies {
		cases = cases[:homeCaseStudies]
	}
	return HomeData{
		Industries:  cat.Industries,
		Process:     cat.Process.Steps,
		CaseStudies: cases,
		Tiers:       cat.Pricing.Tiers,
		Services:    cat.Services,
	}
}

// CatalogLinks turns the service and location catalogs into footer links.
func CatalogLinks(cat *cms.Catalog) (services, locations []nav.Link) {
	for _, s := range cat.Services {
		services = append(services, nav.Link{Href: s.Path(), Title: s.Name, Description: s.Summary})
	}
	for _, l := range cat.Locations {
		locations = append(locations, nav.Link{Href: l.Path(), Title: l.Name, Description: l.Summary})
	}
	return services, locations
}
