package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endpointmedia.co.za/web/content"
	"endpointmedia.co.za/web/internal/cms"
	"endpointmedia.co.za/web/internal/config"
	"endpointmedia.co.za/web/internal/nav"
	"endpointmedia.co.za/web/internal/seo"
)

const base = "https://www.endpointmedia.co.za"

func TestAnalyticsSendTo(t *testing.T) {
	a := NewAnalytics(config.AnalyticsConfig{
		GoogleAdsID: "AW-17744075656",
		LabelForm:   " abcDEF ",
		LabelPhone:  "",
	})
	assert.Equal(t, "AW-17744075656/abcDEF", a.SendTo(ConversionForm))
	assert.Empty(t, a.SendTo(ConversionPhone))
	assert.Empty(t, a.SendTo(ConversionWhatsApp))
	assert.True(t, a.Enabled())
	assert.Equal(t, "AW-17744075656", a.TagID())

	noAds := NewAnalytics(config.AnalyticsConfig{LabelForm: "abc"})
	assert.Empty(t, noAds.SendTo(ConversionForm))
	assert.False(t, noAds.Enabled())

	ga := NewAnalytics(config.AnalyticsConfig{GA4MeasurementID: "G-TEST", GoogleAdsID: "AW-1"})
	assert.Equal(t, "G-TEST", ga.TagID())
}

func newBuilder(t *testing.T, production bool) Builder {
	t.Helper()
	b, err := NewBuilder(Builder{
		BaseURL:     base,
		Environment: "test",
		Production:  production,
		Labels:      map[string]string{"sandton": "Sandton"},
		Now:         func() time.Time { return time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return b
}

func TestBuilderPage(t *testing.T) {
	b := newBuilder(t, true)
	r := httptest.NewRequest(http.MethodGet, "/locations/sandton", nil)

	p, err := b.Page(r, PageInput{
		Meta:    seo.MetaInput{Title: "Web Design Sandton", Description: "desc"},
		Schemas: []map[string]any{nil, {"@type": "LocalBusiness", "name": "</script>"}},
	})
	require.NoError(t, err)

	assert.Equal(t, base+"/locations/sandton", p.Meta.Canonical)
	assert.Equal(t, "index, follow", p.Meta.Robots)
	assert.Len(t, p.SiteJSONLD, 4)
	require.Len(t, p.JSONLD, 2)
	assert.NotContains(t, p.JSONLD[0], "</script>")
	assert.Contains(t, p.JSONLD[1], `"BreadcrumbList"`)
	require.Len(t, p.Breadcrumbs, 3)
	assert.Equal(t, "Sandton", p.Breadcrumbs[2].Label)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, "/contact", p.Contact.Href)

	for _, item := range p.Nav {
		assert.False(t, item.Active, item.Href)
	}
}

func TestBuilderPageWithoutBreadcrumbs(t *testing.T) {
	b := newBuilder(t, false)
	r := httptest.NewRequest(http.MethodGet, "/december-special", nil)

	p, err := b.Page(r, PageInput{Meta: seo.MetaInput{Title: "Special"}, NoBreadcrumbs: true})
	require.NoError(t, err)
	assert.Empty(t, p.Breadcrumbs)
	assert.Empty(t, p.JSONLD)
	assert.Equal(t, "noindex, nofollow", p.Meta.Robots)

	home, err := b.Page(httptest.NewRequest(http.MethodGet, "/", nil), PageInput{})
	require.NoError(t, err)
	assert.Empty(t, home.Breadcrumbs)
	assert.Equal(t, base, home.Meta.Canonical)
	assert.True(t, home.Nav[0].Active)
}

func TestBuilderPageExplicitCrumbs(t *testing.T) {
	b := newBuilder(t, true)
	r := httptest.NewRequest(http.MethodGet, "/about/author/frank-smit", nil)

	p, err := b.Page(r, PageInput{
		Meta: seo.MetaInput{Title: "Frank Smit"},
		Crumbs: []nav.Crumb{
			{Href: "/", Label: "Home"},
			{Href: "/about/author/frank-smit", Label: "Frank Smit", Active: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, p.Breadcrumbs, 2)
	assert.Equal(t, "Frank Smit", p.Breadcrumbs[1].Label)
	require.Len(t, p.JSONLD, 1)
	assert.NotContains(t, p.JSONLD[0], base+"/about/author\"")
	assert.NotContains(t, p.JSONLD[0], base+"/about\"")
	assert.Contains(t, p.JSONLD[0], base+"/about/author/frank-smit")
}

func TestBuildHomeData(t *testing.T) {
	cat, err := cms.LoadCatalog(content.FS)
	require.NoError(t, err)
	client := cms.NewClient("", content.FS)
	cases, err := client.Articles(context.Background(), cms.KindCaseStudy)
	require.NoError(t, err)

	home := BuildHomeData(cat, cases)
	assert.Len(t, home.CaseStudies, 3)
	assert.Len(t, home.Tiers, 3)
	assert.Len(t, home.Industries, 5)
	assert.True(t, strings.HasPrefix(home.CaseStudies[0].Path(), "/case-studies/"))
}

func TestCatalogLinks(t *testing.T) {
	cat, err := cms.LoadCatalog(content.FS)
	require.NoError(t, err)

	services, locations := CatalogLinks(cat)
	require.Len(t, services, 14)
	require.Len(t, locations, 11)
	assert.Equal(t, "/services/website-redesign", services[0].Href)
	assert.Equal(t, "/locations/sandton", locations[0].Href)
}
