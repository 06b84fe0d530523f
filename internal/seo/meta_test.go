package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const base = "https://www.endpointmedia.co.za"

func TestBuildCanonicalAndAlternates(t *testing.T) {
	m := Build(base+"/", MetaInput{Title: "Pricing", Description: "Packages", Path: "/pricing/"})

	assert.Equal(t, base+"/pricing", m.Canonical)
	assert.Equal(t, []Alternate{
		{HrefLang: "en-ZA", Href: base + "/pricing"},
		{HrefLang: "en", Href: base + "/pricing"},
		{HrefLang: "x-default", Href: base + "/pricing"},
	}, m.Alternates)
	assert.Equal(t, "index, follow", m.Robots)
}

func TestBuildHomeCanonicalIsBase(t *testing.T) {
	m := Build(base, MetaInput{Title: "Home", Path: "/"})
	assert.Equal(t, base, m.Canonical)

	m = Build(base, MetaInput{Title: "Home"})
	assert.Equal(t, base, m.Canonical)
}

func TestBuildOpenGraphDefaults(t *testing.T) {
	m := Build(base, MetaInput{Title: "Local SEO", Description: "Rank", Path: "/services/local-seo"})

	assert.Equal(t, "website", m.OG.Type)
	assert.Equal(t, "Endpoint Media", m.OG.SiteName)
	assert.Equal(t, "en_ZA", m.OG.Locale)
	assert.Equal(t, Image{URL: base + "/images/og.png", Width: 1200, Height: 630, Alt: "Local SEO"}, m.OG.Image)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	assert.Equal(t, base+"/images/og.png", m.Twitter.Image)
}

func TestBuildOverrides(t *testing.T) {
	m := Build(base, MetaInput{
		Title:    "Post",
		Path:     "/blog/x",
		Image:    "/images/post.jpg",
		Type:     "article",
		NoIndex:  true,
		Keywords: []string{"a", "b"},
	})

	assert.Equal(t, "article", m.OG.Type)
	assert.Equal(t, base+"/images/post.jpg", m.OG.Image.URL)
	assert.Equal(t, "noindex, nofollow", m.Robots)
	assert.Equal(t, "a, b", m.KeywordList())
}
