package cms

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endpointmedia.co.za/web/content"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	c, err := LoadCatalog(content.FS)
	require.NoError(t, err)

	assert.Len(t, c.Services, 14)
	assert.Len(t, c.Locations, 11)
	assert.Len(t, c.Industries, 5)
	assert.Equal(t, "website-redesign", c.Services[0].Slug)
	assert.Equal(t, "sandton", c.Locations[0].Slug)

	popular, ok := c.Pricing.Popular()
	require.True(t, ok)
	assert.Equal(t, "Growth Engine", popular.Name)
	assert.Equal(t, 10000, popular.Price)

	require.Len(t, c.Pricing.Tiers, 3)
	assert.Equal(t, []int{5500, 10000, 15000}, []int{c.Pricing.Tiers[0].Price, c.Pricing.Tiers[1].Price, c.Pricing.Tiers[2].Price})

	assert.Equal(t, 1500, c.Special.Price)
	assert.Equal(t, 5, c.Special.Spots)
	assert.Len(t, c.Special.Features, 3)
	assert.Len(t, c.Process.Steps, 4)
}

func TestCatalogLookups(t *testing.T) {
	c, err := LoadCatalog(content.FS)
	require.NoError(t, err)

	s, err := c.Service("local-seo")
	require.NoError(t, err)
	assert.Equal(t, "/services/local-seo", s.Path())

	l, err := c.Location("meyersdal")
	require.NoError(t, err)
	assert.Equal(t, "/locations/meyersdal", l.Path())

	i, err := c.Industry("law-firms")
	require.NoError(t, err)
	assert.Equal(t, "/industries/law-firms", i.Path())

	_, err = c.Service("benoni")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Location("benoni")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Industry("benoni")
	assert.ErrorIs(t, err, ErrNotFound)

	labels := c.Labels()
	assert.Equal(t, "Sandton", labels["sandton"])
	assert.Equal(t, "Law Firms", labels["law-firms"])
}

func minimalCatalog(services, locations, pricing string) fstest.MapFS {
	return fstest.MapFS{
		"catalog/services.yaml":   {Data: []byte(services)},
		"catalog/locations.yaml":  {Data: []byte(locations)},
		"catalog/industries.yaml": {Data: []byte("industries: []\n")},
		"catalog/pricing.yaml":    {Data: []byte(pricing)},
		"catalog/special.yaml":    {Data: []byte("name: Special\n")},
		"catalog/process.yaml":    {Data: []byte("headline: Process\n")},
	}
}

const onePopular = `tiers:
  - slug: a
    name: A
    popular: true
`

func TestLoadCatalogValidation(t *testing.T) {
	fsys := minimalCatalog(
		"services:\n  - slug: Bad_Slug\n  - slug: seo\n  - slug: seo\n  - slug: ''\n",
		"locations:\n  - slug: london\n    latitude: 51.5\n    longitude: -0.12\n",
		"tiers:\n  - slug: a\n  - slug: b\n",
	)

	_, err := LoadCatalog(fsys)
	require.Error(t, err)

	var ce *CatalogError
	require.True(t, errors.As(err, &ce))
	joined := strings.Join(ce.Problems, "\n")
	assert.Contains(t, joined, `malformed slug "Bad_Slug"`)
	assert.Contains(t, joined, `duplicate slug "seo"`)
	assert.Contains(t, joined, "empty slug")
	assert.Contains(t, joined, `"london" coordinates`)
	assert.Contains(t, joined, "exactly one popular tier, got 0")
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	fsys := minimalCatalog("services:\n  - slug: seo\n    colour: red\n", "locations: []\n", onePopular)

	_, err := LoadCatalog(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services.yaml")
}

func TestLoadCatalogMissingFile(t *testing.T) {
	fsys := minimalCatalog("services: []\n", "locations: []\n", onePopular)
	delete(fsys, "catalog/process.yaml")

	_, err := LoadCatalog(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog/process.yaml")
}

func TestLoadCatalogEmptyFileAllowed(t *testing.T) {
	fsys := minimalCatalog("", "", onePopular)

	c, err := LoadCatalog(fsys)
	require.NoError(t, err)
	assert.Empty(t, c.Services)
}
