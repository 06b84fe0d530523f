package ogimage

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestPNGDrawsCard(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	b, err := r.PNG("The True Cost of a Website in Johannesburg")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())

	cr, cg, cb, _ := img.At(Width/2, 4).RGBA()
	assert.Equal(t, [3]uint32{0x14, 0xb8, 0xa6}, [3]uint32{cr >> 8, cg >> 8, cb >> 8}, "accent bar")
	cr, cg, cb, _ = img.At(Width-5, Height-5).RGBA()
	assert.Equal(t, [3]uint32{0x11, 0x18, 0x27}, [3]uint32{cr >> 8, cg >> 8, cb >> 8}, "background")

	again, err := r.PNG("  the true cost of a website in   johannesburg ")
	require.NoError(t, err)
	assert.Equal(t, &b[0], &again[0], "same title reuses the cached card")
}

func TestWrapLimitsLines(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	short := wrap(r.title, "WIX VS WORDPRESS", Width-2*padding, maxLines)
	assert.Equal(t, []string{"WIX VS WORDPRESS"}, short)

	long := wrap(r.title, strings.Repeat("JOHANNESBURG WEBSITE PRICES ", 12), Width-2*padding, maxLines)
	require.Len(t, long, maxLines)
	assert.True(t, strings.HasSuffix(long[maxLines-1], "…"))
	for _, l := range long {
		assert.LessOrEqual(t, font.MeasureString(r.title, l).Ceil(), Width-2*padding, l)
	}
}
