// Package ogimage draws the 1200x630 social preview cards for blog posts.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Card dimensions match site.OGImageW and site.OGImageH.
const (
	Width  = 1200
	Height = 630
)

const (
	padding     = 80
	accentBar   = 16
	maxLines    = 4
	brandText   = "Endpoint.Media"
	taglineText = "Expert Insights for Johannesburg Businesses"
)

var (
	background = color.RGBA{0x11, 0x18, 0x27, 0xff}
	accent     = color.RGBA{0x14, 0xb8, 0xa6, 0xff}
	muted      = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
)

// Renderer draws cards and keeps the encoded PNGs. Font faces are not safe
// for concurrent use, so drawing is serialised.
type Renderer struct {
	mu      sync.Mutex
	brand   font.Face
	title   font.Face
	tagline font.Face
	cache   map[string][]byte
}

// New parses the embedded Go fonts.
func New() (*Renderer, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ogimage: parse bold font: %w", err)
	}
	medium, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("ogimage: parse medium font: %w", err)
	}
	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
	r := &Renderer{cache: make(map[string][]byte)}
	if r.brand, err = face(bold, 30); err != nil {
		return nil, err
	}
	if r.title, err = face(bold, 64); err != nil {
		return nil, err
	}
	if r.tagline, err = face(medium, 30); err != nil {
		return nil, err
	}
	return r, nil
}

// PNG returns the encoded card for title.
func (r *Renderer) PNG(title string) ([]byte, error) {
	title = strings.ToUpper(strings.Join(strings.Fields(title), " "))

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.cache[title]; ok {
		return b, nil
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, Width, accentBar), image.NewUniform(accent), image.Point{}, draw.Src)

	lines := wrap(r.title, title, Width-2*padding, maxLines)
	titleLH := lineHeight(r.title, 1.1)
	brandLH := lineHeight(r.brand, 1.2)
	taglineLH := lineHeight(r.tagline, 1.2)
	block := brandLH + 40 + titleLH*len(lines) + 30 + taglineLH

	y := (Height - block) / 2
	y = drawLine(img, r.brand, accent, brandText, y, brandLH) + 40
	for _, l := range lines {
		y = drawLine(img, r.title, color.White, l, y, titleLH)
	}
	drawLine(img, r.tagline, muted, taglineText, y+30, taglineLH)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ogimage: encode: %w", err)
	}
	b := buf.Bytes()
	r.cache[title] = b
	return b, nil
}

func lineHeight(f font.Face, factor float64) int {
	m := f.Metrics()
	return int(float64((m.Ascent + m.Descent).Ceil()) * factor)
}

// drawLine writes text with its line box starting at top and returns the
// top of the next line.
func drawLine(dst draw.Image, f font.Face, c color.Color, text string, top, lh int) int {
	m := f.Metrics()
	gap := lh - (m.Ascent + m.Descent).Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(padding, top+gap/2+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	return top + lh
}

// wrap breaks text into at most limit lines of width px, ending a truncated
// last line with an ellipsis.
func wrap(f font.Face, text string, width, limit int) []string {
	fits := func(s string) bool { return font.MeasureString(f, s).Ceil() <= width }
	var lines []string
	cur := ""
	for _, w := range strings.Fields(text) {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if fits(next) || cur == "" {
			cur = next
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) <= limit {
		return lines
	}
	lines = lines[:limit]
	last := lines[limit-1]
	for last != "" && !fits(last+"…") {
		i := strings.LastIndex(last, " ")
		if i < 0 {
			break
		}
		last = last[:i]
	}
	lines[limit-1] = last + "…"
	return lines
}
