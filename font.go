package menu

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// glyphInfo records where a rasterized glyph lives in the atlas and how
// to position it relative to the pen.
type glyphInfo struct {
	u0, v0, u1, v1 float32 // normalized texture coordinates
	w, h           float32 // glyph bitmap size in pixels
	offX, offY     float32 // bitmap offset from the pen's top-left
	advance        float32
}

// Atlas is a rasterized font: an alpha bitmap holding every glyph of a
// face plus the lookup table to measure and lay out text. Backends
// upload Image once and report its texture ID; DrawList.AddText turns
// strings into glyph quads against that texture.
type Atlas struct {
	// Image is the alpha-only glyph bitmap. Backends treat the alpha
	// channel as coverage and tint with the vertex color.
	Image *image.Alpha

	face       font.Face
	glyphs     map[rune]glyphInfo
	lineHeight float32
	ascent     float32
}

// asciiRunes returns the printable ASCII range, the default atlas content.
func asciiRunes() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return runes
}

// NewAtlas rasterizes the given runes from a face into an atlas.
// A nil rune slice selects printable ASCII.
func NewAtlas(face font.Face, runes []rune) *Atlas {
	if runes == nil {
		runes = asciiRunes()
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineH := (metrics.Ascent + metrics.Descent).Ceil()

	// Measure the widest glyph to size uniform cells.
	const cols = 16
	cellW := 1
	for _, r := range runes {
		b, _, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		if w := (b.Max.X - b.Min.X).Ceil() + 2; w > cellW {
			cellW = w
		}
	}
	cellH := lineH + 2
	rows := (len(runes) + cols - 1) / cols

	img := image.NewAlpha(image.Rect(0, 0, cols*cellW, rows*cellH))
	atlasW := float32(img.Bounds().Dx())
	atlasH := float32(img.Bounds().Dy())

	a := &Atlas{
		Image:      img,
		face:       face,
		glyphs:     make(map[rune]glyphInfo, len(runes)),
		lineHeight: float32(lineH),
		ascent:     float32(ascent),
	}

	src := image.White
	for i, r := range runes {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}

		ox := (i % cols) * cellW
		oy := (i / cols) * cellH

		// Shift the pen so the glyph bitmap starts at the cell origin.
		dot := fixed.Point26_6{
			X: fixed.I(ox) - b.Min.X,
			Y: fixed.I(oy) + fixed.I(ascent),
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, src, image.Point{}, mask, maskp, draw.Over)

		a.glyphs[r] = glyphInfo{
			u0:      float32(dr.Min.X) / atlasW,
			v0:      float32(dr.Min.Y) / atlasH,
			u1:      float32(dr.Max.X) / atlasW,
			v1:      float32(dr.Max.Y) / atlasH,
			w:       float32(dr.Dx()),
			h:       float32(dr.Dy()),
			offX:    float32(b.Min.X.Floor()),
			offY:    float32(dr.Min.Y - oy),
			advance: float32(adv.Ceil()),
		}
	}

	return a
}

// DefaultAtlas builds an atlas from the built-in fixed-width bitmap face.
// It needs no font files and is the Theme default.
func DefaultAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13, nil)
}

// LoadTTFAtlas parses TTF/OTF data and rasterizes an atlas at the given
// pixel size.
func LoadTTFAtlas(data []byte, size float64) (*Atlas, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("menu: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("menu: create face: %w", err)
	}
	return NewAtlas(face, nil), nil
}

// GoRegularAtlas rasterizes the embedded Go Regular face at the given
// pixel size. Convenient for hosts that ship no font of their own.
func GoRegularAtlas(size float64) (*Atlas, error) {
	return LoadTTFAtlas(goregular.TTF, size)
}

// LineHeight returns the face line height in pixels.
func (a *Atlas) LineHeight() float32 {
	return a.lineHeight
}

// Measure returns the pixel dimensions of a single line of text.
func (a *Atlas) Measure(text string) Vec2 {
	var w float32
	prev := rune(-1)
	for _, r := range text {
		g, ok := a.glyphs[r]
		if !ok {
			g, ok = a.glyphs['?']
			if !ok {
				continue
			}
		}
		if prev >= 0 {
			w += float32(a.face.Kern(prev, r).Round())
		}
		w += g.advance
		prev = r
	}
	return Vec2{X: w, Y: a.lineHeight}
}

// Quads generates glyph quads for text with its top-left corner at (x, y).
func (a *Atlas) Quads(text string, x, y float32) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(text))
	pen := x
	prev := rune(-1)
	for _, r := range text {
		g, ok := a.glyphs[r]
		if !ok {
			g, ok = a.glyphs['?']
			if !ok {
				continue
			}
		}
		if prev >= 0 {
			pen += float32(a.face.Kern(prev, r).Round())
		}
		if g.w > 0 && g.h > 0 {
			qx := pen + g.offX
			qy := y + g.offY
			quads = append(quads, GlyphQuad{
				X0: qx, Y0: qy,
				X1: qx + g.w, Y1: qy + g.h,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance
		prev = r
	}
	return quads
}
