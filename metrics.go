package artraster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
)

// Metrics sizes the cells of the glyph renderer. Zero fields are derived
// from the glyph size and the configured pixel size.
type Metrics struct {
	CellWidth  int // Horizontal advance per column.
	CellHeight int // Height of the last row.
	LineHeight int // Vertical advance per row.
}

// MetricsFromFace derives cell metrics from a font face so that rendered art
// can be laid exactly over the same text drawn with face.
func MetricsFromFace(face font.Face) Metrics {
	fm := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv, _ = face.GlyphAdvance(' ')
	}
	return Metrics{
		CellWidth:  adv.Ceil(),
		CellHeight: (fm.Ascent + fm.Descent).Ceil(),
		LineHeight: fm.Height.Ceil(),
	}
}

func (m Metrics) validate() error {
	switch {
	case m.CellWidth < 0:
		return &ConfigError{Field: "cell width", Value: m.CellWidth}
	case m.CellHeight < 0:
		return &ConfigError{Field: "cell height", Value: m.CellHeight}
	case m.LineHeight < 0:
		return &ConfigError{Field: "line height", Value: m.LineHeight}
	}
	return nil
}

// resolve fills in the zero fields of m for glyphs of the given size and
// returns the edge length of one glyph pixel. The pixel shrinks below block
// when a hinted cell or line is too small to hold a glyph at full size.
// Hints smaller than one unscaled glyph are rejected: the glyph would spill
// into the neighbouring cells.
func (m Metrics) resolve(glyph image.Point, block int) (Metrics, int, error) {
	switch {
	case m.CellWidth > 0 && m.CellWidth < glyph.X:
		return m, 0, &ConfigError{Field: "cell width", Value: m.CellWidth, Err: fmt.Errorf("glyphs are %d pixels wide", glyph.X)}
	case m.CellHeight > 0 && m.CellHeight < glyph.Y:
		return m, 0, &ConfigError{Field: "cell height", Value: m.CellHeight, Err: fmt.Errorf("glyphs are %d pixels tall", glyph.Y)}
	case m.LineHeight > 0 && m.LineHeight < glyph.Y:
		return m, 0, &ConfigError{Field: "line height", Value: m.LineHeight, Err: fmt.Errorf("glyphs are %d pixels tall", glyph.Y)}
	}

	pixel := block
	if m.CellWidth > 0 {
		pixel = min(pixel, m.CellWidth/glyph.X)
	}
	if m.CellHeight > 0 {
		pixel = min(pixel, m.CellHeight/glyph.Y)
	}
	if m.LineHeight > 0 {
		pixel = min(pixel, m.LineHeight/glyph.Y)
	}

	if m.CellWidth == 0 {
		m.CellWidth = glyph.X * pixel
	}
	if m.CellHeight == 0 {
		m.CellHeight = glyph.Y * pixel
	}
	if m.LineHeight == 0 {
		m.LineHeight = m.CellHeight
	}
	return m, pixel, nil
}
