// Package artraster rasterizes text art. The intensity renderer paints one
// solid block per character, colored by how dense the character looks. The
// glyph renderer redraws each character from a small bitmap font.
package artraster

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrEmptyInput is returned with a zero-area Surface when the text has no
// columns. It is a warning: the Surface is still valid.
var ErrEmptyInput = errors.New("empty input")

// Renderer turns text into a Surface. Both renderers are safe for concurrent
// use; every call works on its own Surface.
type Renderer interface {
	// Render splits text into a TextGrid and rasterizes it.
	Render(text string) (*Surface, error)
	RenderGrid(g *TextGrid) (*Surface, error)
	// Draw rasterizes g onto dst with the grid's top left corner at origin.
	Draw(dst Canvas, origin image.Point, g *TextGrid)
	// Size is the Surface size RenderGrid would produce for g.
	Size(g *TextGrid) image.Point
}

const (
	Intensity = "intensity"
	Glyph     = "glyph"
)

// NewRenderer builds the renderer called name (Intensity or Glyph) with the
// default tables. hints only apply to the glyph renderer.
func NewRenderer(name string, conf Config, hints Metrics) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Intensity:
		return NewIntensityRenderer(conf, nil)
	case Glyph:
		return NewGlyphRenderer(conf, nil, hints)
	}
	return nil, &ConfigError{Field: "renderer", Value: fmt.Sprintf("%q", name)}
}

// cellRect returns the rectangle of column c, row r on a grid of cell-sized
// steps.
func cellRect(cell image.Rectangle, c, r int) image.Rectangle {
	return cell.Add(image.Pt(cell.Dx()*c, cell.Dy()*r))
}

// render allocates a Surface of size and draws g on it unless g is empty.
func render(rd Renderer, g *TextGrid) (*Surface, error) {
	size := rd.Size(g)
	s := NewSurface(size.X, size.Y)
	if g.Empty() {
		log.Warn("empty input, nothing to draw", "rows", g.Rows(), "columns", g.Columns())
		return s, ErrEmptyInput
	}
	rd.Draw(s, image.Point{}, g)
	log.Info("rendered", "columns", g.Columns(), "rows", g.Rows(), "width", size.X, "height", size.Y)
	return s, nil
}
