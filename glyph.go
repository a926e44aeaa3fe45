package artraster

import (
	"image"
	"unicode"

	"github.com/sparques/artraster/tiles"
)

// GlyphRenderer redraws each character from a bitmap font, one FillRect per
// lit glyph pixel, in the foreground color over the background.
// Whitespace is never drawn.
type GlyphRenderer struct {
	conf    Config
	tiles   tiles.Tiler
	metrics Metrics
	pixel   int
}

// NewGlyphRenderer validates conf and hints. A nil ts uses tiles.Default.
func NewGlyphRenderer(conf Config, ts tiles.Tiler, hints Metrics) (*GlyphRenderer, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if err := hints.validate(); err != nil {
		return nil, err
	}
	if ts == nil {
		ts = tiles.Default
	}
	m, pixel, err := hints.resolve(ts.Bounds().Size(), conf.Block())
	if err != nil {
		return nil, err
	}
	return &GlyphRenderer{
		conf:    conf,
		tiles:   ts,
		metrics: m,
		pixel:   pixel,
	}, nil
}

func (gr *GlyphRenderer) Config() Config { return gr.conf }

// Metrics returns the resolved cell metrics.
func (gr *GlyphRenderer) Metrics() Metrics { return gr.metrics }

// PixelSize is the edge length of one glyph pixel on the Surface.
func (gr *GlyphRenderer) PixelSize() int { return gr.pixel }

func (gr *GlyphRenderer) Render(text string) (*Surface, error) {
	return gr.RenderGrid(NewTextGrid(text))
}

func (gr *GlyphRenderer) RenderGrid(g *TextGrid) (*Surface, error) {
	return render(gr, g)
}

// Size is columns*CellWidth wide. Rows advance by LineHeight except the
// last, which takes the full CellHeight.
func (gr *GlyphRenderer) Size(g *TextGrid) image.Point {
	if g.Rows() == 0 {
		return image.Point{}
	}
	return image.Pt(
		g.Columns()*gr.metrics.CellWidth,
		(g.Rows()-1)*gr.metrics.LineHeight+gr.metrics.CellHeight,
	)
}

func (gr *GlyphRenderer) Draw(dst Canvas, origin image.Point, g *TextGrid) {
	dst = Offset(dst, origin)
	fg := gr.conf.Foreground

	dst.FillRect(image.Rectangle{Max: gr.Size(g)}, gr.conf.Background)
	for y := range g.Rows() {
		for x := range g.Columns() {
			r := g.At(x, y)
			if unicode.IsSpace(r) {
				continue
			}
			pt := image.Pt(x*gr.metrics.CellWidth, y*gr.metrics.LineHeight)
			gr.tiles.DrawGlyph(r, dst, pt, gr.pixel, fg)
		}
	}
}
