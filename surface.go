package artraster

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is what the renderers draw on. Every cell or glyph pixel is a single
// FillRect call.
type Canvas interface {
	draw.Image
	FillRect(r image.Rectangle, c color.Color)
}

// Surface is the raster a render produces. It belongs to the caller once
// returned; renderers keep no reference to it.
type Surface struct {
	*image.RGBA
}

func NewSurface(w, h int) *Surface {
	return &Surface{image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillRect replaces every pixel of r with c.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	// draw.Draw only takes its fast path for *image.Uniform sources
	draw.Draw(s.RGBA, r, image.NewUniform(c), image.Point{}, draw.Src)
}
