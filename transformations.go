package artraster

import (
	"image"
	"image/color"

	"golang.org/x/exp/constraints"
)

// canvasTranslate works a bit like the SubImage() method on various image
// package objects. However, it wraps a Canvas allowing calls to Set(), At()
// and FillRect(). This doesn't restrict any pixel operations, so the margins
// still remain accessible.
type canvasTranslate struct {
	Canvas
	offset image.Point
}

// Offset returns a Canvas that shifts all drawing on dst by origin, so that
// (0, 0) lands on origin.
func Offset(dst Canvas, origin image.Point) Canvas {
	if origin == (image.Point{}) {
		return dst
	}
	if ct, ok := dst.(*canvasTranslate); ok {
		return &canvasTranslate{Canvas: ct.Canvas, offset: ct.offset.Add(origin)}
	}
	return &canvasTranslate{Canvas: dst, offset: origin}
}

func (ct *canvasTranslate) Set(x, y int, c color.Color) {
	ct.Canvas.Set(x+ct.offset.X, y+ct.offset.Y, c)
}

func (ct *canvasTranslate) At(x, y int) color.Color {
	return ct.Canvas.At(x+ct.offset.X, y+ct.offset.Y)
}

func (ct *canvasTranslate) Bounds() image.Rectangle {
	return ct.Canvas.Bounds().Sub(ct.offset)
}

func (ct *canvasTranslate) FillRect(r image.Rectangle, c color.Color) {
	ct.Canvas.FillRect(r.Add(ct.offset), c)
}

type Number interface {
	constraints.Integer | constraints.Float
}

func bound[N Number](x, minimum, maximum N) N {
	return min(max(x, minimum), maximum)
}
