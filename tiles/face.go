package tiles

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face implements the golang.org/x/image/font.Face interface on top of a
// Tiler, so a glyph table can be drawn with font.Drawer. Each glyph pixel
// becomes a Pixel by Pixel square and every rune advances by the same
// amount. Runes without a glyph draw nothing but still advance.
type Face struct {
	Tiler Tiler
	Pixel int
}

func NewFace(t Tiler, pixel int) *Face {
	return &Face{Tiler: t, Pixel: max(pixel, 1)}
}

// cell is the glyph size on the destination.
func (f *Face) cell() image.Point {
	return f.Tiler.Bounds().Size().Mul(f.Pixel)
}

// Glyph places the glyph so its bottom edge sits on the baseline at dot.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	cell := f.cell()
	pt := fixedToImagePoint(dot)
	dr = image.Rect(pt.X, pt.Y-cell.Y, pt.X+cell.X, pt.Y)
	mask = f.mask(r)
	return dr, mask, mask.Bounds().Min, fixed.I(cell.X), true
}

func (f *Face) mask(r rune) image.Image {
	bm := f.Tiler.Pattern(r)
	if f.Pixel == 1 {
		return bm
	}
	return &scaledBitmap{Bitmap: bm, pixel: f.Pixel}
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	cell := f.cell()
	return fixed.R(0, -cell.Y, cell.X, 0), fixed.I(cell.X), true
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(f.cell().X), true
}

func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (f *Face) Close() error {
	return nil
}

func (f *Face) Metrics() font.Metrics {
	cell := f.cell()
	return font.Metrics{
		Height:     fixed.I(cell.Y),
		Ascent:     fixed.I(cell.Y),
		Descent:    0,
		XHeight:    fixed.I(cell.Y * 5 / 7),
		CapHeight:  fixed.I(cell.Y),
		CaretSlope: image.Point{0, 1},
	}
}

// scaledBitmap magnifies a Bitmap by an integer factor.
type scaledBitmap struct {
	*Bitmap
	pixel int
}

func (sb *scaledBitmap) Bounds() image.Rectangle {
	return image.Rectangle{Max: sb.Bitmap.Bounds().Size().Mul(sb.pixel)}
}

func (sb *scaledBitmap) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return BitAlpha(false)
	}
	o := sb.Bitmap.Bounds().Min
	return BitAlpha(sb.Bitmap.Lit(o.X+x/sb.pixel, o.Y+y/sb.pixel))
}

func fixedToImagePoint(fp fixed.Point26_6) image.Point {
	return image.Pt(fp.X.Round(), fp.Y.Round())
}
