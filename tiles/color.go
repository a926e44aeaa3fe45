package tiles

import (
	"image"
	"image/color"
	"math/bits"
	"strings"
)

// m is the maximum value for an unsigned 16bit integer
const m = 1<<16 - 1

// BitAlpha is a color.Color with a single bit of alpha.
// That is, transparent or opaque.
type BitAlpha bool

func (ba BitAlpha) RGBA() (r, g, b, a uint32) {
	if ba {
		r, g, b = m, m, m
		a = m
	}
	return
}

var (
	BitAlphaModel = color.ModelFunc(bitAlphaModel)
)

func bitAlphaModel(c color.Color) color.Color {
	if b, ok := c.(BitAlpha); ok {
		return b
	}
	_, _, _, a := c.RGBA()
	if a > m/2 {
		return BitAlpha(true)
	}
	return BitAlpha(false)
}

// Bitmap is a single bit-depth image.Image whose pixels are either lit
// (opaque) or unlit (transparent). Each row is packed MSB first into
// Stride bytes.
//
// Bitmaps handed out by a GlyphTable are shared and must not be modified.
type Bitmap struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewBitmap returns an all-unlit w by h Bitmap.
func NewBitmap(w, h int) *Bitmap {
	stride := (w + 7) / 8
	return &Bitmap{
		Pix:    make([]uint8, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func (b *Bitmap) ColorModel() color.Model {
	return BitAlphaModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

func (b *Bitmap) At(x, y int) color.Color {
	return BitAlpha(b.Lit(x, y))
}

// Lit reports whether the pixel at x, y is on. Points outside the
// bitmap are off.
func (b *Bitmap) Lit(x, y int) bool {
	if !image.Pt(x, y).In(b.Rect) {
		return false
	}
	x, y = x-b.Rect.Min.X, y-b.Rect.Min.Y
	return b.Pix[y*b.Stride+x/8]&(0x80>>(x%8)) != 0
}

func (b *Bitmap) set(x, y int, on bool) {
	x, y = x-b.Rect.Min.X, y-b.Rect.Min.Y
	if on {
		b.Pix[y*b.Stride+x/8] |= 0x80 >> (x % 8)
	} else {
		b.Pix[y*b.Stride+x/8] &= ^uint8(0x80 >> (x % 8))
	}
}

// Count returns the number of lit pixels.
func (b *Bitmap) Count() (n int) {
	for _, p := range b.Pix {
		n += bits.OnesCount8(p)
	}
	return
}

// Empty is true when no pixel is lit.
func (b *Bitmap) Empty() bool {
	for _, p := range b.Pix {
		if p != 0 {
			return false
		}
	}
	return true
}

// Rows renders b back into pattern notation, one string per row.
func (b *Bitmap) Rows() []string {
	rows := make([]string, b.Rect.Dy())
	var sb strings.Builder
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		sb.Reset()
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.Lit(x, y) {
				sb.WriteByte(On)
			} else {
				sb.WriteByte(Off)
			}
		}
		rows[y-b.Rect.Min.Y] = sb.String()
	}
	return rows
}

func (b *Bitmap) String() string {
	return strings.Join(b.Rows(), "\n")
}
