// Package tiles holds fixed-size one-bit glyph bitmaps and the tables that
// map runes onto them.
package tiles

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"
)

const (
	// On marks a lit pixel in pattern notation. Any other rune is unlit.
	On = '#'
	// Off is what Rows writes for an unlit pixel.
	Off = '.'
)

// Filler is anything that can fill a solid rectangle. Glyphs are drawn one
// FillRect per lit pixel.
type Filler interface {
	FillRect(r image.Rectangle, c color.Color)
}

type Tiler interface {
	// Pattern is total: runes without a glyph return an all-unlit Bitmap.
	Pattern(r rune) *Bitmap
	// DrawGlyph draws r at pt with each glyph pixel scaled to a
	// pixel-by-pixel square and returns the number of fills issued.
	DrawGlyph(r rune, dst Filler, pt image.Point, pixel int, fg color.Color) int
	Bounds() image.Rectangle
}

// Compile turns pattern notation into a w by h Bitmap. rows must hold exactly
// h rows of exactly w runes each.
func Compile(w, h int, rows []string) (*Bitmap, error) {
	if len(rows) != h {
		return nil, fmt.Errorf("pattern has %d rows, want %d", len(rows), h)
	}
	bm := NewBitmap(w, h)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("pattern row %d is %d wide, want %d", y, n, w)
		}
		x := 0
		for _, r := range row {
			if r == On {
				bm.set(x, y, true)
			}
			x++
		}
	}
	return bm, nil
}

// ErrFrozen is returned when a frozen table is modified.
var ErrFrozen = errors.New("glyph table is frozen")

// GlyphTable maps runes to Bitmaps that all share the same bounds. Once
// Freeze is called the table is read-only and may be shared between
// goroutines.
type GlyphTable struct {
	image.Rectangle
	glyphs map[rune]*Bitmap
	empty  *Bitmap
	frozen bool
}

func NewGlyphTable(w, h int) *GlyphTable {
	return &GlyphTable{
		Rectangle: image.Rect(0, 0, w, h),
		glyphs:    make(map[rune]*Bitmap),
		empty:     NewBitmap(w, h),
	}
}

// Add compiles rows and stores the result for r, replacing any previous glyph.
// Whitespace never gets a glyph.
func (gt *GlyphTable) Add(r rune, rows ...string) error {
	if gt.frozen {
		return fmt.Errorf("glyph %U: %w", r, ErrFrozen)
	}
	if unicode.IsSpace(r) {
		return fmt.Errorf("glyph %U: whitespace cannot have a glyph", r)
	}
	bm, err := Compile(gt.Dx(), gt.Dy(), rows)
	if err != nil {
		return fmt.Errorf("glyph %U: %w", r, err)
	}
	gt.glyphs[r] = bm
	return nil
}

// Merge copies glyphs from src into gt, displacing any overlapping runes.
func (gt *GlyphTable) Merge(src *GlyphTable) error {
	if gt.frozen {
		return ErrFrozen
	}
	if !src.Rectangle.Eq(gt.Rectangle) {
		return fmt.Errorf("cannot merge %v glyphs into %v table", src.Size(), gt.Size())
	}
	maps.Copy(gt.glyphs, src.glyphs)
	return nil
}

// Freeze makes every later Add or Merge fail with ErrFrozen.
func (gt *GlyphTable) Freeze() {
	gt.frozen = true
}

func (gt *GlyphTable) Frozen() bool {
	return gt.frozen
}

func (gt *GlyphTable) Has(r rune) bool {
	_, ok := gt.glyphs[r]
	return ok
}

// Runes returns every rune with a glyph, sorted.
func (gt *GlyphTable) Runes() []rune {
	return slices.Sorted(maps.Keys(gt.glyphs))
}

func (gt *GlyphTable) Bounds() image.Rectangle {
	return gt.Rectangle
}

func (gt *GlyphTable) Pattern(r rune) *Bitmap {
	if bm, ok := gt.glyphs[r]; ok {
		return bm
	}
	return gt.empty
}

func (gt *GlyphTable) DrawGlyph(r rune, dst Filler, pt image.Point, pixel int, fg color.Color) int {
	return drawBitmap(gt.Pattern(r), dst, pt, pixel, fg)
}

// Remap lets you draw one rune with another rune's glyph. This is how the
// heavy, rounded and double box-drawing variants share the light glyphs.
// Aliases are added with Alias until Freeze is called.
type Remap struct {
	*GlyphTable
	aliases map[rune]rune
	frozen  bool
}

func NewRemap(base *GlyphTable) *Remap {
	return &Remap{
		GlyphTable: base,
		aliases:    make(map[rune]rune),
	}
}

// Alias draws from with the glyph of to.
func (remap *Remap) Alias(from, to rune) error {
	if remap.frozen {
		return fmt.Errorf("alias %U: %w", from, ErrFrozen)
	}
	remap.aliases[from] = to
	return nil
}

// Freeze stops further aliases and freezes the underlying table.
func (remap *Remap) Freeze() {
	remap.frozen = true
	remap.GlyphTable.Freeze()
}

func (remap *Remap) Frozen() bool {
	return remap.frozen
}

func (remap *Remap) Pattern(r rune) *Bitmap {
	if newr, ok := remap.aliases[r]; ok {
		r = newr
	}
	return remap.GlyphTable.Pattern(r)
}

func (remap *Remap) DrawGlyph(r rune, dst Filler, pt image.Point, pixel int, fg color.Color) int {
	return drawBitmap(remap.Pattern(r), dst, pt, pixel, fg)
}

func drawBitmap(bm *Bitmap, dst Filler, pt image.Point, pixel int, fg color.Color) (fills int) {
	if bm.Empty() {
		return 0
	}
	b := bm.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !bm.Lit(x, y) {
				continue
			}
			px := pt.Add(image.Pt((x-b.Min.X)*pixel, (y-b.Min.Y)*pixel))
			dst.FillRect(image.Rectangle{Min: px, Max: px.Add(image.Pt(pixel, pixel))}, fg)
			fills++
		}
	}
	return
}
