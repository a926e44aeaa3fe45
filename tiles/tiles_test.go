package tiles

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"unicode"
)

type fillRecorder struct {
	rects []image.Rectangle
}

func (f *fillRecorder) FillRect(r image.Rectangle, _ color.Color) {
	f.rects = append(f.rects, r)
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr bool
		lit     int
	}{
		{"all off", []string{"...", "...", "..."}, false, 0},
		{"diagonal", []string{"#..", ".#.", "..#"}, false, 3},
		{"any non-marker is off", []string{"x o", "#-#", "   "}, false, 2},
		{"too few rows", []string{"###", "###"}, true, 0},
		{"row too wide", []string{"###", "####", "###"}, true, 0},
		{"row too narrow", []string{"###", "##", "###"}, true, 0},
		{"multibyte row counts runes", []string{"█#█", "...", "..."}, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := Compile(3, 3, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.rows, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := bm.Count(); got != tt.lit {
				t.Errorf("Count() = %d, want %d", got, tt.lit)
			}
		})
	}
}

func TestBitmapRoundTrip(t *testing.T) {
	rows := []string{"#...#", ".#.#.", "..#..", ".....", "#####", "....#", "#...."}
	bm, err := Compile(5, 7, rows)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(bm.Rows(), "|"); got != strings.Join(rows, "|") {
		t.Errorf("Rows() = %s, want %s", got, strings.Join(rows, "|"))
	}
	if bm.Lit(-1, 0) || bm.Lit(5, 0) || bm.Lit(0, 7) {
		t.Error("points outside the bitmap must be unlit")
	}
	if bm.At(0, 0) != BitAlpha(true) || bm.At(1, 0) != BitAlpha(false) {
		t.Error("At does not agree with Lit")
	}
}

func TestBitmapWiderThanAByte(t *testing.T) {
	bm, err := Compile(10, 1, []string{".........#"})
	if err != nil {
		t.Fatal(err)
	}
	if bm.Stride != 2 {
		t.Fatalf("Stride = %d, want 2", bm.Stride)
	}
	if !bm.Lit(9, 0) || bm.Count() != 1 {
		t.Errorf("expected only pixel 9 lit, got %q", bm.Rows())
	}
}

func TestPeriodGlyph(t *testing.T) {
	bm := Font5x7.Pattern('.')
	if bm.Bounds() != image.Rect(0, 0, 5, 7) {
		t.Fatalf("bounds = %v", bm.Bounds())
	}
	if bm.Count() != 1 {
		t.Fatalf("'.' has %d lit pixels, want 1:\n%s", bm.Count(), bm)
	}
	if !bm.Lit(2, 6) {
		t.Errorf("'.' should be lit at column 2, row 6:\n%s", bm)
	}
}

func TestFont5x7Dimensions(t *testing.T) {
	for _, r := range Font5x7.Runes() {
		bm := Font5x7.Pattern(r)
		if bm.Bounds() != image.Rect(0, 0, GlyphWidth, GlyphHeight) {
			t.Errorf("%q has bounds %v", r, bm.Bounds())
		}
		if bm.Empty() {
			t.Errorf("%q compiled to an empty glyph", r)
		}
	}
	for _, r := range "AZaz09.,!?@#─│┌┼═║█░" {
		if !Font5x7.Has(r) {
			t.Errorf("Font5x7 is missing %q", r)
		}
	}
}

func TestUnknownAndWhitespaceAreEmpty(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r', '\u00a0', 'é', '€', '☃', 0x1F600, 0} {
		bm := Font5x7.Pattern(r)
		if !bm.Empty() {
			t.Errorf("Pattern(%U) is not empty", r)
		}
		if bm.Bounds() != Font5x7.Bounds() {
			t.Errorf("Pattern(%U) bounds = %v", r, bm.Bounds())
		}
	}
}

func TestAddRejectsWhitespace(t *testing.T) {
	gt := NewGlyphTable(1, 1)
	if err := gt.Add(' ', "#"); err == nil {
		t.Error("expected error adding a glyph for space")
	}
	if err := gt.Add('x', "#", "#"); err == nil {
		t.Error("expected error for wrong row count")
	}
	if err := gt.Add('x', "#"); err != nil {
		t.Errorf("Add: %v", err)
	}
}

func TestMerge(t *testing.T) {
	a := NewGlyphTable(1, 1)
	b := NewGlyphTable(1, 1)
	_ = a.Add('a', "#")
	_ = b.Add('b', "#")
	if err := a.Merge(b); err != nil {
		t.Fatal(err)
	}
	if !a.Has('a') || !a.Has('b') {
		t.Errorf("merged runes = %q", a.Runes())
	}
	if err := a.Merge(NewGlyphTable(2, 2)); err == nil {
		t.Error("expected error merging tables of different sizes")
	}
}

func TestDrawGlyph(t *testing.T) {
	rec := &fillRecorder{}
	n := Font5x7.DrawGlyph('.', rec, image.Pt(100, 50), 3, color.White)
	if n != 1 || len(rec.rects) != 1 {
		t.Fatalf("fills = %d, recorded %d, want 1", n, len(rec.rects))
	}
	want := image.Rect(100+2*3, 50+6*3, 100+3*3, 50+7*3)
	if rec.rects[0] != want {
		t.Errorf("fill rect = %v, want %v", rec.rects[0], want)
	}

	rec = &fillRecorder{}
	if n := Font5x7.DrawGlyph('H', rec, image.Point{}, 1, color.White); n != Font5x7.Pattern('H').Count() {
		t.Errorf("'H' issued %d fills, want %d", n, Font5x7.Pattern('H').Count())
	}

	for _, r := range " \t\n\r€" {
		rec = &fillRecorder{}
		if n := Font5x7.DrawGlyph(r, rec, image.Point{}, 2, color.White); n != 0 || len(rec.rects) != 0 {
			t.Errorf("DrawGlyph(%U) issued %d fills", r, len(rec.rects))
		}
	}
}

func TestRemap(t *testing.T) {
	for alias, base := range boxAliases {
		if Default.Pattern(alias) != Font5x7.Pattern(base) {
			t.Errorf("%q does not draw as %q", alias, base)
		}
		if Font5x7.Has(alias) {
			t.Errorf("%q should only exist through the remap", alias)
		}
	}
	if Default.Pattern('A') != Font5x7.Pattern('A') {
		t.Error("unmapped runes should pass through")
	}
}

func TestBitmapAsMask(t *testing.T) {
	bm := Font5x7.Pattern('I')
	dst := image.NewRGBA(bm.Bounds())
	draw.DrawMask(dst, dst.Bounds(), image.White, image.Point{}, bm, image.Point{}, draw.Over)
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			lit := dst.RGBAAt(x, y).A == 0xff
			if lit != bm.Lit(x, y) {
				t.Fatalf("mask pixel (%d,%d) = %v, want %v", x, y, lit, bm.Lit(x, y))
			}
		}
	}
}

func TestTableHasNoWhitespace(t *testing.T) {
	for _, r := range Font5x7.Runes() {
		if unicode.IsSpace(r) {
			t.Errorf("whitespace %U has a glyph", r)
		}
	}
}

func TestFrozen(t *testing.T) {
	if !Font5x7.Frozen() || !Default.Frozen() {
		t.Fatal("built-in tables are not frozen")
	}
	if err := Font5x7.Add('☃', ".....", ".....", ".....", ".....", ".....", ".....", "....."); !errors.Is(err, ErrFrozen) {
		t.Errorf("Add on Font5x7: error = %v, want ErrFrozen", err)
	}
	if Font5x7.Has('☃') {
		t.Error("frozen table gained a glyph")
	}
	if err := Font5x7.Merge(NewGlyphTable(GlyphWidth, GlyphHeight)); !errors.Is(err, ErrFrozen) {
		t.Errorf("Merge into Font5x7: error = %v, want ErrFrozen", err)
	}
	if err := Default.Alias('┅', '─'); !errors.Is(err, ErrFrozen) {
		t.Errorf("Alias on Default: error = %v, want ErrFrozen", err)
	}
	if Default.Pattern('┅') == Font5x7.Pattern('─') {
		t.Error("frozen remap gained an alias")
	}

	// a frozen table still serves as the base of a new one
	ext := NewGlyphTable(GlyphWidth, GlyphHeight)
	if err := ext.Merge(Font5x7); err != nil {
		t.Fatal(err)
	}
	if err := ext.Add('☃', "..#..", ".###.", "..#..", ".###.", "#####", "#####", ".###."); err != nil {
		t.Fatal(err)
	}
	rm := NewRemap(ext)
	if err := rm.Alias('⛄', '☃'); err != nil {
		t.Fatal(err)
	}
	rm.Freeze()
	if !ext.Frozen() {
		t.Error("freezing a remap left its table writable")
	}
	if err := rm.Alias('x', 'y'); !errors.Is(err, ErrFrozen) {
		t.Errorf("Alias after Freeze: error = %v, want ErrFrozen", err)
	}
	if rm.Pattern('⛄') != ext.Pattern('☃') || ext.Pattern('☃').Empty() {
		t.Error("alias added before Freeze was lost")
	}
}
