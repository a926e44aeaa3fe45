package artraster

import (
	"image"
	"testing"
)

func TestTextGrid(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		size  image.Point
		empty bool
	}{
		{"single", "A", image.Pt(1, 1), false},
		{"ragged", "abc\nd\nef", image.Pt(3, 3), false},
		{"trailing newline", "ab\ncd\n", image.Pt(2, 2), false},
		{"crlf", "ab\r\ncd\r\n", image.Pt(2, 2), false},
		{"multibyte", "█▓▒░\n─", image.Pt(4, 2), false},
		{"empty", "", image.Pt(0, 1), true},
		{"blank lines", "\n\n", image.Pt(0, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTextGrid(tt.text)
			if got := g.Size(); got != tt.size {
				t.Errorf("Size() = %v, want %v", got, tt.size)
			}
			if got := g.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestTextGridAt(t *testing.T) {
	g := NewTextGrid("abc\nd")
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, 'a'}, {2, 0, 'c'}, {0, 1, 'd'},
		{1, 1, ' '}, {2, 1, ' '},
		{3, 0, ' '}, {0, 2, ' '}, {-1, 0, ' '},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
	if got := g.String(); got != "abc\nd" {
		t.Errorf("String() = %q", got)
	}
}
