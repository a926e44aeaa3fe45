package artraster

import (
	"errors"
	"image/color"
	"testing"
)

func TestModeFill(t *testing.T) {
	fg, bg := NewOpaqueColor(1, 2, 3), NewOpaqueColor(4, 5, 6)
	tests := []struct {
		name string
		mode Mode
		v    uint8
		want color.Color
	}{
		{"gray", ModeGrayscale, 180, color.RGBA{180, 180, 180, 255}},
		{"gray black", ModeGrayscale, 0, color.RGBA{0, 0, 0, 255}},
		{"mono at threshold", ModeMonochrome, MonochromeThreshold, bg},
		{"mono above threshold", ModeMonochrome, MonochromeThreshold + 1, fg},
		{"mono zero", ModeMonochrome, 0, bg},
		{"color zero is black", ModeColor, 0, color.RGBA{0, 0, 0, 255}},
		{"color full is white", ModeColor, 255, color.RGBA{255, 255, 255, 255}},
		{"invalid mode is gray", Mode(42), 90, color.RGBA{90, 90, 90, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Fill('A', tt.v, fg, bg); got != tt.want {
				t.Errorf("Fill = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeColorHue(t *testing.T) {
	a := ModeColor.Fill('A', 180, nil, nil)
	if again := ModeColor.Fill('A', 180, nil, nil); a != again {
		t.Errorf("Fill not deterministic: %v then %v", a, again)
	}
	if b := ModeColor.Fill('B', 180, nil, nil); a == b {
		t.Errorf("'A' and 'B' share color %v", a)
	}
	if _, _, _, alpha := a.RGBA(); alpha != 0xffff {
		t.Errorf("alpha = %#x, want opaque", alpha)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"grayscale", ModeGrayscale, false},
		{"Greyscale", ModeGrayscale, false},
		{" mono ", ModeMonochrome, false},
		{"monochrome", ModeMonochrome, false},
		{"COLOR", ModeColor, false},
		{"colour", ModeColor, false},
		{"sepia", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseMode(%q) error %v does not wrap ErrInvalidConfig", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseMode(got.String()); back != got {
			t.Errorf("%v does not survive String/ParseMode", got)
		}
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}
