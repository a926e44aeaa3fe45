package artraster

import (
	"errors"
	"flag"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 255}, false},
		{"#10203080", color.NRGBA{0x10, 0x20, 0x30, 0x80}, false},
		{" #ABCDEF ", color.NRGBA{0xab, 0xcd, 0xef, 255}, false},
		{"red", color.NRGBA{127, 0, 0, 255}, false},
		{"BrightWhite", color.NRGBA{255, 255, 255, 255}, false},
		{"transparent", color.NRGBA{0, 0, 0, 0}, false},
		{"", color.NRGBA{}, true},
		{"fff", color.NRGBA{}, true},
		{"#ff", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#1020304", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"#102030zz", color.NRGBA{}, true},
		{"mauve", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseColor(%q) error %v does not wrap ErrInvalidConfig", tt.in, err)
			}
			continue
		}
		if n := color.NRGBAModel.Convert(got).(color.NRGBA); n != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, n, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{NewOpaqueColor(255, 0, 16), "#ff0010"},
		{NewColor(1, 2, 3, 4), "#01020304"},
		{NamedColors["transparent"], "#00000000"},
		{Color{}, ""},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.c.Color == nil {
			continue
		}
		if back := MustParseColor(tt.want); back != tt.c {
			t.Errorf("%q parses back to %v, want %v", tt.want, back, tt.c)
		}
	}
}

func TestColorFlag(t *testing.T) {
	c := ConfigDefault.Background
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&c, "bg", "")
	if err := fs.Parse([]string{"-bg", "#336699"}); err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "#336699" {
		t.Errorf("flag value = %q", got)
	}
	if err := fs.Parse([]string{"-bg", "nope"}); err == nil {
		t.Error("bad color accepted")
	}
}
