package artraster

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how the intensity renderer turns a brightness into a color.
type Mode int

const (
	// ModeGrayscale paints gray(v, v, v).
	ModeGrayscale Mode = iota
	// ModeMonochrome paints the foreground when brightness is strictly above
	// MonochromeThreshold and the background otherwise.
	ModeMonochrome
	// ModeColor spreads hues by code point along the golden angle and takes
	// saturation and lightness from brightness.
	ModeColor

	numModes
)

const (
	MonochromeThreshold = 128
	goldenAngle         = 137.508
)

// fillFunc returns the color of a cell holding r with brightness v.
type fillFunc func(r rune, v uint8, fg, bg color.Color) color.Color

var modes = [numModes]struct {
	name string
	fill fillFunc
}{
	ModeGrayscale:  {"grayscale", grayscale},
	ModeMonochrome: {"monochrome", monochrome},
	ModeColor:      {"color", hueRotated},
}

var modeAliases = map[string]Mode{
	"greyscale": ModeGrayscale,
	"gray":      ModeGrayscale,
	"mono":      ModeMonochrome,
	"colour":    ModeColor,
}

func (m Mode) valid() bool {
	return m >= 0 && m < numModes
}

func (m Mode) String() string {
	if !m.valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modes[m].name
}

// Fill returns the cell color for rune r of brightness v.
func (m Mode) Fill(r rune, v uint8, fg, bg color.Color) color.Color {
	if !m.valid() {
		m = ModeGrayscale
	}
	return modes[m].fill(r, v, fg, bg)
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m := range numModes {
		if modes[m].name == s {
			return m, nil
		}
	}
	if m, ok := modeAliases[s]; ok {
		return m, nil
	}
	return 0, &ConfigError{Field: "mode", Value: s}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	nm, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = nm
	return nil
}

func grayscale(_ rune, v uint8, _, _ color.Color) color.Color {
	return color.RGBA{v, v, v, 255}
}

func monochrome(_ rune, v uint8, fg, bg color.Color) color.Color {
	if v > MonochromeThreshold {
		return fg
	}
	return bg
}

func hueRotated(r rune, v uint8, _, _ color.Color) color.Color {
	hue := math.Mod(float64(r)*goldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	pct := float64(v) / 2.55
	c := colorful.Hsl(hue, bound(pct, 0, 100)/100, pct/100).Clamped()
	cr, cg, cb := c.RGB255()
	return color.RGBA{cr, cg, cb, 255}
}
