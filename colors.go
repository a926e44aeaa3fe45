package artraster

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color wraps color.Color and implements image.Image and color.Model.
//
// Its main purpose is to avoid repeatedly instantiating image.Uniform
// when drawing with solid colors. This allows Color to be used directly
// anywhere color.Color, image.Image, or color.Model are expected
type Color struct {
	color.Color
}

// NewOpaqueColor returns a Color with full opacity (alpha = 255).
func NewOpaqueColor(r, g, b uint8) Color {
	return Color{color.NRGBA{r, g, b, 255}}
}

// NewColor returns a Color with the specified non-premultiplied RGBA values.
func NewColor(r, g, b, a uint8) Color {
	return Color{color.NRGBA{r, g, b, a}}
}

// At implements image.Image by returning the embedded color value.
func (c Color) At(int, int) color.Color {
	return c.Color
}

// Bounds implements image.Image.
// It returns an extremely large bounding rectangle to satisfy
// the image.Image interface when Color is used as an image.
func (c Color) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{-1e9, -1e9}, Max: image.Point{1e9, 1e9}}
}

// ColorModel implements image.Image and color.Model.
// Returns itself to satisfy both interfaces.
func (c Color) ColorModel() color.Model {
	return c
}

// Convert implements color.Model.
func (c Color) Convert(cin color.Color) color.Color {
	return color.NRGBAModel.Convert(cin)
}

// String formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) String() string {
	if c.Color == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	hex := colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
	if n.A != 255 {
		hex += fmt.Sprintf("%02x", n.A)
	}
	return hex
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// Set implements flag.Value.
func (c *Color) Set(s string) error {
	nc, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa, the names in NamedColors and
// "transparent".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := NamedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, &ConfigError{Field: "color", Value: strconv.Quote(s)}
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, &ConfigError{Field: "color", Value: strconv.Quote(s), Err: err}
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, &ConfigError{Field: "color", Value: strconv.Quote(s)}
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, &ConfigError{Field: "color", Value: strconv.Quote(s), Err: err}
	}
	r, g, b := cf.RGB255()
	return NewColor(r, g, b, alpha), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NamedColors holds the 16 ANSI terminal colors plus transparent.
var NamedColors = map[string]Color{
	"transparent": NewColor(0, 0, 0, 0),

	"black":   NewOpaqueColor(0, 0, 0),
	"red":     NewOpaqueColor(127, 0, 0),
	"green":   NewOpaqueColor(0, 170, 0),
	"yellow":  NewOpaqueColor(170, 85, 0),
	"blue":    NewOpaqueColor(0, 0, 170),
	"magenta": NewOpaqueColor(170, 0, 170),
	"cyan":    NewOpaqueColor(0, 170, 170),
	"white":   NewOpaqueColor(200, 200, 200),

	"brightblack":   NewOpaqueColor(85, 85, 85),
	"brightred":     NewOpaqueColor(255, 0, 0),
	"brightgreen":   NewOpaqueColor(85, 255, 85),
	"brightyellow":  NewOpaqueColor(255, 255, 85),
	"brightblue":    NewOpaqueColor(85, 85, 255),
	"brightmagenta": NewOpaqueColor(255, 85, 255),
	"brightcyan":    NewOpaqueColor(85, 255, 255),
	"brightwhite":   NewOpaqueColor(255, 255, 255),
}
