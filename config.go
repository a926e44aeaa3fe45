package artraster

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error reporting a bad Config value.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError reports which Config field holds an unusable value.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}
	return []error{ErrInvalidConfig}
}

// Config defines how text is turned into pixels. A Config is passed by value
// and never changes during a render.
type Config struct {
	PixelSize  int     // Edge length in pixels of one cell (intensity) or one glyph pixel (glyph).
	Scale      float64 // Multiplier applied to PixelSize.
	Mode       Mode    // How the intensity renderer colours cells.
	Background Color
	Foreground Color
}

// ConfigDefault provides the default configuration values.
var ConfigDefault = Config{
	PixelSize:  8,
	Scale:      1,
	Mode:       ModeGrayscale,
	Background: NewOpaqueColor(0, 0, 0),
	Foreground: NewOpaqueColor(255, 255, 255),
}

func NewConfig() Config {
	return ConfigDefault
}

// Block is the edge length, in output pixels, of one scaled pixel:
// PixelSize*Scale rounded to the nearest integer and never less than 1.
func (c Config) Block() int {
	return max(1, int(math.Round(float64(c.PixelSize)*c.Scale)))
}

func (c Config) Validate() error {
	switch {
	case c.PixelSize <= 0:
		return &ConfigError{Field: "pixel size", Value: c.PixelSize}
	case c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0):
		return &ConfigError{Field: "scale", Value: c.Scale}
	case !c.Mode.valid():
		return &ConfigError{Field: "mode", Value: int(c.Mode)}
	case c.Background.Color == nil:
		return &ConfigError{Field: "background color", Value: "unset"}
	case c.Foreground.Color == nil:
		return &ConfigError{Field: "foreground color", Value: "unset"}
	}
	return nil
}
