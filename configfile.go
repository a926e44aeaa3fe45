package artraster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings is everything a config file can set: the render Config plus the
// choices a front end makes around it.
type Settings struct {
	Config
	Renderer string  // Intensity or Glyph.
	Charset  string  // Input character set, see extract.Encoding.
	Metrics  Metrics // Glyph renderer cell hints.
}

// DefaultSettings returns ConfigDefault with the intensity renderer and
// UTF-8 input.
func DefaultSettings() Settings {
	return Settings{Config: NewConfig(), Renderer: Intensity}
}

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// fileSettings mirrors Settings as it appears on disk. Pointers and empty
// strings mark keys that were left out.
type fileSettings struct {
	PixelSize  *int     `toml:"pixel_size" yaml:"pixel_size"`
	Scale      *float64 `toml:"scale" yaml:"scale"`
	Mode       string   `toml:"mode" yaml:"mode"`
	Background string   `toml:"bg_color" yaml:"bg_color"`
	Foreground string   `toml:"fg_color" yaml:"fg_color"`
	Renderer   string   `toml:"renderer" yaml:"renderer"`
	Encoding   string   `toml:"encoding" yaml:"encoding"`
	Glyph      struct {
		CellWidth  int `toml:"cell_width" yaml:"cell_width"`
		CellHeight int `toml:"cell_height" yaml:"cell_height"`
		LineHeight int `toml:"line_height" yaml:"line_height"`
	} `toml:"glyph" yaml:"glyph"`
}

// LoadConfigFile reads a TOML (.toml) or YAML (.yaml, .yml) file and applies
// every key it sets on top of base. Unknown keys are an error.
func LoadConfigFile(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseConfig(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."), path, base)
}

// ParseConfig decodes data in the given syntax ("toml", "yaml" or "yml").
// source names the data in errors.
func ParseConfig(data []byte, syntax, source string, base Settings) (Settings, error) {
	var fs fileSettings
	var err error
	switch syntax {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fs)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&fs)
		if errors.Is(err, io.EOF) {
			// an empty document sets nothing
			err = nil
		}
	default:
		return base, &ParseError{Path: source, Err: fmt.Errorf("unknown config syntax %q", syntax)}
	}
	if err != nil {
		return base, &ParseError{Path: source, Err: err}
	}
	return fs.apply(base)
}

func (fs fileSettings) apply(s Settings) (Settings, error) {
	if fs.PixelSize != nil {
		s.PixelSize = *fs.PixelSize
	}
	if fs.Scale != nil {
		s.Scale = *fs.Scale
	}
	if fs.Mode != "" {
		if err := s.Mode.Set(fs.Mode); err != nil {
			return s, err
		}
	}
	if fs.Background != "" {
		if err := s.Background.Set(fs.Background); err != nil {
			return s, err
		}
	}
	if fs.Foreground != "" {
		if err := s.Foreground.Set(fs.Foreground); err != nil {
			return s, err
		}
	}
	if fs.Renderer != "" {
		s.Renderer = fs.Renderer
	}
	if fs.Encoding != "" {
		s.Charset = fs.Encoding
	}
	if fs.Glyph.CellWidth != 0 {
		s.Metrics.CellWidth = fs.Glyph.CellWidth
	}
	if fs.Glyph.CellHeight != 0 {
		s.Metrics.CellHeight = fs.Glyph.CellHeight
	}
	if fs.Glyph.LineHeight != 0 {
		s.Metrics.LineHeight = fs.Glyph.LineHeight
	}
	return s, nil
}
