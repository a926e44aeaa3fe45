package artraster

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
	FormatGIF
)

var formatNames = map[Format]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatGIF:  "gif",
}

var formatExts = map[string]Format{
	"":      FormatPNG,
	".png":  FormatPNG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".gif":  FormatGIF,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension. No extension
// means PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatExts[ext]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unsupported output format %q", ext)
}

// Encode writes img to w. GIF output maps colors onto the Plan 9 palette
// without dithering.
func Encode(w io.Writer, img image.Image, f Format) error {
	if s, ok := img.(*Surface); ok {
		img = s.RGBA
	}
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.Src})
	}
	return fmt.Errorf("unsupported output format %v", f)
}
