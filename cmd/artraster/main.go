// Command artraster renders a text art file, or the art inside an HTML
// <pre> block, to an image.
//
//	artraster [flags] <input> <output>
//
// The output format follows the output file extension: .png (default),
// .bmp, .tif/.tiff or .gif.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/sparques/artraster"
	"github.com/sparques/artraster/extract"
)

type options struct {
	input    string
	output   string
	settings artraster.Settings
	watch    bool
	verbose  bool
}

var logger = slog.Default()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	errOut := termenv.NewOutput(stderr)

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		report(errOut, err)
		return 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	artraster.SetLogger(logger)

	if opts.watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watch(ctx, opts, stdout, stderr); err != nil {
			report(errOut, err)
			return 1
		}
		return 0
	}

	if err := convert(opts, termenv.NewOutput(stdout)); err != nil {
		report(errOut, err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (opts options, err error) {
	def := artraster.ConfigDefault
	fs := flag.NewFlagSet("artraster", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: artraster [flags] <input> <output>\n\n")
		fs.PrintDefaults()
	}

	var (
		pixelSize  = fs.Int("pixel-size", def.PixelSize, "edge length in pixels of one character cell or glyph pixel")
		scale      = fs.Float64("scale", def.Scale, "multiplier applied to pixel-size")
		renderer   = fs.String("renderer", artraster.Intensity, "renderer: intensity or glyph")
		charset    = fs.String("encoding", "", "input character set, e.g. cp437 or latin1 (default utf-8)")
		configPath = fs.String("config", "", "TOML or YAML config `file`; flags given explicitly override it")
		cellWidth  = fs.Int("cell-width", 0, "glyph renderer: horizontal advance per column in pixels")
		cellHeight = fs.Int("cell-height", 0, "glyph renderer: height of a character cell in pixels")
		lineHeight = fs.Int("line-height", 0, "glyph renderer: vertical advance per row in pixels")
		bg         = def.Background
		fg         = def.Foreground
		mode       = def.Mode
	)
	fs.Var(&bg, "bg-color", "background `color` (#rrggbb, #rrggbbaa, ANSI name or transparent)")
	fs.Var(&fg, "fg-color", "foreground `color`")
	fs.Var(&mode, "mode", "intensity color mode: grayscale, color or monochrome")
	fs.BoolVar(&opts.watch, "watch", false, "re-render whenever the input file changes")
	fs.BoolVar(&opts.verbose, "v", false, "log progress")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return opts, fmt.Errorf("expected <input> <output>, got %d arguments", fs.NArg())
	}
	opts.input, opts.output = fs.Arg(0), fs.Arg(1)

	s := artraster.DefaultSettings()
	if *configPath != "" {
		if s, err = artraster.LoadConfigFile(*configPath, s); err != nil {
			return opts, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pixel-size":
			s.PixelSize = *pixelSize
		case "scale":
			s.Scale = *scale
		case "renderer":
			s.Renderer = *renderer
		case "encoding":
			s.Charset = *charset
		case "cell-width":
			s.Metrics.CellWidth = *cellWidth
		case "cell-height":
			s.Metrics.CellHeight = *cellHeight
		case "line-height":
			s.Metrics.LineHeight = *lineHeight
		case "bg-color":
			s.Background = bg
		case "fg-color":
			s.Foreground = fg
		case "mode":
			s.Mode = mode
		}
	})
	opts.settings = s
	return opts, nil
}

// convert renders opts.input into opts.output and prints a summary on out.
// Empty art leaves the output alone; the summary says so.
func convert(opts options, out *termenv.Output) error {
	s := opts.settings
	rd, err := artraster.NewRenderer(s.Renderer, s.Config, s.Metrics)
	if err != nil {
		return err
	}
	format, err := artraster.FormatFromPath(opts.output)
	if err != nil {
		return err
	}

	text, err := readArt(opts.input, s.Charset)
	if err != nil {
		return err
	}
	grid := artraster.NewTextGrid(text)
	surf, err := rd.RenderGrid(grid)
	if errors.Is(err, artraster.ErrEmptyInput) {
		logger.Warn("input has no columns, nothing written", "input", opts.input, "output", opts.output)
		fmt.Fprintln(out, out.String(fmt.Sprintf("%s: %dx%d characters, empty input, nothing written (%s)",
			opts.input, grid.Columns(), grid.Rows(), opts.output)).Faint())
		return nil
	}
	if err != nil {
		return err
	}

	if err := writeImage(opts.output, surf, format); err != nil {
		return err
	}
	size := surf.Bounds().Size()
	fmt.Fprintln(out, out.String(fmt.Sprintf("%s: %dx%d characters -> %dx%d pixels (%s)",
		opts.input, grid.Columns(), grid.Rows(), size.X, size.Y, opts.output)).Bold())
	return nil
}

func readArt(path, charset string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	text, err := extract.Decode(fh, charset)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if extract.IsMarkupPath(path) {
		if text, err = extract.Markup(text); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
	}
	return extract.LineDrawing(text), nil
}

func writeImage(path string, img image.Image, f artraster.Format) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(fh)
	if err := artraster.Encode(bw, img, f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return bw.Flush()
}

// report prints err as a single line.
func report(out *termenv.Output, err error) {
	msg := strings.ReplaceAll(strings.TrimSpace(err.Error()), "\n", "; ")
	fmt.Fprintln(out, out.String("artraster: "+msg).Foreground(out.Color("1")))
}
