// Command guidegen draws a composition guide over a canvas area and writes
// it as an SVG document or a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/vasalvit/compguide"
	"github.com/vasalvit/compguide/config"
	"github.com/vasalvit/compguide/raster"
	"github.com/vasalvit/compguide/svg"
)

var errInterrupted = errors.New("interrupted")

func main() {
	kindTag := flag.String("kind", "", "guide kind tag (default: last used kind of the preset)")
	x := flag.Float64("x", 0, "left edge of the selection")
	y := flag.Float64("y", 0, "top edge of the selection")
	width := flag.Float64("width", 0, "width of the selection")
	height := flag.Float64("height", 0, "height of the selection")
	canvasWidth := flag.Float64("canvas-width", 0, "canvas width (default: right edge of the area)")
	canvasHeight := flag.Float64("canvas-height", 0, "canvas height (default: bottom edge of the area)")
	options := flag.String("options", "", "comma separated options: flipH, flipV, forceGR, useSelection (default: preset); without useSelection the guide covers the whole canvas")
	color := flag.String("color", "", "pen colour (default: preset)")
	penWidth := flag.Float64("pen-width", 0, "pen width (default: preset)")
	style := flag.String("style", "", "pen style: solid, dash, dot, dashdot, dashdotdot (default: preset)")
	configPath := flag.String("config", "", "YAML preset file")
	save := flag.Bool("save", false, "store the kind, pen and options back into -config")
	format := flag.String("format", "svg", "output format: svg or png")
	preview := flag.Int("preview", 0, "png only: draw over the whole canvas scaled to fit a square of this size")
	output := flag.String("output", "", "output file (stdout if empty, svg only)")
	interactive := flag.Bool("interactive", false, "choose the kind and options interactively")
	verbose := flag.Bool("verbose", false, "log debug information to stderr")
	flag.Parse()

	if err := checkFlags(*save, *configPath, *format, *output); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if *verbose {
		compguide.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}

	kind, err := chooseKind(settings, *kindTag)
	if err != nil {
		log.Fatalf("Invalid kind: %v", err)
	}
	if *interactive {
		if kind, err = askKind(kind); err != nil {
			log.Fatalf("Failed to choose kind: %v", err)
		}
	}

	helper, err := settings.Helper(kind)
	if err != nil {
		log.Fatalf("Invalid kind: %v", err)
	}
	opts, err := chooseOptions(helper.Options, *options)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if *interactive {
		if opts, err = askOptions(kind, opts); err != nil {
			log.Fatalf("Failed to choose options: %v", err)
		}
	}
	pen, err := overridePen(helper.Pen, *color, *penWidth, *style)
	if err != nil {
		log.Fatalf("Invalid pen: %v", err)
	}

	area := compguide.Rectangle{X: *x, Y: *y, Width: *width, Height: *height}
	cw, ch := canvasSize(area, *canvasWidth, *canvasHeight)

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := generate(out, *format, kind, area, cw, ch, opts, pen, *preview); err != nil {
		log.Fatalf("Failed to generate guide: %v", err)
	}

	if *save {
		settings.LastUsed = kind
		if err := settings.SetHelper(kind, config.Helper{Pen: pen, Options: opts}); err != nil {
			log.Fatalf("Failed to update preset: %v", err)
		}
		if err := settings.SaveFile(*configPath); err != nil {
			log.Fatalf("Failed to save preset: %v", err)
		}
	}

	if *output != "" {
		fmt.Fprintf(os.Stderr, "%s written to %s\n", kind.Label(), *output)
	}
}

// checkFlags rejects flag combinations that would silently do nothing or
// write binary data to the terminal.
func checkFlags(save bool, configPath, format, output string) error {
	if save && configPath == "" {
		return errors.New("-save needs -config")
	}
	if format == "png" && output == "" {
		return errors.New("png output needs -output")
	}
	return nil
}

// chooseKind returns the kind named by tag, or the preset's last used kind
// when tag is empty.
func chooseKind(settings *config.Settings, tag string) (compguide.GuideKind, error) {
	if tag == "" {
		return settings.LastUsed, nil
	}
	return compguide.ParseGuideKind(tag)
}

// chooseOptions parses raw, falling back to the preset options when raw
// is empty.
func chooseOptions(preset compguide.OptionSet, raw string) (compguide.OptionSet, error) {
	if raw == "" {
		return preset, nil
	}
	return compguide.ParseOptionSet(raw)
}

func overridePen(pen compguide.Pen, color string, width float64, style string) (compguide.Pen, error) {
	if color != "" {
		pen.Color = color
	}
	if width != 0 {
		pen.Width = width
	}
	if style != "" {
		s, err := compguide.ParseLineStyle(style)
		if err != nil {
			return compguide.Pen{}, err
		}
		pen.Style = s
	}
	return pen, pen.Validate()
}

// canvasSize returns the canvas extent, defaulting each side to the far
// edge of area.
func canvasSize(area compguide.Rectangle, width, height float64) (float64, float64) {
	if width <= 0 {
		width = area.X + area.Width
	}
	if height <= 0 {
		height = area.Y + area.Height
	}
	return width, height
}

// guideArea returns the selection when kind draws over it, and the whole
// cw x ch canvas otherwise.
func guideArea(kind compguide.GuideKind, opts compguide.OptionSet, selection compguide.Rectangle, cw, ch float64) compguide.Rectangle {
	if compguide.Effective(kind, opts).Has(compguide.UseSelectionBounds) {
		return selection
	}
	return compguide.Rectangle{Width: cw, Height: ch}
}

func generate(w io.Writer, format string, kind compguide.GuideKind, area compguide.Rectangle, cw, ch float64, opts compguide.OptionSet, pen compguide.Pen, preview int) error {
	if format == "png" && preview > 0 {
		dc, err := raster.Preview(kind, cw, ch, opts, pen, preview, preview)
		if err != nil {
			return err
		}
		defer dc.Close()
		return dc.EncodePNG(w)
	}

	prims, err := compguide.Render(kind, guideArea(kind, opts, area, cw, ch), opts)
	if err != nil {
		return err
	}

	switch format {
	case "svg":
		return svg.Encode(w, cw, ch, prims, pen)
	case "png":
		return raster.EncodePNG(w, int(math.Ceil(cw)), int(math.Ceil(ch)), prims, pen)
	}
	return fmt.Errorf("unknown format %q", format)
}

func askKind(def compguide.GuideKind) (compguide.GuideKind, error) {
	kinds := compguide.Kinds()
	labels := make([]string, 0, len(kinds))
	for _, k := range kinds {
		labels = append(labels, k.Label())
	}

	var out string
	prompt := &survey.Select{
		Message:  "Guide:",
		Options:  labels,
		Default:  def.Label(),
		PageSize: len(labels),
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for _, k := range kinds {
		if k.Label() == out {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", compguide.ErrUnknownGuideKind, out)
}

// selectableOptions returns the options of kind a user can toggle.
func selectableOptions(kind compguide.GuideKind) []compguide.Option {
	var opts []compguide.Option
	for _, o := range kind.Accepted().Options() {
		if !kind.Forced().Has(o) {
			opts = append(opts, o)
		}
	}
	return opts
}

// optionChoices returns the tags offered for kind and the ones pre-checked
// from preset.
func optionChoices(kind compguide.GuideKind, preset compguide.OptionSet) (choices, checked []string) {
	for _, o := range selectableOptions(kind) {
		choices = append(choices, o.String())
		if preset.Has(o) {
			checked = append(checked, o.String())
		}
	}
	return choices, checked
}

func askOptions(kind compguide.GuideKind, preset compguide.OptionSet) (compguide.OptionSet, error) {
	choices, checked := optionChoices(kind, preset)
	if len(choices) == 0 {
		return preset, nil
	}

	var out []string
	prompt := &survey.MultiSelect{
		Message: "Options:",
		Options: choices,
		Default: checked,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}

	var opts compguide.OptionSet
	for _, tag := range out {
		o, err := compguide.ParseOption(tag)
		if err != nil {
			return 0, err
		}
		opts = opts.With(o)
	}
	return opts, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}
	return err
}
