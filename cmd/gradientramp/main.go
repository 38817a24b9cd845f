// Command gradientramp renders a gradient preset to a PNG preview.
//
// Stops can be added the way a user would add them, by clicking the strip:
//
//	gradientramp -preset sunset.yaml -click 120 -click 340 -output ramp.png
package main

import (
	"bytes"
	"flag"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/vedit"
	"github.com/gogpu/vedit/gradient"
)

const defaultPreset = `
name: grayscale
stops:
  - offset: 0
    color: "#000000"
  - offset: 1
    color: "#ffffff"
`

// clicks collects repeated -click flags.
type clicks []float64

func (c *clicks) String() string {
	parts := make([]string, len(*c))
	for i, x := range *c {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (c *clicks) Set(s string) error {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*c = append(*c, x)
	return nil
}

func main() {
	var (
		width   = flag.Int("width", 512, "image width")
		height  = flag.Int("height", 64, "image height")
		preset  = flag.String("preset", "", "YAML preset file (default: black to white)")
		output  = flag.String("output", "ramp.png", "output file")
		verbose = flag.Bool("v", false, "log editing steps to stderr")
		at      clicks
	)
	flag.Var(&at, "click", "insert a stop by clicking the strip at this x (repeatable)")
	flag.Parse()

	if *verbose {
		vedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var r io.Reader = strings.NewReader(defaultPreset)
	if *preset != "" {
		data, err := os.ReadFile(*preset)
		if err != nil {
			log.Fatalf("Failed to read preset: %v", err)
		}
		r = bytes.NewReader(data)
	}
	p, stops, err := gradient.LoadPreset(r)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}

	slider := gradient.NewSlider(stops, float64(*width))
	slider.OnEvent(func(ev gradient.Event) { stops.Apply(ev) })
	for _, x := range at {
		if slider.HitTest(x) != nil {
			log.Printf("Click at %g hits an existing stop, skipped", x)
			continue
		}
		slider.PointerPressed(x, vedit.ButtonPrimary)
		log.Printf("Added stop at %.3f: %s", slider.Selected().Offset, slider.Selected().Color.Hex())
	}
	slider.Close()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, stops.Ramp(*width, *height)); err != nil {
		f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%dx%d, %d stops)\n", p.Name, *output, *width, *height, stops.Len())
}
