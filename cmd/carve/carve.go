package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wbrown/seamcarve"
	"github.com/wbrown/seamcarve/imageutil"
)

// config holds the settings shared by the width and height passes.
type config struct {
	forward   bool
	workers   int
	threshold uint8
	color     uint32
	framesDir string
	energyOut string
}

// options returns carver options for one pass.
func (cfg config) options() []seamcarve.Option {
	if cfg.forward {
		return []seamcarve.Option{seamcarve.WithForwardEnergy(cfg.workers)}
	}
	return nil
}

// parseColor parses an RRGGBB hex string into an opaque packed pixel.
func parseColor(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || v > 0xffffff {
		return 0, fmt.Errorf("invalid color %q, expected RRGGBB", s)
	}
	return 0xff000000 | uint32(v), nil
}

// carve narrows img to target columns. name prefixes frame files.
func carve(img *imageutil.RGBAImage, target int, mask *imageutil.GrayImage,
	cfg config, name string) (*imageutil.RGBAImage, error) {
	if target <= 0 || target == img.Width() {
		return img, nil
	}
	if target > img.Width() {
		return nil, fmt.Errorf("%s %d exceeds the input's %d; seams can only be removed",
			name, target, img.Width())
	}

	c := seamcarve.NewFromImage(img, cfg.options()...)
	if mask != nil {
		fmt.Printf("Protected pixels: %d\n", c.ApplyMask(mask, cfg.threshold))
	}
	if cfg.energyOut != "" {
		if err := imageutil.SaveImage(c.EnergyImage().RGBA, cfg.energyOut); err != nil {
			return nil, err
		}
	}

	if cfg.framesDir == "" {
		if _, err := c.ResizeTo(target); err != nil {
			return nil, err
		}
		return c.Image(), nil
	}

	for step := 0; c.Width() > target; step++ {
		if !c.Remove(true, cfg.color) {
			break
		}
		path := filepath.Join(cfg.framesDir, fmt.Sprintf("%s_%04d.png", name, step))
		if err := imageutil.SaveImage(c.Image().RGBA, path); err != nil {
			return nil, err
		}
	}
	c.Redraw()
	return c.Image(), nil
}

// prescale shrinks img so neither side exceeds maxDim, scaling mask to the
// same size so it stays aligned. Mask values are sampled, not blended, to
// keep the threshold meaningful.
func prescale(img *imageutil.RGBAImage, mask *imageutil.GrayImage,
	maxDim int) (*imageutil.RGBAImage, *imageutil.GrayImage) {
	w, h := imageutil.FitWithin(img.Width(), img.Height(), maxDim)
	if w != img.Width() || h != img.Height() {
		img = imageutil.Resize(img, w, h, imageutil.InterpolationArea)
	}
	if mask != nil && (mask.Width() != w || mask.Height() != h) {
		mask = imageutil.ResizeGray(mask, w, h, imageutil.InterpolationNearest)
	}
	return img, mask
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "carved.png",
		"Path to save the output (png, jpg or gif by extension)")
	targetWidth := flag.Int("width", 0,
		"Target width in pixels, 0 to keep the width")
	targetHeight := flag.Int("height", 0,
		"Target height in pixels, 0 to keep the height")
	forward := flag.Bool("forward", false,
		"Use forward energy instead of the Sobel gradient")
	workers := flag.Int("workers", 0,
		"Grayscale conversion workers for forward energy, 0 for GOMAXPROCS")
	maskFile := flag.String("mask", "",
		"Grayscale mask; pixels brighter than -threshold are protected (width pass only)")
	threshold := flag.Uint("threshold", 128,
		"Mask threshold (0-255)")
	framesDir := flag.String("frames", "",
		"Directory to write one highlighted frame per removed seam")
	seamColor := flag.String("color", "ff0000",
		"Highlight color for -frames as RRGGBB")
	maxDim := flag.Int("maxdim", 0,
		"Scale the input down so neither side exceeds this, 0 to disable")
	label := flag.Bool("label", false,
		"Stamp the output size onto the output image")
	energyFile := flag.String("energy", "",
		"Write the width pass energy map to this file")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		return
	}
	if *threshold > 255 {
		fmt.Println("Mask threshold must be between 0 and 255")
		os.Exit(1)
	}
	color, err := parseColor(*seamColor)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0755); err != nil {
			fmt.Printf("Error creating frames directory: %v\n", err)
			os.Exit(1)
		}
	}

	beginInit := time.Now()
	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}

	var mask *imageutil.GrayImage
	if *maskFile != "" {
		mask, err = imageutil.LoadGrayImage(*maskFile)
		if err != nil {
			fmt.Printf("Error loading mask: %v\n", err)
			os.Exit(1)
		}
	}
	if *maxDim > 0 {
		inW, inH := img.Width(), img.Height()
		img, mask = prescale(img, mask, *maxDim)
		if img.Width() != inW || img.Height() != inH {
			fmt.Printf("Scaled input to %dx%d\n", img.Width(), img.Height())
		}
	}
	endInit := time.Now()
	energy := "backward"
	if *forward {
		energy = "forward"
	}
	fmt.Printf("input: %dx%d\nenergy: %s\n", img.Width(), img.Height(), energy)
	fmt.Printf("Initialization time: %v\n", endInit.Sub(beginInit))

	cfg := config{
		forward:   *forward,
		workers:   *workers,
		threshold: uint8(*threshold),
		color:     color,
		framesDir: *framesDir,
		energyOut: *energyFile,
	}

	out, err := carve(img, *targetWidth, mask, cfg, "width")
	if err != nil {
		fmt.Printf("Error carving width: %v\n", err)
		os.Exit(1)
	}
	if *targetHeight > 0 && *targetHeight != out.Height() {
		cfg.energyOut = ""
		tr, err := carve(out.Transpose(), *targetHeight, nil, cfg, "height")
		if err != nil {
			fmt.Printf("Error carving height: %v\n", err)
			os.Exit(1)
		}
		out = tr.Transpose()
	}
	endComputation := time.Now()

	if *label {
		if err := imageutil.Annotate(out, fmt.Sprintf("%dx%d", out.Width(), out.Height())); err != nil {
			fmt.Printf("Error labeling output: %v\n", err)
			os.Exit(1)
		}
	}
	if err := imageutil.SaveImage(out.RGBA, *outputFile); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Output written to %s (%dx%d)\n", *outputFile, out.Width(), out.Height())
	fmt.Printf("Computation time: %v\n", endComputation.Sub(endInit))
}
