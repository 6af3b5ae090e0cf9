package main

import (
	"fmt"
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Fallback edge length when an SVG declares no usable viewBox.
const defaultSVGSize = 512

// RenderSVG rasterizes an SVG file into an RGBA buffer at scale times its
// intrinsic viewBox dimensions.
func RenderSVG(path string, scale float64) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in)
	if err != nil {
		return nil, fmt.Errorf("error parsing SVG: %w", err)
	}

	w := int(icon.ViewBox.W * scale)
	h := int(icon.ViewBox.H * scale)
	if w <= 0 || h <= 0 {
		w = int(defaultSVGSize * scale)
		h = w
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}
