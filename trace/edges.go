package trace

import (
	"math"

	"vectorlib/raster"
)

// DetectEdges marks every pixel whose central-difference gradient
// magnitude meets or exceeds threshold*255. The threshold is clamped to
// [0, 1]. Sampling is border-clamped.
//
// sigma is accepted for interface parity with callers that request a
// Gaussian pre-blur; it has no effect here. Smoothing happens in the
// denoise step, and applying a blur would change observable output.
func DetectEdges(g raster.Grid, threshold, sigma float64) raster.FeatureMap {
	_ = sigma
	if threshold < 0 {
		threshold = 0
	} else if threshold > 1 {
		threshold = 1
	}
	cutoff := threshold * 255.0

	width, height := g.Width(), g.Height()
	fm := raster.NewFeatureMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gx := int(g.Sample(x+1, y)) - int(g.Sample(x-1, y))
			gy := int(g.Sample(x, y+1)) - int(g.Sample(x, y-1))
			magnitude := math.Sqrt(float64(gx*gx + gy*gy))
			fm[y][x] = magnitude >= cutoff
		}
	}
	return fm
}
