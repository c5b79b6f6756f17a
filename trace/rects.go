package trace

import (
	"vectorlib/geom"
	"vectorlib/raster"
)

// ExtractRects run-length encodes the feature map into single-row
// rectangles. Output order is row-major, left to right within a row.
// Runs never span rows and adjacent rows are never merged.
func ExtractRects(fm raster.FeatureMap) []geom.Rect {
	var rects []geom.Rect
	for y, row := range fm {
		start := -1
		for x, on := range row {
			if on {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				rects = append(rects, geom.Rect{X: start, Y: y, W: x - start, H: 1})
				start = -1
			}
		}
		if start >= 0 {
			rects = append(rects, geom.Rect{X: start, Y: y, W: len(row) - start, H: 1})
		}
	}
	return rects
}
