package parser

import (
	"fmt"

	"vectorlib/raster"
)

// Scanline filter selectors.
const (
	filterNone    = 0
	filterSub     = 1
	filterUp      = 2
	filterAverage = 3
	filterPaeth   = 4
)

// reconstruct undoes the per-row predictive filtering. Each encoded row
// is one selector byte followed by width raw bytes; reconstruction uses
// the previous reconstructed row and the running left pixel, with
// wraparound addition. Out-of-bounds neighbors read as zero.
func reconstruct(data []byte, width, height int) (raster.Grid, error) {
	grid := make(raster.Grid, 0, height)
	previous := make([]byte, width)
	offset := 0
	for y := 0; y < height; y++ {
		selector := data[offset]
		offset++
		raw := data[offset : offset+width]
		offset += width

		row := make([]byte, width)
		switch selector {
		case filterNone:
			copy(row, raw)
		case filterSub:
			var left byte
			for i, v := range raw {
				left += v
				row[i] = left
			}
		case filterUp:
			for i, v := range raw {
				row[i] = v + previous[i]
			}
		case filterAverage:
			var left byte
			for i, v := range raw {
				avg := byte((int(left) + int(previous[i])) / 2)
				left = v + avg
				row[i] = left
			}
		case filterPaeth:
			var left byte
			for i, v := range raw {
				var aboveLeft byte
				if i > 0 {
					aboveLeft = previous[i-1]
				}
				left = v + paeth(left, previous[i], aboveLeft)
				row[i] = left
			}
		default:
			return nil, &raster.FormatError{Reason: fmt.Sprintf("unsupported filter type: %d", selector)}
		}
		grid = append(grid, row)
		previous = row
	}
	return grid, nil
}

// paeth picks the neighbor closest to a + b - c, preferring left, then
// above, then above-left on ties.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
