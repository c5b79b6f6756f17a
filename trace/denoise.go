package trace

import (
	"math"

	"vectorlib/raster"
)

// MaxDenoiseStrength caps the number of median passes.
const MaxDenoiseStrength = 5.0

// Denoise applies strength (clamped to [0, 5], rounded) passes of a 3x3
// median filter with border-clamped sampling. Strength zero returns an
// unmodified copy. Each pass reads the output of the previous pass, so
// there is no aliasing within a pass.
func Denoise(g raster.Grid, strength float64) raster.Grid {
	if strength < 0 {
		strength = 0
	} else if strength > MaxDenoiseStrength {
		strength = MaxDenoiseStrength
	}
	repeats := int(math.Round(strength))
	if repeats == 0 {
		return g.Clone()
	}

	width, height := g.Width(), g.Height()
	current := g.Clone()
	for pass := 0; pass < repeats; pass++ {
		updated := raster.NewGrid(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var window [9]byte
				i := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						window[i] = current.Sample(x+dx, y+dy)
						i++
					}
				}
				updated[y][x] = median9(window)
			}
		}
		current = updated
	}
	return current
}

// median9 sorts the window in place and returns the middle element.
func median9(w [9]byte) byte {
	for i := 1; i < len(w); i++ {
		v := w[i]
		j := i - 1
		for j >= 0 && w[j] > v {
			w[j+1] = w[j]
			j--
		}
		w[j+1] = v
	}
	return w[4]
}
