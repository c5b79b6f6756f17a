package raster

// Header carries the image parameters read from the container's header chunk.
type Header struct {
	Width        int
	Height       int
	BitDepth     byte
	ColorType    byte
	Compression  byte
	FilterMethod byte
	Interlace    byte
}

// Validate rejects every parameter combination other than 8-bit
// non-interlaced grayscale with compression and filter method zero.
func (h Header) Validate() error {
	if h.Width <= 0 || h.Height <= 0 {
		return &FormatError{Reason: "invalid image dimensions"}
	}
	if h.BitDepth != 8 || h.ColorType != 0 {
		return &FormatError{Reason: "only 8-bit grayscale images are supported"}
	}
	if h.Compression != 0 || h.FilterMethod != 0 || h.Interlace != 0 {
		return &FormatError{Reason: "unsupported compression parameters"}
	}
	return nil
}

// Stride is the byte length of one encoded scanline, including the
// leading filter selector byte.
func (h Header) Stride() int { return h.Width + 1 }

// Grid is a row-major 8-bit grayscale pixel grid. Every row has the
// same length; the grid owns its backing storage.
type Grid [][]byte

// NewGrid allocates a zeroed width x height grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]byte, width)
	}
	return g
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]byte(nil), row...)
	}
	return out
}

// Sample reads the pixel at (x, y) with border-clamped coordinates:
// out-of-range indices are clamped to the nearest valid row or column.
func (g Grid) Sample(x, y int) byte {
	if x < 0 {
		x = 0
	} else if x >= g.Width() {
		x = g.Width() - 1
	}
	if y < 0 {
		y = 0
	} else if y >= len(g) {
		y = len(g) - 1
	}
	return g[y][x]
}

// FeatureMap marks pixels whose gradient magnitude met the cutoff.
// Dimensions always match the grid it was derived from.
type FeatureMap [][]bool

// NewFeatureMap allocates a cleared width x height feature map.
func NewFeatureMap(width, height int) FeatureMap {
	m := make(FeatureMap, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	return m
}

func (m FeatureMap) Height() int { return len(m) }

func (m FeatureMap) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
