package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts an arbitrary image to an 8-bit grayscale grid. The
// conversion goes through image.Gray so color inputs pick up the
// standard luminance weighting.
func FromImage(src image.Image) Grid {
	bounds := src.Bounds()
	gray, ok := src.(*image.Gray)
	if !ok {
		gray = image.NewGray(bounds)
		draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	}
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		copy(g[y], gray.Pix[y*gray.Stride:y*gray.Stride+bounds.Dx()])
	}
	return g
}

// Image renders the grid as an image.Gray.
func (g Grid) Image() *image.Gray {
	w, h := g.Width(), g.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range g {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], row)
	}
	return img
}

// Resize scales the grid down so neither dimension exceeds maxDim,
// preserving aspect ratio. A maxDim of zero or less, or a grid already
// within bounds, returns an untouched deep copy. Upscaling never occurs.
func (g Grid) Resize(maxDim int) Grid {
	w, h := g.Width(), g.Height()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) || w == 0 || h == 0 {
		return g.Clone()
	}
	dw, dh := w, h
	if w >= h {
		dw = maxDim
		dh = h * maxDim / w
	} else {
		dh = maxDim
		dw = w * maxDim / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), g.Image(), image.Rect(0, 0, w, h), draw.Src, nil)
	return FromImage(dst)
}
