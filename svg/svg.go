package svg

import (
	"fmt"
	"strings"

	"vectorlib/geom"
)

const xmlns = "http://www.w3.org/2000/svg"

// Encode serializes the rectangle list as a single-group SVG document.
// Rectangles are emitted in source order; none are omitted or
// reordered.
func Encode(rects []geom.Rect, width, height int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b, `<svg xmlns=%q width="%d" height="%d" viewBox="0 0 %d %d">`, xmlns, width, height, width, height)
	b.WriteString(`<g fill="black" stroke="none">`)
	for _, r := range rects {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" />`, r.X, r.Y, r.W, r.H)
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}
