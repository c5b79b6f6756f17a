package eps

import (
	"bytes"
	"fmt"

	"vectorlib/geom"
)

// Encode serializes the rectangle list as an EPS command stream: a
// version header, a bounding box covering the full image, and one
// fill-path sequence per rectangle in the bottom-left coordinate
// system.
func Encode(rects []geom.Rect, width, height int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", width, height)
	buf.WriteString("0 setgray\n")
	for _, r := range rects {
		fmt.Fprintf(&buf, "newpath %d %d moveto %d 0 rlineto 0 %d rlineto %d 0 rlineto closepath fill\n",
			r.X, r.Bottom(height), r.W, r.H, -r.W)
	}
	buf.WriteString("showpage")
	return buf.Bytes()
}
