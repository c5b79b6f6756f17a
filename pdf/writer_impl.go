package pdf

import (
	"bytes"
	"fmt"
	"io"

	"vectorlib/geom"
)

type impl struct{ cfg Config }

func (w *impl) Write(out io.Writer, rects []geom.Rect, width, height int) error {
	// Content stream: one fill operator per rectangle, flipped to the
	// bottom-left origin.
	var content bytes.Buffer
	content.WriteString("q 0 g\n")
	for _, r := range rects {
		fmt.Fprintf(&content, "%d %d %d %d re f\n", r.X, r.Bottom(height), r.W, r.H)
	}
	content.WriteString("Q\n")

	contents := fmt.Appendf(nil, "4 0 obj<< /Length %d >>stream\n", content.Len())
	contents = append(contents, content.Bytes()...)
	contents = append(contents, "endstream endobj\n"...)

	objects := [][]byte{
		[]byte("1 0 obj<< /Type /Catalog /Pages 2 0 R >>endobj\n"),
		[]byte("2 0 obj<< /Type /Pages /Kids [3 0 R] /Count 1 >>endobj\n"),
		fmt.Appendf(nil, "3 0 obj<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 4 0 R >>endobj\n", width, height),
		contents,
	}

	// Serialize with incremental offset tracking. Every recorded offset
	// must point at the first byte of its object or the cross-reference
	// table is useless to a compliant reader.
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n", w.cfg.Version)
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.Write(obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer<< /Root 1 0 R /Size %d >>\n", len(objects)+1)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF", xrefOffset)

	_, err := out.Write(buf.Bytes())
	return err
}
