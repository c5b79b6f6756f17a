package svg

import (
	"strings"
	"testing"

	"vectorlib/geom"
)

func TestEncodeDocument(t *testing.T) {
	rects := []geom.Rect{
		{X: 1, Y: 2, W: 3, H: 1},
		{X: 0, Y: 5, W: 10, H: 1},
	}
	got := Encode(rects, 16, 8)
	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<svg xmlns="http://www.w3.org/2000/svg" width="16" height="8" viewBox="0 0 16 8">` +
		`<g fill="black" stroke="none">` +
		`<rect x="1" y="2" width="3" height="1" />` +
		`<rect x="0" y="5" width="10" height="1" />` +
		`</g></svg>`
	if got != want {
		t.Fatalf("document mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestEncodeEmptyRectList(t *testing.T) {
	got := Encode(nil, 32, 32)
	if strings.Contains(got, "<rect") {
		t.Fatalf("empty rect list produced rect elements: %s", got)
	}
	if !strings.HasPrefix(got, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing declaration header: %s", got)
	}
	if !strings.Contains(got, `width="32" height="32"`) {
		t.Fatalf("missing dimensions: %s", got)
	}
}

func TestEncodePreservesOrder(t *testing.T) {
	rects := []geom.Rect{
		{X: 5, Y: 0, W: 1, H: 1},
		{X: 1, Y: 0, W: 1, H: 1},
	}
	got := Encode(rects, 8, 8)
	first := strings.Index(got, `x="5"`)
	second := strings.Index(got, `x="1"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("rect order not preserved: %s", got)
	}
}
