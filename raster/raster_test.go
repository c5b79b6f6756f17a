package raster

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderValidate(t *testing.T) {
	valid := Header{Width: 4, Height: 4, BitDepth: 8}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid header rejected: %v", err)
	}

	cases := []struct {
		name string
		hdr  Header
	}{
		{"zero width", Header{Width: 0, Height: 4, BitDepth: 8}},
		{"zero height", Header{Width: 4, Height: 0, BitDepth: 8}},
		{"16-bit depth", Header{Width: 4, Height: 4, BitDepth: 16}},
		{"truecolor", Header{Width: 4, Height: 4, BitDepth: 8, ColorType: 2}},
		{"nonzero compression", Header{Width: 4, Height: 4, BitDepth: 8, Compression: 1}},
		{"nonzero filter method", Header{Width: 4, Height: 4, BitDepth: 8, FilterMethod: 1}},
		{"interlaced", Header{Width: 4, Height: 4, BitDepth: 8, Interlace: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.hdr.Validate()
			if err == nil {
				t.Fatalf("expected rejection")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FormatError, got %T", err)
			}
		})
	}
}

func TestHeaderStride(t *testing.T) {
	h := Header{Width: 7, Height: 3, BitDepth: 8}
	if h.Stride() != 8 {
		t.Fatalf("stride = %d, want 8", h.Stride())
	}
}

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(5, 3)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("got %dx%d, want 5x3", g.Width(), g.Height())
	}
	var empty Grid
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Fatalf("empty grid should report 0x0")
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	c := g.Clone()
	if diff := cmp.Diff(g, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}
	c[0][0] = 99
	if g[0][0] != 1 {
		t.Fatalf("clone shares storage with original")
	}
}

func TestGridSampleClamps(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	cases := []struct {
		x, y int
		want byte
	}{
		{0, 0, 1},
		{1, 1, 4},
		{-1, 0, 1},
		{5, 0, 2},
		{0, -3, 1},
		{1, 9, 4},
		{-1, -1, 1},
		{9, 9, 4},
	}
	for _, tc := range cases {
		if got := g.Sample(tc.x, tc.y); got != tc.want {
			t.Fatalf("Sample(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNewFeatureMapDimensions(t *testing.T) {
	m := NewFeatureMap(4, 2)
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("got %dx%d, want 4x2", m.Width(), m.Height())
	}
}

func TestErrorMessages(t *testing.T) {
	fe := &FormatError{Reason: "bad signature"}
	if fe.Error() != "bad signature" {
		t.Fatalf("unexpected message: %q", fe.Error())
	}
	ee := &EmptyInputError{}
	if ee.Error() == "" {
		t.Fatalf("empty input error has no message")
	}
}
