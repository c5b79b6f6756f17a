package filters

import (
	"bytes"
	"context"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func deflate(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close compressor: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressRoundTrip(t *testing.T) {
	payload := []byte("scanline payload with some repetition repetition repetition")
	compressed := deflate(t, payload)

	for _, d := range []Decompressor{NewZlibDecompressor(), NewStdZlibDecompressor()} {
		out, err := d.Decompress(context.Background(), compressed)
		if err != nil {
			t.Fatalf("%s: decompress: %v", d.Name(), err)
		}
		if !bytes.Equal(out, payload) {
			t.Fatalf("%s: round trip mismatch", d.Name())
		}
	}
}

func TestDecompressCorruptInput(t *testing.T) {
	garbage := []byte{0x00, 0x01, 0x02, 0x03}
	for _, d := range []Decompressor{NewZlibDecompressor(), NewStdZlibDecompressor()} {
		if _, err := d.Decompress(context.Background(), garbage); err == nil {
			t.Fatalf("%s: expected error for corrupt input", d.Name())
		}
	}
}

func TestDecodeEnforcesLimit(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAA}, 1024)
	compressed := deflate(t, payload)

	if _, err := Decode(context.Background(), Default(), compressed, Limits{MaxDecompressedSize: 16}); err == nil {
		t.Fatalf("expected size limit error")
	}
	out, err := Decode(context.Background(), Default(), compressed, Limits{MaxDecompressedSize: 2048})
	if err != nil {
		t.Fatalf("decode within limit: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("payload mismatch")
	}
}

func TestDecodeNilDecompressor(t *testing.T) {
	if _, err := Decode(context.Background(), nil, nil, Limits{}); err == nil {
		t.Fatalf("expected error for missing decompressor")
	}
}

func TestRegistry(t *testing.T) {
	var reg Registry
	reg.Register(NewZlibDecompressor())
	reg.Register(NewStdZlibDecompressor())

	if d, ok := reg.Get("zlib"); !ok || d.Name() != "zlib" {
		t.Fatalf("zlib backend missing")
	}
	if d, ok := reg.Get("zlib/std"); !ok || d.Name() != "zlib/std" {
		t.Fatalf("zlib/std backend missing")
	}
	if _, ok := reg.Get("lzma"); ok {
		t.Fatalf("unexpected backend")
	}
}

func TestDefaultIsKlauspostBacked(t *testing.T) {
	if Default().Name() != "zlib" {
		t.Fatalf("unexpected default backend: %s", Default().Name())
	}
}
