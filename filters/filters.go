package filters

import (
	"bytes"
	"context"
	"errors"
	"io"

	stdzlib "compress/zlib"

	"github.com/klauspost/compress/zlib"
)

// Decompressor inflates a compressed byte stream. Implementations are
// selected by configuration so the decode path never hard-depends on
// one backend.
type Decompressor interface {
	Name() string
	Decompress(ctx context.Context, input []byte) ([]byte, error)
}

// Limits bounds decompression work.
type Limits struct {
	MaxDecompressedSize int64
}

// Decode runs input through d and enforces limits on the result.
func Decode(ctx context.Context, d Decompressor, input []byte, limits Limits) ([]byte, error) {
	if d == nil {
		return nil, errors.New("no decompressor configured")
	}
	out, err := d.Decompress(ctx, input)
	if err != nil {
		return nil, err
	}
	if limits.MaxDecompressedSize > 0 && int64(len(out)) > limits.MaxDecompressedSize {
		return nil, errors.New("decompressed size exceeds limit")
	}
	return out, nil
}

// Registry maps backend names to decompressors.
type Registry struct{ decompressors map[string]Decompressor }

func (r *Registry) Register(d Decompressor) {
	if r.decompressors == nil {
		r.decompressors = make(map[string]Decompressor)
	}
	r.decompressors[d.Name()] = d
}

func (r *Registry) Get(name string) (Decompressor, bool) {
	d, ok := r.decompressors[name]
	return d, ok
}

// Default returns the decompressor used when none is configured.
func Default() Decompressor { return zlibDecompressor{} }

type zlibDecompressor struct{}

func (zlibDecompressor) Name() string { return "zlib" }
func (zlibDecompressor) Decompress(ctx context.Context, input []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// NewZlibDecompressor returns the klauspost/compress backed backend.
func NewZlibDecompressor() Decompressor { return zlibDecompressor{} }

type stdZlibDecompressor struct{}

func (stdZlibDecompressor) Name() string { return "zlib/std" }
func (stdZlibDecompressor) Decompress(ctx context.Context, input []byte) ([]byte, error) {
	r, err := stdzlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// NewStdZlibDecompressor returns a standard-library backed backend.
func NewStdZlibDecompressor() Decompressor { return stdZlibDecompressor{} }
