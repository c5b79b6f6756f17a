package pdf

import (
	"bytes"
	"io"

	"vectorlib/geom"
)

type Version string

const V14 Version = "1.4"

type Config struct {
	Version Version
}

// Writer serializes a rectangle list as a single-page PDF document.
type Writer interface {
	Write(out io.Writer, rects []geom.Rect, width, height int) error
}

type WriterBuilder struct{ cfg Config }

func (b *WriterBuilder) WithConfig(cfg Config) *WriterBuilder {
	b.cfg = cfg
	return b
}

func (b *WriterBuilder) Build() Writer {
	cfg := b.cfg
	if cfg.Version == "" {
		cfg.Version = V14
	}
	return &impl{cfg: cfg}
}

// Encode serializes with the default configuration.
func Encode(rects []geom.Rect, width, height int) []byte {
	var buf bytes.Buffer
	_ = (&WriterBuilder{}).Build().Write(&buf, rects, width, height)
	return buf.Bytes()
}
