package convert

import (
	"bytes"
	"context"
	"encoding/base64"

	"vectorlib/eps"
	"vectorlib/observability"
	"vectorlib/parser"
	"vectorlib/pdf"
	"vectorlib/svg"
	"vectorlib/trace"
)

type impl struct{ cfg Config }

func (c *impl) Convert(ctx context.Context, data []byte, opts Options) (*Result, error) {
	ctx, span := c.cfg.Tracer.StartSpan(ctx, "vector.convert")
	defer span.Finish()

	dec := parser.NewDecoder(parser.Config{
		Decompressor:    c.cfg.Decompressor,
		Limits:          c.cfg.Limits,
		VerifyChecksums: c.cfg.VerifyChecksums,
		Logger:          c.cfg.Logger,
	})
	grid, _, err := dec.DecodeGrayscale(ctx, data)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if c.cfg.MaxDimension > 0 {
		grid = grid.Resize(c.cfg.MaxDimension)
	}
	width, height := grid.Width(), grid.Height()

	cleaned := trace.Denoise(grid, opts.DenoiseStrength)

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	edges := trace.DetectEdges(cleaned, threshold, opts.EdgeSigma)
	rects := trace.ExtractRects(edges)
	c.cfg.Logger.Debug("extracted rectangles",
		observability.Int("width", width),
		observability.Int("height", height),
		observability.Int("rects", len(rects)))

	var ai bytes.Buffer
	if err := (&pdf.WriterBuilder{}).Build().Write(&ai, rects, width, height); err != nil {
		span.SetError(err)
		return nil, err
	}

	return &Result{
		SVG: svg.Encode(rects, width, height),
		AI:  base64.StdEncoding.EncodeToString(ai.Bytes()),
		EPS: base64.StdEncoding.EncodeToString(eps.Encode(rects, width, height)),
	}, nil
}
