package convert

import (
	"context"

	"vectorlib/filters"
	"vectorlib/observability"
)

// DefaultThreshold is used when the caller leaves Options.Threshold at
// its zero value.
const DefaultThreshold = 0.2

// Options are the per-call tuning parameters. All values are clamped
// into range internally, so no value can make a conversion fail after
// decoding succeeds.
type Options struct {
	// DenoiseStrength selects the number of median passes, clamped to
	// [0, 5].
	DenoiseStrength float64
	// Threshold is the edge cutoff as a fraction of full scale, clamped
	// to [0, 1]. Zero selects DefaultThreshold.
	Threshold float64
	// EdgeSigma is accepted for interface parity and is currently
	// unused. Reserved for a future pre-blur step.
	EdgeSigma float64
}

// Result bundles the three serialized outputs. AI and EPS are base64
// encoded so the binary formats travel safely over text boundaries.
type Result struct {
	SVG string
	AI  string
	EPS string
}

type Config struct {
	Decompressor    filters.Decompressor
	Limits          filters.Limits
	VerifyChecksums bool
	// MaxDimension, when positive, downscales the decoded grid so
	// neither dimension exceeds it before vectorization.
	MaxDimension int
	Logger       observability.Logger
	Tracer       observability.Tracer
}

// Converter runs the full image-to-vector pipeline: decode, denoise,
// edge detection, rectangle extraction, and the three encoders.
type Converter interface {
	Convert(ctx context.Context, data []byte, opts Options) (*Result, error)
}

type ConverterBuilder struct{ cfg Config }

func (b *ConverterBuilder) WithConfig(cfg Config) *ConverterBuilder {
	b.cfg = cfg
	return b
}

func (b *ConverterBuilder) Build() Converter {
	cfg := b.cfg
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}
	if cfg.Tracer == nil {
		cfg.Tracer = observability.NopTracer()
	}
	return &impl{cfg: cfg}
}
