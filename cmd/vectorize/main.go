package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"vectorlib/convert"
	"vectorlib/filters"
)

type options struct {
	imagePath string
	outDir    string
	denoise   float64
	threshold float64
	sigma     float64
	maxDim    int
	verify    bool
	stdZlib   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectorize: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "vectorize: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/vectorize [flags] <image>\n")
		flag.PrintDefaults()
	}
	denoise := flag.Float64("denoise", 1.0, "Median denoise strength (0-5)")
	threshold := flag.Float64("threshold", 0, "Edge threshold (0-1, 0 uses the default)")
	sigma := flag.Float64("sigma", 0, "Reserved pre-blur sigma (currently unused)")
	maxDim := flag.Int("maxdim", 0, "Downscale so no dimension exceeds this (0 disables)")
	verify := flag.Bool("verify", false, "Validate chunk checksums while decoding")
	stdZlib := flag.Bool("stdzlib", false, "Use the standard library zlib backend")
	outDir := flag.String("out", ".", "Directory for the generated vector files")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return opts, fmt.Errorf("expected exactly one input image")
	}
	opts.imagePath = flag.Arg(0)
	opts.outDir = *outDir
	opts.denoise = *denoise
	opts.threshold = *threshold
	opts.sigma = *sigma
	opts.maxDim = *maxDim
	opts.verify = *verify
	opts.stdZlib = *stdZlib
	return opts, nil
}

func run(opts options) error {
	data, err := os.ReadFile(opts.imagePath)
	if err != nil {
		return err
	}

	cfg := convert.Config{
		VerifyChecksums: opts.verify,
		MaxDimension:    opts.maxDim,
	}
	if opts.stdZlib {
		cfg.Decompressor = filters.NewStdZlibDecompressor()
	}
	conv := (&convert.ConverterBuilder{}).WithConfig(cfg).Build()
	result, err := conv.Convert(context.Background(), data, convert.Options{
		DenoiseStrength: opts.denoise,
		Threshold:       opts.threshold,
		EdgeSigma:       opts.sigma,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(opts.outDir, stem(opts.imagePath))
	if err := os.WriteFile(base+".svg", []byte(result.SVG), 0o644); err != nil {
		return err
	}
	ai, err := base64.StdEncoding.DecodeString(result.AI)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".ai", ai, 0o644); err != nil {
		return err
	}
	epsData, err := base64.StdEncoding.DecodeString(result.EPS)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".eps", epsData, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s.{svg,ai,eps}\n", base)
	return nil
}

func stem(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}
