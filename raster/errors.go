package raster

// FormatError reports malformed or unsupported input: a bad signature,
// an incomplete or out-of-order header chunk, unsupported image
// parameters, a corrupt compressed stream, a payload size mismatch, or
// an unknown scanline filter selector.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

// EmptyInputError reports an input buffer with zero usable bytes.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string { return "input buffer is empty" }
