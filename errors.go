package tinymd

import "errors"

// Sentinel errors for file conversion.
var (
	ErrInputNotFound     = errors.New("failed to open input file")
	ErrOutputWriteFailed = errors.New("failed to write output file")
)
