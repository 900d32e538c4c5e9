package chart

import "errors"

var (
	// ErrUnknownFormat is returned by Save for a file extension no encoder handles.
	ErrUnknownFormat = errors.New("chart: unknown image format")

	// ErrBadSize indicates a non-positive figure size, DPI or supersample factor.
	ErrBadSize = errors.New("chart: figure size must be positive")
)
