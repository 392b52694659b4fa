package engine

import "errors"

var (
	// ErrReadInput indicates the input layout could not be read.
	ErrReadInput = errors.New("could not read layout")

	// ErrMalformedLayout indicates the input is not a valid layout document.
	ErrMalformedLayout = errors.New("malformed layout")

	// ErrMissingDimensions indicates neither flags nor a profile gave width and height.
	ErrMissingDimensions = errors.New("missing dimensions")

	// ErrSerialize indicates the edited layout could not be encoded.
	ErrSerialize = errors.New("could not serialize layout")

	// ErrWriteOutput indicates the output file could not be written.
	ErrWriteOutput = errors.New("could not save layout")
)
