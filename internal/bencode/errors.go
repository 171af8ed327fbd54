package bencode

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
	ErrInvalidLength         = errors.New("invalid length prefix")
	ErrInvalidInteger        = errors.New("invalid integer")
	ErrUnterminatedContainer = errors.New("unterminated list or dictionary")
	ErrNonStringKey          = errors.New("dictionary key is not a byte string")
	ErrDepthExceeded         = errors.New("nesting depth exceeded")
	ErrUnsortedKeys          = errors.New("dictionary keys are not strictly increasing")
	ErrTrailingData          = errors.New("trailing data after value")
)

// DecodeError reports a syntax error and the byte offset where it was
// detected. Use errors.Is with one of the Err* values to tell kinds apart.
type DecodeError struct {
	Err    error
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bencode: %v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
