package decoder

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrWrongType       = errors.New("wrong type")
	ErrInvalidEncoding = errors.New("invalid text encoding")
	ErrInvalidField    = errors.New("invalid field value")
	ErrMalformedHashes = errors.New("malformed piece hashes")
	ErrAmbiguousLayout = errors.New("ambiguous file layout")
)

// ProjectionError reports a decoded value that is not a well-formed torrent.
// Field is a dotted path into the metainfo dictionary, e.g.
// "info.files[2].path".
type ProjectionError struct {
	Field    string
	Expected string
	Length   int
	Err      error
}

func (e *ProjectionError) Error() string {
	switch e.Err {
	case ErrMissingField:
		return fmt.Sprintf("metainfo: missing field %q", e.Field)
	case ErrWrongType, ErrInvalidField:
		return fmt.Sprintf("metainfo: field %q: %v, expected %s", e.Field, e.Err, e.Expected)
	case ErrInvalidEncoding:
		return fmt.Sprintf("metainfo: field %q is not valid UTF-8", e.Field)
	case ErrMalformedHashes:
		return fmt.Sprintf("metainfo: %q length %d is not a multiple of 20", e.Field, e.Length)
	case ErrAmbiguousLayout:
		return fmt.Sprintf("metainfo: %q must contain exactly one of \"length\" or \"files\"", e.Field)
	default:
		return fmt.Sprintf("metainfo: field %q: %v", e.Field, e.Err)
	}
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}
