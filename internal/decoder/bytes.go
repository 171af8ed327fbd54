package decoder

import (
	"errors"
	"io"
)

var ErrTooLarge = errors.New("metafile exceeds size limit")

// ReadAll reads r until EOF. A positive limit caps how many bytes are
// accepted; reading stops with ErrTooLarge as soon as it is passed.
func ReadAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	result, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(result)) > limit {
		return nil, ErrTooLarge
	}

	return result, nil
}
