package logic

import (
	"errors"
	"fmt"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/decoder"
)

const (
	ExitFailure   = 1
	ExitMalformed = 2
	ExitInvalid   = 3
)

// Describe turns an Inspector error into the line shown to the user and the
// process exit status. Syntax errors and structural errors are kept apart.
func Describe(err error) (string, int) {
	var decodeErr *bencode.DecodeError
	var projectionErr *decoder.ProjectionError
	switch {
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("malformed torrent file: %v", err), ExitMalformed
	case errors.As(err, &projectionErr):
		return fmt.Sprintf("not a valid torrent structure: %v", err), ExitInvalid
	default:
		return fmt.Sprintf("error: %v", err), ExitFailure
	}
}
