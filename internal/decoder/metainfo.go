package decoder

import (
	"io"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/shared/models"
)

// DefaultMaxSize is the largest metafile read by default, 10 MiB.
const DefaultMaxSize = 10 << 20

// MetafileDecoder reads a whole metafile and returns the validated torrent.
type MetafileDecoder interface {
	Decode(io.Reader) (models.Torrent, error)
	WithOptions(Options) MetafileDecoder
}

// Options bounds the input a MetafileDecoder accepts.
type Options struct {
	// MaxSize caps the metafile size in bytes. Zero or less disables the cap.
	MaxSize int64
	Bencode bencode.Options
}

// DefaultOptions caps metafiles at DefaultMaxSize with the default bencode limits.
func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize, Bencode: bencode.DefaultOptions()}
}

type decoder struct {
	opts Options
}

func NewDecoder() MetafileDecoder {
	return &decoder{opts: DefaultOptions()}
}

func (d *decoder) WithOptions(opts Options) MetafileDecoder {
	d.opts = opts
	return d
}

// Decode reads a whole metafile and projects it. Syntax problems come back
// as *bencode.DecodeError, structural ones as *ProjectionError.
func (d *decoder) Decode(torrent io.Reader) (models.Torrent, error) {
	raw, err := ReadAll(torrent, d.opts.MaxSize)
	if err != nil {
		return models.Torrent{}, err
	}

	v, err := d.opts.Bencode.DecodeAll(raw)
	if err != nil {
		return models.Torrent{}, err
	}

	return Project(v)
}
