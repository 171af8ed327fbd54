package logic

import (
	"io"
	"log/slog"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/decoder"
	"github.com/WendelHime/torrentinfo/internal/render"
)

// Inspector backs the two CLI commands: rendering an arbitrary bencoded
// value and summarising a metafile.
type Inspector interface {
	Decode(value string, out io.Writer) error
	Info(metafile io.Reader, out io.Writer) error
}

type inspector struct {
	d    decoder.MetafileDecoder
	opts bencode.Options
	log  *slog.Logger
}

func NewInspector(d decoder.MetafileDecoder, opts bencode.Options, logger *slog.Logger) Inspector {
	return &inspector{d: d, opts: opts, log: logger}
}

func (i *inspector) Decode(value string, out io.Writer) error {
	i.log.Info("decoding value", slog.Int("size", len(value)))
	v, err := i.opts.DecodeAll([]byte(value))
	if err != nil {
		i.log.Error("failed to decode value", slog.Any("error", err))
		return err
	}

	return render.Value(out, v)
}

func (i *inspector) Info(metafile io.Reader, out io.Writer) error {
	i.log.Info("decoding metafile")
	torrent, err := i.d.Decode(metafile)
	if err != nil {
		i.log.Error("failed to decode metafile", slog.Any("error", err))
		return err
	}

	i.log.Info("decoded metafile",
		slog.String("name", torrent.Info.Name),
		slog.String("info_hash", torrent.InfoHash.String()),
		slog.Int("pieces", torrent.Info.PieceCount()),
		slog.Int64("length", torrent.Info.TotalLength()),
	)

	return render.Torrent(out, torrent)
}
