package render

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/WendelHime/torrentinfo/internal/shared/models"
)

// Torrent writes a human readable summary of t: tracker, layout, piece
// geometry and one hex hash per piece.
func Torrent(w io.Writer, t models.Torrent) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Tracker URL: %s\n", t.Announce)
	for i, tier := range t.AnnounceList {
		fmt.Fprintf(&b, "Tier %d: %s\n", i, strings.Join(tier, " "))
	}
	if t.CreatedBy != "" {
		fmt.Fprintf(&b, "Created By: %s\n", t.CreatedBy)
	}
	if t.CreationDate != 0 {
		fmt.Fprintf(&b, "Creation Date: %s\n", time.Unix(t.CreationDate, 0).UTC().Format(time.RFC3339))
	}
	if t.Comment != "" {
		fmt.Fprintf(&b, "Comment: %s\n", t.Comment)
	}

	fmt.Fprintf(&b, "Name: %s\n", t.Info.Name)
	switch layout := t.Info.Layout.(type) {
	case models.SingleFile:
		fmt.Fprintf(&b, "Length: %d\n", layout.Length)
	case models.MultiFile:
		fmt.Fprintf(&b, "Length: %d\n", layout.TotalLength())
		fmt.Fprintf(&b, "Files: %d\n", len(layout.Files))
		for _, f := range layout.Files {
			fmt.Fprintf(&b, "  %s (%d)\n", path.Join(f.Path...), f.Length)
		}
	}
	if t.Info.Private {
		b.WriteString("Private: yes\n")
	}

	fmt.Fprintf(&b, "Info Hash: %s\n", t.InfoHash)
	fmt.Fprintf(&b, "Piece Length: %d\n", t.Info.PieceLength)
	fmt.Fprintf(&b, "Piece Count: %d\n", t.Info.PieceCount())
	if last, ok := t.Info.Piece(t.Info.PieceCount() - 1); ok {
		fmt.Fprintf(&b, "Last Piece Length: %d\n", last.Length)
	}
	b.WriteString("Piece Hashes:\n")
	for _, h := range t.Info.Pieces {
		fmt.Fprintf(&b, "%s\n", h)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
