package models

import "math"

type Piece struct {
	Index  int
	Hash   Hash
	Offset int64
	Length int64
}

// Piece describes the piece at index. Every piece spans PieceLength bytes
// except the last, which holds whatever remains of the content. An index
// whose offset does not fit in an int64 is reported as absent.
func (i Info) Piece(index int) (Piece, bool) {
	if index < 0 || index >= len(i.Pieces) || i.PieceLength <= 0 {
		return Piece{}, false
	}
	if int64(index) > math.MaxInt64/i.PieceLength {
		return Piece{}, false
	}
	offset := int64(index) * i.PieceLength
	length := i.PieceLength
	if remaining := i.TotalLength() - offset; remaining < length {
		length = max(remaining, 0)
	}
	return Piece{Index: index, Hash: i.Pieces[index], Offset: offset, Length: length}, true
}
