package models

import "encoding/hex"

// HashSize is the length of a SHA-1 digest, the unit of both the info hash
// and every piece hash.
const HashSize = 20

type Torrent struct {
	Announce     string
	AnnounceList [][]string
	Comment      string
	CreatedBy    string
	CreationDate int64
	Info         Info
	InfoHash     Hash
}

type Info struct {
	Name        string
	PieceLength int64
	Pieces      []Hash
	Private     bool
	Layout      Layout
}

// Layout is either SingleFile or MultiFile.
type Layout interface {
	TotalLength() int64
	isLayout()
}

type SingleFile struct {
	Length int64
}

type MultiFile struct {
	Files []File
}

type File struct {
	Length int64
	Path   []string
}

func (SingleFile) isLayout() {}
func (MultiFile) isLayout()  {}

func (s SingleFile) TotalLength() int64 {
	return s.Length
}

func (m MultiFile) TotalLength() int64 {
	var total int64
	for _, f := range m.Files {
		total += f.Length
	}
	return total
}

type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (i Info) TotalLength() int64 {
	if i.Layout == nil {
		return 0
	}
	return i.Layout.TotalLength()
}

func (i Info) PieceCount() int {
	return len(i.Pieces)
}
