package decoder

import (
	"crypto/sha1"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/WendelHime/torrentinfo/internal/bencode"
	"github.com/WendelHime/torrentinfo/internal/shared/models"
)

// Project maps a decoded metainfo dictionary onto a models.Torrent. It either
// returns a fully validated torrent or a *ProjectionError, never both.
func Project(v bencode.Value) (models.Torrent, error) {
	t, err := project(v)
	if err != nil {
		return models.Torrent{}, err
	}
	return t, nil
}

func project(v bencode.Value) (models.Torrent, error) {
	var response models.Torrent

	d, ok := v.(bencode.Dict)
	if !ok {
		return response, wrongType("metainfo", "dictionary")
	}
	root := fields{d: d}

	var err error
	response.Announce, err = root.text("announce")
	if err != nil {
		return response, err
	}
	response.AnnounceList, err = root.announceList("announce-list")
	if err != nil {
		return response, err
	}
	response.Comment, err = root.optionalText("comment")
	if err != nil {
		return response, err
	}
	response.CreatedBy, err = root.optionalText("created by")
	if err != nil {
		return response, err
	}
	response.CreationDate, _, err = root.optionalInteger("creation date")
	if err != nil {
		return response, err
	}

	info, err := root.dict("info")
	if err != nil {
		return response, err
	}
	response.Info, err = projectInfo(info)
	if err != nil {
		return response, err
	}
	response.InfoHash = calculateInfoHash(info.d)

	return response, nil
}

func projectInfo(info fields) (models.Info, error) {
	var response models.Info
	var err error

	response.Name, err = info.text("name")
	if err != nil {
		return response, err
	}

	response.PieceLength, err = info.integer("piece length")
	if err != nil {
		return response, err
	}
	if response.PieceLength <= 0 {
		return response, invalidField(info.path("piece length"), "positive integer")
	}

	pieces, err := info.bytes("pieces")
	if err != nil {
		return response, err
	}
	response.Pieces, err = calculatePiecesHashes(pieces, info.path("pieces"))
	if err != nil {
		return response, err
	}

	private, ok, err := info.optionalInteger("private")
	if err != nil {
		return response, err
	}
	if ok && private != 0 && private != 1 {
		return response, invalidField(info.path("private"), "0 or 1")
	}
	response.Private = private == 1

	response.Layout, err = projectLayout(info)
	if err != nil {
		return response, err
	}

	return response, nil
}

// projectLayout picks the layout by which of "length" and "files" is present.
// Exactly one of them must be.
func projectLayout(info fields) (models.Layout, error) {
	_, hasLength := info.d["length"]
	_, hasFiles := info.d["files"]
	if hasLength == hasFiles {
		return nil, &ProjectionError{Field: info.prefix, Err: ErrAmbiguousLayout}
	}

	if hasLength {
		length, err := info.length("length")
		if err != nil {
			return nil, err
		}
		return models.SingleFile{Length: length}, nil
	}

	list, err := info.list("files")
	if err != nil {
		return nil, err
	}
	files := make([]models.File, 0, len(list))
	var total int64
	for i, item := range list {
		entry, err := asDict(item, fmt.Sprintf("%s[%d]", info.path("files"), i))
		if err != nil {
			return nil, err
		}
		file, err := projectFile(entry)
		if err != nil {
			return nil, err
		}
		if file.Length > math.MaxInt64-total {
			return nil, invalidField(info.path("files"), "total length within int64")
		}
		total += file.Length
		files = append(files, file)
	}
	return models.MultiFile{Files: files}, nil
}

func projectFile(entry fields) (models.File, error) {
	var response models.File
	var err error

	response.Length, err = entry.length("length")
	if err != nil {
		return response, err
	}

	segments, err := entry.list("path")
	if err != nil {
		return response, err
	}
	if len(segments) == 0 {
		return response, invalidField(entry.path("path"), "non-empty list")
	}
	response.Path = make([]string, 0, len(segments))
	for i, segment := range segments {
		s, err := asText(segment, fmt.Sprintf("%s[%d]", entry.path("path"), i))
		if err != nil {
			return response, err
		}
		response.Path = append(response.Path, s)
	}

	return response, nil
}

// calculateInfoHash hashes the canonical encoding of the info dictionary.
// The decoder only accepts canonical input, so this matches the bytes read.
func calculateInfoHash(info bencode.Dict) models.Hash {
	return sha1.Sum(bencode.Encode(info))
}

func calculatePiecesHashes(pieces []byte, field string) ([]models.Hash, error) {
	if len(pieces)%models.HashSize != 0 {
		return nil, &ProjectionError{Field: field, Length: len(pieces), Err: ErrMalformedHashes}
	}

	piecesHashes := make([]models.Hash, 0, len(pieces)/models.HashSize)
	for len(pieces) > 0 {
		var hash models.Hash
		copy(hash[:], pieces)
		piecesHashes = append(piecesHashes, hash)
		pieces = pieces[models.HashSize:]
	}

	return piecesHashes, nil
}

// fields is a dictionary together with its path, for error reporting.
type fields struct {
	d      bencode.Dict
	prefix string
}

func (f fields) path(key string) string {
	if f.prefix == "" {
		return key
	}
	return f.prefix + "." + key
}

func (f fields) required(key string) (bencode.Value, error) {
	v, ok := f.d[key]
	if !ok {
		return nil, &ProjectionError{Field: f.path(key), Err: ErrMissingField}
	}
	return v, nil
}

func (f fields) dict(key string) (fields, error) {
	v, err := f.required(key)
	if err != nil {
		return fields{}, err
	}
	return asDict(v, f.path(key))
}

func (f fields) list(key string) (bencode.List, error) {
	v, err := f.required(key)
	if err != nil {
		return nil, err
	}
	l, ok := v.(bencode.List)
	if !ok {
		return nil, wrongType(f.path(key), "list")
	}
	return l, nil
}

func (f fields) bytes(key string) ([]byte, error) {
	v, err := f.required(key)
	if err != nil {
		return nil, err
	}
	s, ok := v.(bencode.String)
	if !ok {
		return nil, wrongType(f.path(key), "byte string")
	}
	return s, nil
}

func (f fields) text(key string) (string, error) {
	v, err := f.required(key)
	if err != nil {
		return "", err
	}
	return asText(v, f.path(key))
}

func (f fields) optionalText(key string) (string, error) {
	v, ok := f.d[key]
	if !ok {
		return "", nil
	}
	return asText(v, f.path(key))
}

func (f fields) integer(key string) (int64, error) {
	v, err := f.required(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(bencode.Integer)
	if !ok {
		return 0, wrongType(f.path(key), "integer")
	}
	return int64(n), nil
}

func (f fields) optionalInteger(key string) (int64, bool, error) {
	if _, ok := f.d[key]; !ok {
		return 0, false, nil
	}
	n, err := f.integer(key)
	return n, err == nil, err
}

func (f fields) length(key string) (int64, error) {
	n, err := f.integer(key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, invalidField(f.path(key), "non-negative integer")
	}
	return n, nil
}

func (f fields) announceList(key string) ([][]string, error) {
	v, ok := f.d[key]
	if !ok {
		return nil, nil
	}
	tiers, ok := v.(bencode.List)
	if !ok {
		return nil, wrongType(f.path(key), "list")
	}
	response := make([][]string, 0, len(tiers))
	for i, tier := range tiers {
		tierPath := fmt.Sprintf("%s[%d]", f.path(key), i)
		urls, ok := tier.(bencode.List)
		if !ok {
			return nil, wrongType(tierPath, "list")
		}
		tierURLs := make([]string, 0, len(urls))
		for j, u := range urls {
			s, err := asText(u, fmt.Sprintf("%s[%d]", tierPath, j))
			if err != nil {
				return nil, err
			}
			tierURLs = append(tierURLs, s)
		}
		response = append(response, tierURLs)
	}
	return response, nil
}

func asDict(v bencode.Value, field string) (fields, error) {
	d, ok := v.(bencode.Dict)
	if !ok {
		return fields{}, wrongType(field, "dictionary")
	}
	return fields{d: d, prefix: field}, nil
}

func asText(v bencode.Value, field string) (string, error) {
	s, ok := v.(bencode.String)
	if !ok {
		return "", wrongType(field, "byte string")
	}
	if !utf8.Valid(s) {
		return "", &ProjectionError{Field: field, Err: ErrInvalidEncoding}
	}
	return string(s), nil
}

func wrongType(field, expected string) error {
	return &ProjectionError{Field: field, Expected: expected, Err: ErrWrongType}
}

func invalidField(field, expected string) error {
	return &ProjectionError{Field: field, Expected: expected, Err: ErrInvalidField}
}
