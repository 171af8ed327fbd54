// Package bencode implements the Bencode format used by BitTorrent metainfo
// files: a generic Value tree, a strict decoder and a canonical encoder.
package bencode

import "sort"

// Value is one of Integer, String, List or Dict.
type Value interface {
	isValue()
}

// Integer is a bencoded integer, i<digits>e.
type Integer int64

// String is a bencoded byte string. It is not guaranteed to be valid UTF-8.
type String []byte

// List is an ordered sequence of values.
type List []Value

// Dict maps byte-string keys to values. Keys are stored as Go strings so
// they compare bytewise, which is the order Bencode requires on the wire.
type Dict map[string]Value

func (Integer) isValue() {}
func (String) isValue()  {}
func (List) isValue()    {}
func (Dict) isValue()    {}

func (s String) String() string {
	return string(s)
}

// Keys returns the dictionary keys in canonical order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
