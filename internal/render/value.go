// Package render turns decoded values and torrents into text for the CLI.
package render

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/WendelHime/torrentinfo/internal/bencode"
)

// binaryPrefix marks byte strings that are not valid UTF-8 and were
// rendered as hex instead. Text that already starts with it gets the prefix
// doubled, so the two can never render the same.
const binaryPrefix = "hex:"

// Value writes v as a single line of JSON. Dictionaries keep their keys
// sorted and byte strings that are not valid UTF-8 become "hex:<digits>".
// Text starting with "hex:" is written as "hex:hex:...".
func Value(w io.Writer, v bencode.Value) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(plain(v))
}

func plain(v bencode.Value) any {
	switch v := v.(type) {
	case bencode.Integer:
		return int64(v)
	case bencode.String:
		return text(v)
	case bencode.List:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, plain(item))
		}
		return items
	case bencode.Dict:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[text([]byte(k))] = plain(item)
		}
		return m
	default:
		return nil
	}
}

func text(b []byte) string {
	if !utf8.Valid(b) {
		return binaryPrefix + hex.EncodeToString(b)
	}
	if strings.HasPrefix(string(b), binaryPrefix) {
		return binaryPrefix + string(b)
	}
	return string(b)
}
