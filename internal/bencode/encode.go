package bencode

import (
	"fmt"
	"strconv"
)

// Encode returns the canonical encoding of v: dictionary keys sorted,
// integers without leading zeros.
func Encode(v Value) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the canonical encoding of v to dst.
func AppendEncode(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case Integer:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, int64(v), 10)
		return append(dst, 'e')
	case String:
		return appendString(dst, v)
	case List:
		dst = append(dst, 'l')
		for _, item := range v {
			dst = AppendEncode(dst, item)
		}
		return append(dst, 'e')
	case Dict:
		dst = append(dst, 'd')
		for _, k := range v.Keys() {
			dst = appendString(dst, []byte(k))
			dst = AppendEncode(dst, v[k])
		}
		return append(dst, 'e')
	default:
		panic(fmt.Sprintf("bencode: cannot encode %T", v))
	}
}

func appendString(dst []byte, s []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, ':')
	return append(dst, s...)
}
