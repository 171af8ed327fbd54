package bencode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	var tests = []struct {
		name   string
		given  string
		assert func(t *testing.T, actual Value, consumed int, err error)
	}{
		{
			name:  "byte string",
			given: "4:spam",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, String("spam"), actual)
				assert.Equal(t, 6, consumed)
			},
		},
		{
			name:  "empty byte string",
			given: "0:",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, String(""), actual)
				assert.Equal(t, 2, consumed)
			},
		},
		{
			name:  "byte string keeps raw bytes",
			given: "3:\x00\xff:",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, String([]byte{0x00, 0xff, ':'}), actual)
			},
		},
		{
			name:  "positive integer",
			given: "i52e",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(52), actual)
				assert.Equal(t, 4, consumed)
			},
		},
		{
			name:  "negative integer",
			given: "i-52e",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(-52), actual)
			},
		},
		{
			name:  "zero",
			given: "i0e",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(0), actual)
			},
		},
		{
			name:  "int64 bounds",
			given: "li9223372036854775807ei-9223372036854775808ee",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, List{Integer(9223372036854775807), Integer(-9223372036854775808)}, actual)
			},
		},
		{
			name:  "list",
			given: "l5:helloi52ee",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, List{String("hello"), Integer(52)}, actual)
				assert.Equal(t, 13, consumed)
			},
		},
		{
			name:  "empty list",
			given: "le",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, List{}, actual)
			},
		},
		{
			name:  "dictionary",
			given: "d8:completei1e10:incompletei2ee",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				if assert.IsType(t, Dict{}, actual) {
					dict := actual.(Dict)
					assert.Equal(t, []string{"complete", "incomplete"}, dict.Keys())
					assert.Equal(t, Integer(1), dict["complete"])
					assert.Equal(t, Integer(2), dict["incomplete"])
				}
				assert.Equal(t, 31, consumed)
			},
		},
		{
			name:  "nested containers",
			given: "d3:fooli1ed3:bar3:bazee3:zzz0:e",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Dict{
					"foo": List{Integer(1), Dict{"bar": String("baz")}},
					"zzz": String(""),
				}, actual)
			},
		},
		{
			name:  "stops after the first value",
			given: "i1ei2e",
			assert: func(t *testing.T, actual Value, consumed int, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(1), actual)
				assert.Equal(t, 3, consumed)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			actual, consumed, err := Decode([]byte(tt.given))
			tt.assert(t, actual, consumed, err)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	var tests = []struct {
		name   string
		given  string
		kind   error
		offset int
	}{
		{name: "empty input", given: "", kind: ErrUnexpectedEOF, offset: 0},
		{name: "length prefix beyond input", given: "10:spam", kind: ErrUnexpectedEOF, offset: 7},
		{name: "huge length prefix", given: "9223372036854775807:x", kind: ErrUnexpectedEOF, offset: 21},
		{name: "length prefix without colon", given: "4", kind: ErrUnexpectedEOF, offset: 1},
		{name: "integer without end", given: "i42", kind: ErrUnexpectedEOF, offset: 3},
		{name: "negative length", given: "-1:a", kind: ErrInvalidLength, offset: 0},
		{name: "non digit length", given: "4x:spam", kind: ErrInvalidLength, offset: 1},
		{name: "empty length", given: ":a", kind: ErrInvalidLength, offset: 0},
		{name: "leading zero length", given: "04:spam", kind: ErrInvalidLength, offset: 0},
		{name: "overflowing length", given: "99999999999999999999:a", kind: ErrInvalidLength, offset: 0},
		{name: "unknown type byte", given: "x", kind: ErrInvalidLength, offset: 0},
		{name: "negative zero", given: "i-0e", kind: ErrInvalidInteger, offset: 0},
		{name: "leading zero", given: "i01e", kind: ErrInvalidInteger, offset: 0},
		{name: "empty integer", given: "ie", kind: ErrInvalidInteger, offset: 0},
		{name: "lone minus", given: "i-e", kind: ErrInvalidInteger, offset: 0},
		{name: "garbage in integer", given: "i1x2e", kind: ErrInvalidInteger, offset: 2},
		{name: "overflowing integer", given: "i9223372036854775808e", kind: ErrInvalidInteger, offset: 0},
		{name: "unterminated list", given: "l4:spam", kind: ErrUnterminatedContainer, offset: 7},
		{name: "unterminated dictionary", given: "d3:fooi1e", kind: ErrUnterminatedContainer, offset: 9},
		{name: "integer key", given: "di1ei2ee", kind: ErrNonStringKey, offset: 1},
		{name: "list key", given: "dle3:fooe", kind: ErrNonStringKey, offset: 1},
		{name: "unsorted keys", given: "d3:zzzi1e3:aaai2ee", kind: ErrUnsortedKeys, offset: 9},
		{name: "duplicate keys", given: "d3:fooi1e3:fooi2ee", kind: ErrUnsortedKeys, offset: 9},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			actual, consumed, err := Decode([]byte(tt.given))
			assert.Nil(t, actual)
			assert.Equal(t, 0, consumed)
			if assert.Error(t, err) {
				assert.True(t, errors.Is(err, tt.kind), "got %v", err)
				var decodeErr *DecodeError
				if assert.True(t, errors.As(err, &decodeErr)) {
					assert.Equal(t, tt.offset, decodeErr.Offset)
				}
			}
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	t.Run("default limit stops pathological nesting", func(t *testing.T) {
		given := strings.Repeat("l", 100000) + strings.Repeat("e", 100000)
		_, _, err := Decode([]byte(given))
		if assert.Error(t, err) {
			assert.ErrorIs(t, err, ErrDepthExceeded)
			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, DefaultMaxDepth, decodeErr.Offset)
		}
	})

	t.Run("custom limit", func(t *testing.T) {
		opts := Options{MaxDepth: 2}
		actual, _, err := opts.Decode([]byte("llee"))
		assert.Nil(t, err)
		assert.Equal(t, List{List{}}, actual)

		_, _, err = opts.Decode([]byte("ld3:fooleee"))
		assert.ErrorIs(t, err, ErrDepthExceeded)
	})

	t.Run("siblings do not add depth", func(t *testing.T) {
		opts := Options{MaxDepth: 2}
		_, _, err := opts.Decode([]byte("llelelelee"))
		assert.Nil(t, err)
	})
}

func TestDecodeAll(t *testing.T) {
	actual, err := DecodeAll([]byte("4:spam"))
	assert.Nil(t, err)
	assert.Equal(t, String("spam"), actual)

	_, err = DecodeAll([]byte("4:spami1e"))
	assert.ErrorIs(t, err, ErrTrailingData)
	var decodeErr *DecodeError
	if assert.ErrorAs(t, err, &decodeErr) {
		assert.Equal(t, 6, decodeErr.Offset)
	}
}

func TestDecodeCopiesInput(t *testing.T) {
	given := []byte("4:spam")
	actual, _, err := Decode(given)
	assert.Nil(t, err)
	given[2] = 'x'
	assert.Equal(t, String("spam"), actual)
}
