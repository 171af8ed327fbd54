package bencode

import (
	"bytes"
	"strconv"
)

// DefaultMaxDepth bounds how many lists and dictionaries may be nested.
const DefaultMaxDepth = 512

// Options configures decoding limits.
type Options struct {
	// MaxDepth is the deepest container nesting accepted. Zero or a negative
	// value means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns Options with MaxDepth set to DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Decode decodes one value starting at the beginning of b and reports how
// many bytes it consumed. Bytes after the value are left untouched.
func Decode(b []byte) (Value, int, error) {
	return DefaultOptions().Decode(b)
}

// DecodeAll decodes b as exactly one value with nothing after it.
func DecodeAll(b []byte) (Value, error) {
	return DefaultOptions().DecodeAll(b)
}

// Decode decodes one value at the start of b under o's limits. It returns the
// value and the number of bytes consumed; on error it returns nil and 0.
func (o Options) Decode(b []byte) (Value, int, error) {
	d := &decodeState{buf: b, maxDepth: o.MaxDepth}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}
	v, err := d.value()
	if err != nil {
		return nil, 0, err
	}
	return v, d.pos, nil
}

// DecodeAll is Decode for callers that need all of b to be one value. Extra
// bytes fail with ErrTrailingData at the offset where the value ended.
func (o Options) DecodeAll(b []byte) (Value, error) {
	v, n, err := o.Decode(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, &DecodeError{Err: ErrTrailingData, Offset: n}
	}
	return v, nil
}

type decodeState struct {
	buf      []byte
	pos      int
	depth    int
	maxDepth int
}

func (d *decodeState) fail(err error, offset int) error {
	return &DecodeError{Err: err, Offset: offset}
}

func (d *decodeState) value() (Value, error) {
	if d.pos >= len(d.buf) {
		return nil, d.fail(ErrUnexpectedEOF, d.pos)
	}
	switch d.buf[d.pos] {
	case 'i':
		return d.integer()
	case 'l':
		return d.list()
	case 'd':
		return d.dict()
	default:
		return d.string()
	}
}

// digits scans an optionally signed run of ASCII digits up to the
// terminator. It returns the run and the offset of the terminator.
func (d *decodeState) digits(signed bool, terminator byte, kind error) ([]byte, error) {
	start := d.pos
	i := start
	if signed && i < len(d.buf) && d.buf[i] == '-' {
		i++
	}
	for i < len(d.buf) && d.buf[i] >= '0' && d.buf[i] <= '9' {
		i++
	}
	if i >= len(d.buf) {
		return nil, d.fail(ErrUnexpectedEOF, i)
	}
	if d.buf[i] != terminator {
		return nil, d.fail(kind, i)
	}
	run := d.buf[start:i]
	d.pos = i + 1
	return run, nil
}

// canonical reports whether a digit run is the unique spelling of its
// number: no leading zeros, no "-0", at least one digit.
func canonical(run []byte) bool {
	unsigned := bytes.TrimPrefix(run, []byte{'-'})
	if len(unsigned) == 0 {
		return false
	}
	if unsigned[0] == '0' {
		return len(run) == 1
	}
	return true
}

func (d *decodeState) integer() (Value, error) {
	start := d.pos
	d.pos++
	run, err := d.digits(true, 'e', ErrInvalidInteger)
	if err != nil {
		return nil, err
	}
	if !canonical(run) {
		return nil, d.fail(ErrInvalidInteger, start)
	}
	n, err := strconv.ParseInt(string(run), 10, 64)
	if err != nil {
		return nil, d.fail(ErrInvalidInteger, start)
	}
	return Integer(n), nil
}

func (d *decodeState) string() (Value, error) {
	start := d.pos
	run, err := d.digits(false, ':', ErrInvalidLength)
	if err != nil {
		return nil, err
	}
	if !canonical(run) {
		return nil, d.fail(ErrInvalidLength, start)
	}
	n, err := strconv.ParseInt(string(run), 10, 64)
	if err != nil {
		return nil, d.fail(ErrInvalidLength, start)
	}
	// the prefix is checked against what is left before allocating
	if n > int64(len(d.buf)-d.pos) {
		return nil, d.fail(ErrUnexpectedEOF, len(d.buf))
	}
	s := make(String, n)
	copy(s, d.buf[d.pos:])
	d.pos += int(n)
	return s, nil
}

func (d *decodeState) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return d.fail(ErrDepthExceeded, d.pos)
	}
	return nil
}

func (d *decodeState) list() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	d.pos++
	l := List{}
	for {
		if d.pos >= len(d.buf) {
			return nil, d.fail(ErrUnterminatedContainer, d.pos)
		}
		if d.buf[d.pos] == 'e' {
			d.pos++
			return l, nil
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
}

func (d *decodeState) dict() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	d.pos++
	dict := Dict{}
	var prev String
	for i := 0; ; i++ {
		if d.pos >= len(d.buf) {
			return nil, d.fail(ErrUnterminatedContainer, d.pos)
		}
		switch d.buf[d.pos] {
		case 'e':
			d.pos++
			return dict, nil
		case 'i', 'l', 'd':
			return nil, d.fail(ErrNonStringKey, d.pos)
		}

		keyOffset := d.pos
		k, err := d.string()
		if err != nil {
			return nil, err
		}
		key := k.(String)
		if i > 0 && bytes.Compare(prev, key) >= 0 {
			return nil, d.fail(ErrUnsortedKeys, keyOffset)
		}
		prev = key

		v, err := d.value()
		if err != nil {
			return nil, err
		}
		dict[string(key)] = v
	}
}
