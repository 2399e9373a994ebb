package entropy

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrInvalidUTF8 = errors.New("invalid utf-8")

// Bytes is Shannon for UTF-8 encoded data. Code points are decoded in
// place, so data is not copied. Invalid encodings are rejected rather than
// counted as U+FFFD.
func Bytes(data []byte) (float32, error) {
	var f frequencies

	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size <= 1 {
			return 0, errors.Wrapf(ErrInvalidUTF8, "decoding byte at offset %d", off)
		}

		f.add(r)
		off += size
	}

	return f.value(), nil
}
