// Compute Shannon Entropy of text, in bits per code point
// H = - Σ P(x) * log2 P(x)

package entropy

import (
	"math"
	"unicode/utf8"

	"github.com/igrmk/treemap/v2"
)

// frequencies counts code points. ASCII goes to a fixed array, everything
// else to an ordered map. Both are walked in ascending code point order.
type frequencies struct {
	ascii [utf8.RuneSelf]int
	other *treemap.TreeMap[rune, int]
	total int
}

func (f *frequencies) add(r rune) {
	f.total++

	if r < utf8.RuneSelf {
		f.ascii[r]++
		return
	}

	if f.other == nil {
		f.other = treemap.New[rune, int]()
	}

	count, _ := f.other.Get(r)
	f.other.Set(r, count+1)
}

func (f *frequencies) addString(s string) {
	for _, r := range s {
		f.add(r)
	}
}

// value accumulates Σ count * ln(count/n) and divides once at the end.
func (f *frequencies) value() float32 {
	if f.total == 0 {
		return 0
	}

	n := float64(f.total)

	var raw float64
	for _, count := range f.ascii {
		if count > 0 {
			c := float64(count)
			raw += c * math.Log(c/n)
		}
	}

	if f.other != nil {
		for it := f.other.Iterator(); it.Valid(); it.Next() {
			c := float64(it.Value())
			raw += c * math.Log(c/n)
		}
	}

	return float32(math.Abs(math.Abs(raw) / (n * math.Ln2)))
}

// Shannon returns the Shannon entropy of text in bits per code point.
// The empty string and any single code point string have entropy 0.
// Only the multiset of code points matters, so every permutation of
// text yields the same bits.
func Shannon(text string) float32 {
	if text == "" {
		return 0
	}

	var f frequencies
	f.addString(text)

	return f.value()
}

// Text lets any string-like value be scored with a method call.
type Text string

// Entropy is Shannon(string(t)).
func (t Text) Entropy() float32 {
	return Shannon(string(t))
}
