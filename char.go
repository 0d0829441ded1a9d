package tendril

import (
	"unicode/utf8"

	"github.com/go-tendril/tendril/format"
)

// PushChar appends a single Unicode scalar value to a UTF8 Tendril.
func PushChar[A Atomicity](t *Tendril[format.UTF8, A], r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.PushBytesUnchecked(buf[:n])
}

// PopFrontChar removes and returns the first scalar value of a UTF8
// Tendril. Returns ok=false if t is empty.
func PopFrontChar[A Atomicity](t *Tendril[format.UTF8, A]) (r rune, ok bool) {
	b := t.st.Bytes()
	if len(b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(b)
	if _, err := t.TryPopFront(uint32(size)); err != nil {
		panic(err)
	}
	return r, true
}

// PushWTF8Char appends a single WTF-8 "character" to a WTF8 Tendril: an
// ordinary scalar value, or an isolated UTF-16 surrogate half in the
// range 0xD800-0xDFFF. If r completes a surrogate pair
// with the trailing bytes already in t, TryPushBytes's fixup folds the
// pair into its combined codepoint automatically.
func PushWTF8Char[A Atomicity](t *Tendril[format.WTF8, A], r rune) {
	if err := t.TryPushBytes(format.EncodeWTF8Char(r)); err != nil {
		panic(err)
	}
}

// PopFrontWTF8Char removes and returns the first WTF-8 "character" of
// t: an ordinary scalar value, or an isolated surrogate half encoded as
// a rune in 0xD800-0xDFFF. Returns ok=false if t is empty.
func PopFrontWTF8Char[A Atomicity](t *Tendril[format.WTF8, A]) (r rune, ok bool) {
	b := t.st.Bytes()
	if len(b) == 0 {
		return 0, false
	}
	cp, classified := format.ClassifyUTF8(b, 0)
	if !classified {
		panic(wrapErr("tendril.PopFrontWTF8Char", ErrValidationFailed))
	}
	if _, err := t.TryPopFront(uint32(len(cp.Bytes))); err != nil {
		panic(err)
	}
	return cp.Rune, true
}

// PopFrontCharRun greedily consumes a maximal run of leading characters
// of t for which classify returns equal values, removing that run from
// t and returning it along with the run's shared classify value.
// Returns ok=false if t is empty, leaving t untouched.
func PopFrontCharRun[A Atomicity, T comparable](t *Tendril[format.UTF8, A], classify func(rune) T) (run Tendril[format.UTF8, A], class T, ok bool) {
	b := t.st.Bytes()
	if len(b) == 0 {
		var zero T
		return Tendril[format.UTF8, A]{}, zero, false
	}

	var n int
	for n < len(b) {
		r, size := utf8.DecodeRune(b[n:])
		c := classify(r)
		if n == 0 {
			class = c
		} else if c != class {
			break
		}
		n += size
	}

	run, err := t.TryPopFront(uint32(n))
	if err != nil {
		panic(err)
	}
	return run, class, true
}
