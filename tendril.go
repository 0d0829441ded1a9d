// Package tendril implements a compact, format-tagged string/byte
// buffer built for zero-copy incremental parsing: small values live
// inline in the struct, larger ones are heap-backed and can be shared
// copy-on-write between values that came from a common split or
// concatenation.
//
// A Tendril value should be treated as moved, not copied, by plain
// assignment or a by-value argument: call Clone explicitly whenever two
// independently-mutable handles onto the same content are needed.
package tendril

import (
	"github.com/go-tendril/tendril/format"
	"github.com/go-tendril/tendril/internal/rawbuf"
)

// maxInlineLen is the largest byte length stored directly in a
// Tendril's inline array without a heap allocation.
const maxInlineLen = 8

type kind uint8

const (
	// kindInline holds up to maxInlineLen bytes directly; the zero
	// Tendril value is inline and empty.
	kindInline kind = iota
	// kindOwned holds a uniquely-referenced heap buffer (buf.Refs == 1).
	kindOwned
	// kindShared holds a heap buffer that may be referenced by more than
	// one Tendril, viewed through [offset, offset+length).
	kindShared
)

// rawState is the tagged union backing every Tendril, independent of
// its format and atomicity type parameters: an explicit struct rather
// than a tagged pointer, since Go's GC cannot scan a pointer smuggling
// a tag in its low bits the way a NonNull<Header> could.
type rawState struct {
	kind      kind
	inlineLen uint8
	inline    [maxInlineLen]byte
	buf       *rawbuf.Buffer
	offset    uint32
	length    uint32
}

func (s *rawState) Len() uint32 {
	if s.kind == kindInline {
		return uint32(s.inlineLen)
	}
	return s.length
}

// Bytes returns the logical content as a slice. For kindOwned/kindShared
// this aliases the backing Buffer — callers must treat it as read-only,
// since mutation must go through the copy-on-write path.
func (s *rawState) Bytes() []byte {
	switch s.kind {
	case kindInline:
		return s.inline[:s.inlineLen]
	case kindOwned:
		return s.buf.Data()[:s.length]
	case kindShared:
		return s.buf.Data()[s.offset : s.offset+s.length]
	default:
		panic("tendril: corrupt state")
	}
}

// Tendril is a format-tagged, copy-on-write string/byte buffer. F fixes
// the content's validity invariant (format.Bytes, format.ASCII,
// format.UTF8, format.WTF8); A selects refcount atomicity (NonAtomic or
// Atomic). The zero value is a valid, empty Tendril.
type Tendril[F format.Format, A Atomicity] struct {
	st rawState
}

// STendril is the common case — a Tendril using unsynchronized
// refcounting, the single-goroutine-friendly default. Go generics have
// no defaulted type parameters, so this alias plays the role a default
// would for callers that don't need Atomic.
type STendril[F format.Format] = Tendril[F, NonAtomic]

// New returns an empty Tendril.
func New[F format.Format, A Atomicity]() Tendril[F, A] {
	return Tendril[F, A]{}
}

// WithCapacity returns an empty Tendril pre-sized to hold at least n
// bytes without reallocating.
func WithCapacity[F format.Format, A Atomicity](n uint32) Tendril[F, A] {
	if n <= maxInlineLen {
		return Tendril[F, A]{}
	}
	buf := rawbuf.Allocate(n)
	return Tendril[F, A]{st: rawState{kind: kindOwned, buf: buf}}
}

// FromByteSliceUnchecked builds a Tendril from b without validating it
// against F. Misuse can make later format-dependent operations (char
// iteration, subset conversion) behave incorrectly on invalid content.
func FromByteSliceUnchecked[F format.Format, A Atomicity](b []byte) Tendril[F, A] {
	var t Tendril[F, A]
	if len(b) <= maxInlineLen {
		t.st.kind = kindInline
		t.st.inlineLen = uint8(len(b))
		copy(t.st.inline[:], b)
		return t
	}
	buf := rawbuf.Allocate(uint32(len(b)))
	copy(buf.Data(), b)
	t.st = rawState{kind: kindOwned, buf: buf, length: uint32(len(b))}
	return t
}

// TryFromByteSlice builds a Tendril from b, validating it against F
// first. Returns ErrValidationFailed if b is not valid content for F.
func TryFromByteSlice[F format.Format, A Atomicity](b []byte) (Tendril[F, A], error) {
	var f F
	if !f.Validate(b) {
		return Tendril[F, A]{}, wrapErr("tendril.TryFromByteSlice", ErrValidationFailed)
	}
	return FromByteSliceUnchecked[F, A](b), nil
}

// FromByteSlice is TryFromByteSlice's panicking convenience form.
func FromByteSlice[F format.Format, A Atomicity](b []byte) Tendril[F, A] {
	t, err := TryFromByteSlice[F, A](b)
	if err != nil {
		panic(err)
	}
	return t
}

// Len reports the Tendril's logical length in bytes.
func (t *Tendril[F, A]) Len() uint32 { return t.st.Len() }

// IsEmpty reports whether the Tendril has zero length.
func (t *Tendril[F, A]) IsEmpty() bool { return t.st.Len() == 0 }

// AsBytesView returns the Tendril's content as a slice. The slice may
// alias shared backing storage: treat it as read-only, and don't retain
// it past the next mutating call on t (or any Tendril sharing its
// buffer, since a mutation elsewhere can trigger a copy-on-write that
// this slice won't reflect).
func (t *Tendril[F, A]) AsBytesView() []byte { return t.st.Bytes() }

// IsShared reports whether the Tendril's backing buffer may be
// referenced by another Tendril. An inline or uniquely-owned Tendril is
// never shared: sharing only exists once a Clone or subtendril view has
// been taken.
func (t *Tendril[F, A]) IsShared() bool { return t.st.kind == kindShared }

// Cap reports the heap buffer's capacity, or 0 for an inline Tendril.
func (t *Tendril[F, A]) Cap() uint32 {
	if t.st.buf == nil {
		return 0
	}
	return t.st.buf.Cap()
}
