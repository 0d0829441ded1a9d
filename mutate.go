package tendril

import (
	"github.com/go-tendril/tendril/format"
	"github.com/go-tendril/tendril/internal/rawbuf"
)

// ensureOwnedWithCapacity makes room in t for at least extra more bytes.
// An inline t that still fits maxInlineLen stays inline; otherwise t
// becomes a uniquely-owned buffer, copy-on-write cloning out of a shared
// buffer if necessary: mutation always forces a fresh copy away from a
// buffer another Tendril might still be viewing.
func (t *Tendril[F, A]) ensureOwnedWithCapacity(extra uint32) {
	needed := rawbuf.CheckedAdd32(t.st.Len(), extra, "tendril.ensureOwnedWithCapacity")
	switch t.st.kind {
	case kindInline:
		if needed <= maxInlineLen {
			return
		}
		buf := rawbuf.Allocate(needed)
		copy(buf.Data(), t.st.inline[:t.st.inlineLen])
		t.st = rawState{kind: kindOwned, buf: buf, length: uint32(t.st.inlineLen)}
	case kindOwned:
		if t.st.buf.Cap() < needed {
			t.st.buf.Grow(needed)
		}
	case kindShared:
		var a A
		cur := t.st.Bytes()
		buf := rawbuf.Allocate(needed)
		copy(buf.Data(), cur)
		a.Dec(&t.st.buf.Refs)
		t.st = rawState{kind: kindOwned, buf: buf, length: uint32(len(cur))}
	default:
		panic("tendril: corrupt state")
	}
}

// rawAppendAssumeCapacity appends extra to t's content, assuming t is
// inline or uniquely owned with enough spare room (the caller must have
// called ensureOwnedWithCapacity first).
func (t *Tendril[F, A]) rawAppendAssumeCapacity(extra []byte) {
	if len(extra) == 0 {
		return
	}
	switch t.st.kind {
	case kindInline:
		copy(t.st.inline[t.st.inlineLen:], extra)
		t.st.inlineLen += uint8(len(extra))
	case kindOwned:
		d := t.st.buf.Data()
		copy(d[t.st.length:], extra)
		t.st.length += uint32(len(extra))
	default:
		panic("tendril: append on non-owned state")
	}
}

func (t *Tendril[F, A]) truncateTo(newLen uint32) {
	switch t.st.kind {
	case kindInline:
		t.st.inlineLen = uint8(newLen)
	case kindOwned, kindShared:
		t.st.length = newLen
	default:
		panic("tendril: corrupt state")
	}
}

// PushBytesUnchecked appends extra without validating it against F or
// applying any format fixup. Use TryPushBytes unless the caller has
// already established extra is valid to append as-is.
func (t *Tendril[F, A]) PushBytesUnchecked(extra []byte) {
	if len(extra) == 0 {
		return
	}
	t.ensureOwnedWithCapacity(uint32(len(extra)))
	t.rawAppendAssumeCapacity(extra)
}

// applyFixupAndPush appends extra after applying F's Fixup (if F
// implements format.Fixupper) to the boundary between t's current
// content and extra, e.g. WTF-8's surrogate-pairing rule.
func (t *Tendril[F, A]) applyFixupAndPush(extra []byte) {
	var f F
	var fx format.Fixup
	if fu, ok := any(f).(format.Fixupper); ok {
		fx = fu.Fixup(t.st.Bytes(), extra)
	}
	if fx.DropLeft > 0 {
		t.truncateTo(rawbuf.CheckedSub32(t.st.Len(), fx.DropLeft, "tendril.applyFixupAndPush"))
	}
	insert := fx.InsertBytes[:fx.InsertLen]
	rest := extra[fx.DropRight:]

	need := rawbuf.CheckedAddUint(uint(len(insert)), uint(len(rest)), "tendril.applyFixupAndPush")
	t.ensureOwnedWithCapacity(uint32(need))
	t.rawAppendAssumeCapacity(insert)
	t.rawAppendAssumeCapacity(rest)
}

// TryPushBytes validates extra as a subsequence of F's format and
// appends it, applying any format-specific boundary fixup. Returns
// ErrValidationFailed without modifying t if extra fails validation.
func (t *Tendril[F, A]) TryPushBytes(extra []byte) error {
	var f F
	if !f.ValidateSubseq(extra) {
		return wrapErr("tendril.TryPushBytes", ErrValidationFailed)
	}
	t.applyFixupAndPush(extra)
	return nil
}

// PushBytes is TryPushBytes's panicking convenience form.
func (t *Tendril[F, A]) PushBytes(extra []byte) {
	if err := t.TryPushBytes(extra); err != nil {
		panic(err)
	}
}

// PushTendril appends other's content to t. If both are shared views
// into the same buffer and other's view begins exactly where t's ends,
// the merge is a zero-copy length extension; otherwise it falls back to
// a byte-level append with F's boundary fixup applied (other's bytes
// are not re-validated).
func (t *Tendril[F, A]) PushTendril(other Tendril[F, A]) {
	if other.st.Len() == 0 {
		return
	}
	if t.st.kind == kindShared && other.st.kind == kindShared &&
		t.st.buf == other.st.buf && t.st.offset+t.st.length == other.st.offset {
		t.st.length += other.st.length
		return
	}
	t.applyFixupAndPush(other.st.Bytes())
}

// Clear truncates t to empty, releasing any shared buffer reference.
func (t *Tendril[F, A]) Clear() {
	if t.st.kind == kindShared {
		var a A
		a.Dec(&t.st.buf.Refs)
	}
	*t = Tendril[F, A]{}
}

// PushUninitialized grows t by n bytes without writing them, returning
// a slice over the newly added region for the caller to fill in. It is
// only available for format.Bytes, since any other format's validity
// can't be guaranteed for uninitialized content.
func PushUninitialized[A Atomicity](t *Tendril[format.Bytes, A], n uint32) []byte {
	oldLen := t.st.Len()
	t.ensureOwnedWithCapacity(n)
	switch t.st.kind {
	case kindInline:
		t.st.inlineLen += uint8(n)
		return t.st.inline[oldLen:t.st.inlineLen]
	case kindOwned:
		t.st.length += n
		return t.st.buf.Data()[oldLen:t.st.length]
	default:
		panic("tendril: corrupt state")
	}
}
