package tendril

// unsafeSubtendril returns a new Tendril viewing [start, start+length) of
// t's content, without validating that range against F. It promotes an
// owned t to shared (since a second reference now exists), or bumps the
// refcount of an already-shared buffer; t itself keeps its full extent.
func (t *Tendril[F, A]) unsafeSubtendril(start, length uint32) Tendril[F, A] {
	switch t.st.kind {
	case kindInline:
		var out Tendril[F, A]
		out.st.kind = kindInline
		out.st.inlineLen = uint8(length)
		copy(out.st.inline[:], t.st.inline[start:start+length])
		return out
	case kindOwned:
		var a A
		a.Inc(&t.st.buf.Refs)
		t.st.kind = kindShared
		t.st.offset = 0
		return Tendril[F, A]{st: rawState{kind: kindShared, buf: t.st.buf, offset: start, length: length}}
	case kindShared:
		var a A
		a.Inc(&t.st.buf.Refs)
		return Tendril[F, A]{st: rawState{kind: kindShared, buf: t.st.buf, offset: t.st.offset + start, length: length}}
	default:
		panic("tendril: corrupt state")
	}
}

// TrySubtendril returns the [start, start+length) slice of t as an
// independent, buffer-sharing Tendril, validating that the slice is
// acceptable content for F at its position (whole, prefix, suffix, or
// interior subsequence).
func (t *Tendril[F, A]) TrySubtendril(start, length uint32) (Tendril[F, A], error) {
	total := t.st.Len()
	end := start + length
	if end < start || end > total {
		return Tendril[F, A]{}, wrapErr("tendril.TrySubtendril", ErrOutOfBounds)
	}
	slice := t.st.Bytes()[start:end]
	var f F
	atStart, atEnd := start == 0, end == total
	var valid bool
	switch {
	case atStart && atEnd:
		valid = f.Validate(slice)
	case atStart:
		valid = f.ValidatePrefix(slice)
	case atEnd:
		valid = f.ValidateSuffix(slice)
	default:
		valid = f.ValidateSubseq(slice)
	}
	if !valid {
		return Tendril[F, A]{}, wrapErr("tendril.TrySubtendril", ErrValidationFailed)
	}
	return t.unsafeSubtendril(start, length), nil
}

// Subtendril is TrySubtendril's panicking convenience form.
func (t *Tendril[F, A]) Subtendril(start, length uint32) Tendril[F, A] {
	r, err := t.TrySubtendril(start, length)
	if err != nil {
		panic(err)
	}
	return r
}

// splitAt divides t's content at byte offset n into two independent
// views that together replace t: the caller is expected to keep one and
// assign the other back into *t, so the net refcount change is the
// single increment performed here.
func (t *Tendril[F, A]) splitAt(n uint32) (front, back Tendril[F, A]) {
	total := t.st.Len()
	switch t.st.kind {
	case kindInline:
		front.st.kind, back.st.kind = kindInline, kindInline
		front.st.inlineLen = uint8(n)
		copy(front.st.inline[:], t.st.inline[:n])
		back.st.inlineLen = uint8(total - n)
		copy(back.st.inline[:], t.st.inline[n:total])
		return front, back
	case kindOwned, kindShared:
		var a A
		a.Inc(&t.st.buf.Refs)
		buf := t.st.buf
		base := t.st.offset // zero for kindOwned
		front = Tendril[F, A]{st: rawState{kind: kindShared, buf: buf, offset: base, length: n}}
		back = Tendril[F, A]{st: rawState{kind: kindShared, buf: buf, offset: base + n, length: total - n}}
		return front, back
	default:
		panic("tendril: corrupt state")
	}
}

// TryPopFront removes and returns the first n bytes of t, validating
// both the popped prefix and the remaining suffix against F.
func (t *Tendril[F, A]) TryPopFront(n uint32) (Tendril[F, A], error) {
	total := t.st.Len()
	if n > total {
		return Tendril[F, A]{}, wrapErr("tendril.TryPopFront", ErrOutOfBounds)
	}
	bytes := t.st.Bytes()
	var f F
	if !f.ValidatePrefix(bytes[:n]) || !f.ValidateSuffix(bytes[n:]) {
		return Tendril[F, A]{}, wrapErr("tendril.TryPopFront", ErrValidationFailed)
	}
	front, back := t.splitAt(n)
	*t = back
	return front, nil
}

// PopFront is TryPopFront's panicking convenience form.
func (t *Tendril[F, A]) PopFront(n uint32) Tendril[F, A] {
	r, err := t.TryPopFront(n)
	if err != nil {
		panic(err)
	}
	return r
}

// TryPopBack removes and returns the last n bytes of t, validating both
// the remaining prefix and the popped suffix against F.
func (t *Tendril[F, A]) TryPopBack(n uint32) (Tendril[F, A], error) {
	total := t.st.Len()
	if n > total {
		return Tendril[F, A]{}, wrapErr("tendril.TryPopBack", ErrOutOfBounds)
	}
	cut := total - n
	bytes := t.st.Bytes()
	var f F
	if !f.ValidatePrefix(bytes[:cut]) || !f.ValidateSuffix(bytes[cut:]) {
		return Tendril[F, A]{}, wrapErr("tendril.TryPopBack", ErrValidationFailed)
	}
	front, back := t.splitAt(cut)
	*t = front
	return back, nil
}

// PopBack is TryPopBack's panicking convenience form.
func (t *Tendril[F, A]) PopBack(n uint32) Tendril[F, A] {
	r, err := t.TryPopBack(n)
	if err != nil {
		panic(err)
	}
	return r
}
