package sink

import (
	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
)

// replacementChar is U+FFFD encoded in UTF-8, emitted in place of any
// byte sequence UTF8Validator has to skip.
var replacementChar = []byte{0xEF, 0xBF, 0xBD}

// UTF8Validator adapts a Sink[format.Bytes, ...] producer to a
// Sink[format.UTF8, ...] consumer: it accepts raw byte chunks and
// forwards them to Inner as validated UTF-8 Tendrils without copying
// any complete codepoint. A codepoint left incomplete at the end of
// one chunk is moved into pfx and completed (or, if never completed,
// reported once and replaced) by a later call.
type UTF8Validator[A tendril.Atomicity, O any] struct {
	Inner Sink[format.UTF8, A, O]
	pfx   tendril.Tendril[format.Bytes, A]
	need  int
}

// NewUTF8Validator wraps inner in a UTF8Validator.
func NewUTF8Validator[A tendril.Atomicity, O any](inner Sink[format.UTF8, A, O]) *UTF8Validator[A, O] {
	return &UTF8Validator[A, O]{Inner: inner}
}

// Process validates and forwards t, straddling codepoints across calls
// as needed via pfx/need.
func (v *UTF8Validator[A, O]) Process(t tendril.Tendril[format.Bytes, A]) error {
	if v.need > 0 {
		cont := v.need
		if l := int(t.Len()); cont > l {
			cont = l
		}
		if cont > 0 {
			head, err := t.TryPopFront(uint32(cont))
			if err != nil {
				return err
			}
			v.pfx.PushBytesUnchecked(head.AsBytesView())
			v.need -= cont
		}
		if v.need > 0 {
			return nil
		}
	}

	if !v.pfx.IsEmpty() {
		pfx := v.pfx
		v.pfx = tendril.Tendril[format.Bytes, A]{}
		if s, err := tendril.Into[format.Bytes, format.UTF8, A](pfx); err == nil {
			if err := v.Inner.Process(s); err != nil {
				return err
			}
		} else {
			v.Inner.HandleError("tendril/sink: invalid UTF-8 byte sequence")
			if err := v.emitReplacement(); err != nil {
				return err
			}
		}
	}

	if t.IsEmpty() {
		return nil
	}

	if cp, ok := format.ClassifyUTF8(t.AsBytesView(), int(t.Len())-1); ok && cp.Meaning == format.MeaningPrefix {
		tail, err := t.TryPopBack(uint32(cp.Rewind + 1))
		if err != nil {
			return err
		}
		v.pfx.PushBytesUnchecked(tail.AsBytesView())
		v.need = cp.Need
	}

	if t.IsEmpty() {
		return nil
	}

	if s, err := tendril.Into[format.Bytes, format.UTF8, A](t); err == nil {
		return v.Inner.Process(s)
	}

	v.Inner.HandleError("tendril/sink: invalid UTF-8 byte sequence")
	s := tendril.FromByteSliceUnchecked[format.UTF8, A](lossyRecodeUTF8(t.AsBytesView()))
	return v.Inner.Process(s)
}

// lossyRecodeUTF8 walks buf codepoint by codepoint, copying every whole
// one through unchanged and replacing every byte that cannot start or
// continue a valid sequence with a single U+FFFD.
func lossyRecodeUTF8(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); {
		cp, ok := format.ClassifyUTF8(buf, i)
		if ok && cp.Meaning == format.MeaningWhole {
			out = append(out, cp.Bytes...)
			i += len(cp.Bytes)
			continue
		}
		out = append(out, replacementChar...)
		i++
	}
	return out
}

func (v *UTF8Validator[A, O]) emitReplacement() error {
	return v.Inner.Process(tendril.FromByteSliceUnchecked[format.UTF8, A](replacementChar))
}

// Finish reports any never-completed trailing codepoint as an error,
// then delegates to the inner sink.
func (v *UTF8Validator[A, O]) Finish() O {
	if !v.pfx.IsEmpty() {
		v.Inner.HandleError("tendril/sink: truncated UTF-8 sequence at end of input")
		_ = v.emitReplacement()
		v.pfx = tendril.Tendril[format.Bytes, A]{}
		v.need = 0
	}
	return v.Inner.Finish()
}
